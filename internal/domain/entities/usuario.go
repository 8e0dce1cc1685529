package entities

// Perfil codes with special handling. Other perfis (gerente, representante,
// consultor, custom ones) are just carriers of permission codes.
const PerfilAdmin = "admin"

// Permission codes consumed by this service. The full catalog lives with the
// perfis service; only the benefício ones are checked here.
const (
	PermissaoBeneficiosCriar         = "beneficios.criar"
	PermissaoBeneficiosAlterarStatus = "beneficios.alterar_status"
)

// Usuario is the read-only projection of a system user: enough to resolve the
// acting user's name on history entries and to answer capability checks.
type Usuario struct {
	ID         string   `json:"id"`
	Nome       string   `json:"nome"`
	Perfil     string   `json:"perfil"`
	Permissoes []string `json:"permissoes,omitempty"`
	Ativo      bool     `json:"ativo"`
}
