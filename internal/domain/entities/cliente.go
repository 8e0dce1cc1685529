package entities

// Cliente is the read-only projection of a client this service depends on.
// Full client records (documents, address, spouse, financial commitments) are
// owned by the cadastro service; the workflow only needs identity and the
// declared income used by the affordability check.
type Cliente struct {
	ID      string   `json:"id"`
	Nome    string   `json:"nome"`
	CPF     string   `json:"cpf"`
	Salario *float64 `json:"salario,omitempty"`
	Ativo   bool     `json:"ativo"`
}
