// Package permission adapts the perfil/permissões catalog to the capability
// check the workflow engine consumes.
package permission

import (
	"context"
	"slices"

	"consorcio_crm/internal/domain/entities"
	"consorcio_crm/internal/usecase/interfaces"
)

// PerfilGate answers capability checks from the usuarios directory. The admin
// perfil is allowed everything; any other perfil is allowed exactly the
// permission codes attached to it. Results are never cached: a transition
// request always sees the current perfil.
type PerfilGate struct {
	usuarios interfaces.IUsuarioRepository
}

var _ interfaces.IPermissionGate = (*PerfilGate)(nil)

func NewPerfilGate(usuarios interfaces.IUsuarioRepository) *PerfilGate {
	return &PerfilGate{usuarios: usuarios}
}

func (g *PerfilGate) CanPerform(ctx context.Context, usuarioID, permissao string) (bool, error) {
	usuario, err := g.usuarios.GetByID(ctx, usuarioID)
	if err != nil {
		return false, err
	}
	if usuario.ID == "" || !usuario.Ativo {
		return false, nil
	}
	if usuario.Perfil == entities.PerfilAdmin {
		return true, nil
	}
	return slices.Contains(usuario.Permissoes, permissao), nil
}
