package interfaces

import (
	"context"

	"consorcio_crm/internal/domain/entities"
)

// IUsuarioRepository resolves system users: actor names on history entries
// and the perfil/permission codes behind the permission gate.
//
//go:generate mockgen -source=usuario_repository_interface.go -destination=mocks/usuario_repository_mock.go -package=mock_interfaces

type IUsuarioRepository interface {
	GetByID(ctx context.Context, id string) (entities.Usuario, error)
}
