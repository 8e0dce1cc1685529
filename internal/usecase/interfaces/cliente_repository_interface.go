package interfaces

import (
	"context"

	"consorcio_crm/internal/domain/entities"
)

// IClienteRepository resolves the client projection used at benefício
// creation (existence + declared income).
//
//go:generate mockgen -source=cliente_repository_interface.go -destination=mocks/cliente_repository_mock.go -package=mock_interfaces

type IClienteRepository interface {
	GetByID(ctx context.Context, id string) (entities.Cliente, error)
}
