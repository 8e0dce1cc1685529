package interfaces

import (
	"context"

	"consorcio_crm/internal/domain/entities"
)

// IBeneficioHistoricoRepository reads the audit trail of one benefício.
// Writing goes through IBeneficioRepository.ApplyTransition so the entry and
// the status change share a transaction.
//
//go:generate mockgen -source=historico_repository_interface.go -destination=mocks/historico_repository_mock.go -package=mock_interfaces

type IBeneficioHistoricoRepository interface {
	// ListByBeneficioID returns entries newest first.
	ListByBeneficioID(ctx context.Context, beneficioID string) ([]entities.BeneficioHistorico, error)
}
