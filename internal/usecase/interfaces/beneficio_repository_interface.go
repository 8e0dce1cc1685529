package interfaces

import (
	"context"
	"errors"
	"time"

	"consorcio_crm/internal/domain/entities"
)

// ErrStatusDesatualizado is returned by ApplyTransition when another writer
// moved the benefício after it was loaded. It is part of the repository
// contract: callers surface it as a retryable conflict.
var ErrStatusDesatualizado = errors.New("beneficio status out of date")

// BeneficioFiltro narrows listing. Zero values mean "no filter".
type BeneficioFiltro struct {
	ClienteID string
	Status    entities.BeneficioStatus
	TipoBem   entities.TipoBem
}

// IBeneficioRepository abstracts DynamoDB persistence for Beneficio.
//
// ApplyTransition is the only mutation path after creation. It must persist
// the rewritten benefício and the historico entry as one unit, conditioned on
// the stored item still matching the loaded snapshot (statusAnterior and
// updatedAtAnterior). The updated_at check catches writers that moved the
// benefício away and back between the caller's read and write; when either
// condition fails it returns ErrStatusDesatualizado and nothing is written.
//
//go:generate mockgen -source=beneficio_repository_interface.go -destination=mocks/beneficio_repository_mock.go -package=mock_interfaces

type IBeneficioRepository interface {
	Create(ctx context.Context, b entities.Beneficio) (entities.Beneficio, error)
	GetByID(ctx context.Context, id string) (entities.Beneficio, error)
	List(ctx context.Context, filtro BeneficioFiltro) ([]entities.Beneficio, error)
	ApplyTransition(ctx context.Context, b entities.Beneficio, statusAnterior entities.BeneficioStatus, updatedAtAnterior time.Time, h entities.BeneficioHistorico) (entities.Beneficio, error)
}
