package interfaces

import (
	"context"

	"consorcio_crm/internal/domain/entities"
)

// TabelaCreditoFiltro narrows simulation and listing queries. Nil pointer
// bounds mean "no bound"; SomenteAtivas is the default for every caller here.
type TabelaCreditoFiltro struct {
	TipoBem         entities.TipoBem
	ValorCreditoMin *float64
	ValorCreditoMax *float64
	ParcelaMax      *float64
	SomenteAtivas   bool
}

// ITabelaCreditoRepository reads the credit-table catalog. The catalog is
// maintained by the cadastro service; this service never writes it.
//
//go:generate mockgen -source=tabela_credito_repository_interface.go -destination=mocks/tabela_credito_repository_mock.go -package=mock_interfaces

type ITabelaCreditoRepository interface {
	GetByID(ctx context.Context, id string) (entities.TabelaCredito, error)
	List(ctx context.Context, filtro TabelaCreditoFiltro) ([]entities.TabelaCredito, error)
}
