package usecase

import (
	"context"
	"errors"
	"sort"

	"consorcio_crm/internal/domain/entities"
	"consorcio_crm/internal/usecase/interfaces"
)

var ErrInvalidTipoBem = errors.New("invalid tipo_bem")

// SimulacaoInput narrows the credit-table catalog for a client simulation.
type SimulacaoInput struct {
	TipoBem         entities.TipoBem
	ValorCreditoMin *float64
	ValorCreditoMax *float64
	ParcelaMax      *float64
}

// ITabelaCreditoUseCase exposes the read-only credit-table catalog: the
// listing the sales screens use and the simulation that suggests plans for a
// prospect.

type ITabelaCreditoUseCase interface {
	List(ctx context.Context, tipoBem entities.TipoBem) ([]entities.TabelaCredito, error)
	Simular(ctx context.Context, in SimulacaoInput) ([]entities.TabelaCredito, error)
}

type TabelaCreditoUseCase struct {
	repo interfaces.ITabelaCreditoRepository
}

var _ ITabelaCreditoUseCase = (*TabelaCreditoUseCase)(nil)

func NewTabelaCreditoUseCase(repo interfaces.ITabelaCreditoRepository) *TabelaCreditoUseCase {
	return &TabelaCreditoUseCase{repo: repo}
}

func (u *TabelaCreditoUseCase) List(ctx context.Context, tipoBem entities.TipoBem) ([]entities.TabelaCredito, error) {
	if tipoBem != "" && !tipoBemValido(tipoBem) {
		return nil, ErrInvalidTipoBem
	}

	tabelas, err := u.repo.List(ctx, interfaces.TabelaCreditoFiltro{TipoBem: tipoBem, SomenteAtivas: true})
	if err != nil {
		return nil, err
	}
	ordenarPorValorCredito(tabelas)
	return tabelas, nil
}

func (u *TabelaCreditoUseCase) Simular(ctx context.Context, in SimulacaoInput) ([]entities.TabelaCredito, error) {
	if !tipoBemValido(in.TipoBem) {
		return nil, ErrInvalidTipoBem
	}

	tabelas, err := u.repo.List(ctx, interfaces.TabelaCreditoFiltro{
		TipoBem:         in.TipoBem,
		ValorCreditoMin: in.ValorCreditoMin,
		ValorCreditoMax: in.ValorCreditoMax,
		ParcelaMax:      in.ParcelaMax,
		SomenteAtivas:   true,
	})
	if err != nil {
		return nil, err
	}
	ordenarPorValorCredito(tabelas)
	return tabelas, nil
}

func tipoBemValido(t entities.TipoBem) bool {
	switch t {
	case entities.TipoBemImovel, entities.TipoBemCarro, entities.TipoBemMoto:
		return true
	}
	return false
}

func ordenarPorValorCredito(tabelas []entities.TabelaCredito) {
	sort.Slice(tabelas, func(i, j int) bool {
		return tabelas[i].ValorCredito < tabelas[j].ValorCredito
	})
}
