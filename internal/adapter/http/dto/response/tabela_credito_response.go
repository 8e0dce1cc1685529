package response

import (
	"consorcio_crm/internal/domain/entities"
)

type TabelaCreditoResponse struct {
	ID                string  `json:"id"`
	Nome              string  `json:"nome"`
	TipoBem           string  `json:"tipo_bem"`
	Prazo             int     `json:"prazo"`
	ValorCredito      float64 `json:"valor_credito"`
	Parcela           float64 `json:"parcela"`
	FundoReserva      float64 `json:"fundo_reserva"`
	TaxaAdministracao float64 `json:"taxa_administracao"`
	SeguroPrestamista float64 `json:"seguro_prestamista"`
	IndiceCorrecao    string  `json:"indice_correcao,omitempty"`
	QtdParticipantes  int     `json:"qtd_participantes"`
	TipoPlano         string  `json:"tipo_plano,omitempty"`
	AdministradoraID  string  `json:"administradora_id,omitempty"`
}

func FromTabelaCredito(t entities.TabelaCredito) TabelaCreditoResponse {
	return TabelaCreditoResponse{
		ID:                t.ID,
		Nome:              t.Nome,
		TipoBem:           string(t.TipoBem),
		Prazo:             t.Prazo,
		ValorCredito:      t.ValorCredito,
		Parcela:           t.Parcela,
		FundoReserva:      t.FundoReserva,
		TaxaAdministracao: t.TaxaAdministracao,
		SeguroPrestamista: t.SeguroPrestamista,
		IndiceCorrecao:    t.IndiceCorrecao,
		QtdParticipantes:  t.QtdParticipantes,
		TipoPlano:         t.TipoPlano,
		AdministradoraID:  t.AdministradoraID,
	}
}

func FromTabelasCredito(tabelas []entities.TabelaCredito) []TabelaCreditoResponse {
	out := make([]TabelaCreditoResponse, 0, len(tabelas))
	for _, t := range tabelas {
		out = append(out, FromTabelaCredito(t))
	}
	return out
}
