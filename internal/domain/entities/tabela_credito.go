package entities

import "time"

// TabelaCredito is a priced consortium plan template. It is reference data
// maintained elsewhere; this service only reads it to seed benefícios and to
// answer simulations.
//
// Storage model (DynamoDB):
//   - PK: id
type TabelaCredito struct {
	ID                string  `json:"id"`
	Nome              string  `json:"nome"`
	TipoBem           TipoBem `json:"tipo_bem"`
	Prazo             int     `json:"prazo"`
	ValorCredito      float64 `json:"valor_credito"`
	Parcela           float64 `json:"parcela"`
	FundoReserva      float64 `json:"fundo_reserva"`
	TaxaAdministracao float64 `json:"taxa_administracao"`
	SeguroPrestamista float64 `json:"seguro_prestamista"`
	IndiceCorrecao    string  `json:"indice_correcao"`
	QtdParticipantes  int     `json:"qtd_participantes"`
	TipoPlano         string  `json:"tipo_plano"`
	AdministradoraID  string  `json:"administradora_id,omitempty"`
	Ativo             bool    `json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
