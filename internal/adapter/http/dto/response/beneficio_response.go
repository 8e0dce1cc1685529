package response

import (
	"time"

	"consorcio_crm/internal/domain/entities"
)

type BeneficioResponse struct {
	ID string `json:"id"`

	ClienteID        string `json:"cliente_id"`
	RepresentanteID  string `json:"representante_id"`
	ConsultorID      string `json:"consultor_id,omitempty"`
	UnidadeID        string `json:"unidade_id,omitempty"`
	EmpresaID        string `json:"empresa_id,omitempty"`
	TabelaCreditoID  string `json:"tabela_credito_id"`
	AdministradoraID string `json:"administradora_id,omitempty"`

	TipoBem           string  `json:"tipo_bem"`
	PrazoGrupo        int     `json:"prazo_grupo"`
	ValorCredito      float64 `json:"valor_credito"`
	Parcela           float64 `json:"parcela"`
	FundoReserva      float64 `json:"fundo_reserva"`
	TaxaAdministracao float64 `json:"taxa_administracao"`
	SeguroPrestamista float64 `json:"seguro_prestamista"`
	IndiceCorrecao    string  `json:"indice_correcao,omitempty"`
	QtdParticipantes  int     `json:"qtd_participantes"`
	TipoPlano         string  `json:"tipo_plano,omitempty"`

	Grupo string `json:"grupo,omitempty"`
	Cota  string `json:"cota,omitempty"`

	Status string `json:"status"`

	DataProposta               *time.Time `json:"data_proposta,omitempty"`
	DataAceite                 *time.Time `json:"data_aceite,omitempty"`
	DataRejeicao               *time.Time `json:"data_rejeicao,omitempty"`
	DataContrato               *time.Time `json:"data_contrato,omitempty"`
	DataAssinaturaContrato     *time.Time `json:"data_assinatura_contrato,omitempty"`
	DataCadastroAdministradora *time.Time `json:"data_cadastro_administradora,omitempty"`
	DataTermo                  *time.Time `json:"data_termo,omitempty"`
	DataAssinaturaTermo        *time.Time `json:"data_assinatura_termo,omitempty"`
	DataAtivacao               *time.Time `json:"data_ativacao,omitempty"`
	DataCancelamento           *time.Time `json:"data_cancelamento,omitempty"`

	MotivoRejeicao     string `json:"motivo_rejeicao,omitempty"`
	MotivoCancelamento string `json:"motivo_cancelamento,omitempty"`
	Observacoes        string `json:"observacoes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromBeneficio(b entities.Beneficio) BeneficioResponse {
	return BeneficioResponse{
		ID:               b.ID,
		ClienteID:        b.ClienteID,
		RepresentanteID:  b.RepresentanteID,
		ConsultorID:      b.ConsultorID,
		UnidadeID:        b.UnidadeID,
		EmpresaID:        b.EmpresaID,
		TabelaCreditoID:  b.TabelaCreditoID,
		AdministradoraID: b.AdministradoraID,

		TipoBem:           string(b.TipoBem),
		PrazoGrupo:        b.PrazoGrupo,
		ValorCredito:      b.ValorCredito,
		Parcela:           b.Parcela,
		FundoReserva:      b.FundoReserva,
		TaxaAdministracao: b.TaxaAdministracao,
		SeguroPrestamista: b.SeguroPrestamista,
		IndiceCorrecao:    b.IndiceCorrecao,
		QtdParticipantes:  b.QtdParticipantes,
		TipoPlano:         b.TipoPlano,

		Grupo: b.Grupo,
		Cota:  b.Cota,

		Status: string(b.Status),

		DataProposta:               b.DataProposta,
		DataAceite:                 b.DataAceite,
		DataRejeicao:               b.DataRejeicao,
		DataContrato:               b.DataContrato,
		DataAssinaturaContrato:     b.DataAssinaturaContrato,
		DataCadastroAdministradora: b.DataCadastroAdministradora,
		DataTermo:                  b.DataTermo,
		DataAssinaturaTermo:        b.DataAssinaturaTermo,
		DataAtivacao:               b.DataAtivacao,
		DataCancelamento:           b.DataCancelamento,

		MotivoRejeicao:     b.MotivoRejeicao,
		MotivoCancelamento: b.MotivoCancelamento,
		Observacoes:        b.Observacoes,

		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func FromBeneficios(beneficios []entities.Beneficio) []BeneficioResponse {
	out := make([]BeneficioResponse, 0, len(beneficios))
	for _, b := range beneficios {
		out = append(out, FromBeneficio(b))
	}
	return out
}
