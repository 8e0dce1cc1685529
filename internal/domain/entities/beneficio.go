package entities

import "time"

// BeneficioStatus represents the lifecycle of a benefício (consortium adhesion).
//
// Domain notes:
//   - The benefício is the single source of truth for "current status"; the
//     historico table is an audit trail, never consulted to derive status.
//   - Legal moves between statuses live in internal/domain/workflow; every
//     mutation goes through the workflow use case.

type BeneficioStatus string

const (
	BeneficioStatusRascunho           BeneficioStatus = "rascunho"
	BeneficioStatusProposto           BeneficioStatus = "proposto"
	BeneficioStatusAceito             BeneficioStatus = "aceito"
	BeneficioStatusRejeitado          BeneficioStatus = "rejeitado"
	BeneficioStatusContratoGerado     BeneficioStatus = "contrato_gerado"
	BeneficioStatusContratoAssinado   BeneficioStatus = "contrato_assinado"
	BeneficioStatusAguardandoCadastro BeneficioStatus = "aguardando_cadastro"
	BeneficioStatusCadastrado         BeneficioStatus = "cadastrado"
	BeneficioStatusTermoGerado        BeneficioStatus = "termo_gerado"
	BeneficioStatusAtivo              BeneficioStatus = "ativo"
	BeneficioStatusCancelado          BeneficioStatus = "cancelado"
)

// TipoBem is the asset category a credit table finances.

type TipoBem string

const (
	TipoBemImovel TipoBem = "imovel"
	TipoBemCarro  TipoBem = "carro"
	TipoBemMoto   TipoBem = "moto"
)

// Beneficio links a cliente to a tabela de crédito through the sales workflow.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The financial block is a snapshot copied from the tabela de crédito at
// creation time; it is never re-derived when the table changes later.
// Milestone dates are "first reached at" markers: set once on entering the
// corresponding status and never cleared, not even by a revert.
type Beneficio struct {
	ID string `json:"id"`

	// Relationships. Cliente and tabela are required and immutable after
	// creation; the rest are optional references resolved elsewhere.
	ClienteID        string `json:"cliente_id"`
	RepresentanteID  string `json:"representante_id"`
	ConsultorID      string `json:"consultor_id,omitempty"`
	UnidadeID        string `json:"unidade_id,omitempty"`
	EmpresaID        string `json:"empresa_id,omitempty"`
	TabelaCreditoID  string `json:"tabela_credito_id"`
	AdministradoraID string `json:"administradora_id,omitempty"`

	// Financial snapshot.
	TipoBem           TipoBem `json:"tipo_bem"`
	PrazoGrupo        int     `json:"prazo_grupo"`
	ValorCredito      float64 `json:"valor_credito"`
	Parcela           float64 `json:"parcela"`
	FundoReserva      float64 `json:"fundo_reserva"`
	TaxaAdministracao float64 `json:"taxa_administracao"`
	SeguroPrestamista float64 `json:"seguro_prestamista"`
	IndiceCorrecao    string  `json:"indice_correcao"`
	QtdParticipantes  int     `json:"qtd_participantes"`
	TipoPlano         string  `json:"tipo_plano"`

	// Placement at the administradora, filled after cadastro.
	Grupo string `json:"grupo,omitempty"`
	Cota  string `json:"cota,omitempty"`

	Status BeneficioStatus `json:"status"`

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

// RegistrarMarco stamps the milestone date of the status being entered.
// Dates already set are kept untouched so the marker keeps meaning "first time
// this benefício reached the status". Entering ativo also stamps the term
// signature date, mirroring how ativação is operated at the administradora.
func (b *Beneficio) RegistrarMarco(status BeneficioStatus, now time.Time) {
	stamp := func(field **time.Time) {
		if *field == nil {
			t := now
			*field = &t
		}
	}

	switch status {
	case BeneficioStatusProposto:
		stamp(&b.DataProposta)
	case BeneficioStatusAceito:
		stamp(&b.DataAceite)
	case BeneficioStatusRejeitado:
		stamp(&b.DataRejeicao)
	case BeneficioStatusContratoGerado:
		stamp(&b.DataContrato)
	case BeneficioStatusContratoAssinado:
		stamp(&b.DataAssinaturaContrato)
	case BeneficioStatusCadastrado:
		stamp(&b.DataCadastroAdministradora)
	case BeneficioStatusTermoGerado:
		stamp(&b.DataTermo)
	case BeneficioStatusAtivo:
		stamp(&b.DataAtivacao)
		stamp(&b.DataAssinaturaTermo)
	case BeneficioStatusCancelado:
		stamp(&b.DataCancelamento)
	}
	// aguardando_cadastro has no milestone of its own.
}
