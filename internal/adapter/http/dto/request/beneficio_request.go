package request

import "strings"

// BeneficioCreateRequest is the creation payload sent by the sales screens.
// representante_id defaults to the acting user when omitted.
type BeneficioCreateRequest struct {
	ClienteID        string `json:"cliente_id" binding:"required"`
	RepresentanteID  string `json:"representante_id"`
	ConsultorID      string `json:"consultor_id"`
	UnidadeID        string `json:"unidade_id"`
	EmpresaID        string `json:"empresa_id"`
	TabelaCreditoID  string `json:"tabela_credito_id" binding:"required"`
	AdministradoraID string `json:"administradora_id"`
	Observacoes      string `json:"observacoes"`
}

// BeneficioStatusUpdateRequest drives the workflow engine. motivo_rejeicao
// and motivo_cancelamento are mandatory for their respective targets;
// observacao annotates any other move.
type BeneficioStatusUpdateRequest struct {
	Status             string `json:"status" binding:"required"`
	MotivoRejeicao     string `json:"motivo_rejeicao"`
	MotivoCancelamento string `json:"motivo_cancelamento"`
	Observacao         string `json:"observacao"`
}

func (r BeneficioStatusUpdateRequest) ResolveStatus() string {
	return strings.TrimSpace(r.Status)
}

// SimulacaoRequest filters the credit-table catalog for a prospect.
type SimulacaoRequest struct {
	TipoBem         string   `json:"tipo_bem" binding:"required"`
	ValorCreditoMin *float64 `json:"valor_credito_min"`
	ValorCreditoMax *float64 `json:"valor_credito_max"`
	ParcelaMax      *float64 `json:"parcela_max"`
}

func (r SimulacaoRequest) ResolveTipoBem() string {
	return strings.TrimSpace(r.TipoBem)
}
