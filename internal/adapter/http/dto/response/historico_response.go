package response

import (
	"time"

	"consorcio_crm/internal/usecase"
)

type BeneficioHistoricoResponse struct {
	ID             string    `json:"id"`
	BeneficioID    string    `json:"beneficio_id"`
	UsuarioID      string    `json:"usuario_id"`
	UsuarioNome    string    `json:"usuario_nome,omitempty"`
	StatusAnterior string    `json:"status_anterior,omitempty"`
	StatusNovo     string    `json:"status_novo"`
	Acao           string    `json:"acao"`
	Observacao     string    `json:"observacao,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromHistorico(h usecase.BeneficioHistoricoComUsuario) BeneficioHistoricoResponse {
	return BeneficioHistoricoResponse{
		ID:             h.ID,
		BeneficioID:    h.BeneficioID,
		UsuarioID:      h.UsuarioID,
		UsuarioNome:    h.UsuarioNome,
		StatusAnterior: string(h.StatusAnterior),
		StatusNovo:     string(h.StatusNovo),
		Acao:           string(h.Acao),
		Observacao:     h.Observacao,
		CreatedAt:      h.CreatedAt,
	}
}

func FromHistoricos(registros []usecase.BeneficioHistoricoComUsuario) []BeneficioHistoricoResponse {
	out := make([]BeneficioHistoricoResponse, 0, len(registros))
	for _, h := range registros {
		out = append(out, FromHistorico(h))
	}
	return out
}
