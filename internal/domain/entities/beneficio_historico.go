package entities

import "time"

// HistoricoAcao tags what kind of move produced a history entry.

type HistoricoAcao string

const (
	HistoricoAcaoAvancou  HistoricoAcao = "avancou"
	HistoricoAcaoVoltou   HistoricoAcao = "voltou"
	HistoricoAcaoRejeitou HistoricoAcao = "rejeitou"
	HistoricoAcaoCancelou HistoricoAcao = "cancelou"
)

// BeneficioHistorico is one immutable audit entry per status change.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (beneficio_id-index): beneficio_id + created_at
//
// Entries are written in the same transaction that moves the benefício, so a
// benefício can never land in a new status without a matching entry.
type BeneficioHistorico struct {
	ID          string `json:"id"`
	BeneficioID string `json:"beneficio_id"`
	UsuarioID   string `json:"usuario_id"`

	// StatusAnterior is empty only on synthetic entries imported from before
	// the audit trail existed.
	StatusAnterior BeneficioStatus `json:"status_anterior,omitempty"`
	StatusNovo     BeneficioStatus `json:"status_novo"`

	Acao       HistoricoAcao `json:"acao"`
	Observacao string        `json:"observacao,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
