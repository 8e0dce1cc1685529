package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consorcio_crm/internal/domain/entities"
)

// movimentosLegais is the full set of legal moves, forward and backward.
// Every pair of statuses outside this set must be refused.
func movimentosLegais() map[[2]entities.BeneficioStatus]entities.HistoricoAcao {
	mov := func(m map[[2]entities.BeneficioStatus]entities.HistoricoAcao, de, para entities.BeneficioStatus, acao entities.HistoricoAcao) {
		m[[2]entities.BeneficioStatus{de, para}] = acao
	}

	m := map[[2]entities.BeneficioStatus]entities.HistoricoAcao{}
	mov(m, entities.BeneficioStatusRascunho, entities.BeneficioStatusProposto, entities.HistoricoAcaoAvancou)
	mov(m, entities.BeneficioStatusRascunho, entities.BeneficioStatusCancelado, entities.HistoricoAcaoCancelou)
	mov(m, entities.BeneficioStatusProposto, entities.BeneficioStatusAceito, entities.HistoricoAcaoAvancou)
	mov(m, entities.BeneficioStatusProposto, entities.BeneficioStatusRejeitado, entities.HistoricoAcaoRejeitou)
	mov(m, entities.BeneficioStatusProposto, entities.BeneficioStatusRascunho, entities.HistoricoAcaoVoltou)

	// the contract-to-term chain is uniform: next step, cancel, one-step undo
	cadeia := []entities.BeneficioStatus{
		entities.BeneficioStatusAceito,
		entities.BeneficioStatusContratoGerado,
		entities.BeneficioStatusContratoAssinado,
		entities.BeneficioStatusAguardandoCadastro,
		entities.BeneficioStatusCadastrado,
		entities.BeneficioStatusTermoGerado,
		entities.BeneficioStatusAtivo,
	}
	for i := 0; i < len(cadeia)-1; i++ {
		mov(m, cadeia[i], cadeia[i+1], entities.HistoricoAcaoAvancou)
		mov(m, cadeia[i], entities.BeneficioStatusCancelado, entities.HistoricoAcaoCancelou)
	}
	mov(m, entities.BeneficioStatusAceito, entities.BeneficioStatusProposto, entities.HistoricoAcaoVoltou)
	for i := 1; i < len(cadeia)-1; i++ {
		mov(m, cadeia[i], cadeia[i-1], entities.HistoricoAcaoVoltou)
	}
	return m
}

func TestClassificar_Exaustivo(t *testing.T) {
	todos := TodosStatus()
	require.Len(t, todos, 11)
	legais := movimentosLegais()

	for _, de := range todos {
		for _, para := range todos {
			acao, ok := Classificar(de, para)
			esperado, legal := legais[[2]entities.BeneficioStatus{de, para}]
			if !legal {
				assert.Falsef(t, ok, "%s -> %s should be refused", de, para)
				continue
			}
			require.Truef(t, ok, "%s -> %s should be legal", de, para)
			assert.Equalf(t, esperado, acao, "%s -> %s", de, para)
		}
	}
}

func TestEstadosAbsorventes(t *testing.T) {
	for _, s := range []entities.BeneficioStatus{
		entities.BeneficioStatusAtivo,
		entities.BeneficioStatusRejeitado,
		entities.BeneficioStatusCancelado,
	} {
		assert.Emptyf(t, ProximosStatus(s), "%s should have no forward moves", s)
		for _, para := range TodosStatus() {
			assert.Falsef(t, PodeVoltar(s, para), "%s should have no undo to %s", s, para)
		}
	}
}

func TestPodeAvancar(t *testing.T) {
	assert.True(t, PodeAvancar(entities.BeneficioStatusRascunho, entities.BeneficioStatusProposto))
	assert.True(t, PodeAvancar(entities.BeneficioStatusTermoGerado, entities.BeneficioStatusAtivo))
	// rascunho and proposto cannot jump ahead.
	assert.False(t, PodeAvancar(entities.BeneficioStatusRascunho, entities.BeneficioStatusAceito))
	assert.False(t, PodeAvancar(entities.BeneficioStatusProposto, entities.BeneficioStatusCancelado))
	// rejeição only exists out of proposto.
	assert.False(t, PodeAvancar(entities.BeneficioStatusAceito, entities.BeneficioStatusRejeitado))
	// no self transitions.
	for _, s := range TodosStatus() {
		assert.Falsef(t, PodeAvancar(s, s), "%s -> %s", s, s)
	}
}

func TestPodeVoltar(t *testing.T) {
	assert.True(t, PodeVoltar(entities.BeneficioStatusProposto, entities.BeneficioStatusRascunho))
	assert.True(t, PodeVoltar(entities.BeneficioStatusTermoGerado, entities.BeneficioStatusCadastrado))
	// undo is single step only.
	assert.False(t, PodeVoltar(entities.BeneficioStatusTermoGerado, entities.BeneficioStatusAceito))
	assert.False(t, PodeVoltar(entities.BeneficioStatusRascunho, entities.BeneficioStatusRascunho))
}

func TestStatusValido(t *testing.T) {
	for _, s := range TodosStatus() {
		assert.Truef(t, StatusValido(s), "%s", s)
	}
	assert.False(t, StatusValido("aprovado"))
	assert.False(t, StatusValido(""))
}
