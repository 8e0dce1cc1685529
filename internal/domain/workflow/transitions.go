// Package workflow holds the legal-move graph of the benefício lifecycle.
// The maps are static configuration: loaded once, never mutated at runtime.
package workflow

import "consorcio_crm/internal/domain/entities"

// avancos maps each status to the statuses reachable by a forward move.
// rascunho can only be proposed or abandoned; every stage after aceite can be
// cancelled; ativo, rejeitado and cancelado are absorbing.
var avancos = map[entities.BeneficioStatus][]entities.BeneficioStatus{
	entities.BeneficioStatusRascunho:           {entities.BeneficioStatusProposto, entities.BeneficioStatusCancelado},
	entities.BeneficioStatusProposto:           {entities.BeneficioStatusAceito, entities.BeneficioStatusRejeitado},
	entities.BeneficioStatusAceito:             {entities.BeneficioStatusContratoGerado, entities.BeneficioStatusCancelado},
	entities.BeneficioStatusContratoGerado:     {entities.BeneficioStatusContratoAssinado, entities.BeneficioStatusCancelado},
	entities.BeneficioStatusContratoAssinado:   {entities.BeneficioStatusAguardandoCadastro, entities.BeneficioStatusCancelado},
	entities.BeneficioStatusAguardandoCadastro: {entities.BeneficioStatusCadastrado, entities.BeneficioStatusCancelado},
	entities.BeneficioStatusCadastrado:         {entities.BeneficioStatusTermoGerado, entities.BeneficioStatusCancelado},
	entities.BeneficioStatusTermoGerado:        {entities.BeneficioStatusAtivo, entities.BeneficioStatusCancelado},
	entities.BeneficioStatusRejeitado:          {},
	entities.BeneficioStatusAtivo:              {},
	entities.BeneficioStatusCancelado:          {},
}

// retornos maps each status to the single status an undo goes back to. It is
// the mirror of the forward chain; rejeitado and cancelado have no way back.
var retornos = map[entities.BeneficioStatus]entities.BeneficioStatus{
	entities.BeneficioStatusProposto:           entities.BeneficioStatusRascunho,
	entities.BeneficioStatusAceito:             entities.BeneficioStatusProposto,
	entities.BeneficioStatusContratoGerado:     entities.BeneficioStatusAceito,
	entities.BeneficioStatusContratoAssinado:   entities.BeneficioStatusContratoGerado,
	entities.BeneficioStatusAguardandoCadastro: entities.BeneficioStatusContratoAssinado,
	entities.BeneficioStatusCadastrado:         entities.BeneficioStatusAguardandoCadastro,
	entities.BeneficioStatusTermoGerado:        entities.BeneficioStatusCadastrado,
}

// PodeAvancar reports whether para is a legal forward move from de.
func PodeAvancar(de, para entities.BeneficioStatus) bool {
	for _, s := range avancos[de] {
		if s == para {
			return true
		}
	}
	return false
}

// PodeVoltar reports whether para is the legal undo target from de.
func PodeVoltar(de, para entities.BeneficioStatus) bool {
	anterior, ok := retornos[de]
	return ok && anterior == para
}

// ProximosStatus returns the forward targets reachable from de.
func ProximosStatus(de entities.BeneficioStatus) []entities.BeneficioStatus {
	return avancos[de]
}

// Classificar resolves the kind of move de→para represents. ok is false when
// the move is not in the forward set nor the backward set.
func Classificar(de, para entities.BeneficioStatus) (acao entities.HistoricoAcao, ok bool) {
	switch {
	case !PodeAvancar(de, para) && !PodeVoltar(de, para):
		return "", false
	case para == entities.BeneficioStatusCancelado:
		return entities.HistoricoAcaoCancelou, true
	case para == entities.BeneficioStatusRejeitado:
		return entities.HistoricoAcaoRejeitou, true
	case PodeAvancar(de, para):
		return entities.HistoricoAcaoAvancou, true
	default:
		return entities.HistoricoAcaoVoltou, true
	}
}

// TodosStatus lists every status in workflow order. Used by validation and by
// the exhaustive legality tests.
func TodosStatus() []entities.BeneficioStatus {
	return []entities.BeneficioStatus{
		entities.BeneficioStatusRascunho,
		entities.BeneficioStatusProposto,
		entities.BeneficioStatusAceito,
		entities.BeneficioStatusRejeitado,
		entities.BeneficioStatusContratoGerado,
		entities.BeneficioStatusContratoAssinado,
		entities.BeneficioStatusAguardandoCadastro,
		entities.BeneficioStatusCadastrado,
		entities.BeneficioStatusTermoGerado,
		entities.BeneficioStatusAtivo,
		entities.BeneficioStatusCancelado,
	}
}

// StatusValido reports whether s is one of the known statuses.
func StatusValido(s entities.BeneficioStatus) bool {
	_, ok := avancos[s]
	return ok
}
