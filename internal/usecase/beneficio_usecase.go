package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"consorcio_crm/internal/domain/entities"
	"consorcio_crm/internal/domain/workflow"
	"consorcio_crm/internal/usecase/interfaces"
)

var (
	ErrBeneficioNotFound     = errors.New("beneficio not found")
	ErrClienteNotFound       = errors.New("cliente not found")
	ErrTabelaCreditoNotFound = errors.New("tabela de credito not found")
	ErrTabelaCreditoInativa  = errors.New("tabela de credito inactive")
	ErrInvalidBeneficioID    = errors.New("invalid beneficio id")
	ErrInvalidClienteID      = errors.New("invalid cliente_id")
	ErrInvalidTabelaID       = errors.New("invalid tabela_credito_id")
	ErrInvalidUsuarioID      = errors.New("invalid usuario id")
	ErrStatusDesconhecido    = errors.New("unknown status")
	ErrMotivoObrigatorio     = errors.New("motivo is required to rejeitar or cancelar")
	ErrPermissaoNegada       = errors.New("usuario lacks permission for this action")
	ErrConflitoDeStatus      = errors.New("beneficio was changed by a concurrent request")
)

// limiteComprometimentoRenda caps the installment at 30% of declared income.
const limiteComprometimentoRenda = 0.30

// TransicaoNaoPermitidaError reports a move that is neither in the forward
// nor in the backward set of the current status.
type TransicaoNaoPermitidaError struct {
	De   entities.BeneficioStatus
	Para entities.BeneficioStatus
}

func (e *TransicaoNaoPermitidaError) Error() string {
	return fmt.Sprintf("transicao de %s para %s nao permitida", e.De, e.Para)
}

// CapacidadePagamentoError reports an installment above the affordability
// limit, carrying the computed limit for the caller's message.
type CapacidadePagamentoError struct {
	Parcela float64
	Limite  float64
}

func (e *CapacidadePagamentoError) Error() string {
	return fmt.Sprintf("parcela de R$ %.2f excede 30%% da renda declarada (limite R$ %.2f)", e.Parcela, e.Limite)
}

// CriarBeneficioInput carries the creation command. RepresentanteID defaults
// to the acting user when empty.
type CriarBeneficioInput struct {
	ClienteID        string
	RepresentanteID  string
	ConsultorID      string
	UnidadeID        string
	EmpresaID        string
	TabelaCreditoID  string
	AdministradoraID string
	Observacoes      string
}

// AtualizarStatusInput carries the transition command of the workflow engine.
type AtualizarStatusInput struct {
	Status             entities.BeneficioStatus
	MotivoRejeicao     string
	MotivoCancelamento string
	Observacao         string
}

// BeneficioHistoricoComUsuario is the history read model: the audit entry
// plus the resolved actor name.
type BeneficioHistoricoComUsuario struct {
	entities.BeneficioHistorico
	UsuarioNome string
}

// IBeneficioUseCase exposes the benefício lifecycle operations.
//
//   - Criar: affordability-gated creation from a tabela de crédito snapshot
//   - AtualizarStatus: the single checked entry point for every move in the
//     workflow, including undo, rejeição and cancelamento
//   - ListHistorico: audit trail newest first with actor names

type IBeneficioUseCase interface {
	Criar(ctx context.Context, usuarioID string, in CriarBeneficioInput) (entities.Beneficio, error)
	GetByID(ctx context.Context, id string) (entities.Beneficio, error)
	List(ctx context.Context, filtro interfaces.BeneficioFiltro) ([]entities.Beneficio, error)
	AtualizarStatus(ctx context.Context, beneficioID, usuarioID string, in AtualizarStatusInput) (entities.Beneficio, error)
	ListHistorico(ctx context.Context, beneficioID string) ([]BeneficioHistoricoComUsuario, error)
}

type BeneficioUseCase struct {
	repo      interfaces.IBeneficioRepository
	historico interfaces.IBeneficioHistoricoRepository
	clientes  interfaces.IClienteRepository
	tabelas   interfaces.ITabelaCreditoRepository
	usuarios  interfaces.IUsuarioRepository
	gate      interfaces.IPermissionGate
}

var _ IBeneficioUseCase = (*BeneficioUseCase)(nil)

func NewBeneficioUseCase(
	repo interfaces.IBeneficioRepository,
	historico interfaces.IBeneficioHistoricoRepository,
	clientes interfaces.IClienteRepository,
	tabelas interfaces.ITabelaCreditoRepository,
	usuarios interfaces.IUsuarioRepository,
	gate interfaces.IPermissionGate,
) *BeneficioUseCase {
	return &BeneficioUseCase{
		repo:      repo,
		historico: historico,
		clientes:  clientes,
		tabelas:   tabelas,
		usuarios:  usuarios,
		gate:      gate,
	}
}

func (u *BeneficioUseCase) Criar(ctx context.Context, usuarioID string, in CriarBeneficioInput) (entities.Beneficio, error) {
	usuarioID = strings.TrimSpace(usuarioID)
	if usuarioID == "" {
		return entities.Beneficio{}, ErrInvalidUsuarioID
	}
	clienteID := strings.TrimSpace(in.ClienteID)
	if clienteID == "" {
		return entities.Beneficio{}, ErrInvalidClienteID
	}
	tabelaID := strings.TrimSpace(in.TabelaCreditoID)
	if tabelaID == "" {
		return entities.Beneficio{}, ErrInvalidTabelaID
	}

	allowed, err := u.gate.CanPerform(ctx, usuarioID, entities.PermissaoBeneficiosCriar)
	if err != nil {
		return entities.Beneficio{}, err
	}
	if !allowed {
		return entities.Beneficio{}, ErrPermissaoNegada
	}

	cliente, err := u.clientes.GetByID(ctx, clienteID)
	if err != nil {
		return entities.Beneficio{}, err
	}
	if cliente.ID == "" {
		return entities.Beneficio{}, ErrClienteNotFound
	}

	tabela, err := u.tabelas.GetByID(ctx, tabelaID)
	if err != nil {
		return entities.Beneficio{}, err
	}
	if tabela.ID == "" {
		return entities.Beneficio{}, ErrTabelaCreditoNotFound
	}
	if !tabela.Ativo {
		return entities.Beneficio{}, ErrTabelaCreditoInativa
	}

	if err := validarCapacidadePagamento(cliente.Salario, tabela.Parcela); err != nil {
		return entities.Beneficio{}, err
	}

	representanteID := strings.TrimSpace(in.RepresentanteID)
	if representanteID == "" {
		representanteID = usuarioID
	}

	now := time.Now().UTC()
	b := entities.Beneficio{
		ID:               uuid.NewString(),
		ClienteID:        cliente.ID,
		RepresentanteID:  representanteID,
		ConsultorID:      strings.TrimSpace(in.ConsultorID),
		UnidadeID:        strings.TrimSpace(in.UnidadeID),
		EmpresaID:        strings.TrimSpace(in.EmpresaID),
		TabelaCreditoID:  tabela.ID,
		AdministradoraID: strings.TrimSpace(in.AdministradoraID),

		TipoBem:           tabela.TipoBem,
		PrazoGrupo:        tabela.Prazo,
		ValorCredito:      tabela.ValorCredito,
		Parcela:           tabela.Parcela,
		FundoReserva:      tabela.FundoReserva,
		TaxaAdministracao: tabela.TaxaAdministracao,
		SeguroPrestamista: tabela.SeguroPrestamista,
		IndiceCorrecao:    tabela.IndiceCorrecao,
		QtdParticipantes:  tabela.QtdParticipantes,
		TipoPlano:         tabela.TipoPlano,

		Status:      entities.BeneficioStatusRascunho,
		Observacoes: strings.TrimSpace(in.Observacoes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, b)
}

// validarCapacidadePagamento succeeds silently when the client has no
// declared income; the check only runs at creation, never on transitions.
func validarCapacidadePagamento(salario *float64, parcela float64) error {
	if salario == nil {
		return nil
	}
	limite := *salario * limiteComprometimentoRenda
	if parcela > limite {
		return &CapacidadePagamentoError{Parcela: parcela, Limite: limite}
	}
	return nil
}

func (u *BeneficioUseCase) GetByID(ctx context.Context, id string) (entities.Beneficio, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Beneficio{}, ErrInvalidBeneficioID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Beneficio{}, err
	}
	if b.ID == "" {
		return entities.Beneficio{}, ErrBeneficioNotFound
	}
	return b, nil
}

func (u *BeneficioUseCase) List(ctx context.Context, filtro interfaces.BeneficioFiltro) ([]entities.Beneficio, error) {
	if filtro.Status != "" && !workflow.StatusValido(filtro.Status) {
		return nil, ErrStatusDesconhecido
	}
	return u.repo.List(ctx, filtro)
}

// AtualizarStatus moves one benefício through the workflow: legality against
// the transition table, capability check, mandatory motivo on rejeitar and
// cancelar, milestone stamp and the transactional (benefício, historico)
// write. Two racing requests on the same benefício resolve to one winner; the
// loser gets ErrConflitoDeStatus and must re-read before retrying.
func (u *BeneficioUseCase) AtualizarStatus(ctx context.Context, beneficioID, usuarioID string, in AtualizarStatusInput) (entities.Beneficio, error) {
	beneficioID = strings.TrimSpace(beneficioID)
	if beneficioID == "" {
		return entities.Beneficio{}, ErrInvalidBeneficioID
	}
	usuarioID = strings.TrimSpace(usuarioID)
	if usuarioID == "" {
		return entities.Beneficio{}, ErrInvalidUsuarioID
	}
	if !workflow.StatusValido(in.Status) {
		return entities.Beneficio{}, ErrStatusDesconhecido
	}

	b, err := u.repo.GetByID(ctx, beneficioID)
	if err != nil {
		return entities.Beneficio{}, err
	}
	if b.ID == "" {
		return entities.Beneficio{}, ErrBeneficioNotFound
	}

	acao, ok := workflow.Classificar(b.Status, in.Status)
	if !ok {
		return entities.Beneficio{}, &TransicaoNaoPermitidaError{De: b.Status, Para: in.Status}
	}

	allowed, err := u.gate.CanPerform(ctx, usuarioID, entities.PermissaoBeneficiosAlterarStatus)
	if err != nil {
		return entities.Beneficio{}, err
	}
	if !allowed {
		return entities.Beneficio{}, ErrPermissaoNegada
	}

	var observacao string
	switch acao {
	case entities.HistoricoAcaoRejeitou:
		motivo := strings.TrimSpace(in.MotivoRejeicao)
		if motivo == "" {
			return entities.Beneficio{}, ErrMotivoObrigatorio
		}
		b.MotivoRejeicao = motivo
		observacao = motivo
	case entities.HistoricoAcaoCancelou:
		motivo := strings.TrimSpace(in.MotivoCancelamento)
		if motivo == "" {
			return entities.Beneficio{}, ErrMotivoObrigatorio
		}
		b.MotivoCancelamento = motivo
		observacao = motivo
	default:
		observacao = strings.TrimSpace(in.Observacao)
	}

	now := time.Now().UTC()
	statusAnterior := b.Status
	updatedAtAnterior := b.UpdatedAt
	b.Status = in.Status
	b.RegistrarMarco(in.Status, now)
	b.UpdatedAt = now

	h := entities.BeneficioHistorico{
		ID:             uuid.NewString(),
		BeneficioID:    b.ID,
		UsuarioID:      usuarioID,
		StatusAnterior: statusAnterior,
		StatusNovo:     in.Status,
		Acao:           acao,
		Observacao:     observacao,
		CreatedAt:      now,
	}

	updated, err := u.repo.ApplyTransition(ctx, b, statusAnterior, updatedAtAnterior, h)
	if err != nil {
		if errors.Is(err, interfaces.ErrStatusDesatualizado) {
			return entities.Beneficio{}, ErrConflitoDeStatus
		}
		return entities.Beneficio{}, err
	}
	return updated, nil
}

func (u *BeneficioUseCase) ListHistorico(ctx context.Context, beneficioID string) ([]BeneficioHistoricoComUsuario, error) {
	beneficioID = strings.TrimSpace(beneficioID)
	if beneficioID == "" {
		return nil, ErrInvalidBeneficioID
	}

	b, err := u.repo.GetByID(ctx, beneficioID)
	if err != nil {
		return nil, err
	}
	if b.ID == "" {
		return nil, ErrBeneficioNotFound
	}

	registros, err := u.historico.ListByBeneficioID(ctx, beneficioID)
	if err != nil {
		return nil, err
	}

	nomes := map[string]string{}
	out := make([]BeneficioHistoricoComUsuario, 0, len(registros))
	for _, reg := range registros {
		nome, resolved := nomes[reg.UsuarioID]
		if !resolved {
			usuario, err := u.usuarios.GetByID(ctx, reg.UsuarioID)
			if err != nil {
				return nil, err
			}
			nome = usuario.Nome
			if usuario.ID == "" {
				// Usuários can be removed after the fact; keep the trail readable.
				nome = reg.UsuarioID
			}
			nomes[reg.UsuarioID] = nome
		}
		out = append(out, BeneficioHistoricoComUsuario{BeneficioHistorico: reg, UsuarioNome: nome})
	}
	return out, nil
}
