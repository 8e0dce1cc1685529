package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"consorcio_crm/internal/domain/entities"
	"consorcio_crm/internal/usecase/interfaces"
	mock_interfaces "consorcio_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type beneficioMocks struct {
	repo      *mock_interfaces.MockIBeneficioRepository
	historico *mock_interfaces.MockIBeneficioHistoricoRepository
	clientes  *mock_interfaces.MockIClienteRepository
	tabelas   *mock_interfaces.MockITabelaCreditoRepository
	usuarios  *mock_interfaces.MockIUsuarioRepository
	gate      *mock_interfaces.MockIPermissionGate
}

func newBeneficioUseCaseTest(t *testing.T) (*BeneficioUseCase, beneficioMocks) {
	ctrl := gomock.NewController(t)
	m := beneficioMocks{
		repo:      mock_interfaces.NewMockIBeneficioRepository(ctrl),
		historico: mock_interfaces.NewMockIBeneficioHistoricoRepository(ctrl),
		clientes:  mock_interfaces.NewMockIClienteRepository(ctrl),
		tabelas:   mock_interfaces.NewMockITabelaCreditoRepository(ctrl),
		usuarios:  mock_interfaces.NewMockIUsuarioRepository(ctrl),
		gate:      mock_interfaces.NewMockIPermissionGate(ctrl),
	}
	uc := NewBeneficioUseCase(m.repo, m.historico, m.clientes, m.tabelas, m.usuarios, m.gate)
	return uc, m
}

func floatPtr(v float64) *float64 { return &v }

func tabelaAtiva() entities.TabelaCredito {
	return entities.TabelaCredito{
		ID:                "tab-1",
		Nome:              "Imóvel 240x",
		TipoBem:           entities.TipoBemImovel,
		Prazo:             240,
		ValorCredito:      300000,
		Parcela:           1500,
		FundoReserva:      0.02,
		TaxaAdministracao: 0.18,
		SeguroPrestamista: 0.0005,
		IndiceCorrecao:    "INCC",
		QtdParticipantes:  800,
		TipoPlano:         "normal",
		Ativo:             true,
	}
}

func TestBeneficioUseCase_Criar(t *testing.T) {
	in := CriarBeneficioInput{ClienteID: "cli-1", TabelaCreditoID: "tab-1"}

	t.Run("invalid usuario id", func(t *testing.T) {
		uc, _ := newBeneficioUseCaseTest(t)
		_, err := uc.Criar(context.Background(), "   ", in)
		if !errors.Is(err, ErrInvalidUsuarioID) {
			t.Fatalf("expected ErrInvalidUsuarioID, got %v", err)
		}
	})

	t.Run("invalid cliente id", func(t *testing.T) {
		uc, _ := newBeneficioUseCaseTest(t)
		_, err := uc.Criar(context.Background(), "user-1", CriarBeneficioInput{TabelaCreditoID: "tab-1"})
		if !errors.Is(err, ErrInvalidClienteID) {
			t.Fatalf("expected ErrInvalidClienteID, got %v", err)
		}
	})

	t.Run("invalid tabela id", func(t *testing.T) {
		uc, _ := newBeneficioUseCaseTest(t)
		_, err := uc.Criar(context.Background(), "user-1", CriarBeneficioInput{ClienteID: "cli-1"})
		if !errors.Is(err, ErrInvalidTabelaID) {
			t.Fatalf("expected ErrInvalidTabelaID, got %v", err)
		}
	})

	t.Run("permission denied", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosCriar).Return(false, nil)

		_, err := uc.Criar(context.Background(), "user-1", in)
		if !errors.Is(err, ErrPermissaoNegada) {
			t.Fatalf("expected ErrPermissaoNegada, got %v", err)
		}
	})

	t.Run("gate error", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosCriar).Return(false, errors.New("perfis down"))

		_, err := uc.Criar(context.Background(), "user-1", in)
		if err == nil || err.Error() != "perfis down" {
			t.Fatalf("expected gate error, got %v", err)
		}
	})

	t.Run("cliente not found", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosCriar).Return(true, nil)
		m.clientes.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Cliente{}, nil)

		_, err := uc.Criar(context.Background(), "user-1", in)
		if !errors.Is(err, ErrClienteNotFound) {
			t.Fatalf("expected ErrClienteNotFound, got %v", err)
		}
	})

	t.Run("tabela not found", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosCriar).Return(true, nil)
		m.clientes.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Cliente{ID: "cli-1", Ativo: true}, nil)
		m.tabelas.EXPECT().GetByID(gomock.Any(), "tab-1").Return(entities.TabelaCredito{}, nil)

		_, err := uc.Criar(context.Background(), "user-1", in)
		if !errors.Is(err, ErrTabelaCreditoNotFound) {
			t.Fatalf("expected ErrTabelaCreditoNotFound, got %v", err)
		}
	})

	t.Run("tabela inactive", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		tabela := tabelaAtiva()
		tabela.Ativo = false
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosCriar).Return(true, nil)
		m.clientes.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Cliente{ID: "cli-1", Ativo: true}, nil)
		m.tabelas.EXPECT().GetByID(gomock.Any(), "tab-1").Return(tabela, nil)

		_, err := uc.Criar(context.Background(), "user-1", in)
		if !errors.Is(err, ErrTabelaCreditoInativa) {
			t.Fatalf("expected ErrTabelaCreditoInativa, got %v", err)
		}
	})

	t.Run("parcela above 30% of income", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		// 1500 > 0.30 * 4999
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosCriar).Return(true, nil)
		m.clientes.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Cliente{ID: "cli-1", Salario: floatPtr(4999), Ativo: true}, nil)
		m.tabelas.EXPECT().GetByID(gomock.Any(), "tab-1").Return(tabelaAtiva(), nil)

		_, err := uc.Criar(context.Background(), "user-1", in)
		var capErr *CapacidadePagamentoError
		if !errors.As(err, &capErr) {
			t.Fatalf("expected CapacidadePagamentoError, got %v", err)
		}
		if capErr.Parcela != 1500 || capErr.Limite != 4999*0.30 {
			t.Fatalf("unexpected error values: %+v", capErr)
		}
	})

	t.Run("parcela exactly at the limit passes", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		// 1500 == 0.30 * 5000
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosCriar).Return(true, nil)
		m.clientes.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Cliente{ID: "cli-1", Salario: floatPtr(5000), Ativo: true}, nil)
		m.tabelas.EXPECT().GetByID(gomock.Any(), "tab-1").Return(tabelaAtiva(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Beneficio{})).DoAndReturn(
			func(_ context.Context, b entities.Beneficio) (entities.Beneficio, error) { return b, nil },
		)

		if _, err := uc.Criar(context.Background(), "user-1", in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no declared income skips the check", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosCriar).Return(true, nil)
		m.clientes.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Cliente{ID: "cli-1", Ativo: true}, nil)
		m.tabelas.EXPECT().GetByID(gomock.Any(), "tab-1").Return(tabelaAtiva(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Beneficio) (entities.Beneficio, error) { return b, nil },
		)

		if _, err := uc.Criar(context.Background(), "user-1", in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("create success snapshots the tabela", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		tabela := tabelaAtiva()
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosCriar).Return(true, nil)
		m.clientes.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Cliente{ID: "cli-1", Salario: floatPtr(100000), Ativo: true}, nil)
		m.tabelas.EXPECT().GetByID(gomock.Any(), "tab-1").Return(tabela, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Beneficio) (entities.Beneficio, error) {
				if b.ID == "" {
					t.Fatalf("expected generated id")
				}
				if b.Status != entities.BeneficioStatusRascunho {
					t.Fatalf("expected rascunho, got %s", b.Status)
				}
				if b.RepresentanteID != "user-1" {
					t.Fatalf("expected representante to default to the actor, got %q", b.RepresentanteID)
				}
				if b.TipoBem != tabela.TipoBem || b.ValorCredito != tabela.ValorCredito ||
					b.Parcela != tabela.Parcela || b.PrazoGrupo != tabela.Prazo ||
					b.TaxaAdministracao != tabela.TaxaAdministracao {
					t.Fatalf("snapshot mismatch: %+v", b)
				}
				if b.DataProposta != nil {
					t.Fatalf("rascunho must not carry milestones")
				}
				if b.CreatedAt.IsZero() || !b.CreatedAt.Equal(b.UpdatedAt) {
					t.Fatalf("expected timestamps: %+v", b)
				}
				return b, nil
			},
		)

		res, err := uc.Criar(context.Background(), " user-1 ", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ClienteID != "cli-1" || res.TabelaCreditoID != "tab-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("explicit representante kept", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosCriar).Return(true, nil)
		m.clientes.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Cliente{ID: "cli-1", Ativo: true}, nil)
		m.tabelas.EXPECT().GetByID(gomock.Any(), "tab-1").Return(tabelaAtiva(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Beneficio) (entities.Beneficio, error) {
				if b.RepresentanteID != "rep-7" {
					t.Fatalf("expected rep-7, got %q", b.RepresentanteID)
				}
				return b, nil
			},
		)

		withRep := in
		withRep.RepresentanteID = "rep-7"
		if _, err := uc.Criar(context.Background(), "user-1", withRep); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBeneficioUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newBeneficioUseCaseTest(t)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidBeneficioID) {
			t.Fatalf("expected ErrInvalidBeneficioID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(entities.Beneficio{}, nil)

		_, err := uc.GetByID(context.Background(), "ben-1")
		if !errors.Is(err, ErrBeneficioNotFound) {
			t.Fatalf("expected ErrBeneficioNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(entities.Beneficio{ID: "ben-1"}, nil)

		b, err := uc.GetByID(context.Background(), "ben-1")
		if err != nil || b.ID != "ben-1" {
			t.Fatalf("unexpected result: %v %v", b, err)
		}
	})
}

func TestBeneficioUseCase_List(t *testing.T) {
	t.Run("unknown status filter", func(t *testing.T) {
		uc, _ := newBeneficioUseCaseTest(t)
		_, err := uc.List(context.Background(), interfaces.BeneficioFiltro{Status: "aprovado"})
		if !errors.Is(err, ErrStatusDesconhecido) {
			t.Fatalf("expected ErrStatusDesconhecido, got %v", err)
		}
	})

	t.Run("forwards filter", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		filtro := interfaces.BeneficioFiltro{ClienteID: "cli-1", Status: entities.BeneficioStatusAtivo}
		m.repo.EXPECT().List(gomock.Any(), filtro).Return([]entities.Beneficio{{ID: "ben-1"}}, nil)

		res, err := uc.List(context.Background(), filtro)
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result: %v %v", res, err)
		}
	})
}

func TestBeneficioUseCase_AtualizarStatus(t *testing.T) {
	atual := func(status entities.BeneficioStatus) entities.Beneficio {
		return entities.Beneficio{ID: "ben-1", ClienteID: "cli-1", Status: status}
	}

	t.Run("invalid beneficio id", func(t *testing.T) {
		uc, _ := newBeneficioUseCaseTest(t)
		_, err := uc.AtualizarStatus(context.Background(), " ", "user-1", AtualizarStatusInput{Status: entities.BeneficioStatusProposto})
		if !errors.Is(err, ErrInvalidBeneficioID) {
			t.Fatalf("expected ErrInvalidBeneficioID, got %v", err)
		}
	})

	t.Run("invalid usuario id", func(t *testing.T) {
		uc, _ := newBeneficioUseCaseTest(t)
		_, err := uc.AtualizarStatus(context.Background(), "ben-1", "", AtualizarStatusInput{Status: entities.BeneficioStatusProposto})
		if !errors.Is(err, ErrInvalidUsuarioID) {
			t.Fatalf("expected ErrInvalidUsuarioID, got %v", err)
		}
	})

	t.Run("unknown target status", func(t *testing.T) {
		uc, _ := newBeneficioUseCaseTest(t)
		_, err := uc.AtualizarStatus(context.Background(), "ben-1", "user-1", AtualizarStatusInput{Status: "aprovado"})
		if !errors.Is(err, ErrStatusDesconhecido) {
			t.Fatalf("expected ErrStatusDesconhecido, got %v", err)
		}
	})

	t.Run("beneficio not found", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(entities.Beneficio{}, nil)

		_, err := uc.AtualizarStatus(context.Background(), "ben-1", "user-1", AtualizarStatusInput{Status: entities.BeneficioStatusProposto})
		if !errors.Is(err, ErrBeneficioNotFound) {
			t.Fatalf("expected ErrBeneficioNotFound, got %v", err)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(atual(entities.BeneficioStatusRascunho), nil)

		_, err := uc.AtualizarStatus(context.Background(), "ben-1", "user-1", AtualizarStatusInput{Status: entities.BeneficioStatusAtivo})
		var trErr *TransicaoNaoPermitidaError
		if !errors.As(err, &trErr) {
			t.Fatalf("expected TransicaoNaoPermitidaError, got %v", err)
		}
		if trErr.De != entities.BeneficioStatusRascunho || trErr.Para != entities.BeneficioStatusAtivo {
			t.Fatalf("unexpected error values: %+v", trErr)
		}
	})

	t.Run("terminal status refuses any move", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(atual(entities.BeneficioStatusAtivo), nil)

		_, err := uc.AtualizarStatus(context.Background(), "ben-1", "user-1", AtualizarStatusInput{Status: entities.BeneficioStatusCancelado})
		var trErr *TransicaoNaoPermitidaError
		if !errors.As(err, &trErr) {
			t.Fatalf("expected TransicaoNaoPermitidaError, got %v", err)
		}
	})

	t.Run("permission denied after legality", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(atual(entities.BeneficioStatusRascunho), nil)
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosAlterarStatus).Return(false, nil)

		_, err := uc.AtualizarStatus(context.Background(), "ben-1", "user-1", AtualizarStatusInput{Status: entities.BeneficioStatusProposto})
		if !errors.Is(err, ErrPermissaoNegada) {
			t.Fatalf("expected ErrPermissaoNegada, got %v", err)
		}
	})

	t.Run("rejeitar without motivo", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(atual(entities.BeneficioStatusProposto), nil)
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosAlterarStatus).Return(true, nil)

		_, err := uc.AtualizarStatus(context.Background(), "ben-1", "user-1", AtualizarStatusInput{
			Status:         entities.BeneficioStatusRejeitado,
			MotivoRejeicao: "   ",
		})
		if !errors.Is(err, ErrMotivoObrigatorio) {
			t.Fatalf("expected ErrMotivoObrigatorio, got %v", err)
		}
	})

	t.Run("cancelar without motivo", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(atual(entities.BeneficioStatusAceito), nil)
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosAlterarStatus).Return(true, nil)

		_, err := uc.AtualizarStatus(context.Background(), "ben-1", "user-1", AtualizarStatusInput{
			Status: entities.BeneficioStatusCancelado,
		})
		if !errors.Is(err, ErrMotivoObrigatorio) {
			t.Fatalf("expected ErrMotivoObrigatorio, got %v", err)
		}
	})

	t.Run("advance stamps milestone and records historico", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(atual(entities.BeneficioStatusRascunho), nil)
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosAlterarStatus).Return(true, nil)
		m.repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any(), entities.BeneficioStatusRascunho, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Beneficio, _ entities.BeneficioStatus, _ time.Time, h entities.BeneficioHistorico) (entities.Beneficio, error) {
				if b.Status != entities.BeneficioStatusProposto {
					t.Fatalf("expected proposto, got %s", b.Status)
				}
				if b.DataProposta == nil {
					t.Fatalf("expected data_proposta stamped")
				}
				if h.ID == "" || h.BeneficioID != "ben-1" || h.UsuarioID != "user-1" {
					t.Fatalf("unexpected historico: %+v", h)
				}
				if h.StatusAnterior != entities.BeneficioStatusRascunho || h.StatusNovo != entities.BeneficioStatusProposto {
					t.Fatalf("unexpected historico statuses: %+v", h)
				}
				if h.Acao != entities.HistoricoAcaoAvancou || h.Observacao != "enviado ao cliente" {
					t.Fatalf("unexpected historico fields: %+v", h)
				}
				return b, nil
			},
		)

		res, err := uc.AtualizarStatus(context.Background(), "ben-1", "user-1", AtualizarStatusInput{
			Status:     entities.BeneficioStatusProposto,
			Observacao: " enviado ao cliente ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.BeneficioStatusProposto {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("undo keeps milestone and records voltou", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		when := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
		b := atual(entities.BeneficioStatusProposto)
		b.DataProposta = &when
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(b, nil)
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosAlterarStatus).Return(true, nil)
		m.repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any(), entities.BeneficioStatusProposto, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Beneficio, _ entities.BeneficioStatus, _ time.Time, h entities.BeneficioHistorico) (entities.Beneficio, error) {
				if b.Status != entities.BeneficioStatusRascunho {
					t.Fatalf("expected rascunho, got %s", b.Status)
				}
				if b.DataProposta == nil || !b.DataProposta.Equal(when) {
					t.Fatalf("undo must not clear data_proposta: %+v", b.DataProposta)
				}
				if h.Acao != entities.HistoricoAcaoVoltou {
					t.Fatalf("expected voltou, got %s", h.Acao)
				}
				return b, nil
			},
		)

		if _, err := uc.AtualizarStatus(context.Background(), "ben-1", "user-1", AtualizarStatusInput{Status: entities.BeneficioStatusRascunho}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejeitar fills motivo and observacao", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(atual(entities.BeneficioStatusProposto), nil)
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosAlterarStatus).Return(true, nil)
		m.repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any(), entities.BeneficioStatusProposto, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Beneficio, _ entities.BeneficioStatus, _ time.Time, h entities.BeneficioHistorico) (entities.Beneficio, error) {
				if b.MotivoRejeicao != "renda insuficiente" {
					t.Fatalf("unexpected motivo: %q", b.MotivoRejeicao)
				}
				if b.DataRejeicao == nil {
					t.Fatalf("expected data_rejeicao stamped")
				}
				if h.Acao != entities.HistoricoAcaoRejeitou || h.Observacao != "renda insuficiente" {
					t.Fatalf("unexpected historico: %+v", h)
				}
				return b, nil
			},
		)

		_, err := uc.AtualizarStatus(context.Background(), "ben-1", "user-1", AtualizarStatusInput{
			Status:         entities.BeneficioStatusRejeitado,
			MotivoRejeicao: " renda insuficiente ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cancelar fills motivo and stamps data_cancelamento", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(atual(entities.BeneficioStatusContratoGerado), nil)
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosAlterarStatus).Return(true, nil)
		m.repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any(), entities.BeneficioStatusContratoGerado, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Beneficio, _ entities.BeneficioStatus, _ time.Time, h entities.BeneficioHistorico) (entities.Beneficio, error) {
				if b.MotivoCancelamento != "desistencia" || b.DataCancelamento == nil {
					t.Fatalf("unexpected beneficio: %+v", b)
				}
				if h.Acao != entities.HistoricoAcaoCancelou {
					t.Fatalf("expected cancelou, got %s", h.Acao)
				}
				return b, nil
			},
		)

		_, err := uc.AtualizarStatus(context.Background(), "ben-1", "user-1", AtualizarStatusInput{
			Status:             entities.BeneficioStatusCancelado,
			MotivoCancelamento: "desistencia",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("ativar stamps ativacao and termo signature", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(atual(entities.BeneficioStatusTermoGerado), nil)
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosAlterarStatus).Return(true, nil)
		m.repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any(), entities.BeneficioStatusTermoGerado, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Beneficio, _ entities.BeneficioStatus, _ time.Time, h entities.BeneficioHistorico) (entities.Beneficio, error) {
				if b.DataAtivacao == nil || b.DataAssinaturaTermo == nil {
					t.Fatalf("expected ativacao and assinatura do termo stamped: %+v", b)
				}
				return b, nil
			},
		)

		if _, err := uc.AtualizarStatus(context.Background(), "ben-1", "user-1", AtualizarStatusInput{Status: entities.BeneficioStatusAtivo}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("conditional write matches the loaded snapshot", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		loadedAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
		b := atual(entities.BeneficioStatusProposto)
		b.UpdatedAt = loadedAt
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(b, nil)
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosAlterarStatus).Return(true, nil)
		m.repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any(), entities.BeneficioStatusProposto, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Beneficio, _ entities.BeneficioStatus, updatedAtAnterior time.Time, _ entities.BeneficioHistorico) (entities.Beneficio, error) {
				if !updatedAtAnterior.Equal(loadedAt) {
					t.Fatalf("condition must use the loaded updated_at, got %v", updatedAtAnterior)
				}
				if !b.UpdatedAt.After(loadedAt) {
					t.Fatalf("written copy must carry a fresh updated_at, got %v", b.UpdatedAt)
				}
				return b, nil
			},
		)

		if _, err := uc.AtualizarStatus(context.Background(), "ben-1", "user-1", AtualizarStatusInput{Status: entities.BeneficioStatusAceito}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("concurrent writer loses with conflict", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(atual(entities.BeneficioStatusRascunho), nil)
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosAlterarStatus).Return(true, nil)
		m.repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any(), entities.BeneficioStatusRascunho, gomock.Any(), gomock.Any()).
			Return(entities.Beneficio{}, interfaces.ErrStatusDesatualizado)

		_, err := uc.AtualizarStatus(context.Background(), "ben-1", "user-1", AtualizarStatusInput{Status: entities.BeneficioStatusProposto})
		if !errors.Is(err, ErrConflitoDeStatus) {
			t.Fatalf("expected ErrConflitoDeStatus, got %v", err)
		}
	})

	t.Run("repo error passes through", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(atual(entities.BeneficioStatusRascunho), nil)
		m.gate.EXPECT().CanPerform(gomock.Any(), "user-1", entities.PermissaoBeneficiosAlterarStatus).Return(true, nil)
		m.repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any(), entities.BeneficioStatusRascunho, gomock.Any(), gomock.Any()).
			Return(entities.Beneficio{}, errors.New("db"))

		_, err := uc.AtualizarStatus(context.Background(), "ben-1", "user-1", AtualizarStatusInput{Status: entities.BeneficioStatusProposto})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestBeneficioUseCase_ListHistorico(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newBeneficioUseCaseTest(t)
		_, err := uc.ListHistorico(context.Background(), "")
		if !errors.Is(err, ErrInvalidBeneficioID) {
			t.Fatalf("expected ErrInvalidBeneficioID, got %v", err)
		}
	})

	t.Run("beneficio not found", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(entities.Beneficio{}, nil)

		_, err := uc.ListHistorico(context.Background(), "ben-1")
		if !errors.Is(err, ErrBeneficioNotFound) {
			t.Fatalf("expected ErrBeneficioNotFound, got %v", err)
		}
	})

	t.Run("resolves actor names once per usuario", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(entities.Beneficio{ID: "ben-1"}, nil)
		m.historico.EXPECT().ListByBeneficioID(gomock.Any(), "ben-1").Return([]entities.BeneficioHistorico{
			{ID: "h-3", UsuarioID: "user-2", StatusNovo: entities.BeneficioStatusAceito, Acao: entities.HistoricoAcaoAvancou},
			{ID: "h-2", UsuarioID: "user-1", StatusNovo: entities.BeneficioStatusProposto, Acao: entities.HistoricoAcaoAvancou},
			{ID: "h-1", UsuarioID: "user-1", StatusNovo: entities.BeneficioStatusRascunho, Acao: entities.HistoricoAcaoVoltou},
		}, nil)
		// one lookup per distinct usuario, not per entry
		m.usuarios.EXPECT().GetByID(gomock.Any(), "user-2").Return(entities.Usuario{ID: "user-2", Nome: "Bruna"}, nil)
		m.usuarios.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.Usuario{ID: "user-1", Nome: "Alan"}, nil)

		res, err := uc.ListHistorico(context.Background(), "ben-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(res))
		}
		if res[0].ID != "h-3" || res[0].UsuarioNome != "Bruna" {
			t.Fatalf("unexpected first entry: %+v", res[0])
		}
		if res[1].UsuarioNome != "Alan" || res[2].UsuarioNome != "Alan" {
			t.Fatalf("unexpected names: %+v", res)
		}
	})

	t.Run("removed usuario falls back to the raw id", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(entities.Beneficio{ID: "ben-1"}, nil)
		m.historico.EXPECT().ListByBeneficioID(gomock.Any(), "ben-1").Return([]entities.BeneficioHistorico{
			{ID: "h-1", UsuarioID: "user-gone", StatusNovo: entities.BeneficioStatusProposto, Acao: entities.HistoricoAcaoAvancou},
		}, nil)
		m.usuarios.EXPECT().GetByID(gomock.Any(), "user-gone").Return(entities.Usuario{}, nil)

		res, err := uc.ListHistorico(context.Background(), "ben-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].UsuarioNome != "user-gone" {
			t.Fatalf("expected raw id as fallback name, got %+v", res)
		}
	})

	t.Run("usuario lookup error", func(t *testing.T) {
		uc, m := newBeneficioUseCaseTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ben-1").Return(entities.Beneficio{ID: "ben-1"}, nil)
		m.historico.EXPECT().ListByBeneficioID(gomock.Any(), "ben-1").Return([]entities.BeneficioHistorico{
			{ID: "h-1", UsuarioID: "user-1"},
		}, nil)
		m.usuarios.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.Usuario{}, errors.New("db"))

		_, err := uc.ListHistorico(context.Background(), "ben-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
