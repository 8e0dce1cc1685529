package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"consorcio_crm/internal/adapter/http/handlers/mocks"
	"consorcio_crm/internal/adapter/http/middleware"
	"consorcio_crm/internal/domain/entities"
	"consorcio_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTabelaRouter(t *testing.T) (*gin.Engine, *mocks.MockITabelaCreditoUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockITabelaCreditoUseCase(ctrl)
	h := NewTabelaCreditoHandler(uc, zap.NewNop())

	r := gin.New()
	g := r.Group("/v1", middleware.RequireUsuario())
	g.GET("/tabelas-credito", h.ListTabelas)
	g.POST("/beneficios/simular", h.Simular)
	return r, uc
}

func TestTabelaCreditoHandler_ListTabelas(t *testing.T) {
	t.Run("ok with tipo_bem filter", func(t *testing.T) {
		r, uc := newTabelaRouter(t)
		uc.EXPECT().List(gomock.Any(), entities.TipoBemCarro).Return([]entities.TabelaCredito{
			{ID: "tab-1", Nome: "Carro 80x", TipoBem: entities.TipoBemCarro},
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/tabelas-credito?tipo_bem=carro", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var res []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if len(res) != 1 || res[0]["id"] != "tab-1" {
			t.Fatalf("unexpected body: %v", res)
		}
	})

	t.Run("invalid tipo_bem maps to 422", func(t *testing.T) {
		r, uc := newTabelaRouter(t)
		uc.EXPECT().List(gomock.Any(), entities.TipoBem("barco")).Return(nil, usecase.ErrInvalidTipoBem)

		w := doJSON(r, http.MethodGet, "/v1/tabelas-credito?tipo_bem=barco", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("repo failure maps to 500", func(t *testing.T) {
		r, uc := newTabelaRouter(t)
		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		w := doJSON(r, http.MethodGet, "/v1/tabelas-credito", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestTabelaCreditoHandler_Simular(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newTabelaRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/beneficios/simular", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing tipo_bem", func(t *testing.T) {
		r, _ := newTabelaRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/beneficios/simular", `{"parcela_max":900}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("ok", func(t *testing.T) {
		r, uc := newTabelaRouter(t)
		uc.EXPECT().Simular(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.SimulacaoInput) ([]entities.TabelaCredito, error) {
				if in.TipoBem != entities.TipoBemImovel {
					t.Fatalf("unexpected tipo_bem: %s", in.TipoBem)
				}
				if in.ParcelaMax == nil || *in.ParcelaMax != 1800 {
					t.Fatalf("unexpected parcela_max: %v", in.ParcelaMax)
				}
				return []entities.TabelaCredito{{ID: "tab-1"}}, nil
			},
		)

		w := doJSON(r, http.MethodPost, "/v1/beneficios/simular", `{"tipo_bem":"imovel","parcela_max":1800}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
