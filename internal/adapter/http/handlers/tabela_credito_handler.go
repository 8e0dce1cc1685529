package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"consorcio_crm/internal/adapter/http/dto/request"
	"consorcio_crm/internal/adapter/http/dto/response"
	"consorcio_crm/internal/domain/entities"
	"consorcio_crm/internal/usecase"
	"consorcio_crm/pkg"
)

var errInvalidSimulacaoPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid simulacao payload", http.StatusBadRequest)

// TabelaCreditoHandler serves the read-only credit-table catalog and the
// simulation used during prospecting.

type TabelaCreditoHandler struct {
	usecase usecase.ITabelaCreditoUseCase
	logger  *zap.Logger
}

func NewTabelaCreditoHandler(uc usecase.ITabelaCreditoUseCase, logger *zap.Logger) *TabelaCreditoHandler {
	return &TabelaCreditoHandler{usecase: uc, logger: logger}
}

func (h *TabelaCreditoHandler) ListTabelas(c *gin.Context) {
	tabelas, err := h.usecase.List(c.Request.Context(), entities.TipoBem(c.Query("tipo_bem")))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTabelasCredito(tabelas))
}

func (h *TabelaCreditoHandler) Simular(c *gin.Context) {
	var payload request.SimulacaoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSimulacaoPayload.HTTPStatus, errInvalidSimulacaoPayload.ToHTTPError())
		return
	}

	tabelas, err := h.usecase.Simular(c.Request.Context(), usecase.SimulacaoInput{
		TipoBem:         entities.TipoBem(payload.ResolveTipoBem()),
		ValorCreditoMin: payload.ValorCreditoMin,
		ValorCreditoMax: payload.ValorCreditoMax,
		ParcelaMax:      payload.ParcelaMax,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTabelasCredito(tabelas))
}

func (h *TabelaCreditoHandler) abortWithError(c *gin.Context, err error) {
	appErr := mapTabelaCreditoError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("tabela de credito request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapTabelaCreditoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTipoBem):
		return pkg.NewDomainErrorSimple("TIPO_BEM_INVALIDO", "tipo_bem must be imovel, carro or moto", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
