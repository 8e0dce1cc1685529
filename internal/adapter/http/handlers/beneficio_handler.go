package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"consorcio_crm/internal/adapter/http/dto/request"
	"consorcio_crm/internal/adapter/http/dto/response"
	"consorcio_crm/internal/adapter/http/middleware"
	"consorcio_crm/internal/domain/entities"
	"consorcio_crm/internal/usecase"
	"consorcio_crm/internal/usecase/interfaces"
	"consorcio_crm/pkg"
)

var errInvalidBeneficioPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid beneficio payload", http.StatusBadRequest)

// BeneficioHandler exposes the benefício lifecycle over HTTP. Every expected
// domain outcome maps to a typed AppError; only infrastructure faults are
// logged as errors, per the propagation policy.

type BeneficioHandler struct {
	usecase usecase.IBeneficioUseCase
	logger  *zap.Logger
}

func NewBeneficioHandler(uc usecase.IBeneficioUseCase, logger *zap.Logger) *BeneficioHandler {
	return &BeneficioHandler{usecase: uc, logger: logger}
}

func (h *BeneficioHandler) CriarBeneficio(c *gin.Context) {
	var payload request.BeneficioCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBeneficioPayload.HTTPStatus, errInvalidBeneficioPayload.ToHTTPError())
		return
	}

	beneficio, err := h.usecase.Criar(c.Request.Context(), c.GetString(middleware.ContextUsuarioID), usecase.CriarBeneficioInput{
		ClienteID:        payload.ClienteID,
		RepresentanteID:  payload.RepresentanteID,
		ConsultorID:      payload.ConsultorID,
		UnidadeID:        payload.UnidadeID,
		EmpresaID:        payload.EmpresaID,
		TabelaCreditoID:  payload.TabelaCreditoID,
		AdministradoraID: payload.AdministradoraID,
		Observacoes:      payload.Observacoes,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromBeneficio(beneficio))
}

func (h *BeneficioHandler) GetBeneficio(c *gin.Context) {
	beneficio, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBeneficio(beneficio))
}

func (h *BeneficioHandler) ListBeneficios(c *gin.Context) {
	filtro := interfaces.BeneficioFiltro{
		ClienteID: c.Query("cliente_id"),
		Status:    entities.BeneficioStatus(c.Query("status")),
		TipoBem:   entities.TipoBem(c.Query("tipo_bem")),
	}

	beneficios, err := h.usecase.List(c.Request.Context(), filtro)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBeneficios(beneficios))
}

// AtualizarStatus is the PATCH /beneficios/:id/status entry point of the
// workflow engine.
func (h *BeneficioHandler) AtualizarStatus(c *gin.Context) {
	var payload request.BeneficioStatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBeneficioPayload.HTTPStatus, errInvalidBeneficioPayload.ToHTTPError())
		return
	}

	beneficio, err := h.usecase.AtualizarStatus(
		c.Request.Context(),
		c.Param("id"),
		c.GetString(middleware.ContextUsuarioID),
		usecase.AtualizarStatusInput{
			Status:             entities.BeneficioStatus(payload.ResolveStatus()),
			MotivoRejeicao:     payload.MotivoRejeicao,
			MotivoCancelamento: payload.MotivoCancelamento,
			Observacao:         payload.Observacao,
		},
	)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromBeneficio(beneficio))
}

func (h *BeneficioHandler) ListHistorico(c *gin.Context) {
	registros, err := h.usecase.ListHistorico(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromHistoricos(registros))
}

func (h *BeneficioHandler) abortWithError(c *gin.Context, err error) {
	appErr := mapBeneficioError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("beneficio request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapBeneficioError(err error) *pkg.AppError {
	var (
		transicao  *usecase.TransicaoNaoPermitidaError
		capacidade *usecase.CapacidadePagamentoError
	)

	switch {
	case errors.Is(err, usecase.ErrInvalidBeneficioID),
		errors.Is(err, usecase.ErrInvalidClienteID),
		errors.Is(err, usecase.ErrInvalidTabelaID),
		errors.Is(err, usecase.ErrInvalidUsuarioID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBeneficioNotFound):
		return pkg.NewDomainErrorSimple("BENEFICIO_NOT_FOUND", "Beneficio not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClienteNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "Cliente not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTabelaCreditoNotFound):
		return pkg.NewDomainErrorSimple("TABELA_CREDITO_NOT_FOUND", "Tabela de credito not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTabelaCreditoInativa):
		return pkg.NewDomainErrorSimple("TABELA_CREDITO_INATIVA", "Tabela de credito is no longer offered", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrStatusDesconhecido):
		return pkg.NewDomainErrorSimple("STATUS_DESCONHECIDO", "Unknown beneficio status", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMotivoObrigatorio):
		return pkg.NewDomainErrorSimple("MOTIVO_OBRIGATORIO", "Motivo is required to rejeitar or cancelar", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPermissaoNegada):
		return pkg.NewDomainErrorSimple("PERMISSAO_NEGADA", "Usuario is not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrConflitoDeStatus):
		return pkg.NewDomainErrorSimple("CONFLITO_DE_STATUS", "Beneficio was changed by another request, reload and retry", http.StatusConflict)
	case errors.As(err, &transicao):
		return pkg.NewDomainErrorSimple("TRANSICAO_NAO_PERMITIDA", transicao.Error(), http.StatusConflict)
	case errors.As(err, &capacidade):
		return pkg.NewDomainErrorSimple("PARCELA_ACIMA_DA_RENDA", capacidade.Error(), http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
