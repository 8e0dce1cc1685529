package routes

import (
	"consorcio_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBeneficios     = "/beneficios"
	PathTabelasCredito = "/tabelas-credito"
)

func addBeneficioRoutes(rg *gin.RouterGroup, beneficioHandler *handlers.BeneficioHandler) {
	beneficios := rg.Group(PathBeneficios)
	{
		beneficios.POST("", beneficioHandler.CriarBeneficio)
		beneficios.GET("", beneficioHandler.ListBeneficios)
		beneficios.GET("/:id", beneficioHandler.GetBeneficio)
		beneficios.PATCH("/:id/status", beneficioHandler.AtualizarStatus)
		beneficios.GET("/:id/historico", beneficioHandler.ListHistorico)
	}
}

func addSimulacaoRoutes(rg *gin.RouterGroup, tabelaHandler *handlers.TabelaCreditoHandler) {
	rg.POST(PathBeneficios+"/simular", tabelaHandler.Simular)
}

func addTabelaCreditoRoutes(rg *gin.RouterGroup, tabelaHandler *handlers.TabelaCreditoHandler) {
	tabelas := rg.Group(PathTabelasCredito)
	{
		tabelas.GET("", tabelaHandler.ListTabelas)
	}
}
