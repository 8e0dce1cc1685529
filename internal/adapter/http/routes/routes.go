package routes

import (
	"context"
	"log"
	"strconv"

	_ "consorcio_crm/docs" // This will be auto-generated
	"consorcio_crm/internal/adapter/http/handlers"
	"consorcio_crm/internal/adapter/http/middleware"
	"consorcio_crm/internal/adapter/permission"
	"consorcio_crm/internal/adapter/persistence/repository"
	"consorcio_crm/internal/infrastructure/config"
	"consorcio_crm/internal/infrastructure/database"
	"consorcio_crm/internal/infrastructure/logger"
	"consorcio_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run wires the whole service together and starts the HTTP server.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	setMiddlewares(router, zlog)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := registerRoutes(router, cfg, zlog); err != nil {
		zlog.Fatal("Failed to wire routes", zap.Error(err))
	}

	zlog.Info("Starting HTTP server", zap.Int("port", cfg.Port))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		zlog.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func registerRoutes(router *gin.Engine, cfg config.Config, zlog *zap.Logger) error {
	ddb, err := database.NewDynamoDBClient(context.Background(), cfg)
	if err != nil {
		return err
	}

	beneficioRepo := repository.NewBeneficioDynamoRepository(ddb)
	historicoRepo := repository.NewHistoricoDynamoRepository(ddb)
	tabelaRepo := repository.NewTabelaCreditoDynamoRepository(ddb)
	clienteRepo := repository.NewClienteDynamoRepository(ddb)
	usuarioRepo := repository.NewUsuarioDynamoRepository(ddb)

	gate := permission.NewPerfilGate(usuarioRepo)

	beneficioUseCase := usecase.NewBeneficioUseCase(beneficioRepo, historicoRepo, clienteRepo, tabelaRepo, usuarioRepo, gate)
	tabelaUseCase := usecase.NewTabelaCreditoUseCase(tabelaRepo)

	beneficioHandler := handlers.NewBeneficioHandler(beneficioUseCase, zlog)
	tabelaHandler := handlers.NewTabelaCreditoHandler(tabelaUseCase, zlog)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Todas as rotas de negócio exigem o usuário atuante no header.
	protected := v1.Group("", middleware.RequireUsuario())
	addBeneficioRoutes(protected, beneficioHandler)
	addSimulacaoRoutes(protected, tabelaHandler)
	addTabelaCreditoRoutes(protected, tabelaHandler)

	return nil
}

func setMiddlewares(router *gin.Engine, zlog *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zlog.Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
