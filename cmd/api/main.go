package main

import (
	_ "consorcio_crm/docs"
	"consorcio_crm/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Consórcio CRM API
// @version         1.0
// @description     CRM de benefícios de consórcio (fluxo de status + histórico) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UsuarioID
// @in header
// @name X-Usuario-ID
// @description Identificador do usuário atuante, resolvido pelo gateway.

func main() {
	routes.Run()
}
