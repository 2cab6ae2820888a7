package main

import (
	_ "gestion_oficina/docs"
	"gestion_oficina/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Gestion Oficina API
// @version         1.0
// @description     Office management backend: clientes, trabajos, items, pagos, agenda and vencimientos.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.basic BasicAuth

func main() {
	routes.Run()
}
