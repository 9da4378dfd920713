package routes

import (
	controller "clientregistro/controllers"
	"clientregistro/monitoring"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
)

func SetupRoutes(app *fiber.App, cc *controller.ClientController, hub *controller.Hub) {
	// API group with request logging
	api := app.Group("/api", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	api.Get("/health", cc.Health)
	api.Get("/catalogos", cc.GetCatalogs)

	// Form controller surface
	api.Get("/formulario", cc.GetForm)
	api.Post("/formulario/reiniciar", cc.ResetForm)

	// Client list and actions
	api.Get("/clientes", cc.GetClients)
	api.Get("/clientes/exportar", cc.ExportClients)
	api.Post("/clientes", cc.SubmitForm)
	api.Post("/clientes/:id/editar", cc.EditClient)
	api.Put("/clientes/estatus/:id", cc.ChangeStatus)
	api.Delete("/clientes/:id", cc.DeleteClient)

	// Refresh hints pushed to attached browser tabs
	app.Get("/ws", websocket.New(controller.HandleRefreshWS(hub)))

	app.Get("/metrics", adaptor.HTTPHandler(monitoring.Handler()))
	app.Get("/", cc.Page)
}
