package routes

import (
	"freight-app/config"
	"freight-app/controllers"
	"freight-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupShipperGroupRoutes(app *fiber.App, db *gorm.DB) {
	shipperGroupController := controllers.NewShipperGroupController(db)
	api := app.Group(config.MAIN_ROUTES+"/shipper-groups", middleware.AuthMiddleware)

	api.Get("/", shipperGroupController.GetAllShipperGroups)
	api.Post("/", shipperGroupController.CreateShipperGroup)
	api.Get("/:code", shipperGroupController.GetShipperGroupByCode)
	api.Put("/:code", shipperGroupController.UpdateShipperGroup)
	api.Put("/:code/status", shipperGroupController.SetShipperGroupStatus)
}
