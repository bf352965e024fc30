package routes

import (
	"freight-app/config"
	"freight-app/controllers"
	"freight-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupJobOrderRoutes(app *fiber.App, db *gorm.DB) {
	jobOrderController := controllers.NewJobOrderController(db)
	api := app.Group(config.MAIN_ROUTES+"/job-orders", middleware.AuthMiddleware)

	api.Get("/", jobOrderController.GetAllJobOrders)
	api.Post("/", jobOrderController.SaveJobOrder)
	api.Get("/can-convert-to-combo", jobOrderController.CanConvertToCombo)
	api.Get("/options/tracking-routes", jobOrderController.GetTrackingRouteOptions)
	api.Get("/options/tracking-vendors", jobOrderController.GetTrackingVendorOptions)
	api.Get("/options/trucks", jobOrderController.GetTruckOptions)
	api.Get("/:number", jobOrderController.GetJobOrderByNumber)
	api.Delete("/:number", jobOrderController.ReviseJobOrder)
	api.Put("/:number/confirm", jobOrderController.ConfirmJobOrder)
	api.Put("/:number/pindah-kapal", jobOrderController.PindahKapalJobOrder)
}
