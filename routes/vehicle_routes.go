package routes

import (
	"freight-app/config"
	"freight-app/controllers"
	"freight-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupVehicleRoutes(app *fiber.App, db *gorm.DB) {
	vehicleController := controllers.NewVehicleController(db)
	api := app.Group(config.MAIN_ROUTES+"/vehicles", middleware.AuthMiddleware)

	api.Get("/", vehicleController.GetAllVehicles)
	api.Post("/", vehicleController.CreateVehicle)
	api.Get("/:truck_number", vehicleController.GetVehicleByTruckNumber)
	api.Put("/:truck_number", vehicleController.UpdateVehicle)
	api.Put("/:truck_number/status", vehicleController.SetVehicleStatus)
}
