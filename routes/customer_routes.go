package routes

import (
	"freight-app/config"
	"freight-app/controllers"
	"freight-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCustomerRoutes(app *fiber.App, db *gorm.DB) {
	customerController := controllers.NewCustomerController(db)
	api := app.Group(config.MAIN_ROUTES+"/customers", middleware.AuthMiddleware)

	api.Get("/", customerController.GetAllCustomers)
	api.Post("/", customerController.CreateCustomer)
	api.Get("/options", customerController.GetCustomerOptions)
	api.Get("/:code", customerController.GetCustomerByCode)
	api.Put("/:code", customerController.UpdateCustomer)
	api.Put("/:code/status", customerController.SetCustomerStatus)
}
