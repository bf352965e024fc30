package routes

import (
	"freight-app/config"
	"freight-app/controllers"
	"freight-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupInquiryRoutes(app *fiber.App, db *gorm.DB) {
	inquiryController := controllers.NewInquiryController(db)
	api := app.Group(config.MAIN_ROUTES+"/inquiries", middleware.AuthMiddleware)

	api.Post("/", inquiryController.CreateInquiry)
	api.Get("/details/open", inquiryController.GetOpenInquiryDetails)
	api.Get("/details/:id", inquiryController.GetInquiryDetailByID)
}
