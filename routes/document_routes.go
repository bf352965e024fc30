package routes

import (
	"freight-app/config"
	"freight-app/controllers"
	"freight-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDocumentRoutes(app *fiber.App, db *gorm.DB) {
	documentController := controllers.NewDocumentController(db)
	api := app.Group(config.MAIN_ROUTES+"/documents", middleware.AuthMiddleware)

	api.Post("/spm", documentController.CreateSuratPerintahMuat)
	api.Post("/surat-jalan", documentController.CreateSuratJalan)
	api.Get("/surat-jalan", documentController.GetAllSuratJalan)
	api.Get("/surat-jalan/:number", documentController.GetSuratJalanByNumber)
	api.Post("/bast", documentController.CreateBast)
	api.Post("/insurance", documentController.CreateInsurance)
}
