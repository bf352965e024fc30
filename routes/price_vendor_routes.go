package routes

import (
	"freight-app/config"
	"freight-app/controllers"
	"freight-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPriceVendorRoutes(app *fiber.App, db *gorm.DB) {
	priceVendorController := controllers.NewPriceVendorController(db)
	api := app.Group(config.MAIN_ROUTES+"/price-vendors", middleware.AuthMiddleware)

	api.Get("/", priceVendorController.GetAllPriceVendorDetails)
	api.Post("/", priceVendorController.CreatePriceVendorDetail)
	api.Post("/upload-excel", priceVendorController.CreatePriceListFromExcel)
	api.Post("/export", priceVendorController.ExportPriceList)
}
