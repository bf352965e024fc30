package routes

import (
	"freight-app/config"
	"freight-app/controllers"
	"freight-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)
	api.Post("/refresh", authController.RefreshToken)

	apiLogout := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	apiLogout.Get("/logout", authController.Logout)
}
