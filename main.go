package main

import (
	"fmt"
	"log"

	"freight-app/config"
	"freight-app/database"
	"freight-app/idgen"
	"freight-app/migration"
	"freight-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	// Pastikan database ada
	database.EnsureDatabaseExists(config.DBName)

	// Connect to database
	db, err := database.OpenDatabaseConnection(config.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate models
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	// Setup CORS middleware
	config.SetupCORS(app)

	// Setup routes
	routes.SetupAuthRoutes(app, db)
	routes.SetupCustomerRoutes(app, db)
	routes.SetupShipperGroupRoutes(app, db)
	routes.SetupVehicleRoutes(app, db)
	routes.SetupPriceVendorRoutes(app, db)
	routes.SetupInquiryRoutes(app, db)
	routes.SetupJobOrderRoutes(app, db)
	routes.SetupDocumentRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server berjalan di port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
