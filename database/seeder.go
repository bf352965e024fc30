// database/seeder.go
package database

import (
	"log"

	"freight-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedUserMaster(db)
	SeedVesselSchedules(db)
}

func SeedUserMaster(db *gorm.DB) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash default password: %v", err)
	}

	users := []models.User{
		{
			Username: "admin",
			Password: string(hashed),
			Name:     "Administrator",
			Email:    "admin@cel-logistik.co.id",
			Role:     "admin",
		},
	}

	for _, u := range users {
		var existing models.User
		if err := db.Where("username = ?", u.Username).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&u)
			}
		}
	}
}

func SeedVesselSchedules(db *gorm.DB) {
	schedules := []models.VesselSchedule{
		{ShippingCode: "SHIPPING0001", VesselID: "VSL001", VesselName: "KM MERATUS JAYAPURA", Voyage: "001N"},
		{ShippingCode: "SHIPPING0001", VesselID: "VSL002", VesselName: "KM TANTO BERSAMA", Voyage: "014S"},
	}

	for _, s := range schedules {
		var existing models.VesselSchedule
		if err := db.Where("shipping_code = ? AND vessel_id = ? AND voyage = ?",
			s.ShippingCode, s.VesselID, s.Voyage).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&s)
			}
		}
	}
}
