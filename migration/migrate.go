package migration

import (
	"freight-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.LoginLog{},
		&models.Customer{},
		&models.ShipperGroup{},
		&models.PriceVendor{},
		&models.PriceVendorDetail{},
		&models.Quotation{},
		&models.QuotationDetail{},
		&models.PriceShipper{},
		&models.Inquiry{},
		&models.InquiryDetail{},
		&models.VesselSchedule{},
		&models.JobOrder{},
		&models.SuratPerintahMuat{},
		&models.SuratJalan{},
		&models.BeritaAcaraSerahTerima{},
		&models.Insurance{},
		&models.Vehicle{},
		&models.FileLog{},
	)
}
