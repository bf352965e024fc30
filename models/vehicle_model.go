package models

import "gorm.io/gorm"

type Vehicle struct {
	gorm.Model
	TruckNumber string `json:"truck_number" gorm:"unique"`
	VendorCode  string `json:"vendor_code" gorm:"index"`
	TruckType   string `json:"truck_type"`
	Status      bool   `json:"status" gorm:"default:true"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
