package models

import "gorm.io/gorm"

// CustomerType values disimpan sebagai string di kolom type.
const (
	CustomerTypeShipper   = "Shipper"
	CustomerTypeVendor    = "Vendor"
	CustomerTypeShipping  = "Shipping"
	CustomerTypeConsignee = "Consignee"
)

type Customer struct {
	gorm.Model
	Code      string `json:"code" gorm:"unique"`
	Type      string `json:"type" gorm:"index"`
	Name      string `json:"name"`
	GroupCode string `json:"group_code"`
	NPWP      string `json:"npwp"`
	Province  string `json:"province"`
	City      string `json:"city"`
	Address   string `json:"address"`
	Telephone string `json:"telephone"`
	Fax       string `json:"fax"`
	Email     string `json:"email"`
	Top       int    `json:"top"`
	Currency  string `json:"currency"`
	Status    bool   `json:"status" gorm:"default:true"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

// ShipperGroup mengelompokkan customer bertipe Shipper. Status group ikut
// menentukan status efektif customer di dalamnya.
type ShipperGroup struct {
	gorm.Model
	Code        string `json:"code" gorm:"unique"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      bool   `json:"status" gorm:"default:true"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
