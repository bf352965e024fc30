package models

import (
	"time"

	"gorm.io/gorm"
)

type JobOrder struct {
	gorm.Model
	Number             string     `json:"number" gorm:"unique"`
	InquiryDetailID    uint       `json:"inquiry_detail_id" gorm:"index"`
	RoNumber           string     `json:"ro_number"`
	ConsigneeCode      string     `json:"consignee_code"`
	StuffingDate       time.Time  `json:"stuffing_date"`
	TrackingRouteCode  string     `json:"tracking_route_code"`
	TrackingVendorCode string     `json:"tracking_vendor_code"`
	TruckNumber        string     `json:"truck_number"`
	DriverName         string     `json:"driver_name"`
	DriverPhoneNumber  string     `json:"driver_phone_number"`
	ContainerNumber1   string     `json:"container_number1"`
	SealNumber1        string     `json:"seal_number1"`
	ContainerNumber2   *string    `json:"container_number2"`
	SealNumber2        *string    `json:"seal_number2"`
	Td                 *time.Time `json:"td"`
	Ta                 *time.Time `json:"ta"`
	Sandar             *time.Time `json:"sandar"`
	CreatedBy          int
	UpdatedBy          int
	DeletedBy          int
}

// Dokumen satelit: masing-masing opsional, dibuat terpisah, menunjuk
// job order lewat nomor bisnisnya (BAST lewat nomor surat jalan).

type SuratPerintahMuat struct {
	gorm.Model
	Number         string `json:"number" gorm:"unique"`
	JobOrderNumber string `json:"job_order_number" gorm:"index"`
	CreatedBy      int
	UpdatedBy      int
	DeletedBy      int
}

type SuratJalan struct {
	gorm.Model
	Number         string `json:"number" gorm:"unique"`
	JobOrderNumber string `json:"job_order_number" gorm:"index"`
	CargoName      string `json:"cargo_name"`
	CargoQuantity  int    `json:"cargo_quantity"`
	CargoUnit      string `json:"cargo_unit"`
	Remarks        string `json:"remarks"`
	CreatedBy      int
	UpdatedBy      int
	DeletedBy      int
}

type BeritaAcaraSerahTerima struct {
	gorm.Model
	Number           string `json:"number" gorm:"unique"`
	SuratJalanNumber string `json:"surat_jalan_number" gorm:"index"`
	CreatedBy        int
	UpdatedBy        int
	DeletedBy        int
}

type Insurance struct {
	gorm.Model
	Number          string  `json:"number" gorm:"unique"`
	JobOrderNumber  string  `json:"job_order_number" gorm:"index"`
	Premi           float64 `json:"premi"`
	PremiDibayarkan float64 `json:"premi_dibayarkan"`
	CreatedBy       int
	UpdatedBy       int
	DeletedBy       int
}
