package models

import (
	"time"

	"gorm.io/gorm"
)

// Ukuran kontainer yang dipakai di seluruh modul pricing.
const (
	ContainerSize20Feet = "20 Feet"
	ContainerSize40HC   = "40 HC"
)

type PriceVendor struct {
	gorm.Model
	VendorCode    string    `json:"vendor_code" gorm:"index"`
	ContainerSize string    `json:"container_size"`
	EffectiveDate time.Time `json:"effective_date"`
	ExpiredDate   time.Time `json:"expired_date"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}

// PriceVendorDetail adalah satu leg rute vendor yang sudah dihargai,
// unik per pasangan (vendor_code, route_code).
type PriceVendorDetail struct {
	gorm.Model
	VendorCode       string  `json:"vendor_code" gorm:"index:idx_vendor_route,unique"`
	RouteCode        string  `json:"route_code" gorm:"index:idx_vendor_route,unique"`
	RouteDescription string  `json:"route_description"`
	ContainerSize    string  `json:"container_size"`
	ContainerType    string  `json:"container_type"`
	ServiceType      string  `json:"service_type"`
	PortCode         string  `json:"port_code"`
	PortName         string  `json:"port_name"`
	Price            float64 `json:"price"`
	CreatedBy        int
	UpdatedBy        int
	DeletedBy        int
}

type Quotation struct {
	gorm.Model
	Number      string `json:"number" gorm:"unique"`
	ServiceType string `json:"service_type"`
	ShipperCode string `json:"shipper_code"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}

type QuotationDetail struct {
	gorm.Model
	QuotationNumber          string `json:"quotation_number" gorm:"index"`
	PortCode                 string `json:"port_code"`
	ContainerSize            string `json:"container_size"`
	ContainerType            string `json:"container_type"`
	TrackingAsalRouteCode    string `json:"tracking_asal_route_code"`
	TrackingAsalVendorCode   string `json:"tracking_asal_vendor_code"`
	TrackingTujuanRouteCode  string `json:"tracking_tujuan_route_code"`
	TrackingTujuanVendorCode string `json:"tracking_tujuan_vendor_code"`
	CreatedBy                int
	UpdatedBy                int
	DeletedBy                int
}

type PriceShipper struct {
	gorm.Model
	QuotationNumber string  `json:"quotation_number" gorm:"index"`
	ContainerSize   string  `json:"container_size"`
	Price           float64 `json:"price"`
	CreatedBy       int
	UpdatedBy       int
	DeletedBy       int
}
