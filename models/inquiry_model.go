package models

import (
	"time"

	"gorm.io/gorm"
)

type Inquiry struct {
	gorm.Model
	Number         string `json:"number" gorm:"unique"`
	SalesCode      string `json:"sales_code"`
	SalesName      string `json:"sales_name"`
	ShipperCode    string `json:"shipper_code"`
	ShipperName    string `json:"shipper_name"`
	ShipperAddress string `json:"shipper_address"`
	ShipperCity    string `json:"shipper_city"`
	CreatedBy      int
	UpdatedBy      int
	DeletedBy      int
}

// InquiryDetail adalah satu baris order komersial yang dieksekusi oleh
// job order. Setelah job order direvisi, is_revised menjadi true dan
// tidak pernah kembali false.
type InquiryDetail struct {
	gorm.Model
	InquiryNumber     string    `json:"inquiry_number" gorm:"index"`
	ShippingCode      string    `json:"shipping_code"`
	ShippingName      string    `json:"shipping_name"`
	VesselID          string    `json:"vessel_id"`
	VesselName        string    `json:"vessel_name"`
	Voyage            string    `json:"voyage"`
	Etd               time.Time `json:"etd"`
	Eta               time.Time `json:"eta"`
	LoadDate          time.Time `json:"load_date"`
	DeliveryToCode    string    `json:"delivery_to_code"`
	DeliveryToName    string    `json:"delivery_to_name"`
	DeliveryToCity    string    `json:"delivery_to_city"`
	DeliveryToAddress string    `json:"delivery_to_address"`
	RouteCode         string    `json:"route_code"`
	RouteDescription  string    `json:"route_description"`
	PortCode          string    `json:"port_code"`
	PortName          string    `json:"port_name"`
	ContainerSize     string    `json:"container_size"`
	ContainerType     string    `json:"container_type"`
	ServiceType       string    `json:"service_type"`
	TypeOrder         string    `json:"type_order"`
	IsRevised         bool      `json:"is_revised" gorm:"default:false"`
	CreatedBy         int
	UpdatedBy         int
	DeletedBy         int
}

type VesselSchedule struct {
	gorm.Model
	ShippingCode string    `json:"shipping_code" gorm:"index"`
	VesselID     string    `json:"vessel_id"`
	VesselName   string    `json:"vessel_name"`
	Voyage       string    `json:"voyage"`
	Etd          time.Time `json:"etd"`
	Eta          time.Time `json:"eta"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}
