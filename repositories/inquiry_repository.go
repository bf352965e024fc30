package repositories

import (
	"errors"
	"time"

	"freight-app/models"

	"gorm.io/gorm"
)

type InquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

type InquiryDetailInput struct {
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
}

type InquiryInput struct {
	SalesCode      string               `json:"sales_code"`
	SalesName      string               `json:"sales_name"`
	Shipper        string               `json:"shipper" validate:"required"`
	Details        []InquiryDetailInput `json:"details" validate:"required,min=1"`
}

// Create membuat inquiry beserta detailnya dalam satu transaksi. Data
// shipper didenormalisasi ke header supaya dokumen cetak tidak ikut
// berubah saat master customer diedit.
func (r *InquiryRepository) Create(input InquiryInput, userID int) (string, error) {
	var number string

	err := r.db.Transaction(func(tx *gorm.DB) error {
		generated, err := GenerateCode(tx, &models.Inquiry{}, "number", "INQUIRY")
		if err != nil {
			return err
		}
		number = generated

		shipperName, shipperAddress, shipperCity := "", "", ""
		shipper, err := NewCustomerRepository(tx).Get(input.Shipper)
		if err != nil {
			return err
		}
		if shipper != nil {
			shipperName = shipper.Name
			shipperAddress = shipper.Address
			shipperCity = shipper.City
		}

		inquiry := models.Inquiry{
			Number:         number,
			SalesCode:      input.SalesCode,
			SalesName:      input.SalesName,
			ShipperCode:    input.Shipper,
			ShipperName:    shipperName,
			ShipperAddress: shipperAddress,
			ShipperCity:    shipperCity,
			CreatedBy:      userID,
		}
		if err := tx.Create(&inquiry).Error; err != nil {
			return err
		}

		for _, d := range input.Details {
			detail := models.InquiryDetail{
				InquiryNumber:     number,
				ShippingCode:      d.ShippingCode,
				ShippingName:      d.ShippingName,
				VesselID:          d.VesselID,
				VesselName:        d.VesselName,
				Voyage:            d.Voyage,
				Etd:               d.Etd,
				Eta:               d.Eta,
				LoadDate:          d.LoadDate,
				DeliveryToCode:    d.DeliveryToCode,
				DeliveryToName:    d.DeliveryToName,
				DeliveryToCity:    d.DeliveryToCity,
				DeliveryToAddress: d.DeliveryToAddress,
				RouteCode:         d.RouteCode,
				RouteDescription:  d.RouteDescription,
				PortCode:          d.PortCode,
				PortName:          d.PortName,
				ContainerSize:     d.ContainerSize,
				ContainerType:     d.ContainerType,
				ServiceType:       d.ServiceType,
				TypeOrder:         d.TypeOrder,
				CreatedBy:         userID,
			}
			if err := tx.Create(&detail).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return number, nil
}

func (r *InquiryRepository) GetDetail(id uint) (*models.InquiryDetail, error) {
	var detail models.InquiryDetail
	if err := r.db.First(&detail, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

// GetOpenDetails mengembalikan detail yang belum direvisi, untuk daftar
// pilihan saat membuat job order.
func (r *InquiryRepository) GetOpenDetails() ([]models.InquiryDetail, error) {
	var details []models.InquiryDetail
	if err := r.db.Where("is_revised = ?", false).Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}
