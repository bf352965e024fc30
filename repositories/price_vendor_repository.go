package repositories

import (
	"errors"

	"freight-app/models"
	"freight-app/utils"

	"gorm.io/gorm"
)

type PriceVendorRepository struct {
	db *gorm.DB
}

func NewPriceVendorRepository(db *gorm.DB) *PriceVendorRepository {
	return &PriceVendorRepository{db: db}
}

type PriceVendorDetailDTO struct {
	VendorCode       string  `json:"vendor_code"`
	VendorName       string  `json:"vendor_name"`
	RouteCode        string  `json:"route_code"`
	RouteDescription string  `json:"route_description"`
	ContainerSize    string  `json:"container_size"`
	ContainerType    string  `json:"container_type"`
	ServiceType      string  `json:"service_type"`
	PortCode         string  `json:"port_code"`
	PortName         string  `json:"port_name"`
	Price            float64 `json:"price"`
}

type PriceVendorDetailInput struct {
	VendorCode       string  `json:"vendor_code" validate:"required"`
	RouteCode        string  `json:"route_code" validate:"required"`
	RouteDescription string  `json:"route_description"`
	ContainerSize    string  `json:"container_size" validate:"required"`
	ContainerType    string  `json:"container_type" validate:"required"`
	ServiceType      string  `json:"service_type" validate:"required"`
	PortCode         string  `json:"port_code" validate:"required"`
	PortName         string  `json:"port_name"`
	Price            float64 `json:"price"`
}

func (r *PriceVendorRepository) mapDetail(detail models.PriceVendorDetail) PriceVendorDetailDTO {
	vendorName := ""
	var vendor models.Customer
	if err := r.db.Where("code = ?", detail.VendorCode).First(&vendor).Error; err == nil {
		vendorName = vendor.Name
	}

	return PriceVendorDetailDTO{
		VendorCode:       detail.VendorCode,
		VendorName:       vendorName,
		RouteCode:        detail.RouteCode,
		RouteDescription: detail.RouteDescription,
		ContainerSize:    detail.ContainerSize,
		ContainerType:    detail.ContainerType,
		ServiceType:      detail.ServiceType,
		PortCode:         detail.PortCode,
		PortName:         detail.PortName,
		Price:            detail.Price,
	}
}

func (r *PriceVendorRepository) CreateDetail(input PriceVendorDetailInput, userID int) error {
	detail := models.PriceVendorDetail{
		VendorCode:       input.VendorCode,
		RouteCode:        input.RouteCode,
		RouteDescription: input.RouteDescription,
		ContainerSize:    input.ContainerSize,
		ContainerType:    input.ContainerType,
		ServiceType:      input.ServiceType,
		PortCode:         input.PortCode,
		PortName:         input.PortName,
		Price:            input.Price,
		CreatedBy:        userID,
	}
	return r.db.Create(&detail).Error
}

func (r *PriceVendorRepository) GetAllDetails() ([]PriceVendorDetailDTO, error) {
	var details []models.PriceVendorDetail
	if err := r.db.Find(&details).Error; err != nil {
		return nil, err
	}

	dtos := make([]PriceVendorDetailDTO, 0, len(details))
	for _, detail := range details {
		dtos = append(dtos, r.mapDetail(detail))
	}
	return dtos, nil
}

// GetDetailByVendorRoute mencari leg harga untuk pasangan vendor+rute
// yang dirujuk job order. Mengembalikan (nil, nil) kalau tidak ada.
func (r *PriceVendorRepository) GetDetailByVendorRoute(vendorCode, routeCode string) (*PriceVendorDetailDTO, error) {
	var detail models.PriceVendorDetail
	err := r.db.Where("vendor_code = ? AND route_code = ?", vendorCode, routeCode).First(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	dto := r.mapDetail(detail)
	return &dto, nil
}

// GetTrackingRouteOptions mengembalikan daftar rute unik dari seluruh
// price list vendor.
func (r *PriceVendorRepository) GetTrackingRouteOptions() ([]utils.Option, error) {
	details, err := r.GetAllDetails()
	if err != nil {
		return nil, err
	}

	options := make([]utils.Option, 0, len(details))
	for _, detail := range details {
		options = append(options, utils.Option{
			Value: detail.RouteCode,
			Label: detail.RouteDescription,
		})
	}
	return utils.UniqueOptions(options), nil
}

// GetTrackingVendorOptions mengembalikan vendor unik yang melayani rute
// yang diberikan.
func (r *PriceVendorRepository) GetTrackingVendorOptions(routeCode string) ([]utils.Option, error) {
	details, err := r.GetAllDetails()
	if err != nil {
		return nil, err
	}

	options := make([]utils.Option, 0, len(details))
	for _, detail := range details {
		if detail.RouteCode != routeCode {
			continue
		}
		options = append(options, utils.Option{
			Value: detail.VendorCode,
			Label: detail.VendorName,
		})
	}
	return utils.UniqueOptions(options), nil
}
