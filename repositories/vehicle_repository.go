package repositories

import (
	"errors"

	"freight-app/models"
	"freight-app/utils"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

type VehicleDTO struct {
	TruckNumber string `json:"truck_number"`
	VendorCode  string `json:"vendor_code"`
	VendorName  string `json:"vendor_name"`
	TruckType   string `json:"truck_type"`
	Status      bool   `json:"status"`
}

type VehicleInput struct {
	TruckNumber string `json:"truck_number" validate:"required"`
	VendorCode  string `json:"vendor_code" validate:"required"`
	TruckType   string `json:"truck_type" validate:"required"`
}

func (r *VehicleRepository) mapVehicle(vehicle models.Vehicle) VehicleDTO {
	vendorName := ""
	var vendor models.Customer
	if err := r.db.Where("code = ?", vehicle.VendorCode).First(&vendor).Error; err == nil {
		vendorName = vendor.Name
	}

	return VehicleDTO{
		TruckNumber: vehicle.TruckNumber,
		VendorCode:  vehicle.VendorCode,
		VendorName:  vendorName,
		TruckType:   vehicle.TruckType,
		Status:      vehicle.Status,
	}
}

// Create memakai nomor polisi truk sebagai kunci bisnis; tidak ada kode
// berurutan untuk kendaraan.
func (r *VehicleRepository) Create(input VehicleInput, userID int) (string, error) {
	vehicle := models.Vehicle{
		TruckNumber: input.TruckNumber,
		VendorCode:  input.VendorCode,
		TruckType:   input.TruckType,
		Status:      true,
		CreatedBy:   userID,
	}
	if err := r.db.Create(&vehicle).Error; err != nil {
		return "", err
	}
	return vehicle.TruckNumber, nil
}

func (r *VehicleRepository) Update(truckNumber string, input VehicleInput, userID int) error {
	result := r.db.Model(&models.Vehicle{}).
		Where("truck_number = ?", truckNumber).
		Updates(map[string]interface{}{
			"vendor_code": input.VendorCode,
			"truck_type":  input.TruckType,
			"updated_by":  userID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *VehicleRepository) Get(truckNumber string) (*VehicleDTO, error) {
	var vehicle models.Vehicle
	if err := r.db.Where("truck_number = ?", truckNumber).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	dto := r.mapVehicle(vehicle)
	return &dto, nil
}

func (r *VehicleRepository) GetAll(vendorCode string) ([]VehicleDTO, error) {
	var vehicles []models.Vehicle
	query := r.db
	if vendorCode != "" {
		query = query.Where("vendor_code = ?", vendorCode)
	}
	if err := query.Find(&vehicles).Error; err != nil {
		return nil, err
	}

	dtos := make([]VehicleDTO, 0, len(vehicles))
	for _, vehicle := range vehicles {
		dtos = append(dtos, r.mapVehicle(vehicle))
	}
	return dtos, nil
}

func (r *VehicleRepository) SetStatus(truckNumber string, status bool, userID int) error {
	result := r.db.Model(&models.Vehicle{}).
		Where("truck_number = ?", truckNumber).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_by": userID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetTruckOptions mengembalikan truk unik milik vendor tracking yang
// dipilih.
func (r *VehicleRepository) GetTruckOptions(vendorCode string) ([]utils.Option, error) {
	vehicles, err := r.GetAll(vendorCode)
	if err != nil {
		return nil, err
	}

	options := make([]utils.Option, 0, len(vehicles))
	for _, vehicle := range vehicles {
		options = append(options, utils.Option{
			Value: vehicle.TruckNumber,
			Label: vehicle.TruckNumber,
		})
	}
	return utils.UniqueOptions(options), nil
}
