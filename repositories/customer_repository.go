package repositories

import (
	"errors"
	"time"

	"freight-app/models"
	"freight-app/utils"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type CustomerDTO struct {
	Code       string    `json:"code"`
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	GroupCode  string    `json:"group_code"`
	GroupName  string    `json:"group_name"`
	NPWP       string    `json:"npwp"`
	Province   string    `json:"province"`
	City       string    `json:"city"`
	Address    string    `json:"address"`
	Telephone  string    `json:"telephone"`
	Fax        string    `json:"fax"`
	Email      string    `json:"email"`
	Top        int       `json:"top"`
	Currency   string    `json:"currency"`
	CreateDate time.Time `json:"create_date"`
	Status     bool      `json:"status"`
}

type CustomerInput struct {
	Type      string `json:"type" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Group     string `json:"group"`
	NPWP      string `json:"npwp"`
	Province  string `json:"province" validate:"required"`
	City      string `json:"city" validate:"required"`
	Address   string `json:"address" validate:"required"`
	Telephone string `json:"telephone"`
	Fax       string `json:"fax"`
	Email     string `json:"email" validate:"omitempty,email"`
	Top       int    `json:"top"`
	Currency  string `json:"currency" validate:"required"`
}

// mapCustomer merakit DTO customer. Status efektif adalah AND antara
// status customer dan status group-nya; group hanya dilihat untuk
// customer bertipe Shipper, dan group yang tidak ditemukan dianggap
// aktif.
func (r *CustomerRepository) mapCustomer(customer models.Customer) CustomerDTO {
	var group *models.ShipperGroup
	if customer.Type == models.CustomerTypeShipper && customer.GroupCode != "" {
		var sg models.ShipperGroup
		if err := r.db.Where("code = ?", customer.GroupCode).First(&sg).Error; err == nil {
			group = &sg
		}
	}

	groupCode, groupName := "", ""
	groupStatus := true
	if group != nil {
		groupCode = group.Code
		groupName = group.Name
		groupStatus = group.Status
	}

	return CustomerDTO{
		Code:       customer.Code,
		Type:       customer.Type,
		Name:       customer.Name,
		GroupCode:  groupCode,
		GroupName:  groupName,
		NPWP:       customer.NPWP,
		Province:   customer.Province,
		City:       customer.City,
		Address:    customer.Address,
		Telephone:  customer.Telephone,
		Fax:        customer.Fax,
		Email:      customer.Email,
		Top:        customer.Top,
		Currency:   customer.Currency,
		CreateDate: customer.CreatedAt,
		Status:     customer.Status && groupStatus,
	}
}

// Create selalu menurunkan kodenya sendiri lewat GetCustomerCode; kode
// kiriman pemanggil diabaikan.
func (r *CustomerRepository) Create(input CustomerInput, userID int) (string, error) {
	code, err := GetCustomerCode(r.db, input.Type)
	if err != nil {
		return "", err
	}

	customer := models.Customer{
		Code:      code,
		Type:      input.Type,
		Name:      input.Name,
		GroupCode: input.Group,
		NPWP:      input.NPWP,
		Province:  input.Province,
		City:      input.City,
		Address:   input.Address,
		Telephone: input.Telephone,
		Fax:       input.Fax,
		Email:     input.Email,
		Top:       input.Top,
		Currency:  input.Currency,
		Status:    true,
		CreatedBy: userID,
	}

	if err := r.db.Create(&customer).Error; err != nil {
		return "", err
	}
	return code, nil
}

// Update tidak pernah menyentuh kolom code dan type.
func (r *CustomerRepository) Update(code string, input CustomerInput, userID int) error {
	result := r.db.Model(&models.Customer{}).
		Where("code = ?", code).
		Updates(map[string]interface{}{
			"name":       input.Name,
			"group_code": input.Group,
			"npwp":       input.NPWP,
			"province":   input.Province,
			"city":       input.City,
			"address":    input.Address,
			"telephone":  input.Telephone,
			"fax":        input.Fax,
			"email":      input.Email,
			"top":        input.Top,
			"currency":   input.Currency,
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

// Get mengembalikan (nil, nil) saat kode tidak ditemukan.
func (r *CustomerRepository) Get(code string) (*CustomerDTO, error) {
	var customer models.Customer
	if err := r.db.Where("code = ?", code).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	dto := r.mapCustomer(customer)
	return &dto, nil
}

// GetAll menerima filter tipe opsional; string kosong berarti semua tipe.
func (r *CustomerRepository) GetAll(customerType string) ([]CustomerDTO, error) {
	var customers []models.Customer
	query := r.db
	if customerType != "" {
		query = query.Where("type = ?", customerType)
	}
	if err := query.Find(&customers).Error; err != nil {
		return nil, err
	}

	dtos := make([]CustomerDTO, 0, len(customers))
	for _, customer := range customers {
		dtos = append(dtos, r.mapCustomer(customer))
	}
	return dtos, nil
}

func (r *CustomerRepository) SetStatus(code string, status bool, userID int) error {
	result := r.db.Model(&models.Customer{}).
		Where("code = ?", code).
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

// GetOptions mengembalikan pasangan {value,label} untuk customer aktif
// (status efektif, sudah memperhitungkan status group).
func (r *CustomerRepository) GetOptions(customerType string) ([]utils.Option, error) {
	customers, err := r.GetAll(customerType)
	if err != nil {
		return nil, err
	}

	options := make([]utils.Option, 0, len(customers))
	for _, customer := range customers {
		if !customer.Status {
			continue
		}
		options = append(options, utils.Option{
			Value: customer.Code,
			Label: customer.Name,
		})
	}
	return options, nil
}
