package repositories

import (
	"errors"
	"time"

	"freight-app/models"

	"gorm.io/gorm"
)

type ShipperGroupRepository struct {
	db *gorm.DB
}

func NewShipperGroupRepository(db *gorm.DB) *ShipperGroupRepository {
	return &ShipperGroupRepository{db: db}
}

type ShipperGroupDTO struct {
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreateDate  time.Time `json:"create_date"`
	Status      bool      `json:"status"`
}

type ShipperGroupInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func mapShipperGroup(group models.ShipperGroup) ShipperGroupDTO {
	return ShipperGroupDTO{
		Code:        group.Code,
		Name:        group.Name,
		Description: group.Description,
		CreateDate:  group.CreatedAt,
		Status:      group.Status,
	}
}

func (r *ShipperGroupRepository) Create(input ShipperGroupInput, userID int) (string, error) {
	code, err := GenerateCode(r.db, &models.ShipperGroup{}, "code", "GROUP")
	if err != nil {
		return "", err
	}

	group := models.ShipperGroup{
		Code:        code,
		Name:        input.Name,
		Description: input.Description,
		Status:      true,
		CreatedBy:   userID,
	}
	if err := r.db.Create(&group).Error; err != nil {
		return "", err
	}
	return code, nil
}

func (r *ShipperGroupRepository) Update(code string, input ShipperGroupInput, userID int) error {
	result := r.db.Model(&models.ShipperGroup{}).
		Where("code = ?", code).
		Updates(map[string]interface{}{
			"name":        input.Name,
			"description": input.Description,
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

func (r *ShipperGroupRepository) Get(code string) (*ShipperGroupDTO, error) {
	var group models.ShipperGroup
	if err := r.db.Where("code = ?", code).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	dto := mapShipperGroup(group)
	return &dto, nil
}

func (r *ShipperGroupRepository) GetAll() ([]ShipperGroupDTO, error) {
	var groups []models.ShipperGroup
	if err := r.db.Find(&groups).Error; err != nil {
		return nil, err
	}

	dtos := make([]ShipperGroupDTO, 0, len(groups))
	for _, group := range groups {
		dtos = append(dtos, mapShipperGroup(group))
	}
	return dtos, nil
}

// SetStatus menonaktifkan atau mengaktifkan group; status ini ikut
// menurunkan status efektif semua customer Shipper di dalamnya.
func (r *ShipperGroupRepository) SetStatus(code string, status bool, userID int) error {
	result := r.db.Model(&models.ShipperGroup{}).
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
