package repositories

import (
	"errors"
	"time"

	"freight-app/models"

	"gorm.io/gorm"
)

// DocumentRepository mengelola dokumen satelit job order: surat
// perintah muat, surat jalan, berita acara serah terima, dan asuransi.
// Masing-masing opsional dan dibuat terpisah.
type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

type SuratJalanInput struct {
	JobOrderNumber string `json:"job_order_number" validate:"required"`
	CargoName      string `json:"cargo_name" validate:"required"`
	CargoQuantity  int    `json:"cargo_quantity" validate:"required"`
	CargoUnit      string `json:"cargo_unit" validate:"required"`
	Remarks        string `json:"remarks"`
}

// SuratJalanDTO adalah bentuk yang dipakai halaman cetak: nomor surat
// jalan plus seluruh DTO job order untuk blok shipper/rute/consignee.
type SuratJalanDTO struct {
	Number        string      `json:"number"`
	CargoName     string      `json:"cargo_name"`
	CargoQuantity int         `json:"cargo_quantity"`
	CargoUnit     string      `json:"cargo_unit"`
	Remarks       string      `json:"remarks"`
	CreateDate    time.Time   `json:"create_date"`
	JobOrder      JobOrderDTO `json:"job_order"`
}

func (r *DocumentRepository) CreateSuratPerintahMuat(jobOrderNumber string, userID int) (string, error) {
	number, err := GenerateCode(r.db, &models.SuratPerintahMuat{}, "number", "SPM")
	if err != nil {
		return "", err
	}

	spm := models.SuratPerintahMuat{
		Number:         number,
		JobOrderNumber: jobOrderNumber,
		CreatedBy:      userID,
	}
	if err := r.db.Create(&spm).Error; err != nil {
		return "", err
	}
	return number, nil
}

func (r *DocumentRepository) CreateSuratJalan(input SuratJalanInput, userID int) (string, error) {
	number, err := GenerateCode(r.db, &models.SuratJalan{}, "number", "SJ")
	if err != nil {
		return "", err
	}

	suratJalan := models.SuratJalan{
		Number:         number,
		JobOrderNumber: input.JobOrderNumber,
		CargoName:      input.CargoName,
		CargoQuantity:  input.CargoQuantity,
		CargoUnit:      input.CargoUnit,
		Remarks:        input.Remarks,
		CreatedBy:      userID,
	}
	if err := r.db.Create(&suratJalan).Error; err != nil {
		return "", err
	}
	return number, nil
}

// CreateBast membuat berita acara serah terima untuk sebuah surat
// jalan; kuncinya nomor surat jalan, bukan nomor job order.
func (r *DocumentRepository) CreateBast(suratJalanNumber string, userID int) (string, error) {
	number, err := GenerateCode(r.db, &models.BeritaAcaraSerahTerima{}, "number", "BAST")
	if err != nil {
		return "", err
	}

	bast := models.BeritaAcaraSerahTerima{
		Number:           number,
		SuratJalanNumber: suratJalanNumber,
		CreatedBy:        userID,
	}
	if err := r.db.Create(&bast).Error; err != nil {
		return "", err
	}
	return number, nil
}

func (r *DocumentRepository) CreateInsurance(jobOrderNumber string, premi, premiDibayarkan float64, userID int) (string, error) {
	number, err := GenerateCode(r.db, &models.Insurance{}, "number", "INSURANCE")
	if err != nil {
		return "", err
	}

	insurance := models.Insurance{
		Number:          number,
		JobOrderNumber:  jobOrderNumber,
		Premi:           premi,
		PremiDibayarkan: premiDibayarkan,
		CreatedBy:       userID,
	}
	if err := r.db.Create(&insurance).Error; err != nil {
		return "", err
	}
	return number, nil
}

// GetSuratJalan mengembalikan (nil, nil) saat nomor tidak ditemukan.
// Job order yang sudah direvisi menghasilkan blok job order kosong
// ber-default, bukan error.
func (r *DocumentRepository) GetSuratJalan(number string) (*SuratJalanDTO, error) {
	var suratJalan models.SuratJalan
	if err := r.db.Where("number = ?", number).First(&suratJalan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	dto := SuratJalanDTO{
		Number:        suratJalan.Number,
		CargoName:     suratJalan.CargoName,
		CargoQuantity: suratJalan.CargoQuantity,
		CargoUnit:     suratJalan.CargoUnit,
		Remarks:       suratJalan.Remarks,
		CreateDate:    suratJalan.CreatedAt,
	}

	jobOrder, err := NewJobOrderRepository(r.db).Get(suratJalan.JobOrderNumber)
	if err != nil {
		return nil, err
	}
	if jobOrder != nil {
		dto.JobOrder = *jobOrder
	}

	return &dto, nil
}

func (r *DocumentRepository) GetAllSuratJalan() ([]SuratJalanDTO, error) {
	var suratJalans []models.SuratJalan
	if err := r.db.Find(&suratJalans).Error; err != nil {
		return nil, err
	}

	dtos := make([]SuratJalanDTO, 0, len(suratJalans))
	for _, sj := range suratJalans {
		dto, err := r.GetSuratJalan(sj.Number)
		if err != nil {
			return nil, err
		}
		if dto != nil {
			dtos = append(dtos, *dto)
		}
	}
	return dtos, nil
}
