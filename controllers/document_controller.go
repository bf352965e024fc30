package controllers

import (
	"freight-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DocumentController struct {
	DB *gorm.DB
}

func NewDocumentController(db *gorm.DB) *DocumentController {
	return &DocumentController{DB: db}
}

type CreateSpmRequest struct {
	JobOrderNumber string `json:"job_order_number" validate:"required"`
}

func (c *DocumentController) CreateSuratPerintahMuat(ctx *fiber.Ctx) error {
	var req CreateSpmRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewDocumentRepository(c.DB)
	number, err := repo.CreateSuratPerintahMuat(req.JobOrderNumber, int(ctx.Locals("userID").(float64)))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Surat perintah muat created successfully",
		"data":    fiber.Map{"number": number},
	})
}

func (c *DocumentController) CreateSuratJalan(ctx *fiber.Ctx) error {
	var input repositories.SuratJalanInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewDocumentRepository(c.DB)
	number, err := repo.CreateSuratJalan(input, int(ctx.Locals("userID").(float64)))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Surat jalan created successfully",
		"data":    fiber.Map{"number": number},
	})
}

func (c *DocumentController) GetAllSuratJalan(ctx *fiber.Ctx) error {
	repo := repositories.NewDocumentRepository(c.DB)

	suratJalans, err := repo.GetAllSuratJalan()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Surat jalan found", "data": suratJalans})
}

// GetSuratJalanByNumber mengembalikan bentuk siap cetak: surat jalan
// plus seluruh DTO job order-nya.
func (c *DocumentController) GetSuratJalanByNumber(ctx *fiber.Ctx) error {
	number := ctx.Params("number")

	repo := repositories.NewDocumentRepository(c.DB)
	suratJalan, err := repo.GetSuratJalan(number)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if suratJalan == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Surat jalan not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Surat jalan found", "data": suratJalan})
}

type CreateBastRequest struct {
	SuratJalanNumber string `json:"surat_jalan_number" validate:"required"`
}

func (c *DocumentController) CreateBast(ctx *fiber.Ctx) error {
	var req CreateBastRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewDocumentRepository(c.DB)
	number, err := repo.CreateBast(req.SuratJalanNumber, int(ctx.Locals("userID").(float64)))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Berita acara serah terima created successfully",
		"data":    fiber.Map{"number": number},
	})
}

type CreateInsuranceRequest struct {
	JobOrderNumber  string  `json:"job_order_number" validate:"required"`
	Premi           float64 `json:"premi"`
	PremiDibayarkan float64 `json:"premi_dibayarkan"`
}

func (c *DocumentController) CreateInsurance(ctx *fiber.Ctx) error {
	var req CreateInsuranceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewDocumentRepository(c.DB)
	number, err := repo.CreateInsurance(req.JobOrderNumber, req.Premi, req.PremiDibayarkan, int(ctx.Locals("userID").(float64)))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Insurance created successfully",
		"data":    fiber.Map{"number": number},
	})
}
