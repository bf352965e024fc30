package controllers

import (
	"strconv"

	"freight-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type InquiryController struct {
	DB *gorm.DB
}

func NewInquiryController(db *gorm.DB) *InquiryController {
	return &InquiryController{DB: db}
}

func (c *InquiryController) CreateInquiry(ctx *fiber.Ctx) error {
	var input repositories.InquiryInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewInquiryRepository(c.DB)
	number, err := repo.Create(input, int(ctx.Locals("userID").(float64)))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Inquiry created successfully",
		"data":    fiber.Map{"number": number},
	})
}

// GetOpenInquiryDetails mengembalikan detail inquiry yang belum direvisi,
// calon sumber pembuatan job order.
func (c *InquiryController) GetOpenInquiryDetails(ctx *fiber.Ctx) error {
	repo := repositories.NewInquiryRepository(c.DB)

	details, err := repo.GetOpenDetails()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inquiry details found", "data": details})
}

func (c *InquiryController) GetInquiryDetailByID(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid inquiry detail id"})
	}

	repo := repositories.NewInquiryRepository(c.DB)
	detail, err := repo.GetDetail(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if detail == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inquiry detail not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inquiry detail found", "data": detail})
}
