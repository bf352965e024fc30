package controllers

import (
	"freight-app/repositories"
	"freight-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

func (c *CustomerController) GetAllCustomers(ctx *fiber.Ctx) error {
	repo := repositories.NewCustomerRepository(c.DB)

	customers, err := repo.GetAll(ctx.Query("type"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Customers found", "data": customers})
}

func (c *CustomerController) GetCustomerByCode(ctx *fiber.Ctx) error {
	repo := repositories.NewCustomerRepository(c.DB)

	customer, err := repo.Get(ctx.Params("code"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if customer == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Customer found", "data": customer})
}

func (c *CustomerController) CreateCustomer(ctx *fiber.Ctx) error {
	var input repositories.CustomerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !utils.IsValidTelephone(input.Telephone) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid telephone format"})
	}
	if !utils.IsValidFax(input.Fax) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid fax format"})
	}
	if !utils.IsValidEmail(input.Email) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid email format"})
	}

	repo := repositories.NewCustomerRepository(c.DB)
	code, err := repo.Create(input, int(ctx.Locals("userID").(float64)))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Customer created successfully", "data": fiber.Map{"code": code}})
}

func (c *CustomerController) UpdateCustomer(ctx *fiber.Ctx) error {
	var input repositories.CustomerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewCustomerRepository(c.DB)
	if err := repo.Update(ctx.Params("code"), input, int(ctx.Locals("userID").(float64))); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Customer updated successfully"})
}

func (c *CustomerController) SetCustomerStatus(ctx *fiber.Ctx) error {
	var input struct {
		Status bool `json:"status"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewCustomerRepository(c.DB)
	if err := repo.SetStatus(ctx.Params("code"), input.Status, int(ctx.Locals("userID").(float64))); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Customer status updated successfully"})
}

func (c *CustomerController) GetCustomerOptions(ctx *fiber.Ctx) error {
	repo := repositories.NewCustomerRepository(c.DB)

	options, err := repo.GetOptions(ctx.Query("type"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Customer options found", "data": options})
}
