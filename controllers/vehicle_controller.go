package controllers

import (
	"freight-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type VehicleController struct {
	DB *gorm.DB
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{DB: db}
}

func (c *VehicleController) GetAllVehicles(ctx *fiber.Ctx) error {
	repo := repositories.NewVehicleRepository(c.DB)

	vehicles, err := repo.GetAll(ctx.Query("vendor"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vehicles found", "data": vehicles})
}

func (c *VehicleController) GetVehicleByTruckNumber(ctx *fiber.Ctx) error {
	repo := repositories.NewVehicleRepository(c.DB)

	vehicle, err := repo.Get(ctx.Params("truck_number"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if vehicle == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vehicle found", "data": vehicle})
}

func (c *VehicleController) CreateVehicle(ctx *fiber.Ctx) error {
	var input repositories.VehicleInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewVehicleRepository(c.DB)
	truckNumber, err := repo.Create(input, int(ctx.Locals("userID").(float64)))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vehicle created successfully", "data": fiber.Map{"truck_number": truckNumber}})
}

func (c *VehicleController) UpdateVehicle(ctx *fiber.Ctx) error {
	var input repositories.VehicleInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewVehicleRepository(c.DB)
	if err := repo.Update(ctx.Params("truck_number"), input, int(ctx.Locals("userID").(float64))); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vehicle updated successfully"})
}

func (c *VehicleController) SetVehicleStatus(ctx *fiber.Ctx) error {
	var input struct {
		Status bool `json:"status"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewVehicleRepository(c.DB)
	if err := repo.SetStatus(ctx.Params("truck_number"), input.Status, int(ctx.Locals("userID").(float64))); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vehicle status updated successfully"})
}
