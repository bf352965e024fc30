package controllers

import (
	"freight-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ShipperGroupController struct {
	DB *gorm.DB
}

func NewShipperGroupController(db *gorm.DB) *ShipperGroupController {
	return &ShipperGroupController{DB: db}
}

func (c *ShipperGroupController) GetAllShipperGroups(ctx *fiber.Ctx) error {
	repo := repositories.NewShipperGroupRepository(c.DB)

	groups, err := repo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Shipper groups found", "data": groups})
}

func (c *ShipperGroupController) GetShipperGroupByCode(ctx *fiber.Ctx) error {
	repo := repositories.NewShipperGroupRepository(c.DB)

	group, err := repo.Get(ctx.Params("code"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if group == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shipper group not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Shipper group found", "data": group})
}

func (c *ShipperGroupController) CreateShipperGroup(ctx *fiber.Ctx) error {
	var input repositories.ShipperGroupInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewShipperGroupRepository(c.DB)
	code, err := repo.Create(input, int(ctx.Locals("userID").(float64)))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Shipper group created successfully", "data": fiber.Map{"code": code}})
}

func (c *ShipperGroupController) UpdateShipperGroup(ctx *fiber.Ctx) error {
	var input repositories.ShipperGroupInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewShipperGroupRepository(c.DB)
	if err := repo.Update(ctx.Params("code"), input, int(ctx.Locals("userID").(float64))); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shipper group not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Shipper group updated successfully"})
}

func (c *ShipperGroupController) SetShipperGroupStatus(ctx *fiber.Ctx) error {
	var input struct {
		Status bool `json:"status"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewShipperGroupRepository(c.DB)
	if err := repo.SetStatus(ctx.Params("code"), input.Status, int(ctx.Locals("userID").(float64))); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shipper group not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Shipper group status updated successfully"})
}
