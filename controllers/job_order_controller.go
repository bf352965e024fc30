package controllers

import (
	"time"

	"freight-app/repositories"
	"freight-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type JobOrderController struct {
	DB *gorm.DB
}

func NewJobOrderController(db *gorm.DB) *JobOrderController {
	return &JobOrderController{DB: db}
}

func (c *JobOrderController) GetAllJobOrders(ctx *fiber.Ctx) error {
	repo := repositories.NewJobOrderRepository(c.DB)

	jobOrders, err := repo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Job orders found", "data": jobOrders})
}

func (c *JobOrderController) GetJobOrderByNumber(ctx *fiber.Ctx) error {
	number := ctx.Params("number")

	repo := repositories.NewJobOrderRepository(c.DB)
	jobOrder, err := repo.Get(number)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if jobOrder == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job order not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Job order found", "data": jobOrder})
}

type SaveJobOrderRequest struct {
	repositories.JobOrderInput
	IsConvertToCombo bool   `json:"is_convert_to_combo"`
	Number           string `json:"number"`
}

// SaveJobOrder membuat job order baru kalau number kosong, atau memperbarui
// yang sudah ada. Flag is_convert_to_combo memicu konversi harga 40 HC
// menjadi 20 Feet dalam transaksi yang sama.
func (c *JobOrderController) SaveJobOrder(ctx *fiber.Ctx) error {
	var req SaveJobOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(req.JobOrderInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewJobOrderRepository(c.DB)
	userID := int(ctx.Locals("userID").(float64))

	if err := repo.Save(req.JobOrderInput, req.IsConvertToCombo, req.Number, userID); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	message := "Job order updated successfully"
	if req.Number == "" {
		message = "Job order created successfully"
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": message})
}

// ReviseJobOrder menghapus job order dan menandai inquiry detail-nya
// sebagai revisi supaya bisa dibuat ulang.
func (c *JobOrderController) ReviseJobOrder(ctx *fiber.Ctx) error {
	number := ctx.Params("number")

	repo := repositories.NewJobOrderRepository(c.DB)
	userID := int(ctx.Locals("userID").(float64))

	if err := repo.Revise(number, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Job order revised successfully"})
}

type ConfirmJobOrderRequest struct {
	Td     *time.Time `json:"td"`
	Ta     *time.Time `json:"ta"`
	Sandar *time.Time `json:"sandar"`
}

func (c *JobOrderController) ConfirmJobOrder(ctx *fiber.Ctx) error {
	number := ctx.Params("number")

	var req ConfirmJobOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewJobOrderRepository(c.DB)
	userID := int(ctx.Locals("userID").(float64))

	if err := repo.Confirm(number, req.Td, req.Ta, req.Sandar, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Job order confirmed successfully"})
}

type PindahKapalRequest struct {
	ShippingCode string `json:"shipping_code" validate:"required"`
	VesselID     string `json:"vessel_id" validate:"required"`
	Voyage       string `json:"voyage" validate:"required"`
}

func (c *JobOrderController) PindahKapalJobOrder(ctx *fiber.Ctx) error {
	number := ctx.Params("number")

	var req PindahKapalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewJobOrderRepository(c.DB)
	userID := int(ctx.Locals("userID").(float64))

	if err := repo.PindahKapal(number, req.ShippingCode, req.VesselID, req.Voyage, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Job order vessel updated successfully"})
}

// CanConvertToCombo mengecek apakah leg harga vendor+rute masih 40 HC.
func (c *JobOrderController) CanConvertToCombo(ctx *fiber.Ctx) error {
	trackingRoute := ctx.Query("tracking_route")
	trackingVendor := ctx.Query("tracking_vendor")

	if trackingRoute == "" || trackingVendor == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "tracking_route and tracking_vendor are required"})
	}

	repo := repositories.NewJobOrderRepository(c.DB)
	canConvert, err := repo.CanConvertToCombo(trackingRoute, trackingVendor)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"can_convert": canConvert}})
}

func (c *JobOrderController) GetTrackingRouteOptions(ctx *fiber.Ctx) error {
	repo := repositories.NewJobOrderRepository(c.DB)

	options, err := repo.GetTrackingRouteOptions()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.SortOptionsByLabel(options)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Options found", "data": options})
}

func (c *JobOrderController) GetTrackingVendorOptions(ctx *fiber.Ctx) error {
	trackingRoute := ctx.Query("tracking_route")

	repo := repositories.NewJobOrderRepository(c.DB)
	options, err := repo.GetTrackingVendorOptions(trackingRoute)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.SortOptionsByLabel(options)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Options found", "data": options})
}

func (c *JobOrderController) GetTruckOptions(ctx *fiber.Ctx) error {
	trackingVendor := ctx.Query("tracking_vendor")

	repo := repositories.NewJobOrderRepository(c.DB)
	options, err := repo.GetTruckOptions(trackingVendor)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Options found", "data": options})
}
