package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"freight-app/models"
	"freight-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type PriceVendorController struct {
	DB *gorm.DB
}

func NewPriceVendorController(db *gorm.DB) *PriceVendorController {
	return &PriceVendorController{DB: db}
}

func (c *PriceVendorController) GetAllPriceVendorDetails(ctx *fiber.Ctx) error {
	repo := repositories.NewPriceVendorRepository(c.DB)

	details, err := repo.GetAllDetails()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Price vendor details found", "data": details})
}

func (c *PriceVendorController) CreatePriceVendorDetail(ctx *fiber.Ctx) error {
	var input repositories.PriceVendorDetailInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewPriceVendorRepository(c.DB)
	if err := repo.CreateDetail(input, int(ctx.Locals("userID").(float64))); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Price vendor detail created successfully"})
}

// ============================================================================
// Begin upload price list from excel file
// ============================================================================

type PriceListUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	SkippedCount  int      `json:"skipped_count"`
	ErrorCount    int      `json:"error_count"`
	SkippedItems  []string `json:"skipped_items"`
	ErrorMessages []string `json:"error_messages"`
}

// CreatePriceListFromExcel menerima file excel dengan kolom:
// VENDOR_CODE, ROUTE_CODE, ROUTE_DESCRIPTION, CONTAINER_SIZE,
// CONTAINER_TYPE, SERVICE_TYPE, PORT_CODE, PORT_NAME, PRICE.
// Baris dengan pasangan vendor+rute yang sudah ada dilewati.
func (c *PriceVendorController) CreatePriceListFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "File is required",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Only Excel files (.xlsx, .xls) are allowed",
		})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to open file",
		})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read Excel file",
		})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No sheets found in Excel file",
		})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read rows",
		})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Excel file must contain header and at least one data row",
		})
	}

	result := PriceListUploadResult{
		TotalRows:     len(rows) - 1,
		SkippedItems:  []string{},
		ErrorMessages: []string{},
	}

	userID := int(ctx.Locals("userID").(float64))

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for i, row := range rows[1:] {
		rowNum := i + 2 // header di baris 1

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		if len(row) < 9 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Insufficient columns (expected 9)", rowNum))
			continue
		}

		vendorCode := strings.ToUpper(strings.TrimSpace(row[0]))
		routeCode := strings.ToUpper(strings.TrimSpace(row[1]))
		routeDescription := strings.TrimSpace(row[2])
		containerSize := strings.TrimSpace(row[3])
		containerType := strings.TrimSpace(row[4])
		serviceType := strings.TrimSpace(row[5])
		portCode := strings.ToUpper(strings.TrimSpace(row[6]))
		portName := strings.TrimSpace(row[7])
		priceStr := strings.TrimSpace(row[8])

		if vendorCode == "" || routeCode == "" {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: VENDOR_CODE and ROUTE_CODE are required", rowNum))
			continue
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Invalid price '%s'", rowNum, priceStr))
			continue
		}

		var vendor models.Customer
		if err := tx.Where("code = ? AND type = ?", vendorCode, models.CustomerTypeVendor).First(&vendor).Error; err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Invalid vendor code '%s'", rowNum, vendorCode))
			continue
		}

		var existing models.PriceVendorDetail
		if err := tx.Where("vendor_code = ? AND route_code = ?", vendorCode, routeCode).First(&existing).Error; err == nil {
			result.SkippedCount++
			result.SkippedItems = append(result.SkippedItems, vendorCode+"/"+routeCode)
			continue
		}

		detail := models.PriceVendorDetail{
			VendorCode:       vendorCode,
			RouteCode:        routeCode,
			RouteDescription: routeDescription,
			ContainerSize:    containerSize,
			ContainerType:    containerType,
			ServiceType:      serviceType,
			PortCode:         portCode,
			PortName:         portName,
			Price:            price,
			CreatedBy:        userID,
		}

		if err := tx.Create(&detail).Error; err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Failed to create price vendor detail - %s", rowNum, err.Error()))
			continue
		}

		result.SuccessCount++
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to commit transaction",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Upload completed: %d success, %d skipped, %d errors",
			result.SuccessCount, result.SkippedCount, result.ErrorCount),
		"data": result,
	})
}

// ============================================================================
// End upload price list from excel file
// ============================================================================

func (c *PriceVendorController) ExportPriceList(ctx *fiber.Ctx) error {
	type ExportRequest struct {
		VendorCodes []string `json:"vendor_codes"`
	}

	var req ExportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	var details []models.PriceVendorDetail
	query := c.DB.Model(&models.PriceVendorDetail{})
	if len(req.VendorCodes) > 0 {
		query = query.Where("vendor_code IN ?", req.VendorCodes)
	}

	if err := query.Order("created_at DESC").Find(&details).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch price vendor details",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Price list retrieved successfully",
		"data":    details,
	})
}
