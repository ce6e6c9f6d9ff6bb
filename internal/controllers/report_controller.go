package controllers

import (
	"fmt"
	"net/http"
	"time"

	"bmu-system/internal/entities"
	"bmu-system/internal/services"
	"bmu-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var inventoryHeaders = []interface{}{
	"ลำดับ", "รหัสครุภัณฑ์", "ชื่ออุปกรณ์", "หมวดหมู่", "หมวดหมู่ย่อย",
	"หน่วย", "สถานะ", "ผู้ใช้งาน", "สถานที่", "เช่า",
}

// ReportController produces the downloadable inventory export.
type ReportController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewReportController(equipmentService services.EquipmentServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{equipmentService: equipmentService, logger: logger}
}

func (c *ReportController) ExportEquipment(ctx echo.Context) error {
	items, err := c.equipmentService.List(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return c.respondWithXLSX(ctx, items)
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []entities.Equipment) error {
	f := excelize.NewFile()
	sheet := "ครุภัณฑ์"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &inventoryHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "J1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := inventoryRow(i+1, item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "C", 25)
	f.SetColWidth(sheet, "D", "E", 18)
	f.SetColWidth(sheet, "H", "H", 25)

	fileName := fmt.Sprintf("equipment_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func inventoryRow(index int, item entities.Equipment) []interface{} {
	leased := "ไม่ใช่"
	if item.IsLeased {
		leased = "ใช่"
	}
	return []interface{}{
		index,
		item.AssetCode,
		item.Name,
		item.Category,
		item.SubCategory.String,
		item.Unit.String,
		item.Status,
		item.AssignedTo.String,
		item.CurrentLocation.String,
		leased,
	}
}
