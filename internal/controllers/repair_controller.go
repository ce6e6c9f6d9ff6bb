package controllers

import (
	"net/http"

	"bmu-system/internal/dto"
	"bmu-system/internal/services"
	apperrors "bmu-system/pkg/errors"
	"bmu-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type RepairController struct {
	repairService services.RepairServiceInterface
	logger        *zap.Logger
}

func NewRepairController(repairService services.RepairServiceInterface, logger *zap.Logger) *RepairController {
	return &RepairController{repairService: repairService, logger: logger}
}

func (c *RepairController) List(ctx echo.Context) error {
	items, err := c.repairService.List(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, items)
}

func (c *RepairController) Report(ctx echo.Context) error {
	var payload dto.CreateRepairReportDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ข้อมูลไม่ถูกต้อง", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.repairService.Report(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (c *RepairController) Resolve(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.repairService.Resolve(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, map[string]string{"message": "บันทึกการซ่อมเรียบร้อยแล้ว"})
}
