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

type HistoryController struct {
	historyService services.HistoryServiceInterface
	logger         *zap.Logger
}

func NewHistoryController(historyService services.HistoryServiceInterface, logger *zap.Logger) *HistoryController {
	return &HistoryController{historyService: historyService, logger: logger}
}

func (c *HistoryController) Active(ctx echo.Context) error {
	items, err := c.historyService.Active(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, items)
}

func (c *HistoryController) Pending(ctx echo.Context) error {
	items, err := c.historyService.Pending(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, items)
}

func (c *HistoryController) RequestBorrow(ctx echo.Context) error {
	// :id is the equipment being borrowed, not a history record.
	equipmentID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateBorrowDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ข้อมูลไม่ถูกต้อง", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.historyService.RequestBorrow(ctx.Request().Context(), equipmentID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (c *HistoryController) RequestReturn(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.ReturnBorrowDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ข้อมูลไม่ถูกต้อง", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.historyService.RequestReturn(ctx.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, map[string]string{"message": "แจ้งคืนเรียบร้อย รอการอนุมัติ"})
}

func (c *HistoryController) Approve(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.historyService.Approve(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, map[string]string{"message": "อนุมัติเรียบร้อยแล้ว"})
}

func (c *HistoryController) Reject(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.RejectBorrowDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ข้อมูลไม่ถูกต้อง", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.historyService.Reject(ctx.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, map[string]string{"message": "ปฏิเสธรายการเรียบร้อยแล้ว"})
}
