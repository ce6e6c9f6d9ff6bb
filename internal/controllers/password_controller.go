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

// PasswordController serves both the company vault and the per-asset
// credential store.
type PasswordController struct {
	passwordService services.PasswordServiceInterface
	logger          *zap.Logger
}

func NewPasswordController(passwordService services.PasswordServiceInterface, logger *zap.Logger) *PasswordController {
	return &PasswordController{passwordService: passwordService, logger: logger}
}

func (c *PasswordController) ListVault(ctx echo.Context) error {
	entries, err := c.passwordService.ListVault(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (c *PasswordController) CreateVaultEntry(ctx echo.Context) error {
	var payload dto.VaultEntryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ข้อมูลไม่ถูกต้อง", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.passwordService.CreateVaultEntry(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (c *PasswordController) UpdateVaultEntry(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.VaultEntryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ข้อมูลไม่ถูกต้อง", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.passwordService.UpdateVaultEntry(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (c *PasswordController) DeleteVaultEntry(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.passwordService.DeleteVaultEntry(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, map[string]string{"message": "ลบรายการเรียบร้อยแล้ว"})
}

func (c *PasswordController) ListForEquipment(ctx echo.Context) error {
	equipmentID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	entries, err := c.passwordService.ListForEquipment(ctx.Request().Context(), equipmentID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (c *PasswordController) CreateForEquipment(ctx echo.Context) error {
	equipmentID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateEquipmentPasswordDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("ข้อมูลไม่ถูกต้อง", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.passwordService.CreateForEquipment(ctx.Request().Context(), equipmentID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (c *PasswordController) DeleteEquipmentPassword(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.passwordService.DeleteEquipmentPassword(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, map[string]string{"message": "ลบรายการเรียบร้อยแล้ว"})
}
