package controllers

import (
	"strconv"

	apperrors "bmu-system/pkg/errors"

	"github.com/labstack/echo/v4"
)

func parseIDParam(ctx echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewBadRequestError("รหัสรายการไม่ถูกต้อง", err)
	}
	return id, nil
}
