package routes

import (
	"bmu-system/internal/controllers"
	"bmu-system/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runAuthRouter(api *echo.Group, authService services.AuthServiceInterface, logger *zap.Logger) {
	controller := controllers.NewAuthController(authService, logger)

	api.POST("/auth/login", controller.Login)
}
