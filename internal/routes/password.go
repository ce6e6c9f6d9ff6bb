package routes

import (
	"bmu-system/internal/controllers"
	"bmu-system/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// The vault is gated by a PIN on the client side; the server only
// requires an authenticated session.
func runPasswordRouter(secure *echo.Group, passwordService services.PasswordServiceInterface, logger *zap.Logger) {
	controller := controllers.NewPasswordController(passwordService, logger)

	g := secure.Group("/passwords")

	g.GET("", controller.ListVault)
	g.POST("", controller.CreateVaultEntry)
	g.PUT("/:id", controller.UpdateVaultEntry)
	g.DELETE("/:id", controller.DeleteVaultEntry)
}
