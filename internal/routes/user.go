package routes

import (
	"bmu-system/internal/controllers"
	"bmu-system/internal/services"
	"bmu-system/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runUserRouter(secure *echo.Group, userService services.UserServiceInterface, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	controller := controllers.NewUserController(userService, logger)

	g := secure.Group("/users")

	g.GET("", controller.List)
	g.POST("", controller.Create, authMW.RequireElevated)
	g.DELETE("/:id", controller.Delete, authMW.RequireElevated)
}
