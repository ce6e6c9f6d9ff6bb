package routes

import (
	"bmu-system/internal/controllers"
	"bmu-system/internal/services"
	"bmu-system/pkg/middleware"
	"bmu-system/pkg/service"
	"bmu-system/pkg/websocket"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Services struct {
	Auth      services.AuthServiceInterface
	Equipment services.EquipmentServiceInterface
	History   services.HistoryServiceInterface
	Repair    services.RepairServiceInterface
	Password  services.PasswordServiceInterface
	User      services.UserServiceInterface
	Dashboard services.DashboardServiceInterface
}

// InitRouter wires every controller under /api plus the push socket.
func InitRouter(
	e *echo.Echo,
	svcs Services,
	jwtService service.JWTService,
	hub *websocket.Hub,
	logger *zap.Logger,
) {
	authMW := middleware.NewAuthMiddleware(jwtService, logger)

	api := e.Group("/api")

	runAuthRouter(api, svcs.Auth, logger)

	secure := api.Group("", authMW.Auth)
	runEquipmentRouter(secure, svcs, authMW, logger)
	runPasswordRouter(secure, svcs.Password, logger)
	runUserRouter(secure, svcs.User, authMW, logger)

	wsController := controllers.NewWebSocketController(hub, jwtService, logger)
	e.GET("/ws", wsController.ServeWs)
}
