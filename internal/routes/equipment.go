package routes

import (
	"bmu-system/internal/controllers"
	"bmu-system/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runEquipmentRouter(secure *echo.Group, svcs Services, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	equipment := controllers.NewEquipmentController(svcs.Equipment, logger)
	history := controllers.NewHistoryController(svcs.History, logger)
	repair := controllers.NewRepairController(svcs.Repair, logger)
	password := controllers.NewPasswordController(svcs.Password, logger)
	dashboard := controllers.NewDashboardController(svcs.Dashboard, logger)
	report := controllers.NewReportController(svcs.Equipment, logger)

	g := secure.Group("/equipment")

	g.GET("", equipment.List)
	g.POST("", equipment.Create, authMW.RequireElevated)
	g.GET("/categories", equipment.Categories)
	g.POST("/bind", equipment.Bind)
	g.GET("/dashboard-summary", dashboard.Summary)
	g.GET("/export", report.ExportEquipment, authMW.RequireElevated)

	g.GET("/history/active", history.Active)
	g.GET("/history/pending", history.Pending, authMW.RequireElevated)
	g.POST("/history/:id/borrow", history.RequestBorrow)
	g.PUT("/history/:id/return", history.RequestReturn)
	g.PUT("/history/:id/approve", history.Approve, authMW.RequireElevated)
	g.PUT("/history/:id/reject", history.Reject, authMW.RequireElevated)

	g.GET("/broken", repair.List)
	g.POST("/broken", repair.Report)
	g.PUT("/broken/:id/resolve", repair.Resolve, authMW.RequireElevated)

	g.GET("/:id/passwords", password.ListForEquipment, authMW.RequireElevated)
	g.POST("/:id/passwords", password.CreateForEquipment, authMW.RequireElevated)
	g.DELETE("/passwords/:id", password.DeleteEquipmentPassword, authMW.RequireElevated)

	g.DELETE("/:id", equipment.Delete, authMW.RequireElevated)
	g.PUT("/:id/status", equipment.UpdateStatus, authMW.RequireElevated)
	g.PUT("/:id/location", equipment.UpdateLocation)
}
