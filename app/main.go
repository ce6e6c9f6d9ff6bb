package main

import (
	"context"
	"net/http"

	"bmu-system/internal/listeners"
	"bmu-system/internal/repositories"
	"bmu-system/internal/routes"
	"bmu-system/internal/services"
	"bmu-system/migrations"
	"bmu-system/pkg/config"
	"bmu-system/pkg/customvalidator"
	"bmu-system/pkg/database/postgresql"
	apperrors "bmu-system/pkg/errors"
	"bmu-system/pkg/eventbus"
	applogger "bmu-system/pkg/logger"
	appmiddleware "bmu-system/pkg/middleware"
	"bmu-system/pkg/service"
	"bmu-system/pkg/utils"
	"bmu-system/pkg/websocket"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "เกิดข้อผิดพลาดภายในระบบ", err)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))

	e.Use(appmiddleware.RequestLogger(logger))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("failed to register custom validations", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	if err := postgresql.Migrate(dbConn, migrations.FS); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)

	hub := websocket.NewHub(logger)
	go hub.Run()

	bus := eventbus.New(logger)

	txManager := repositories.NewTxManager(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	historyRepo := repositories.NewHistoryRepository(dbConn)
	repairRepo := repositories.NewRepairRepository(dbConn)
	passwordRepo := repositories.NewPasswordRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn, logger)

	pendingListener := listeners.NewPendingListener(cacheRepo, hub, logger)
	pendingListener.Register(bus)

	svcs := routes.Services{
		Auth:      services.NewAuthService(userRepo, jwtSvc, logger),
		Equipment: services.NewEquipmentService(equipmentRepo, userRepo, txManager, bus, logger),
		History:   services.NewHistoryService(historyRepo, equipmentRepo, userRepo, cacheRepo, txManager, bus, logger),
		Repair:    services.NewRepairService(repairRepo, equipmentRepo, userRepo, txManager, bus, logger),
		Password:  services.NewPasswordService(passwordRepo, equipmentRepo, logger),
		User:      services.NewUserService(userRepo, logger),
		Dashboard: services.NewDashboardService(dashboardRepo, cacheRepo, logger),
	}

	routes.InitRouter(e, svcs, jwtSvc, hub, logger)

	logger.Info("starting server", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
