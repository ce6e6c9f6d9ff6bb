package middleware

import (
	"context"
	"strings"

	"bmu-system/pkg/constants"
	"bmu-system/pkg/contextkeys"
	apperrors "bmu-system/pkg/errors"
	"bmu-system/pkg/service"
	"bmu-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth validates the bearer token and stashes the caller's identity in
// the request context.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("auth: empty Authorization header")
			return utils.ErrorResponse(c, apperrors.NewUnauthorizedError("กรุณาเข้าสู่ระบบ", apperrors.ErrEmptyAuthHeader), m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("auth: malformed Authorization header")
			return utils.ErrorResponse(c, apperrors.NewUnauthorizedError("กรุณาเข้าสู่ระบบ", apperrors.ErrInvalidAuthHeader), m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("auth: token validation failed", zap.Error(err))
			return utils.ErrorResponse(c, apperrors.NewUnauthorizedError("เซสชันหมดอายุ กรุณาเข้าสู่ระบบใหม่", err), m.logger)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, contextkeys.UserRoleKey, claims.Role)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireElevated refuses callers whose role has no management rights.
// Must run after Auth.
func (m *AuthMiddleware) RequireElevated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Request().Context().Value(contextkeys.UserRoleKey).(string)
		if !constants.IsElevatedRole(role) {
			m.logger.Warn("auth: insufficient role", zap.String("role", role), zap.String("path", c.Path()))
			return utils.ErrorResponse(c, apperrors.NewForbiddenError("คุณไม่มีสิทธิ์ดำเนินการนี้", apperrors.ErrForbidden), m.logger)
		}
		return next(c)
	}
}
