package services

import (
	"context"
	"errors"

	"bmu-system/internal/dto"
	"bmu-system/internal/repositories"
	apperrors "bmu-system/pkg/errors"
	"bmu-system/pkg/service"
	"bmu-system/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
}

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepo.FindByUsername(ctx, payload.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same message as a wrong password so usernames cannot be probed.
			return nil, apperrors.NewUnauthorizedError("ชื่อผู้ใช้หรือรหัสผ่านไม่ถูกต้อง", apperrors.ErrInvalidCredentials)
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		s.logger.Warn("login failed", zap.String("username", payload.Username))
		return nil, apperrors.NewUnauthorizedError("ชื่อผู้ใช้หรือรหัสผ่านไม่ถูกต้อง", apperrors.ErrInvalidCredentials)
	}

	token, err := s.jwtService.GenerateToken(service.JwtCustomClaim{
		UserID:     int(user.ID),
		Username:   user.Username,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Department: user.Department,
		Role:       user.Role,
	})
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponseDTO{Token: token, User: *user}, nil
}
