package services

import (
	"context"
	"errors"

	"bmu-system/internal/dto"
	"bmu-system/internal/entities"
	"bmu-system/internal/repositories"
	apperrors "bmu-system/pkg/errors"
	"bmu-system/pkg/utils"

	"go.uber.org/zap"
)

type UserServiceInterface interface {
	List(ctx context.Context) ([]entities.User, error)
	Create(ctx context.Context, payload dto.CreateUserDTO) (*entities.User, error)
	Delete(ctx context.Context, id uint64) error
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]entities.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) Create(ctx context.Context, payload dto.CreateUserDTO) (*entities.User, error) {
	if _, err := s.userRepo.FindByUsername(ctx, payload.Username); err == nil {
		return nil, apperrors.NewConflictError("ชื่อผู้ใช้นี้มีอยู่แล้ว", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.userRepo.Create(ctx, entities.User{
		Username:   payload.Username,
		Password:   hashed,
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		Department: payload.Department,
		Role:       payload.Role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", zap.String("username", created.Username), zap.String("role", created.Role))
	return created, nil
}

func (s *UserService) Delete(ctx context.Context, id uint64) error {
	callerID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return err
	}
	if uint64(callerID) == id {
		return apperrors.NewConflictError("ไม่สามารถลบบัญชีของตัวเองได้", apperrors.ErrConflict)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("ไม่พบผู้ใช้", err)
		}
		return err
	}
	return nil
}
