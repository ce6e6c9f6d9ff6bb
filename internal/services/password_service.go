package services

import (
	"context"
	"errors"

	"bmu-system/internal/dto"
	"bmu-system/internal/entities"
	"bmu-system/internal/repositories"
	apperrors "bmu-system/pkg/errors"

	"go.uber.org/zap"
)

type PasswordServiceInterface interface {
	ListVault(ctx context.Context) ([]entities.VaultEntry, error)
	CreateVaultEntry(ctx context.Context, payload dto.VaultEntryDTO) (*entities.VaultEntry, error)
	UpdateVaultEntry(ctx context.Context, id uint64, payload dto.VaultEntryDTO) (*entities.VaultEntry, error)
	DeleteVaultEntry(ctx context.Context, id uint64) error

	ListForEquipment(ctx context.Context, equipmentID uint64) ([]entities.EquipmentPassword, error)
	CreateForEquipment(ctx context.Context, equipmentID uint64, payload dto.CreateEquipmentPasswordDTO) (*entities.EquipmentPassword, error)
	DeleteEquipmentPassword(ctx context.Context, id uint64) error
}

type PasswordService struct {
	passwordRepo  repositories.PasswordRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewPasswordService(
	passwordRepo repositories.PasswordRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) PasswordServiceInterface {
	return &PasswordService{
		passwordRepo:  passwordRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (s *PasswordService) ListVault(ctx context.Context) ([]entities.VaultEntry, error) {
	return s.passwordRepo.ListVault(ctx)
}

func (s *PasswordService) CreateVaultEntry(ctx context.Context, payload dto.VaultEntryDTO) (*entities.VaultEntry, error) {
	return s.passwordRepo.CreateVaultEntry(ctx, payload)
}

func (s *PasswordService) UpdateVaultEntry(ctx context.Context, id uint64, payload dto.VaultEntryDTO) (*entities.VaultEntry, error) {
	entry, err := s.passwordRepo.UpdateVaultEntry(ctx, id, payload)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("ไม่พบรายการรหัสผ่าน", err)
		}
		return nil, err
	}
	return entry, nil
}

func (s *PasswordService) DeleteVaultEntry(ctx context.Context, id uint64) error {
	if err := s.passwordRepo.DeleteVaultEntry(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("ไม่พบรายการรหัสผ่าน", err)
		}
		return err
	}
	return nil
}

func (s *PasswordService) ListForEquipment(ctx context.Context, equipmentID uint64) ([]entities.EquipmentPassword, error) {
	if _, err := s.equipmentRepo.FindByID(ctx, equipmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("ไม่พบอุปกรณ์", err)
		}
		return nil, err
	}
	return s.passwordRepo.ListForEquipment(ctx, equipmentID)
}

func (s *PasswordService) CreateForEquipment(ctx context.Context, equipmentID uint64, payload dto.CreateEquipmentPasswordDTO) (*entities.EquipmentPassword, error) {
	if _, err := s.equipmentRepo.FindByID(ctx, equipmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("ไม่พบอุปกรณ์", err)
		}
		return nil, err
	}
	return s.passwordRepo.CreateForEquipment(ctx, equipmentID, payload)
}

func (s *PasswordService) DeleteEquipmentPassword(ctx context.Context, id uint64) error {
	if err := s.passwordRepo.DeleteEquipmentPassword(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("ไม่พบรายการรหัสผ่าน", err)
		}
		return err
	}
	return nil
}
