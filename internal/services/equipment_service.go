package services

import (
	"context"
	"errors"
	"fmt"

	"bmu-system/internal/dto"
	"bmu-system/internal/entities"
	"bmu-system/internal/events"
	"bmu-system/internal/repositories"
	"bmu-system/pkg/constants"
	apperrors "bmu-system/pkg/errors"
	"bmu-system/pkg/eventbus"
	"bmu-system/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	List(ctx context.Context) ([]entities.Equipment, error)
	Create(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	Delete(ctx context.Context, id uint64) error
	SetStatus(ctx context.Context, id uint64, status string) error
	SetLocation(ctx context.Context, id uint64, location string) error
	Bind(ctx context.Context, assetCode string) (*entities.Equipment, error)
	Categories(ctx context.Context) ([]string, error)
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	txManager     repositories.TxManagerInterface
	bus           *eventbus.Bus
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	txManager repositories.TxManagerInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		txManager:     txManager,
		bus:           bus,
		logger:        logger,
	}
}

// callerFullName resolves the signed-in user's display name, which is
// what equipment assignment and borrow records store.
func (s *EquipmentService) callerFullName(ctx context.Context) (string, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return "", err
	}
	user, err := s.userRepo.FindByID(ctx, uint64(userID))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s", user.FirstName, user.LastName), nil
}

func (s *EquipmentService) List(ctx context.Context) ([]entities.Equipment, error) {
	return s.equipmentRepo.List(ctx)
}

func (s *EquipmentService) Create(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	if _, err := s.equipmentRepo.FindByAssetCode(ctx, payload.AssetCode); err == nil {
		return nil, apperrors.NewConflictError("รหัสครุภัณฑ์นี้มีอยู่ในระบบแล้ว", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	created, err := s.equipmentRepo.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.EquipmentChangedEvent{EquipmentID: created.ID})
	return created, nil
}

func (s *EquipmentService) Delete(ctx context.Context, id uint64) error {
	equipment, err := s.equipmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("ไม่พบอุปกรณ์", err)
		}
		return err
	}

	if equipment.Status == constants.EquipmentStatusBorrowed {
		return apperrors.NewConflictError("ไม่สามารถลบอุปกรณ์ที่ถูกยืมอยู่ได้", apperrors.ErrConflict)
	}

	if err := s.equipmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(ctx, events.EquipmentChangedEvent{EquipmentID: id})
	return nil
}

func (s *EquipmentService) SetStatus(ctx context.Context, id uint64, status string) error {
	if !constants.IsManualEquipmentStatus(status) {
		return apperrors.NewBadRequestError("สถานะไม่ถูกต้อง", apperrors.ErrBadRequest)
	}

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		equipment, err := s.equipmentRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewNotFoundError("ไม่พบอุปกรณ์", err)
			}
			return err
		}

		// The borrow workflow and the binding flow own these two states.
		if equipment.Status == constants.EquipmentStatusBorrowed ||
			equipment.Status == constants.EquipmentStatusInUse {
			return apperrors.NewConflictError("อุปกรณ์กำลังถูกใช้งานอยู่ ไม่สามารถเปลี่ยนสถานะได้", apperrors.ErrConflict)
		}

		return s.equipmentRepo.SetStatus(ctx, tx, id, status)
	})
	if err != nil {
		return err
	}

	s.bus.Publish(ctx, events.EquipmentChangedEvent{EquipmentID: id})
	return nil
}

func (s *EquipmentService) SetLocation(ctx context.Context, id uint64, location string) error {
	callerName, err := s.callerFullName(ctx)
	if err != nil {
		return err
	}

	equipment, err := s.equipmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("ไม่พบอุปกรณ์", err)
		}
		return err
	}

	if equipment.Status != constants.EquipmentStatusInUse ||
		!equipment.AssignedTo.Valid || equipment.AssignedTo.String != callerName {
		return apperrors.NewForbiddenError("ย้ายได้เฉพาะอุปกรณ์ที่ผูกกับบัญชีของคุณเท่านั้น", apperrors.ErrForbidden)
	}

	return s.equipmentRepo.SetLocation(ctx, id, location)
}

func (s *EquipmentService) Bind(ctx context.Context, assetCode string) (*entities.Equipment, error) {
	callerName, err := s.callerFullName(ctx)
	if err != nil {
		return nil, err
	}

	equipment, err := s.equipmentRepo.FindByAssetCode(ctx, assetCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("ไม่พบรหัสครุภัณฑ์นี้ในระบบ", err)
		}
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		locked, err := s.equipmentRepo.FindByIDForUpdate(ctx, tx, equipment.ID)
		if err != nil {
			return err
		}

		if locked.Status != constants.EquipmentStatusUsable {
			return apperrors.NewConflictError("อุปกรณ์นี้ไม่พร้อมใช้งานหรือถูกผูกไปแล้ว", apperrors.ErrConflict)
		}

		return s.equipmentRepo.Bind(ctx, tx, equipment.ID, callerName)
	})
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.EquipmentChangedEvent{EquipmentID: equipment.ID})
	s.logger.Info("equipment bound",
		zap.Uint64("equipmentID", equipment.ID),
		zap.String("assignedTo", callerName),
	)
	return s.equipmentRepo.FindByID(ctx, equipment.ID)
}

func (s *EquipmentService) Categories(ctx context.Context) ([]string, error) {
	return s.equipmentRepo.Categories(ctx)
}
