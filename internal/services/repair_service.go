package services

import (
	"context"
	"errors"
	"fmt"
	"time"

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

type RepairServiceInterface interface {
	List(ctx context.Context) ([]entities.RepairItem, error)
	Report(ctx context.Context, payload dto.CreateRepairReportDTO) (*entities.RepairReport, error)
	Resolve(ctx context.Context, reportID uint64) error
}

type RepairService struct {
	repairRepo    repositories.RepairRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	txManager     repositories.TxManagerInterface
	bus           *eventbus.Bus
	logger        *zap.Logger
}

func NewRepairService(
	repairRepo repositories.RepairRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	txManager repositories.TxManagerInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) RepairServiceInterface {
	return &RepairService{
		repairRepo:    repairRepo,
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		txManager:     txManager,
		bus:           bus,
		logger:        logger,
	}
}

func (s *RepairService) List(ctx context.Context) ([]entities.RepairItem, error) {
	return s.repairRepo.List(ctx)
}

func (s *RepairService) Report(ctx context.Context, payload dto.CreateRepairReportDTO) (*entities.RepairReport, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, uint64(userID))
	if err != nil {
		return nil, err
	}
	reporterName := fmt.Sprintf("%s %s", user.FirstName, user.LastName)

	var created *entities.RepairReport
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		equipment, err := s.equipmentRepo.FindByIDForUpdate(ctx, tx, payload.EquipmentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewNotFoundError("ไม่พบอุปกรณ์", err)
			}
			return err
		}

		if equipment.Status == constants.EquipmentStatusBroken ||
			equipment.Status == constants.EquipmentStatusNeedsRepair {
			return apperrors.NewConflictError("อุปกรณ์นี้ถูกแจ้งซ่อมแล้ว", apperrors.ErrConflict)
		}

		open, err := s.repairRepo.HasOpenReport(ctx, tx, payload.EquipmentID)
		if err != nil {
			return err
		}
		if open {
			return apperrors.NewConflictError("อุปกรณ์นี้มีรายการแจ้งซ่อมค้างอยู่แล้ว", apperrors.ErrConflict)
		}

		created, err = s.repairRepo.Create(ctx, tx, entities.RepairReport{
			EquipmentID:   payload.EquipmentID,
			ReporterName:  reporterName,
			ProblemDetail: payload.ProblemDetail,
			ReportDate:    time.Now(),
			RepairStatus:  constants.RepairStatusPending,
		})
		if err != nil {
			return err
		}

		return s.equipmentRepo.SetStatus(ctx, tx, payload.EquipmentID, constants.EquipmentStatusNeedsRepair)
	})
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.EquipmentChangedEvent{EquipmentID: payload.EquipmentID})
	return created, nil
}

func (s *RepairService) Resolve(ctx context.Context, reportID uint64) error {
	var equipmentID uint64

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		report, err := s.repairRepo.FindByIDForUpdate(ctx, tx, reportID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewNotFoundError("ไม่พบรายการแจ้งซ่อม", err)
			}
			return err
		}

		if report.RepairStatus != constants.RepairStatusPending {
			return apperrors.NewConflictError("รายการนี้ถูกดำเนินการไปแล้ว", apperrors.ErrConflict)
		}

		equipmentID = report.EquipmentID
		if err := s.repairRepo.Resolve(ctx, tx, reportID, time.Now()); err != nil {
			return err
		}

		return s.equipmentRepo.SetStatus(ctx, tx, report.EquipmentID, constants.EquipmentStatusUsable)
	})
	if err != nil {
		return err
	}

	s.bus.Publish(ctx, events.EquipmentChangedEvent{EquipmentID: equipmentID})
	return nil
}
