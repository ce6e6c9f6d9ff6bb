package services

import (
	"context"
	"encoding/json"
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

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const pendingCacheTTL = 30 * time.Second

type HistoryServiceInterface interface {
	Active(ctx context.Context) ([]entities.HistoryItem, error)
	Pending(ctx context.Context) ([]entities.HistoryItem, error)
	RequestBorrow(ctx context.Context, equipmentID uint64, payload dto.CreateBorrowDTO) (*entities.BorrowRecord, error)
	RequestReturn(ctx context.Context, recordID uint64, payload dto.ReturnBorrowDTO) error
	Approve(ctx context.Context, recordID uint64) error
	Reject(ctx context.Context, recordID uint64, payload dto.RejectBorrowDTO) error
}

type HistoryService struct {
	historyRepo   repositories.HistoryRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	cacheRepo     repositories.CacheRepositoryInterface
	txManager     repositories.TxManagerInterface
	bus           *eventbus.Bus
	logger        *zap.Logger
}

func NewHistoryService(
	historyRepo repositories.HistoryRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	txManager repositories.TxManagerInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) HistoryServiceInterface {
	return &HistoryService{
		historyRepo:   historyRepo,
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		cacheRepo:     cacheRepo,
		txManager:     txManager,
		bus:           bus,
		logger:        logger,
	}
}

func (s *HistoryService) Active(ctx context.Context) ([]entities.HistoryItem, error) {
	return s.historyRepo.Active(ctx)
}

// Pending serves the approval queue through the cache; a miss falls
// back to the database and repopulates it. Invalidation happens in the
// workflow listener.
func (s *HistoryService) Pending(ctx context.Context) ([]entities.HistoryItem, error) {
	if cached, err := s.cacheRepo.Get(ctx, constants.CacheKeyPendingList); err == nil {
		var items []entities.HistoryItem
		if err := json.Unmarshal([]byte(cached), &items); err == nil {
			return items, nil
		}
	}

	items, err := s.historyRepo.Pending(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(items); err == nil {
		if err := s.cacheRepo.Set(ctx, constants.CacheKeyPendingList, data, pendingCacheTTL); err != nil {
			s.logger.Warn("failed to cache pending list", zap.Error(err))
		}
	}
	return items, nil
}

func (s *HistoryService) RequestBorrow(ctx context.Context, equipmentID uint64, payload dto.CreateBorrowDTO) (*entities.BorrowRecord, error) {
	var created *entities.BorrowRecord

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		equipment, err := s.equipmentRepo.FindByIDForUpdate(ctx, tx, equipmentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewNotFoundError("ไม่พบอุปกรณ์", err)
			}
			return err
		}

		if equipment.Status != constants.EquipmentStatusUsable {
			return apperrors.NewConflictError("อุปกรณ์นี้ไม่พร้อมให้ยืม", apperrors.ErrConflict)
		}

		record := entities.BorrowRecord{
			EquipmentID:  equipmentID,
			BorrowerName: payload.BorrowerName,
			BorrowDate:   time.Now(),
			ReturnDate:   null.TimeFromPtr(payload.ReturnDate),
			Remark:       null.StringFrom(payload.Remark),
			Status:       constants.BorrowStatusPendingBorrow,
		}

		created, err = s.historyRepo.Create(ctx, tx, record)
		if err != nil {
			return err
		}

		// Reserve the asset while the request waits for approval.
		return s.equipmentRepo.SetStatus(ctx, tx, equipmentID, constants.EquipmentStatusBorrowed)
	})
	if err != nil {
		return nil, err
	}

	s.publishChange(ctx, created.ID, equipmentID, created.Status)
	return created, nil
}

func (s *HistoryService) RequestReturn(ctx context.Context, recordID uint64, payload dto.ReturnBorrowDTO) error {
	callerName, err := s.callerFullName(ctx)
	if err != nil {
		return err
	}

	var equipmentID uint64
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		record, err := s.historyRepo.FindByIDForUpdate(ctx, tx, recordID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewNotFoundError("ไม่พบรายการยืม", err)
			}
			return err
		}

		if !constants.CanTransitionBorrow(record.Status, constants.BorrowStatusPendingReturn) {
			return apperrors.NewConflictError("สถานะรายการไม่ถูกต้อง ไม่สามารถแจ้งคืนได้", apperrors.ErrConflict)
		}

		if record.BorrowerName != callerName {
			return apperrors.NewForbiddenError("แจ้งคืนได้เฉพาะผู้ยืมเท่านั้น", apperrors.ErrForbidden)
		}

		equipmentID = record.EquipmentID
		return s.historyRepo.SetReturnRequested(ctx, tx, recordID, payload.ReceivedBy)
	})
	if err != nil {
		return err
	}

	s.publishChange(ctx, recordID, equipmentID, constants.BorrowStatusPendingReturn)
	return nil
}

func (s *HistoryService) Approve(ctx context.Context, recordID uint64) error {
	var equipmentID uint64
	var newStatus string

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		record, err := s.historyRepo.FindByIDForUpdate(ctx, tx, recordID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewNotFoundError("ไม่พบรายการยืม", err)
			}
			return err
		}
		equipmentID = record.EquipmentID

		switch record.Status {
		case constants.BorrowStatusPendingBorrow:
			newStatus = constants.BorrowStatusBorrowed
		case constants.BorrowStatusPendingReturn:
			newStatus = constants.BorrowStatusReturned
		default:
			return apperrors.NewConflictError("ไม่สามารถอนุมัติรายการในสถานะนี้ได้", apperrors.ErrConflict)
		}

		if err := s.historyRepo.SetStatus(ctx, tx, recordID, newStatus); err != nil {
			return err
		}

		// A completed return frees the asset.
		if newStatus == constants.BorrowStatusReturned {
			return s.equipmentRepo.SetStatus(ctx, tx, record.EquipmentID, constants.EquipmentStatusUsable)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publishChange(ctx, recordID, equipmentID, newStatus)
	return nil
}

func (s *HistoryService) Reject(ctx context.Context, recordID uint64, payload dto.RejectBorrowDTO) error {
	var equipmentID uint64

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		record, err := s.historyRepo.FindByIDForUpdate(ctx, tx, recordID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewNotFoundError("ไม่พบรายการยืม", err)
			}
			return err
		}
		equipmentID = record.EquipmentID

		if !constants.CanTransitionBorrow(record.Status, constants.BorrowStatusRejected) {
			return apperrors.NewConflictError("ไม่สามารถปฏิเสธรายการในสถานะนี้ได้", apperrors.ErrConflict)
		}

		if err := s.historyRepo.SetRejected(ctx, tx, recordID, payload.Remark); err != nil {
			return err
		}

		// A rejected borrow request releases the reservation. A rejected
		// return leaves the asset with the borrower.
		if record.Status == constants.BorrowStatusPendingBorrow {
			return s.equipmentRepo.SetStatus(ctx, tx, record.EquipmentID, constants.EquipmentStatusUsable)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publishChange(ctx, recordID, equipmentID, constants.BorrowStatusRejected)
	return nil
}

func (s *HistoryService) callerFullName(ctx context.Context) (string, error) {
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

func (s *HistoryService) publishChange(ctx context.Context, recordID, equipmentID uint64, status string) {
	s.bus.Publish(ctx, events.HistoryChangedEvent{
		RecordID:    recordID,
		EquipmentID: equipmentID,
		NewStatus:   status,
	})
}
