package repositories

import (
	"context"
	"errors"
	"time"

	"bmu-system/internal/entities"
	"bmu-system/pkg/constants"
	apperrors "bmu-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const historyTable = "equipment_history"

var historyColumns = []string{
	"h.id", "h.equipment_id", "h.borrower_name", "h.borrow_date",
	"h.return_date", "h.remark", "h.received_by", "h.status",
}

var historyJoinColumns = []string{
	"e.name AS equipment_name",
	"e.asset_code AS equipment_asset_code",
	"e.category AS equipment_category",
	"e.status AS equipment_status",
	"e.unit AS equipment_unit",
}

type HistoryRepositoryInterface interface {
	Active(ctx context.Context) ([]entities.HistoryItem, error)
	Pending(ctx context.Context) ([]entities.HistoryItem, error)
	PendingCount(ctx context.Context) (int, error)
	FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.BorrowRecord, error)
	Create(ctx context.Context, tx pgx.Tx, record entities.BorrowRecord) (*entities.BorrowRecord, error)
	SetStatus(ctx context.Context, tx pgx.Tx, id uint64, status string) error
	SetReturnRequested(ctx context.Context, tx pgx.Tx, id uint64, receivedBy string) error
	SetRejected(ctx context.Context, tx pgx.Tx, id uint64, remark string) error
	CountBorrowsSince(ctx context.Context, since time.Time) (int, error)
}

type HistoryRepository struct {
	storage *pgxpool.Pool
}

func NewHistoryRepository(storage *pgxpool.Pool) HistoryRepositoryInterface {
	return &HistoryRepository{storage: storage}
}

func (r *HistoryRepository) listJoined(ctx context.Context, pred sq.Sqlizer) ([]entities.HistoryItem, error) {
	columns := append(append([]string{}, historyColumns...), historyJoinColumns...)
	query, args, err := sq.Select(columns...).
		From(historyTable + " h").
		Join("equipment e ON e.id = h.equipment_id").
		Where(pred).
		OrderBy("h.borrow_date DESC", "h.id DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[entities.HistoryItem])
}

// Active returns everything in flight plus recently finished records so
// the borrow page can show outcomes alongside open requests.
func (r *HistoryRepository) Active(ctx context.Context) ([]entities.HistoryItem, error) {
	cutoff := time.Now().AddDate(0, -3, 0)
	return r.listJoined(ctx, sq.Or{
		sq.Eq{"h.status": []string{
			constants.BorrowStatusPendingBorrow,
			constants.BorrowStatusBorrowed,
			constants.BorrowStatusPendingReturn,
		}},
		sq.And{
			sq.Eq{"h.status": constants.FinalBorrowStatuses},
			sq.GtOrEq{"h.borrow_date": cutoff},
		},
	})
}

func (r *HistoryRepository) Pending(ctx context.Context) ([]entities.HistoryItem, error) {
	return r.listJoined(ctx, sq.Eq{"h.status": []string{
		constants.BorrowStatusPendingBorrow,
		constants.BorrowStatusPendingReturn,
	}})
}

func (r *HistoryRepository) PendingCount(ctx context.Context) (int, error) {
	query, args, err := sq.Select("COUNT(*)").
		From(historyTable).
		Where(sq.Eq{"status": []string{
			constants.BorrowStatusPendingBorrow,
			constants.BorrowStatusPendingReturn,
		}}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *HistoryRepository) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.BorrowRecord, error) {
	query, args, err := sq.Select("id", "equipment_id", "borrower_name", "borrow_date",
		"return_date", "remark", "received_by", "status").
		From(historyTable).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entities.BorrowRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *HistoryRepository) Create(ctx context.Context, tx pgx.Tx, record entities.BorrowRecord) (*entities.BorrowRecord, error) {
	query, args, err := sq.Insert(historyTable).
		Columns("equipment_id", "borrower_name", "borrow_date", "return_date", "remark", "status").
		Values(record.EquipmentID, record.BorrowerName, record.BorrowDate,
			record.ReturnDate, record.Remark, record.Status).
		Suffix("RETURNING id, equipment_id, borrower_name, borrow_date, return_date, remark, received_by, status").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entities.BorrowRecord])
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *HistoryRepository) SetStatus(ctx context.Context, tx pgx.Tx, id uint64, status string) error {
	return r.update(ctx, tx, id, sq.Update(historyTable).Set("status", status))
}

func (r *HistoryRepository) SetReturnRequested(ctx context.Context, tx pgx.Tx, id uint64, receivedBy string) error {
	return r.update(ctx, tx, id, sq.Update(historyTable).
		Set("status", constants.BorrowStatusPendingReturn).
		Set("received_by", receivedBy).
		Set("return_date", time.Now()))
}

func (r *HistoryRepository) SetRejected(ctx context.Context, tx pgx.Tx, id uint64, remark string) error {
	return r.update(ctx, tx, id, sq.Update(historyTable).
		Set("status", constants.BorrowStatusRejected).
		Set("remark", remark))
}

func (r *HistoryRepository) update(ctx context.Context, tx pgx.Tx, id uint64, builder sq.UpdateBuilder) error {
	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *HistoryRepository) CountBorrowsSince(ctx context.Context, since time.Time) (int, error) {
	query, args, err := sq.Select("COUNT(*)").
		From(historyTable).
		Where(sq.GtOrEq{"borrow_date": since}).
		Where(sq.NotEq{"status": constants.BorrowStatusRejected}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
