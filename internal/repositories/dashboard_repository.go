package repositories

import (
	"context"
	"time"

	"bmu-system/internal/dto"
	"bmu-system/pkg/constants"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type DashboardRepositoryInterface interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

func (r *DashboardRepository) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	summary := &dto.DashboardSummaryDTO{CategoryCounts: []dto.CategoryCount{}}

	monthStart := time.Now()
	monthStart = time.Date(monthStart.Year(), monthStart.Month(), 1, 0, 0, 0, 0, monthStart.Location())

	const query = `
		SELECT
			(SELECT COUNT(*) FROM equipment),
			(SELECT COUNT(*) FROM equipment WHERE status IN ($1, $2)),
			(SELECT COUNT(*) FROM equipment_history WHERE borrow_date >= $3 AND status <> $4)
	`

	if err := r.storage.QueryRow(ctx, query,
		constants.EquipmentStatusBroken,
		constants.EquipmentStatusNeedsRepair,
		monthStart,
		constants.BorrowStatusRejected,
	).Scan(
		&summary.TotalEquipment,
		&summary.BrokenEquipment,
		&summary.BorrowsThisMonth,
	); err != nil {
		return nil, err
	}

	catQuery, catArgs, err := sq.Select("category", "COUNT(*)").
		From("equipment").
		GroupBy("category").
		OrderBy("COUNT(*) DESC", "category").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, catQuery, catArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item dto.CategoryCount
		if err := rows.Scan(&item.Name, &item.Value); err != nil {
			return nil, err
		}
		summary.CategoryCounts = append(summary.CategoryCounts, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}
