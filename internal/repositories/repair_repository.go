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

const repairTable = "repair_reports"

type RepairRepositoryInterface interface {
	List(ctx context.Context) ([]entities.RepairItem, error)
	FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.RepairReport, error)
	HasOpenReport(ctx context.Context, tx pgx.Tx, equipmentID uint64) (bool, error)
	Create(ctx context.Context, tx pgx.Tx, report entities.RepairReport) (*entities.RepairReport, error)
	Resolve(ctx context.Context, tx pgx.Tx, id uint64, resolvedAt time.Time) error
}

type RepairRepository struct {
	storage *pgxpool.Pool
}

func NewRepairRepository(storage *pgxpool.Pool) RepairRepositoryInterface {
	return &RepairRepository{storage: storage}
}

func (r *RepairRepository) List(ctx context.Context) ([]entities.RepairItem, error) {
	query, args, err := sq.Select(
		"r.id", "r.equipment_id", "r.reporter_name", "r.problem_detail",
		"r.report_date", "r.repair_status", "r.resolved_date",
		"e.name AS equipment_name",
		"e.asset_code AS equipment_asset_code",
		"e.category AS equipment_category").
		From(repairTable + " r").
		Join("equipment e ON e.id = r.equipment_id").
		OrderBy("r.report_date DESC", "r.id DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[entities.RepairItem])
}

func (r *RepairRepository) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.RepairReport, error) {
	query, args, err := sq.Select("id", "equipment_id", "reporter_name", "problem_detail",
		"report_date", "repair_status", "resolved_date").
		From(repairTable).
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
	report, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entities.RepairReport])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *RepairRepository) HasOpenReport(ctx context.Context, tx pgx.Tx, equipmentID uint64) (bool, error) {
	query, args, err := sq.Select("COUNT(*)").
		From(repairTable).
		Where(sq.Eq{"equipment_id": equipmentID, "repair_status": constants.RepairStatusPending}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *RepairRepository) Create(ctx context.Context, tx pgx.Tx, report entities.RepairReport) (*entities.RepairReport, error) {
	query, args, err := sq.Insert(repairTable).
		Columns("equipment_id", "reporter_name", "problem_detail", "report_date", "repair_status").
		Values(report.EquipmentID, report.ReporterName, report.ProblemDetail,
			report.ReportDate, report.RepairStatus).
		Suffix("RETURNING id, equipment_id, reporter_name, problem_detail, report_date, repair_status, resolved_date").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entities.RepairReport])
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *RepairRepository) Resolve(ctx context.Context, tx pgx.Tx, id uint64, resolvedAt time.Time) error {
	query, args, err := sq.Update(repairTable).
		Set("repair_status", constants.RepairStatusRepaired).
		Set("resolved_date", resolvedAt).
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
