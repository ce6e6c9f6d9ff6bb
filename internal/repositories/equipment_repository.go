package repositories

import (
	"context"
	"errors"
	"time"

	"bmu-system/internal/dto"
	"bmu-system/internal/entities"
	apperrors "bmu-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const equipmentTable = "equipment"

var equipmentColumns = []string{
	"id", "category", "sub_category", "asset_code", "name", "unit",
	"description", "ref_document", "checklist", "is_leased", "status",
	"assigned_to", "assigned_date", "current_location",
	"created_at", "updated_at",
}

type EquipmentRepositoryInterface interface {
	List(ctx context.Context) ([]entities.Equipment, error)
	FindByID(ctx context.Context, id uint64) (*entities.Equipment, error)
	FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error)
	FindByAssetCode(ctx context.Context, assetCode string) (*entities.Equipment, error)
	Create(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	Delete(ctx context.Context, id uint64) error
	SetStatus(ctx context.Context, tx pgx.Tx, id uint64, status string) error
	SetLocation(ctx context.Context, id uint64, location string) error
	Bind(ctx context.Context, tx pgx.Tx, id uint64, assignedTo string) error
	Categories(ctx context.Context) ([]string, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func (r *EquipmentRepository) List(ctx context.Context) ([]entities.Equipment, error) {
	query, args, err := sq.Select(equipmentColumns...).
		From(equipmentTable).
		OrderBy("id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[entities.Equipment])
}

func (r *EquipmentRepository) findOne(ctx context.Context, db querier, pred sq.Sqlizer, suffix string) (*entities.Equipment, error) {
	builder := sq.Select(equipmentColumns...).
		From(equipmentTable).
		Where(pred).
		PlaceholderFormat(sq.Dollar)
	if suffix != "" {
		builder = builder.Suffix(suffix)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	equipment, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entities.Equipment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &equipment, nil
}

func (r *EquipmentRepository) FindByID(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return r.findOne(ctx, r.storage, sq.Eq{"id": id}, "")
}

// FindByIDForUpdate locks the row for the lifetime of the transaction,
// serializing concurrent workflow mutations of the same asset.
func (r *EquipmentRepository) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error) {
	return r.findOne(ctx, tx, sq.Eq{"id": id}, "FOR UPDATE")
}

func (r *EquipmentRepository) FindByAssetCode(ctx context.Context, assetCode string) (*entities.Equipment, error) {
	return r.findOne(ctx, r.storage, sq.Eq{"asset_code": assetCode}, "")
}

func (r *EquipmentRepository) Create(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	query, args, err := sq.Insert(equipmentTable).
		Columns("category", "sub_category", "asset_code", "name", "unit",
			"description", "ref_document", "checklist", "is_leased").
		Values(payload.Category, nullIfEmpty(payload.SubCategory), payload.AssetCode,
			payload.Name, nullIfEmpty(payload.Unit), nullIfEmpty(payload.Description),
			nullIfEmpty(payload.RefDocument), nullIfEmpty(payload.Checklist), payload.IsLeased).
		Suffix("RETURNING " + joinColumns(equipmentColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	equipment, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entities.Equipment])
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id uint64) error {
	query, args, err := sq.Delete(equipmentTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) SetStatus(ctx context.Context, tx pgx.Tx, id uint64, status string) error {
	query, args, err := sq.Update(equipmentTable).
		Set("status", status).
		Set("updated_at", time.Now()).
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

func (r *EquipmentRepository) SetLocation(ctx context.Context, id uint64, location string) error {
	query, args, err := sq.Update(equipmentTable).
		Set("current_location", location).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Bind assigns the asset to a user for day-to-day use.
func (r *EquipmentRepository) Bind(ctx context.Context, tx pgx.Tx, id uint64, assignedTo string) error {
	query, args, err := sq.Update(equipmentTable).
		Set("status", "in_use").
		Set("assigned_to", assignedTo).
		Set("assigned_date", time.Now()).
		Set("current_location", "office").
		Set("updated_at", time.Now()).
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

func (r *EquipmentRepository) Categories(ctx context.Context) ([]string, error) {
	query, args, err := sq.Select("DISTINCT category").
		From(equipmentTable).
		OrderBy("category").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}
