package repositories

import (
	"context"
	"time"

	"bmu-system/internal/dto"
	"bmu-system/internal/entities"
	apperrors "bmu-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	vaultTable             = "vault_entries"
	equipmentPasswordTable = "equipment_passwords"
)

type PasswordRepositoryInterface interface {
	ListVault(ctx context.Context) ([]entities.VaultEntry, error)
	CreateVaultEntry(ctx context.Context, payload dto.VaultEntryDTO) (*entities.VaultEntry, error)
	UpdateVaultEntry(ctx context.Context, id uint64, payload dto.VaultEntryDTO) (*entities.VaultEntry, error)
	DeleteVaultEntry(ctx context.Context, id uint64) error

	ListForEquipment(ctx context.Context, equipmentID uint64) ([]entities.EquipmentPassword, error)
	CreateForEquipment(ctx context.Context, equipmentID uint64, payload dto.CreateEquipmentPasswordDTO) (*entities.EquipmentPassword, error)
	DeleteEquipmentPassword(ctx context.Context, id uint64) error
}

type PasswordRepository struct {
	storage *pgxpool.Pool
}

func NewPasswordRepository(storage *pgxpool.Pool) PasswordRepositoryInterface {
	return &PasswordRepository{storage: storage}
}

const vaultReturning = "RETURNING id, title, username, password, details, remark, updated_at"

func (r *PasswordRepository) ListVault(ctx context.Context) ([]entities.VaultEntry, error) {
	query, args, err := sq.Select("id", "title", "username", "password", "details", "remark", "updated_at").
		From(vaultTable).
		OrderBy("title").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[entities.VaultEntry])
}

func (r *PasswordRepository) CreateVaultEntry(ctx context.Context, payload dto.VaultEntryDTO) (*entities.VaultEntry, error) {
	query, args, err := sq.Insert(vaultTable).
		Columns("title", "username", "password", "details", "remark").
		Values(payload.Title, nullIfEmpty(payload.Username), payload.Password,
			nullIfEmpty(payload.Details), nullIfEmpty(payload.Remark)).
		Suffix(vaultReturning).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	entry, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entities.VaultEntry])
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *PasswordRepository) UpdateVaultEntry(ctx context.Context, id uint64, payload dto.VaultEntryDTO) (*entities.VaultEntry, error) {
	query, args, err := sq.Update(vaultTable).
		Set("title", payload.Title).
		Set("username", nullIfEmpty(payload.Username)).
		Set("password", payload.Password).
		Set("details", nullIfEmpty(payload.Details)).
		Set("remark", nullIfEmpty(payload.Remark)).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		Suffix(vaultReturning).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	entry, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entities.VaultEntry])
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *PasswordRepository) DeleteVaultEntry(ctx context.Context, id uint64) error {
	return r.deleteByID(ctx, vaultTable, id)
}

func (r *PasswordRepository) ListForEquipment(ctx context.Context, equipmentID uint64) ([]entities.EquipmentPassword, error) {
	query, args, err := sq.Select("id", "equipment_id", "password", "note", "created_at").
		From(equipmentPasswordTable).
		Where(sq.Eq{"equipment_id": equipmentID}).
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
	return pgx.CollectRows(rows, pgx.RowToStructByName[entities.EquipmentPassword])
}

func (r *PasswordRepository) CreateForEquipment(ctx context.Context, equipmentID uint64, payload dto.CreateEquipmentPasswordDTO) (*entities.EquipmentPassword, error) {
	query, args, err := sq.Insert(equipmentPasswordTable).
		Columns("equipment_id", "password", "note").
		Values(equipmentID, payload.Password, nullIfEmpty(payload.Note)).
		Suffix("RETURNING id, equipment_id, password, note, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	entry, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entities.EquipmentPassword])
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *PasswordRepository) DeleteEquipmentPassword(ctx context.Context, id uint64) error {
	return r.deleteByID(ctx, equipmentPasswordTable, id)
}

func (r *PasswordRepository) deleteByID(ctx context.Context, table string, id uint64) error {
	query, args, err := sq.Delete(table).
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
