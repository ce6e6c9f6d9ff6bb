package repositories

import (
	"context"
	"errors"

	"bmu-system/internal/entities"
	apperrors "bmu-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userTable = "users"

var userColumns = []string{
	"id", "username", "password", "first_name", "last_name",
	"department", "role", "created_at", "updated_at",
}

type UserRepositoryInterface interface {
	List(ctx context.Context) ([]entities.User, error)
	FindByID(ctx context.Context, id uint64) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	Create(ctx context.Context, user entities.User) (*entities.User, error)
	Delete(ctx context.Context, id uint64) error
}

type UserRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

func (r *UserRepository) List(ctx context.Context) ([]entities.User, error) {
	query, args, err := sq.Select(userColumns...).
		From(userTable).
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
	return pgx.CollectRows(rows, pgx.RowToStructByName[entities.User])
}

func (r *UserRepository) findOne(ctx context.Context, pred sq.Sqlizer) (*entities.User, error) {
	query, args, err := sq.Select(userColumns...).
		From(userTable).
		Where(pred).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entities.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"username": username})
}

func (r *UserRepository) Create(ctx context.Context, user entities.User) (*entities.User, error) {
	query, args, err := sq.Insert(userTable).
		Columns("username", "password", "first_name", "last_name", "department", "role").
		Values(user.Username, user.Password, user.FirstName, user.LastName,
			user.Department, user.Role).
		Suffix("RETURNING " + joinColumns(userColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entities.User])
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	query, args, err := sq.Delete(userTable).
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
