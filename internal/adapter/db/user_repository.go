package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/TukaHeba/Task-System/internal/core/domain"
	"github.com/TukaHeba/Task-System/internal/core/ports"
)

const findUserQuery = `SELECT id, name, email, role FROM users WHERE id = ?`

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID    uint64 `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
	Role  string `db:"role"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uint64) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, findUserQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return domain.User{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
		Role:  domain.Role(row.Role),
	}, nil
}
