package users

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/chatline-go/apperror"
	"github.com/user/chatline-go/auth"
)

// PostgresUserDirectory implements UserDirectory on a pgx connection pool.
type PostgresUserDirectory struct {
	db *pgxpool.Pool
}

// NewPostgresUserDirectory creates a PostgresUserDirectory.
func NewPostgresUserDirectory(db *pgxpool.Pool) *PostgresUserDirectory {
	return &PostgresUserDirectory{db: db}
}

func (d *PostgresUserDirectory) ListUsersExcept(ctx context.Context, id uuid.UUID) ([]auth.User, error) {
	query := `SELECT id, email, full_name, profile_pic, created_at
	          FROM users WHERE id <> $1
	          ORDER BY created_at DESC`
	rows, err := d.db.Query(ctx, query, id)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list users", err)
	}
	defer rows.Close()

	out := make([]auth.User, 0)
	for rows.Next() {
		var u auth.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &u.ProfilePic, &u.CreatedAt); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan user", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read users", err)
	}
	return out, nil
}

func (d *PostgresUserDirectory) UpdateProfilePic(ctx context.Context, id uuid.UUID, url string) (*auth.User, error) {
	query := `UPDATE users SET profile_pic = $1
	          WHERE id = $2
	          RETURNING id, email, full_name, profile_pic, created_at`
	var u auth.User
	err := d.db.QueryRow(ctx, query, url, id).Scan(
		&u.ID, &u.Email, &u.FullName, &u.ProfilePic, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to update profile", err)
	}
	return &u, nil
}
