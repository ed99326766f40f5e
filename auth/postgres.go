package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/chatline-go/apperror"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// PostgresUserStore implements UserStore on a pgx connection pool.
type PostgresUserStore struct {
	db *pgxpool.Pool
}

// NewPostgresUserStore creates a PostgresUserStore.
func NewPostgresUserStore(db *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) CreateUser(ctx context.Context, user *User) error {
	query := `INSERT INTO users (id, email, full_name, password, profile_pic)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING created_at`
	err := s.db.QueryRow(ctx, query,
		user.ID, user.Email, user.FullName, user.HashedPassword, user.ProfilePic,
	).Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && strings.Contains(pgErr.ConstraintName, "email") {
			return apperror.NewConflictError("email already exists", nil)
		}
		return apperror.NewDatabaseError("failed to create user", err)
	}
	return nil
}

func (s *PostgresUserStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT id, email, full_name, password, profile_pic, created_at
	          FROM users WHERE email = $1`
	return s.scanUser(s.db.QueryRow(ctx, query, strings.ToLower(email)))
}

func (s *PostgresUserStore) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `SELECT id, email, full_name, password, profile_pic, created_at
	          FROM users WHERE id = $1`
	return s.scanUser(s.db.QueryRow(ctx, query, id))
}

func (s *PostgresUserStore) scanUser(row pgx.Row) (*User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.HashedPassword,
		&user.ProfilePic,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	return &user, nil
}
