package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VishnuDileesh/todo-api/internal/domain"
)

// UserRepo provides user persistence.
type UserRepo interface {
	Create(ctx context.Context, username, email, passwordHash string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// Create inserts a new user with a freshly assigned opaque id;
// joined_on defaults to insertion time.
func (r *PGUserRepo) Create(ctx context.Context, username, email, passwordHash string) (domain.User, error) {
	query := `
		INSERT INTO users (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email, password_hash, joined_on`
	var u domain.User
	err := r.db.QueryRow(ctx, query, uuid.NewString(), username, email, passwordHash).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.JoinedOn,
	)
	return u, err
}

// GetByEmail returns a user with the given email. The schema does not
// enforce email uniqueness; among duplicates the result is unspecified.
func (r *PGUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, email, password_hash, joined_on FROM users WHERE email = $1 LIMIT 1`,
		email,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.JoinedOn)
	return u, err
}
