package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VishnuDileesh/todo-api/internal/domain"
)

// TodoRepo provides todo persistence. Every read and mutation filters by
// both the record id and the owning user id, so a todo is never visible
// to anyone but its owner.
type TodoRepo interface {
	Create(ctx context.Context, t domain.Todo) (domain.Todo, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Todo, error)
	GetByID(ctx context.Context, userID, id string) (domain.Todo, error)
	Update(ctx context.Context, userID, id string, item *string, completed *bool) (domain.Todo, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}

// PGTodoRepo implements TodoRepo with Postgres.
type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) Create(ctx context.Context, t domain.Todo) (domain.Todo, error) {
	query := `
		INSERT INTO todos (id, item, completed, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, item, completed, user_id, created_at`
	var out domain.Todo
	err := r.db.QueryRow(ctx, query, uuid.NewString(), t.Item, t.Completed, t.UserID).Scan(
		&out.ID, &out.Item, &out.Completed, &out.UserID, &out.CreatedAt,
	)
	return out, err
}

func (r *PGTodoRepo) ListByUser(ctx context.Context, userID string) ([]domain.Todo, error) {
	query := `
		SELECT id, item, completed, user_id, created_at
		FROM todos WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.Todo
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.Item, &t.Completed, &t.UserID, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTodoRepo) GetByID(ctx context.Context, userID, id string) (domain.Todo, error) {
	query := `
		SELECT id, item, completed, user_id, created_at
		FROM todos WHERE id = $1 AND user_id = $2`
	var t domain.Todo
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&t.ID, &t.Item, &t.Completed, &t.UserID, &t.CreatedAt,
	)
	return t, err
}

// Update applies only the supplied fields in one atomic statement;
// nil pointers leave the column untouched. pgx.ErrNoRows means the
// record is absent or not owned by userID.
func (r *PGTodoRepo) Update(ctx context.Context, userID, id string, item *string, completed *bool) (domain.Todo, error) {
	query := `
		UPDATE todos SET item = COALESCE($3, item), completed = COALESCE($4, completed)
		WHERE id = $1 AND user_id = $2
		RETURNING id, item, completed, user_id, created_at`
	var t domain.Todo
	err := r.db.QueryRow(ctx, query, id, userID, item, completed).Scan(
		&t.ID, &t.Item, &t.Completed, &t.UserID, &t.CreatedAt,
	)
	return t, err
}

// Delete removes the record and reports whether anything matched.
func (r *PGTodoRepo) Delete(ctx context.Context, userID, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
