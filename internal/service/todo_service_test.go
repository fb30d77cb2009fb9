package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VishnuDileesh/todo-api/internal/domain"
)

// stubTodoRepo returns canned results for one record owned by "owner".
type stubTodoRepo struct {
	todo    domain.Todo
	listErr error
}

func (s *stubTodoRepo) Create(_ context.Context, t domain.Todo) (domain.Todo, error) {
	t.ID = "todo-1"
	s.todo = t
	return t, nil
}

func (s *stubTodoRepo) ListByUser(_ context.Context, userID string) ([]domain.Todo, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	if s.todo.UserID != userID {
		return nil, nil
	}
	return []domain.Todo{s.todo}, nil
}

func (s *stubTodoRepo) GetByID(_ context.Context, userID, id string) (domain.Todo, error) {
	if s.todo.ID != id || s.todo.UserID != userID {
		return domain.Todo{}, pgx.ErrNoRows
	}
	return s.todo, nil
}

func (s *stubTodoRepo) Update(_ context.Context, userID, id string, item *string, completed *bool) (domain.Todo, error) {
	if s.todo.ID != id || s.todo.UserID != userID {
		return domain.Todo{}, pgx.ErrNoRows
	}
	if item != nil {
		s.todo.Item = *item
	}
	if completed != nil {
		s.todo.Completed = *completed
	}
	return s.todo, nil
}

func (s *stubTodoRepo) Delete(_ context.Context, userID, id string) (bool, error) {
	if s.todo.ID != id || s.todo.UserID != userID {
		return false, nil
	}
	s.todo = domain.Todo{}
	return true, nil
}

func TestTodoServiceScoping(t *testing.T) {
	ctx := context.Background()
	svc := NewTodoService(&stubTodoRepo{}, nil)

	created, err := svc.Create(ctx, "owner", "  buy milk  ", false)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", created.Item)
	assert.Equal(t, "owner", created.UserID)

	got, err := svc.GetByID(ctx, "owner", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// Someone else's read of the same id is a plain not-found.
	_, err = svc.GetByID(ctx, "intruder", created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, "intruder", created.ID, nil, boolPtr(true))
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "intruder", created.ID), ErrNotFound)
	require.NoError(t, svc.Delete(ctx, "owner", created.ID))
	// Gone means gone: the second delete is not an error class of its own.
	assert.ErrorIs(t, svc.Delete(ctx, "owner", created.ID), ErrNotFound)
}

func TestTodoServiceUpdatePartial(t *testing.T) {
	ctx := context.Background()
	repo := &stubTodoRepo{}
	svc := NewTodoService(repo, nil)

	created, err := svc.Create(ctx, "owner", "buy milk", false)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "owner", created.ID, nil, boolPtr(true))
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "buy milk", updated.Item)

	item := "  buy oat milk  "
	updated, err = svc.Update(ctx, "owner", created.ID, &item, nil)
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk", updated.Item)
	assert.True(t, updated.Completed)
}

func TestTodoServiceListError(t *testing.T) {
	repoErr := errors.New("pool closed")
	svc := NewTodoService(&stubTodoRepo{listErr: repoErr}, nil)

	_, err := svc.List(context.Background(), "owner")
	assert.ErrorIs(t, err, repoErr)
}

func boolPtr(b bool) *bool { return &b }
