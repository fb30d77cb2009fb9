package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"

	"github.com/VishnuDileesh/todo-api/internal/cache"
	"github.com/VishnuDileesh/todo-api/internal/domain"
	"github.com/VishnuDileesh/todo-api/internal/repo"
)

// ErrNotFound means the record is absent or owned by someone else;
// the two cases are indistinguishable on purpose.
var ErrNotFound = errors.New("not found")

// TodoService implements owner-scoped todo CRUD.
type TodoService struct {
	repo  repo.TodoRepo
	cache *cache.TodoCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r repo.TodoRepo, c *cache.TodoCache) *TodoService {
	return &TodoService{repo: r, cache: c}
}

func (s *TodoService) Create(ctx context.Context, userID, item string, completed bool) (domain.Todo, error) {
	t, err := s.repo.Create(ctx, domain.Todo{
		Item:      strings.TrimSpace(item),
		Completed: completed,
		UserID:    userID,
	})
	if err != nil {
		return domain.Todo{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

func (s *TodoService) List(ctx context.Context, userID string) ([]domain.Todo, error) {
	if s.cache == nil {
		return s.repo.ListByUser(ctx, userID)
	}
	v, err, _ := s.sf.Do("list:"+userID, func() (interface{}, error) {
		if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
			return list, nil
		}
		list, err := s.repo.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetList(ctx, userID, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Todo), nil
}

func (s *TodoService) GetByID(ctx context.Context, userID, id string) (domain.Todo, error) {
	t, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Todo{}, ErrNotFound
		}
		return domain.Todo{}, err
	}
	return t, nil
}

// Update applies the supplied fields to an owned record. Callers decide
// what an empty patch means; here it would be a no-op write, so they
// should reject it before calling.
func (s *TodoService) Update(ctx context.Context, userID, id string, item *string, completed *bool) (domain.Todo, error) {
	if item != nil {
		trimmed := strings.TrimSpace(*item)
		item = &trimmed
	}
	t, err := s.repo.Update(ctx, userID, id, item, completed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Todo{}, ErrNotFound
		}
		return domain.Todo{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, userID, id string) error {
	deleted, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidateCache(ctx, userID)
	return nil
}

func (s *TodoService) invalidateCache(ctx context.Context, userID string) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
}
