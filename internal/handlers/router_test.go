package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/VishnuDileesh/todo-api/internal/auth"
	"github.com/VishnuDileesh/todo-api/internal/domain"
	"github.com/VishnuDileesh/todo-api/internal/service"
)

const testSecret = "test-secret"

// fakeUserRepo implements repo.UserRepo in memory. Like the real store
// it happily accepts duplicate emails.
type fakeUserRepo struct {
	users     []domain.User
	seq       int
	createErr error
}

func (f *fakeUserRepo) Create(_ context.Context, username, email, passwordHash string) (domain.User, error) {
	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	f.seq++
	u := domain.User{
		ID:           fmt.Sprintf("user-%d", f.seq),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		JoinedOn:     time.Now(),
	}
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, pgx.ErrNoRows
}

// fakeTodoRepo implements repo.TodoRepo in memory with the same
// owner-scoping semantics as the Postgres implementation.
type fakeTodoRepo struct {
	todos map[string]domain.Todo
	seq   int
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{todos: make(map[string]domain.Todo)}
}

func (f *fakeTodoRepo) Create(_ context.Context, t domain.Todo) (domain.Todo, error) {
	f.seq++
	t.ID = fmt.Sprintf("todo-%d", f.seq)
	t.CreatedAt = time.Now()
	f.todos[t.ID] = t
	return t, nil
}

func (f *fakeTodoRepo) ListByUser(_ context.Context, userID string) ([]domain.Todo, error) {
	var list []domain.Todo
	for _, t := range f.todos {
		if t.UserID == userID {
			list = append(list, t)
		}
	}
	return list, nil
}

func (f *fakeTodoRepo) GetByID(_ context.Context, userID, id string) (domain.Todo, error) {
	t, ok := f.todos[id]
	if !ok || t.UserID != userID {
		return domain.Todo{}, pgx.ErrNoRows
	}
	return t, nil
}

func (f *fakeTodoRepo) Update(_ context.Context, userID, id string, item *string, completed *bool) (domain.Todo, error) {
	t, ok := f.todos[id]
	if !ok || t.UserID != userID {
		return domain.Todo{}, pgx.ErrNoRows
	}
	if item != nil {
		t.Item = *item
	}
	if completed != nil {
		t.Completed = *completed
	}
	f.todos[id] = t
	return t, nil
}

func (f *fakeTodoRepo) Delete(_ context.Context, userID, id string) (bool, error) {
	t, ok := f.todos[id]
	if !ok || t.UserID != userID {
		return false, nil
	}
	delete(f.todos, id)
	return true, nil
}

// newTestRouter wires the real middleware, services and handlers over
// fake repos, so requests exercise the whole pipeline.
func newTestRouter(users *fakeUserRepo, todos *fakeTodoRepo) (*gin.Engine, *auth.TokenManager) {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	tokens := auth.NewTokenManager(testSecret, time.Hour)

	authHandler := NewAuthHandler(tokens, service.NewUserService(users), log)
	todoHandler := NewTodoHandler(service.NewTodoService(todos, nil), log)

	r := gin.New()
	r.POST("/users/register", authHandler.Register)
	r.POST("/users/login", authHandler.Login)

	protected := r.Group("", auth.RequireToken(tokens))
	protected.GET("/todos", todoHandler.List)
	protected.POST("/todos", todoHandler.Create)
	protected.GET("/todos/:id", todoHandler.GetByID)
	protected.PUT("/todos/:id", todoHandler.Update)
	protected.DELETE("/todos/:id", todoHandler.Delete)

	return r, tokens
}

func doRequest(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewBuffer(b)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func issueToken(t *testing.T, tokens *auth.TokenManager, u domain.User) string {
	t.Helper()
	token, err := tokens.Issue(u)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}
