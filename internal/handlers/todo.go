package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VishnuDileesh/todo-api/internal/auth"
	"github.com/VishnuDileesh/todo-api/internal/domain"
	"github.com/VishnuDileesh/todo-api/internal/dto"
	"github.com/VishnuDileesh/todo-api/internal/service"
)

// TodoHandler handles the owner-scoped todo endpoints.
type TodoHandler struct {
	svc *service.TodoService
	log *zap.Logger
}

func NewTodoHandler(svc *service.TodoService, log *zap.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, log: log}
}

// List godoc
// @Summary      List the caller's todos
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.TodoListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	list, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("list todos", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not list todos"})
		return
	}
	c.JSON(http.StatusOK, dto.TodoListResponse{Data: todosToResponses(list)})
}

// Create godoc
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateTodoRequest  true  "Todo body"
// @Success      201   {object}  dto.TodoResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	// Owner comes from the verified token; a user_id in the body is ignored.
	userID := auth.UserIDFromContext(c)
	completed := false
	if req.Completed != nil {
		completed = *req.Completed
	}
	t, err := h.svc.Create(c.Request.Context(), userID, req.Item, completed)
	if err != nil {
		h.log.Error("create todo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not create todo"})
		return
	}
	c.JSON(http.StatusCreated, todoToResponse(t))
}

// GetByID godoc
// @Summary      Get one todo
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  dto.TodoDataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /todos/{id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	t, err := h.svc.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
			return
		}
		h.log.Error("get todo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not get todo"})
		return
	}
	c.JSON(http.StatusOK, dto.TodoDataResponse{Data: todoToResponse(t)})
}

// Update godoc
// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "Todo ID"
// @Param        body  body  dto.UpdateTodoRequest  true  "Partial update"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /todos/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	if !req.HasChanges() {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "nothing to update: provide item or completed"})
		return
	}
	userID := auth.UserIDFromContext(c)
	if _, err := h.svc.Update(c.Request.Context(), userID, c.Param("id"), req.Item, req.Completed); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
			return
		}
		h.log.Error("update todo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not update todo"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	if err := h.svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
			return
		}
		h.log.Error("delete todo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not delete todo"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "success"})
}

func todoToResponse(t domain.Todo) dto.TodoResponse {
	return dto.TodoResponse{
		ID:        t.ID,
		Item:      t.Item,
		Completed: t.Completed,
		UserID:    t.UserID,
		CreatedAt: t.CreatedAt,
	}
}

func todosToResponses(list []domain.Todo) []dto.TodoResponse {
	out := make([]dto.TodoResponse, len(list))
	for i := range list {
		out[i] = todoToResponse(list[i])
	}
	return out
}
