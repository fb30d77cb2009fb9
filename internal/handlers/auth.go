package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VishnuDileesh/todo-api/internal/auth"
	"github.com/VishnuDileesh/todo-api/internal/dto"
	"github.com/VishnuDileesh/todo-api/internal/service"
)

// loginFailedMessage is the single body for every login failure; which
// check failed is never disclosed.
const loginFailedMessage = "email or password is incorrect"

// AuthHandler handles registration and login.
type AuthHandler struct {
	tokens *auth.TokenManager
	users  *service.UserService
	log    *zap.Logger
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(tokens *auth.TokenManager, users *service.UserService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{tokens: tokens, users: users, log: log}
}

// Register godoc
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "Account details"
// @Success      201   {object}  dto.MessageResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /users/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	if _, err := h.users.Register(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		h.log.Error("register failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "registration failed"})
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "success"})
}

// Login godoc
// @Summary      Login and receive a session token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.TokenResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	user, err := h.users.ValidateCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			h.log.Error("login failed", zap.Error(err))
		}
		c.JSON(http.StatusOK, dto.ErrorResponse{Error: loginFailedMessage})
		return
	}
	token, err := h.tokens.Issue(user)
	if err != nil {
		h.log.Error("issue token", zap.Error(err))
		c.JSON(http.StatusOK, dto.ErrorResponse{Error: loginFailedMessage})
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
