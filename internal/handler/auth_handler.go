package handler

import (
	"errors"
	"net/http"

	"github.com/karbhat74/Aikyam/internal/model"
	"github.com/karbhat74/Aikyam/internal/repository"
	"github.com/karbhat74/Aikyam/internal/service"
	"github.com/labstack/echo/v4"
)

// AuthHandler serves the original auth surface. Response shapes here are
// wire-compatible with the old API: flat {message} bodies, {token,user}
// on login, everything client-visible at the same paths and statuses.
type AuthHandler struct {
	auth  service.AuthService
	users repository.UserRepository
}

func NewAuthHandler(auth service.AuthService, users repository.UserRepository) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid json"})
	}
	_, err := h.auth.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Email already exists"})
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, map[string]string{"message": verr.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"message": "Error registering user",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User registered successfully!"})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid json"})
	}
	token, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "User not found"})
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid credentials"})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"message": "Error logging in",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(http.StatusOK, LoginResponse{Token: token, User: toUserResponse(user)})
}

func (h *AuthHandler) Dashboard(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Access Denied"})
	}
	user, err := h.users.FindByID(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Token"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Welcome to the dashboard!",
		"user":    toUserResponse(user),
	})
}

func toUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
