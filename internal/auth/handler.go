package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	service *UserService
}

func NewUserHandler(service *UserService) *UserHandler {
	return &UserHandler{service: service}
}

// CallerClaims pulls the verified JWT claims set by the auth middleware.
func CallerClaims(c echo.Context) (*JWTClaims, bool) {
	claims, ok := c.Get("user").(*JWTClaims)
	return claims, ok && claims != nil
}

func userError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ErrBadRequest):
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	case errors.Is(err, ErrEmailTaken):
		return c.JSON(http.StatusConflict, map[string]string{"message": err.Error()})
	case errors.Is(err, ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": err.Error()})
	case errors.Is(err, ErrUserNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"message": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Internal server error",
			"error":   err.Error(),
		})
	}
}

func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request"})
	}

	user, token, err := h.service.Register(c.Request().Context(), req)
	if err != nil {
		return userError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "User created successfully",
		"user":    user,
		"token":   token,
	})
}

func (h *UserHandler) Login(c echo.Context) error {
	var cred Credential
	if err := c.Bind(&cred); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request"})
	}

	token, err := h.service.Login(c.Request().Context(), cred)
	if err != nil {
		return userError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Login successful",
		"token":   token,
	})
}

func (h *UserHandler) Replace(c echo.Context) error {
	return h.update(c, h.service.Replace)
}

func (h *UserHandler) Update(c echo.Context) error {
	return h.update(c, h.service.Update)
}

func (h *UserHandler) update(c echo.Context, apply func(ctx context.Context, userID string, req UpdateRequest) (*User, string, error)) error {
	claims, ok := CallerClaims(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized: Invalid token"})
	}

	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request"})
	}

	user, token, err := apply(c.Request().Context(), claims.UserID, req)
	if err != nil {
		return userError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "User updated successfully",
		"user":    user,
		"token":   token,
	})
}

func (h *UserHandler) Profile(c echo.Context) error {
	claims, ok := CallerClaims(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized: Invalid token"})
	}

	userID := c.Param("userId")
	if userID == "" {
		userID = claims.UserID
	}

	user, err := h.service.GetByID(c.Request().Context(), userID)
	if err != nil {
		return userError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "User retrieved successfully",
		"user":    user,
	})
}

func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteByID(c.Request().Context(), c.Param("userId")); err != nil {
		return userError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
