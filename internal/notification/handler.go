package notification

import (
	"errors"
	"net/http"

	"NotificationHub/internal/auth"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func notificationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, ErrUnsupportedType):
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	case errors.Is(err, ErrForbidden):
		return c.JSON(http.StatusForbidden, map[string]string{"message": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"message": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Internal server error",
			"error":   err.Error(),
		})
	}
}

// Send dispatches a notification on behalf of the authenticated caller.
func (h *Handler) Send(c echo.Context) error {
	claims, ok := auth.CallerClaims(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized: Invalid token"})
	}

	var req SendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Recipients must be an array."})
	}

	resp, err := h.service.Dispatch(c.Request().Context(), claims, &req)
	if err != nil {
		return notificationError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) List(c echo.Context) error {
	notifications, err := h.service.List(c.Request().Context())
	if err != nil {
		return notificationError(c, err)
	}
	return c.JSON(http.StatusOK, notifications)
}

func (h *Handler) Get(c echo.Context) error {
	n, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return notificationError(c, err)
	}
	return c.JSON(http.StatusOK, n)
}

// Update replaces a record. Records carry no owner, so any authenticated
// caller may update any record; a known access-control gap.
func (h *Handler) Update(c echo.Context) error {
	var n Notification
	if err := c.Bind(&n); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request"})
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), &n)
	if err != nil {
		return notificationError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":      "Notification updated successfully",
		"notification": updated,
	})
}

func (h *Handler) Delete(c echo.Context) error {
	deleted, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return notificationError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":      "Notification deleted successfully",
		"notification": deleted,
	})
}
