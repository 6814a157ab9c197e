package notice

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

type NoticeHandler struct {
	service *NoticeService
}

func NewNoticeHandler(service *NoticeService) *NoticeHandler {
	return &NoticeHandler{service: service}
}

// ListNotices is public; the main site reads the board without auth.
func (h *NoticeHandler) ListNotices(c echo.Context) error {
	notices, err := h.service.ListNotices(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch notices"})
	}
	return c.JSON(http.StatusOK, notices)
}

// GetNotice is public; the direct registration-link flow loads a single notice.
func (h *NoticeHandler) GetNotice(c echo.Context) error {
	n, err := h.service.GetNotice(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if n == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Notice not found"})
	}
	return c.JSON(http.StatusOK, n)
}

func (h *NoticeHandler) CreateNotice(c echo.Context) error {
	var req CreateNoticeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	n, err := h.service.CreateNotice(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, n)
}

func (h *NoticeHandler) UpdateNotice(c echo.Context) error {
	var body map[string]interface{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	n, err := h.service.UpdateNotice(c.Request().Context(), c.Param("id"), body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if n == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Notice not found"})
	}
	return c.JSON(http.StatusOK, n)
}

func (h *NoticeHandler) DeleteNotice(c echo.Context) error {
	if err := h.service.DeleteNotice(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Notice deleted"})
}
