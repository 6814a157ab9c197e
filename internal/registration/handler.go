package registration

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"NoticeBoard/internal/form"
	"NoticeBoard/internal/notice"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type RegistrationHandler struct {
	service *RegistrationService
	notices *notice.NoticeRepository
}

func NewRegistrationHandler(service *RegistrationService, notices *notice.NoticeRepository) *RegistrationHandler {
	return &RegistrationHandler{service: service, notices: notices}
}

// Create is the public submission endpoint. The multipart field set is not
// known statically; it is whatever the originating notice declared.
func (h *RegistrationHandler) Create(c echo.Context) error {
	mf, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Expected multipart/form-data"})
	}

	reg, err := h.service.Submit(c.Request().Context(), mf)
	if err != nil {
		if errors.Is(err, ErrRegistrationClosed) {
			return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
		}
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save registration"})
	}
	return c.JSON(http.StatusCreated, reg)
}

// List returns registrations for admins, optionally filtered to one notice.
func (h *RegistrationHandler) List(c echo.Context) error {
	regs, err := h.service.List(c.Request().Context(), c.QueryParam("noticeId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch registrations"})
	}
	return c.JSON(http.StatusOK, regs)
}

// ExportExcel streams matching registrations as an .xlsx workbook. When the
// filter resolves to a notice with declared fields, the columns follow that
// declaration; otherwise a generic flattened projection is used.
func (h *RegistrationHandler) ExportExcel(c echo.Context) error {
	ctx := c.Request().Context()
	noticeID := c.QueryParam("noticeId")

	regs, err := h.service.List(ctx, noticeID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch registrations"})
	}

	var fields []form.FieldDescriptor
	if noticeID != "" {
		if oid, err := primitive.ObjectIDFromHex(noticeID); err == nil {
			if n, err := h.notices.FindByID(ctx, oid); err == nil && n != nil {
				fields = n.FormFields
			}
		}
	}

	headers, rows := BuildRows(fields, regs)
	buf, err := WriteWorkbook(headers, rows)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to build spreadsheet"})
	}

	c.Response().Header().Set("Content-Disposition", `attachment; filename=registrations.xlsx`)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
