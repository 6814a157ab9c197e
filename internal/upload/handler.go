package upload

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

type UploadHandler struct {
	store Store
}

func NewUploadHandler(store *DiskStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload stores a single admin-uploaded file (images, attachments) and
// returns its public path.
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No file uploaded"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to read upload"})
	}
	defer src.Close()

	path, err := h.store.Save(fh.Filename, src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to store upload"})
	}
	return c.JSON(http.StatusOK, map[string]string{"path": path})
}

// ParseWord converts an uploaded .docx to sanitized HTML so admins can seed
// rich-text fields from a Word document.
func (h *UploadHandler) ParseWord(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No file uploaded"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to read upload"})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to read upload"})
	}

	html, err := ConvertDocxToHTML(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if errors.Is(err, ErrNotDocx) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to parse document"})
	}
	return c.JSON(http.StatusOK, map[string]string{"content": html})
}
