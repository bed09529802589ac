package content

import (
	"io"
	"net/http"

	"github.com/Triaksa-Space/bootcamp-site/pkg/apperrors"
	"github.com/Triaksa-Space/bootcamp-site/pkg/secret"
	"github.com/labstack/echo/v4"
)

// MaxBodyBytes bounds the size of a submitted content record.
const MaxBodyBytes = 1 << 20

// ContentResponse wraps the resolved record returned by GET /api/content.
type ContentResponse struct {
	Content Record `json:"content"`
}

// UpdateResponse is returned after a successful save.
type UpdateResponse struct {
	Success bool `json:"success"`
}

// Handler serves the content read and write endpoints.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// GetContent handles GET /api/content
func (h *Handler) GetContent(c echo.Context) error {
	record := h.store.Load(c.Request().Context())
	return c.JSON(http.StatusOK, ContentResponse{Content: record})
}

// UpdateContent handles POST /api/content/update
func (h *Handler) UpdateContent(c echo.Context) error {
	credential := c.Request().Header.Get(secret.HeaderName)
	if err := h.store.Authorize(credential); err != nil {
		return err
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, MaxBodyBytes+1))
	if err != nil {
		return apperrors.NewValidation(apperrors.ErrCodeInvalidInput, "Failed to read request body")
	}
	if len(body) > MaxBodyBytes {
		return apperrors.NewValidation(apperrors.ErrCodeInvalidInput, "Content is too large")
	}

	if err := h.store.SaveRaw(c.Request().Context(), body, credential); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, UpdateResponse{Success: true})
}
