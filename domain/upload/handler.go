package upload

import (
	"net/http"

	"github.com/Triaksa-Space/bootcamp-site/pkg/apperrors"
	"github.com/Triaksa-Space/bootcamp-site/pkg/secret"
	"github.com/labstack/echo/v4"
)

// Handler serves POST /api/upload.
type Handler struct {
	gateway *Gateway
}

func NewHandler(gateway *Gateway) *Handler {
	return &Handler{gateway: gateway}
}

// Upload accepts a multipart form with a "file" part and zero or more
// "oldUrl" values naming blobs to delete once the new file is stored.
func (h *Handler) Upload(c echo.Context) error {
	credential := c.Request().Header.Get(secret.HeaderName)
	if !h.gateway.guard.Verify(credential) {
		return apperrors.NewAuth(apperrors.ErrCodeInvalidSecret, "Unauthorized")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return apperrors.NewValidation(apperrors.ErrCodeInvalidInput, "Invalid form data")
	}
	files := form.File["file"]
	if len(files) == 0 {
		return apperrors.NewValidation(apperrors.ErrCodeMissingField, "No file uploaded")
	}

	fh := files[0]
	if _, _, err := Validate(fh.Header.Get(echo.HeaderContentType), fh.Size); err != nil {
		return err
	}

	src, err := fh.Open()
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeUnexpectedError, "Failed to open uploaded file", err)
	}
	defer src.Close()

	result, err := h.gateway.Upload(c.Request().Context(), File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Body:        src,
	}, credential, form.Value["oldUrl"])
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
