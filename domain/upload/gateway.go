package upload

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Triaksa-Space/bootcamp-site/pkg/apperrors"
	"github.com/Triaksa-Space/bootcamp-site/pkg/logger"
	"github.com/Triaksa-Space/bootcamp-site/pkg/secret"
	"github.com/Triaksa-Space/bootcamp-site/pkg/storage"
	"github.com/Triaksa-Space/bootcamp-site/utils"
	"github.com/google/uuid"
)

// Gateway validates uploads and stores them in the blob store.
type Gateway struct {
	blobs storage.BlobStore
	guard *secret.Guard
	log   logger.Logger

	now   func() time.Time
	newID func() string
}

func NewGateway(blobs storage.BlobStore, guard *secret.Guard, log logger.Logger) *Gateway {
	if log == nil {
		log = logger.Nop()
	}
	return &Gateway{
		blobs: blobs,
		guard: guard,
		log:   log.WithComponent("upload"),
		now:   time.Now,
		newID: func() string { return uuid.New().String()[:8] },
	}
}

// Upload checks the credential, validates the file, stores it and then
// deletes the previous blobs. Previous URLs without an http(s) scheme are
// ignored; delete failures are logged and never fail the upload. Nothing is
// deleted unless the new file was stored.
func (g *Gateway) Upload(ctx context.Context, f File, credential string, previousURLs []string) (Result, error) {
	if !g.guard.Verify(credential) {
		return Result{}, apperrors.NewAuth(apperrors.ErrCodeInvalidSecret, "Unauthorized")
	}

	kind, limit, err := Validate(f.ContentType, f.Size)
	if err != nil {
		return Result{}, err
	}
	if f.Body == nil {
		return Result{}, apperrors.NewValidation(apperrors.ErrCodeMissingField, "No file uploaded")
	}
	if g.blobs == nil {
		return Result{}, apperrors.NewStore(apperrors.ErrCodeStoreUnconfigured, "Blob storage is not configured", nil)
	}

	key := g.objectKey(kind, f.Name)
	log := g.log.WithContext(ctx).WithFields(logger.ObjectKey(key))

	url, err := g.blobs.Put(ctx, key, normalizeType(f.ContentType), f.Body, f.Size)
	if err != nil {
		return Result{}, apperrors.NewStore(apperrors.ErrCodeBlobWrite, "Failed to store file", err)
	}
	log.Info("File uploaded",
		logger.Int64("size", f.Size),
		logger.String("limit", formatSize(limit)),
		logger.URL(url),
	)

	g.deletePrevious(ctx, previousURLs, url)

	return Result{URL: url, Type: normalizeType(f.ContentType), Size: f.Size}, nil
}

// Validate checks a MIME type and size against the allow-list.
func Validate(contentType string, size int64) (Kind, int64, error) {
	kind, limit, ok := Classify(contentType)
	if !ok {
		return "", 0, apperrors.NewValidation(apperrors.ErrCodeFileType,
			fmt.Sprintf("Unsupported file type %q. %s", normalizeType(contentType), allowedTypesMessage()))
	}
	if size <= 0 {
		return "", 0, apperrors.NewValidation(apperrors.ErrCodeMissingField, "Uploaded file is empty")
	}
	if size > limit {
		return "", 0, apperrors.NewValidation(apperrors.ErrCodeFileTooLarge,
			fmt.Sprintf("File is too large: %s files must be at most %s.", strings.TrimSuffix(string(kind), "s"), formatSize(limit)))
	}
	return kind, limit, nil
}

func (g *Gateway) objectKey(kind Kind, name string) string {
	return fmt.Sprintf("%s/%d-%s-%s", kind, g.now().UnixMilli(), g.newID(), utils.SanitizeFileName(name))
}

func (g *Gateway) deletePrevious(ctx context.Context, urls []string, current string) {
	log := g.log.WithContext(ctx)
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == current || !utils.IsAbsoluteURL(u) {
			continue
		}
		err := g.blobs.Delete(ctx, u)
		switch {
		case errors.Is(err, storage.ErrForeignURL):
			log.Debug("Skipping delete of foreign URL", logger.URL(u))
		case err != nil:
			log.Warn("Failed to delete previous file", logger.URL(u), logger.Err(err))
		default:
			log.Info("Previous file deleted", logger.URL(u))
		}
	}
}
