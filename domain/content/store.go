package content

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Triaksa-Space/bootcamp-site/pkg/apperrors"
	"github.com/Triaksa-Space/bootcamp-site/pkg/kv"
	"github.com/Triaksa-Space/bootcamp-site/pkg/logger"
	"github.com/Triaksa-Space/bootcamp-site/pkg/secret"
)

// DefaultKey is the key holding the saved override.
const DefaultKey = "site-content"

// Store reads and writes the saved override. A Store with a nil backend is
// unconfigured: reads fail with a store error and Load serves defaults.
type Store struct {
	backend kv.Backend
	key     string
	guard   *secret.Guard
	log     logger.Logger

	// OnSave runs after every successful write.
	OnSave func()
}

func NewStore(backend kv.Backend, key string, guard *secret.Guard, log logger.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		backend: backend,
		key:     key,
		guard:   guard,
		log:     log.WithComponent("content_store"),
	}
}

// Configured reports whether a backend is attached.
func (s *Store) Configured() bool {
	return s != nil && s.backend != nil
}

// Fetch returns the saved override, or nil when nothing has been saved.
func (s *Store) Fetch(ctx context.Context) (*Override, error) {
	if !s.Configured() {
		return nil, apperrors.NewStore(apperrors.ErrCodeStoreUnconfigured, "Content store is not configured", nil)
	}

	data, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewStore(apperrors.ErrCodeStoreRead, "Failed to read content", err)
	}
	return ParseOverride(data), nil
}

// Load returns the resolved record. Any fetch failure is logged and the
// defaults are served instead.
func (s *Store) Load(ctx context.Context) Record {
	o, err := s.Fetch(ctx)
	if err != nil {
		s.log.WithContext(ctx).Warn("Serving default content",
			logger.ContentKey(s.key),
			logger.Err(err),
		)
		return Defaults()
	}
	return Resolve(o)
}

// Save replaces the saved override. The credential is checked before
// anything else and nothing is written unless the override has a hero.
func (s *Store) Save(ctx context.Context, o *Override, credential string) error {
	if err := s.Authorize(credential); err != nil {
		return err
	}
	if o == nil || o.Hero == nil {
		return apperrors.NewValidation(apperrors.ErrCodeMissingField, "Invalid content: hero section is required")
	}
	if !s.Configured() {
		return apperrors.NewStore(apperrors.ErrCodeStoreUnconfigured, "Content store is not configured", nil)
	}

	data, err := json.Marshal(o)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeUnexpectedError, "Failed to encode content", err)
	}
	if err := s.backend.Set(ctx, s.key, data); err != nil {
		return apperrors.NewStore(apperrors.ErrCodeStoreWrite, "Failed to save content", err)
	}

	s.log.WithContext(ctx).Info("Content saved",
		logger.ContentKey(s.key),
		logger.Int("bytes", len(data)),
	)
	if s.OnSave != nil {
		s.OnSave()
	}
	return nil
}

// Authorize checks an admin credential against the store's guard.
func (s *Store) Authorize(credential string) error {
	if credential == "" {
		return apperrors.NewAuth(apperrors.ErrCodeMissingSecret, "Unauthorized")
	}
	if !s.guard.Verify(credential) {
		return apperrors.NewAuth(apperrors.ErrCodeInvalidSecret, "Unauthorized")
	}
	return nil
}

// SaveRaw parses a request body and saves it.
func (s *Store) SaveRaw(ctx context.Context, body []byte, credential string) error {
	return s.Save(ctx, ParseOverride(body), credential)
}
