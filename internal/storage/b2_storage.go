package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/kurin/blazer/b2"
	"github.com/lshigami/studydash/config"
	"github.com/rs/zerolog/log"
)

// PresignLifetime is the validity of download links when the bucket has no
// public base URL. B2 caps authorization tokens at seven days.
const PresignLifetime = 7 * 24 * time.Hour

var ErrNotConfigured = errors.New("object storage is not configured")

// ObjectStorage stores uploaded files and hands out links to them.
type ObjectStorage interface {
	Configured() bool
	Upload(ctx context.Context, key, contentType string, r io.Reader) error
	URL(ctx context.Context, key string) (string, error)
}

// NewObjectStorage returns a B2 backed store, or one that rejects every call
// when credentials are missing.
func NewObjectStorage(cfg *config.Config) ObjectStorage {
	if !cfg.Storage.Configured() {
		log.Warn().Msg("B2 credentials not set, PDF uploads are disabled")
		return unconfigured{}
	}
	return &B2Storage{
		keyID:      cfg.Storage.KeyID,
		appKey:     cfg.Storage.AppKey,
		bucketName: cfg.Storage.Bucket,
		publicURL:  cfg.Storage.PublicURL,
	}
}

// B2Storage connects lazily so a storage outage does not block start up.
type B2Storage struct {
	keyID      string
	appKey     string
	bucketName string
	publicURL  string

	mu     sync.Mutex
	bucket *b2.Bucket
}

func (s *B2Storage) Configured() bool { return true }

func (s *B2Storage) connect(ctx context.Context) (*b2.Bucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bucket != nil {
		return s.bucket, nil
	}

	client, err := b2.NewClient(ctx, s.keyID, s.appKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create b2 client: %w", err)
	}
	bucket, err := client.Bucket(ctx, s.bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket: %w", err)
	}
	s.bucket = bucket
	return bucket, nil
}

func (s *B2Storage) Upload(ctx context.Context, key, contentType string, r io.Reader) error {
	bucket, err := s.connect(ctx)
	if err != nil {
		return err
	}

	w := bucket.Object(key).NewWriter(ctx, b2.WithAttrsOption(&b2.Attrs{ContentType: contentType}))
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}
	return nil
}

// URL returns the public URL of key when a public base is configured and a
// presigned link valid for PresignLifetime otherwise.
func (s *B2Storage) URL(ctx context.Context, key string) (string, error) {
	if s.publicURL != "" {
		return s.publicURL + "/" + key, nil
	}

	bucket, err := s.connect(ctx)
	if err != nil {
		return "", err
	}
	u, err := bucket.Object(key).AuthURL(ctx, PresignLifetime, "")
	if err != nil {
		return "", fmt.Errorf("failed to presign url: %w", err)
	}
	return u.String(), nil
}

type unconfigured struct{}

func (unconfigured) Configured() bool { return false }

func (unconfigured) Upload(context.Context, string, string, io.Reader) error {
	return ErrNotConfigured
}

func (unconfigured) URL(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}
