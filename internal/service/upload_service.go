package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/metrics"
	"github.com/lshigami/studydash/internal/storage"
	"github.com/rs/zerolog/log"
)

const MaxUploadSize = 50 << 20

var subjectSegment = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

type UploadService interface {
	UploadPDF(ctx context.Context, file *multipart.FileHeader, subjectID string) (*dto.UploadResponse, error)
}

type uploadService struct {
	store storage.ObjectStorage
}

func NewUploadService(store storage.ObjectStorage) UploadService {
	return &uploadService{store: store}
}

// UploadPDF validates the file before touching storage. The object key is
// "<subject>/<uuid>.pdf"; subject ids that are not a plain path segment fall
// back to "general".
func (s *uploadService) UploadPDF(ctx context.Context, file *multipart.FileHeader, subjectID string) (*dto.UploadResponse, error) {
	if file == nil {
		return nil, invalid("No file provided")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		metrics.Uploads.WithLabelValues("rejected").Inc()
		return nil, invalid("Only PDF files are allowed")
	}
	if file.Size > MaxUploadSize {
		metrics.Uploads.WithLabelValues("rejected").Inc()
		return nil, invalid("File size exceeds 50MB limit")
	}
	if !s.store.Configured() {
		return nil, ErrStorageUnavailable
	}

	folder := "general"
	if subjectSegment.MatchString(subjectID) {
		folder = subjectID
	}
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext)

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	defer src.Close()

	if err := s.store.Upload(ctx, key, "application/pdf", src); err != nil {
		metrics.Uploads.WithLabelValues("failed").Inc()
		log.Error().Err(err).Str("key", key).Msg("PDF upload failed")
		return nil, storageErr(err)
	}
	url, err := s.store.URL(ctx, key)
	if err != nil {
		metrics.Uploads.WithLabelValues("failed").Inc()
		return nil, storageErr(err)
	}

	metrics.Uploads.WithLabelValues("success").Inc()
	log.Info().Str("key", key).Int64("size", file.Size).Msg("PDF uploaded")
	return &dto.UploadResponse{URL: url, Key: key, Filename: file.Filename, Size: file.Size}, nil
}

func storageErr(err error) error {
	if errors.Is(err, storage.ErrNotConfigured) {
		return ErrStorageUnavailable
	}
	return fmt.Errorf("%w: %v", ErrStorageFailure, err)
}
