package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/lshigami/studydash/config"
	"github.com/lshigami/studydash/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStorage struct {
	objects map[string][]byte
	types   map[string]string
	fail    error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memoryStorage) Configured() bool { return true }

func (m *memoryStorage) Upload(_ context.Context, key, contentType string, r io.Reader) error {
	if m.fail != nil {
		return m.fail
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.objects[key] = body
	m.types[key] = contentType
	return nil
}

func (m *memoryStorage) URL(_ context.Context, key string) (string, error) {
	return "https://files.example.com/" + key, nil
}

func fileHeader(t *testing.T, name string, body []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func TestUploadPDFStoresUnderSubject(t *testing.T) {
	store := newMemoryStorage()
	uploads := NewUploadService(store)
	body := []byte("%PDF-1.7 notes")

	resp, err := uploads.UploadPDF(context.Background(), fileHeader(t, "Lecture 3.PDF", body), "physics_101")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.Key, "physics_101/"))
	assert.True(t, strings.HasSuffix(resp.Key, ".pdf"))
	assert.Equal(t, "https://files.example.com/"+resp.Key, resp.URL)
	assert.Equal(t, "Lecture 3.PDF", resp.Filename)
	assert.Equal(t, int64(len(body)), resp.Size)
	assert.Equal(t, body, store.objects[resp.Key])
	assert.Equal(t, "application/pdf", store.types[resp.Key])
}

func TestUploadPDFFallsBackToGeneralFolder(t *testing.T) {
	store := newMemoryStorage()
	uploads := NewUploadService(store)

	for _, subject := range []string{"", "../etc", "a/b"} {
		resp, err := uploads.UploadPDF(context.Background(), fileHeader(t, "notes.pdf", []byte("%PDF")), subject)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(resp.Key, "general/"), subject)
	}
}

func TestUploadPDFValidatesBeforeStoring(t *testing.T) {
	store := newMemoryStorage()
	uploads := NewUploadService(store)
	ctx := context.Background()

	var verr *ValidationError
	_, err := uploads.UploadPDF(ctx, nil, "")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "No file provided", verr.Message)

	_, err = uploads.UploadPDF(ctx, &multipart.FileHeader{Filename: "essay.docx", Size: 10}, "")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Only PDF files are allowed", verr.Message)

	_, err = uploads.UploadPDF(ctx, &multipart.FileHeader{Filename: "scan.pdf", Size: 60 << 20}, "")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "File size exceeds 50MB limit", verr.Message)

	assert.Empty(t, store.objects)
}

func TestUploadPDFStorageErrors(t *testing.T) {
	ctx := context.Background()

	disabled := NewUploadService(storage.NewObjectStorage(&config.Config{}))
	_, err := disabled.UploadPDF(ctx, fileHeader(t, "notes.pdf", []byte("%PDF")), "")
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	broken := newMemoryStorage()
	broken.fail = errors.New("connection reset")
	_, err = NewUploadService(broken).UploadPDF(ctx, fileHeader(t, "notes.pdf", []byte("%PDF")), "")
	assert.ErrorIs(t, err, ErrStorageFailure)
}
