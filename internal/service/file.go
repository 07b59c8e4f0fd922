package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"representantes/internal/storage"
)

const (
	uploadPrefix  = "uploads"
	presignExpiry = 15 * time.Minute
)

var (
	ErrReaderNil   = errors.New("reader is nil")
	ErrInvalidName = errors.New("invalid file name")
)

// StoredFile describes an uploaded object.
type StoredFile struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	URL         string `json:"url,omitempty"`
}

// FileService stores files referenced by representantes (avatars, documents)
// in object storage.
type FileService interface {
	// Upload stores the content under a generated name: UUID + original extension.
	Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*StoredFile, error)

	// Get streams a stored file. The caller closes the reader.
	Get(ctx context.Context, name string) (io.ReadCloser, *StoredFile, error)

	// Delete removes a stored file.
	Delete(ctx context.Context, name string) error
}

type fileService struct {
	store storage.Storage
}

// NewFileService constructs a new FileService.
func NewFileService(store storage.Storage) FileService {
	return &fileService{store: store}
}

func (s *fileService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*StoredFile, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	name := uuid.New().String() + strings.ToLower(filepath.Ext(originalFilename))

	info, err := s.store.Put(ctx, objectKey(name), r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}
	out := &StoredFile{Name: name, Size: info.Size, ContentType: info.ContentType}
	// presigning is best effort
	if u, err := s.store.PresignGet(ctx, objectKey(name), presignExpiry); err == nil {
		out.URL = u
	}
	return out, nil
}

func (s *fileService) Get(ctx context.Context, name string) (io.ReadCloser, *StoredFile, error) {
	if err := validName(name); err != nil {
		return nil, nil, err
	}
	rc, info, err := s.store.Get(ctx, objectKey(name))
	if err != nil {
		return nil, nil, fmt.Errorf("get from storage: %w", err)
	}
	return rc, &StoredFile{Name: name, Size: info.Size, ContentType: info.ContentType}, nil
}

func (s *fileService) Delete(ctx context.Context, name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, objectKey(name)); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return nil
}

func objectKey(name string) string { return path.Join(uploadPrefix, name) }

// validName accepts only names produced by Upload: a UUID with an optional extension.
func validName(name string) error {
	base := strings.TrimSuffix(name, path.Ext(name))
	if _, err := uuid.Parse(base); err != nil || strings.ContainsAny(name, `/\`) {
		return ErrInvalidName
	}
	return nil
}
