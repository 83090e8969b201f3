package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/segmentio/ksuid"
)

const MaxFileSize = 5 * 1024 * 1024 // 5MB

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ObjectStorage persists uploaded files and returns their public URL
type ObjectStorage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// UploadService stores admin image uploads
type UploadService interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type uploadService struct {
	store ObjectStorage
}

// NewUploadService creates a new UploadService
func NewUploadService(store ObjectStorage) UploadService {
	return &uploadService{store: store}
}

// UploadImage checks size and sniffed content type, then stores the file under a fresh key
func (s *uploadService) UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if s.store == nil {
		return "", errors.New("object storage is not configured")
	}
	if fileHeader == nil {
		return "", invalid("No file uploaded")
	}
	if fileHeader.Size > MaxFileSize {
		return "", ErrFileSizeExceeded
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", ErrInvalidFileFormat
	}

	key := fmt.Sprintf("uploads/%s/%s%s", time.Now().UTC().Format("2006/01"), ksuid.New().String(), ext)
	body := io.MultiReader(bytes.NewReader(head), src)

	url, err := s.store.Put(ctx, key, body, fileHeader.Size, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return url, nil
}
