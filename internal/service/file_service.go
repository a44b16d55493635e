package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"

	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/pkg/storage"
)

const (
	msgFileRequired = "請選擇要上傳的檔案"
	msgFileTooLarge = "檔案大小超過限制"

	uploadPrefix = "uploads"
)

// ErrStorageDisabled is returned when no object storage is configured
var ErrStorageDisabled = errors.New("object storage is not configured")

// Uploader stores an object and returns where it can be fetched.
// *storage.S3Client implements it.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string, size int64) (*storage.UploadResult, error)
}

// FileService uploads admin media to object storage
type FileService interface {
	Upload(ctx context.Context, actor domain.Actor, file *multipart.FileHeader) (*domain.UploadResponse, error)
}

type fileService struct {
	uploader Uploader
	maxBytes int64
}

// NewFileService creates a new FileService; maxMB bounds the file size.
func NewFileService(uploader Uploader, maxMB int) FileService {
	return &fileService{
		uploader: uploader,
		maxBytes: int64(maxMB) << 20,
	}
}

func (s *fileService) Upload(ctx context.Context, actor domain.Actor, file *multipart.FileHeader) (*domain.UploadResponse, error) {
	if file == nil {
		return nil, common.BadRequest(msgFileRequired)
	}
	if s.maxBytes > 0 && file.Size > s.maxBytes {
		return nil, common.PayloadTooLarge(msgFileTooLarge)
	}

	if s.uploader == nil {
		return nil, common.Internal(ErrStorageDisabled)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(file.Filename))
	}

	key := storage.GenerateKey(uploadPrefix, file.Filename)
	result, err := s.uploader.Upload(ctx, key, src, contentType, file.Size)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	audit(actor, "file", result.Key).Int64("size", file.Size).Msg("file uploaded")
	return &domain.UploadResponse{URL: result.URL}, nil
}
