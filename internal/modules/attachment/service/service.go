package attachment

import (
	"context"
	"fmt"
	"io"

	"anoa.com/sekolahadmin/pkg/apperror"
	"anoa.com/sekolahadmin/pkg/storage"
)

type AttachmentService interface {
	Upload(ctx context.Context, r io.Reader, fileName string) (string, error)
}

type attachmentService struct {
	storage storage.ImageStorage
	folder  string
}

func NewAttachmentService(imageStorage storage.ImageStorage, folder string) AttachmentService {
	return &attachmentService{storage: imageStorage, folder: folder}
}

// Upload streams the file to the storage provider and returns its public
// URL. A provider failure is reported as an upstream error, the detail stays
// in the server log.
func (s *attachmentService) Upload(ctx context.Context, r io.Reader, fileName string) (string, error) {
	if s.storage == nil {
		return "", fmt.Errorf("image storage is not configured: %w", apperror.ErrUpstream)
	}

	url, err := s.storage.UploadImage(ctx, r, s.folder, fileName)
	if err != nil {
		return "", fmt.Errorf("upload %s: %v: %w", fileName, err, apperror.ErrUpstream)
	}
	return url, nil
}
