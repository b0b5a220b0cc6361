package video

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"vidvault/internal/media"
)

// UploadInput carries the buffered file plus the caller-supplied metadata.
// Title, description and original size are opaque strings and stored as-is.
type UploadInput struct {
	Data         []byte
	Filename     string
	Title        string
	Description  string
	OriginalSize string
}

// Service pushes one buffered file to the media host and records the result.
// One upload, then one insert; nothing runs in parallel within a request.
type Service struct {
	repo     Repository
	uploader media.Uploader
	folder   string
	timeout  time.Duration
}

// NewService wires the upload flow. uploader may be nil when the media-host
// credentials are missing; Upload then fails before touching the network.
func NewService(repo Repository, uploader media.Uploader, folder string, timeout time.Duration) *Service {
	return &Service{repo: repo, uploader: uploader, folder: folder, timeout: timeout}
}

// Ready reports whether a media host is configured.
func (s *Service) Ready() bool {
	return s.uploader != nil
}

// Upload transmits the buffer to the media host and, only after the host
// confirms, persists the record. A failed insert destroys the remote asset
// again so a half-done upload does not leak storage.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*Video, error) {
	if s.uploader == nil {
		return nil, ErrNotConfigured
	}
	if len(in.Data) == 0 {
		return nil, ErrNoFile
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.uploader.Upload(ctx, in.Data, in.Filename, s.folder)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	v := &Video{
		Title:          in.Title,
		Description:    in.Description,
		PublicID:       result.PublicID,
		OriginalSize:   in.OriginalSize,
		CompressedSize: strconv.FormatInt(result.Bytes, 10),
		Duration:       result.Duration,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		if derr := s.uploader.Destroy(ctx, result.PublicID); derr != nil {
			log.Printf("orphaned media asset public_id=%s destroy_error=%v", result.PublicID, derr)
		}
		return nil, fmt.Errorf("save video record: %w", err)
	}

	return v, nil
}

// List returns every stored record, newest first.
func (s *Service) List(ctx context.Context) ([]*Video, error) {
	return s.repo.List(ctx)
}
