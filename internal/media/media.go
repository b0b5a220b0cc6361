package media

import "context"

// UploadResult is what the media host reports back after accepting a file.
// Duration stays 0 for still images and anything the host does not probe.
type UploadResult struct {
	PublicID string  `json:"public_id"`
	Bytes    int64   `json:"bytes"`
	Duration float64 `json:"duration"`
}

// Uploader is the contract a media host must satisfy: take raw bytes plus a
// destination folder, hand back a durable asset reference, and be able to
// destroy that asset again by reference.
type Uploader interface {
	Upload(ctx context.Context, data []byte, filename, folder string) (*UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}
