package video

import "errors"

var (
	ErrNotConfigured = errors.New("media host credentials not configured")
	ErrNoFile        = errors.New("no file found")
	ErrUploadFailed  = errors.New("media host upload failed")
)
