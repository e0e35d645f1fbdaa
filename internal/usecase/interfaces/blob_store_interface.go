package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrBlobExists is returned by Upload when the path is already taken.
var ErrBlobExists = errors.New("blob already exists")

// IBlobStore abstracts path addressed file storage (checklist photos and documents).
type IBlobStore interface {
	// Upload stores body at path and never overwrites an existing object.
	Upload(ctx context.Context, path string, contentType string, body []byte) error
	// CreateSignedURL issues a time-limited read URL for path.
	CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)
}

// IImageSource downloads an image through a signed URL for report rendering.
type IImageSource interface {
	Fetch(ctx context.Context, url string) (data []byte, contentType string, err error)
}
