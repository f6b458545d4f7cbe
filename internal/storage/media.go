package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"
)

//go:generate mockgen -source=media.go -destination=mock/media_mock.go -package=mock

// MediaSink stores a byte stream under a key and returns a durable,
// externally resolvable URL.
type MediaSink interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// ObjectKey builds a collision-resistant key: a unix-time prefix plus the
// original filename, stripped of any client-supplied path.
func ObjectKey(now time.Time, filename string) string {
	return fmt.Sprintf("attendance_images/%d_%s", now.Unix(), filepath.Base(filename))
}
