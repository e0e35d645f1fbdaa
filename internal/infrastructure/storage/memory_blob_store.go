package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"frota_checklist/internal/usecase/interfaces"
)

const memoryScheme = "memory"

var ErrBlobNotFound = errors.New("blob not found")

type memoryObject struct {
	contentType string
	body        []byte
}

// MemoryBlobStore keeps objects in a map. Its signed URLs use the memory://
// scheme and can be read back through Fetch.
type MemoryBlobStore struct {
	mu      sync.RWMutex
	bucket  string
	objects map[string]memoryObject
	now     func() time.Time
}

var (
	_ interfaces.IBlobStore   = (*MemoryBlobStore)(nil)
	_ interfaces.IImageSource = (*MemoryBlobStore)(nil)
)

func NewMemoryBlobStore(bucket string) *MemoryBlobStore {
	return &MemoryBlobStore{bucket: bucket, objects: make(map[string]memoryObject), now: time.Now}
}

func (s *MemoryBlobStore) Upload(_ context.Context, path string, contentType string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.objects[path]; exists {
		return fmt.Errorf("%w: %s", interfaces.ErrBlobExists, path)
	}
	s.objects[path] = memoryObject{contentType: contentType, body: append([]byte(nil), body...)}
	return nil
}

func (s *MemoryBlobStore) CreateSignedURL(_ context.Context, path string, ttl time.Duration) (string, error) {
	s.mu.RLock()
	_, ok := s.objects[path]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrBlobNotFound, path)
	}
	u := url.URL{
		Scheme:   memoryScheme,
		Host:     s.bucket,
		Path:     "/" + path,
		RawQuery: url.Values{"expires": {strconv.FormatInt(s.now().Add(ttl).Unix(), 10)}}.Encode(),
	}
	return u.String(), nil
}

// Fetch reads an object through a URL issued by CreateSignedURL.
func (s *MemoryBlobStore) Fetch(_ context.Context, rawURL string) ([]byte, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, "", err
	}
	if u.Scheme != memoryScheme || u.Host != s.bucket {
		return nil, "", fmt.Errorf("url %q was not issued by this store", rawURL)
	}
	expires, err := strconv.ParseInt(u.Query().Get("expires"), 10, 64)
	if err != nil || s.now().Unix() > expires {
		return nil, "", fmt.Errorf("signed url expired")
	}
	path := strings.TrimPrefix(u.Path, "/")
	s.mu.RLock()
	obj, ok := s.objects[path]
	s.mu.RUnlock()
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrBlobNotFound, path)
	}
	return append([]byte(nil), obj.body...), obj.contentType, nil
}

func (s *MemoryBlobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
