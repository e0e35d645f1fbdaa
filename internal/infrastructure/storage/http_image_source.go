package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"frota_checklist/internal/usecase/interfaces"
)

const maxImageBytes = 20 << 20

// HTTPImageSource downloads images through signed URLs.
type HTTPImageSource struct {
	client *http.Client
}

var _ interfaces.IImageSource = (*HTTPImageSource)(nil)

func NewHTTPImageSource(timeout time.Duration) *HTTPImageSource {
	return &HTTPImageSource{client: &http.Client{Timeout: timeout}}
}

func (s *HTTPImageSource) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch image: unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, "", err
	}
	return data, resp.Header.Get("Content-Type"), nil
}
