// Package cnpj queries the public BrasilAPI company registry.
package cnpj

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"frota_checklist/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultBaseURL  = "https://brasilapi.com.br/api/cnpj/v1"
	maxResponseSize = 1 << 20
)

// BrasilAPIClient implements interfaces.ICNPJLookup. Transient failures
// (network errors, 429 and 5xx) are retried with exponential backoff.
type BrasilAPIClient struct {
	baseURL    string
	httpClient *http.Client
	maxElapsed time.Duration
}

var _ interfaces.ICNPJLookup = (*BrasilAPIClient)(nil)

func NewBrasilAPIClient(baseURL string, httpClient *http.Client) *BrasilAPIClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &BrasilAPIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		maxElapsed: 15 * time.Second,
	}
}

func (c *BrasilAPIClient) Lookup(ctx context.Context, cnpj string) (json.RawMessage, error) {
	url := c.baseURL + "/" + cnpj

	var body []byte
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusBadRequest:
			return backoff.Permanent(interfaces.ErrCNPJNotFound)
		case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
			return fmt.Errorf("cnpj registry status %d", resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			return backoff.Permanent(fmt.Errorf("cnpj registry status %d", resp.StatusCode))
		}

		body, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		if err != nil {
			return err
		}
		if !json.Valid(body) {
			return backoff.Permanent(fmt.Errorf("cnpj registry returned invalid json"))
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxElapsedTime = c.maxElapsed
	notify := func(err error, wait time.Duration) {
		log.Printf("[supplier][cnpj] lookup retry cnpj=%s wait=%s err=%v", cnpj, wait, err)
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(policy, ctx), notify); err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}
