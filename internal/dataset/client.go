package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxCollectionBytes = 32 << 20

// errRetryable marks a fetch failure that may succeed on a later attempt.
var errRetryable = errors.New("retryable")

// HTTPSource fetches every collection from the mock data API.
type HTTPSource struct {
	baseURL     string
	client      *http.Client
	maxAttempts int
	delay       func(attempt int) time.Duration
}

// NewHTTPSource creates an HTTPSource for the API rooted at baseURL.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		client:      &http.Client{Timeout: timeout},
		maxAttempts: DefaultMaxAttempts,
		delay:       NextRetryDelay,
	}
}

// Load implements Source.
func (s *HTTPSource) Load(ctx context.Context) (*Dataset, error) {
	ds := &Dataset{}
	for _, kind := range Kinds {
		raw, err := s.fetchWithRetry(ctx, kind)
		if err != nil {
			return nil, err
		}
		if raw == nil {
			continue
		}
		if err := decodeInto(ds, kind, raw); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// fetchWithRetry retries transport errors and 5xx/429 responses with backoff.
func (s *HTTPSource) fetchWithRetry(ctx context.Context, kind string) ([]byte, error) {
	var err error
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.delay(attempt - 1)):
			}
		}

		var raw []byte
		raw, err = s.fetch(ctx, kind)
		if err == nil || !errors.Is(err, errRetryable) {
			return raw, err
		}
	}
	return nil, fmt.Errorf("giving up after %d attempts: %w", s.maxAttempts, err)
}

// fetch returns the body of one collection, or nil when the API has none.
func (s *HTTPSource) fetch(ctx context.Context, kind string) ([]byte, error) {
	url := s.baseURL + "/api/v1/datasets/" + kind
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", kind, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("fetch %s: %w", kind, err)
		}
		return nil, fmt.Errorf("fetch %s: %w: %w", kind, errRetryable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if retryableStatus(resp.StatusCode) {
		return nil, fmt.Errorf("fetch %s: %w: unexpected status %d", kind, errRetryable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", kind, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCollectionBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", kind, err)
	}
	return body, nil
}
