// Package storage is the boundary to the external object store. The core
// treats locators as opaque presigned URLs: fetch/put plus key extraction.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Store is the key→bytes collaborator contract.
type Store interface {
	// Fetch downloads the object behind a presigned read URL or bare key.
	Fetch(ctx context.Context, locator string) ([]byte, error)
	// Put uploads bytes and returns the object's locator.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// KeyFromLocator extracts the object key from a locator by stripping the
// scheme+host prefix. Bare keys pass through unchanged.
func KeyFromLocator(locator string) string {
	u, err := url.Parse(locator)
	if err != nil || u.Host == "" {
		return strings.TrimPrefix(locator, "/")
	}
	return strings.TrimPrefix(u.Path, "/")
}

// HTTPStore fetches and uploads objects over presigned HTTP URLs issued by
// the external storage service.
type HTTPStore struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

func NewHTTPStore(baseURL string, timeout time.Duration, log *slog.Logger) *HTTPStore {
	if log == nil {
		log = slog.Default()
	}
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &HTTPStore{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (s *HTTPStore) urlFor(locator string) string {
	if strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://") {
		return locator
	}
	return s.baseURL + "/" + strings.TrimPrefix(locator, "/")
}

func (s *HTTPStore) Fetch(ctx context.Context, locator string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.urlFor(locator), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("storage fetch: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.log.Warn("storage response body close error", "error", err)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("storage fetch status %d for key %s", resp.StatusCode, KeyFromLocator(locator))
	}
	return io.ReadAll(resp.Body)
}

func (s *HTTPStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	target := s.urlFor(key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage put: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.log.Warn("storage response body close error", "error", err)
		}
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("storage put status %d for key %s", resp.StatusCode, key)
	}
	return target, nil
}
