package elevate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"elevatecart/internal/domain"
)

type elevateHTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher returns a fetcher that calls Elevate Live Links endpoints.
// A nil client uses a new http.Client with the given timeout (0 means none).
func NewHTTPFetcher(client *http.Client, timeout time.Duration) domain.CatalogFetcher {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &elevateHTTPFetcher{client: client}
}

// Fetch performs one GET against endpointURL. It does not retry.
func (f *elevateHTTPFetcher) Fetch(ctx context.Context, endpointURL string) (*domain.CatalogDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpointURL, nil)
	if err != nil {
		return nil, &domain.FetchError{URL: endpointURL, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{URL: endpointURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &domain.FetchError{URL: endpointURL, StatusCode: resp.StatusCode}
	}

	var data domain.ElevateResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, &domain.FetchError{URL: endpointURL, Err: err}
		}
		return nil, &domain.ParseError{URL: endpointURL, Err: fmt.Errorf("failed to decode catalog response: %w", err)}
	}
	if data.Programs == nil {
		return nil, &domain.ParseError{URL: endpointURL, Err: errors.New(`missing "programs"`)}
	}
	doc := ToCatalogDocument(&data)
	return doc, nil
}
