package listing

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/EO-DataHub/eodhp-directory-services/internal/validate"
	"github.com/EO-DataHub/eodhp-directory-services/models"
)

// DefaultURL is the mock API the remote listing screen reads from.
const DefaultURL = "https://fake-json-api.mock.beeceptor.com/users"

// maxBodySize bounds how much of a response is read.
const maxBodySize = 4 << 20

// Fetcher returns the remote user collection.
type Fetcher interface {
	FetchUsers(ctx context.Context) ([]models.RemoteUserRecord, error)
}

type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("error response: status %d, body: %s", e.Status, e.Body)
}

// Client is a client for the remote listing API.
type Client struct {
	URL        string
	HTTPClient *http.Client
}

// NewClient creates a new instance of Client.
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		URL:        url,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// FetchUsers issues a parameterless GET and decodes the body defensively.
func (c *Client) FetchUsers(ctx context.Context) ([]models.RemoteUserRecord, error) {
	respBody, err := c.makeRequest(ctx)
	if err != nil {
		return nil, err
	}

	users, err := validate.RemoteUsers(respBody)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return users, nil
}

func (c *Client) makeRequest(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{Status: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}
