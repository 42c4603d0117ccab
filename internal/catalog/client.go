package catalog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"courseboard/internal/domain"
	"courseboard/internal/httpx"
)

// Client fetches the course collection from the catalog endpoint.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout: 30 * time.Second, // por-request
		},
	}
}

// List performs the one unconditional GET for the board. The caller's ctx
// bounds the request, so an abandoned page view cancels the fetch instead
// of the result landing nowhere.
func (c *Client) List(ctx context.Context) ([]domain.Course, error) {
	var out []domain.Course
	err := httpx.DoJSON(ctx, c.HTTP, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
		if err != nil {
			return nil, fmt.Errorf("catalog: build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("catalog list failed url=%s: %w", c.BaseURL, err)
	}
	return out, nil
}
