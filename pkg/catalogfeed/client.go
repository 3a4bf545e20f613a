// Package catalogfeed pulls the category tree and product list from the
// upstream store management system.
package catalogfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FeedCategory and FeedProduct mirror the upstream wire format.
type FeedCategory struct {
	Id       uint   `json:"id"`
	Name     string `json:"name"`
	ParentId *uint  `json:"parent_id"`
}

type FeedProduct struct {
	Id          uint     `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Available   bool     `json:"available"`
	ImageURL    *string  `json:"image_url"`
	CategoryId  uint     `json:"category_id"`
}

type Snapshot struct {
	Categories []FeedCategory `json:"categories"`
	Products   []FeedProduct  `json:"products"`
}

type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchSnapshot pulls the full catalog in one request.
func (c *Client) FetchSnapshot(ctx context.Context) (*Snapshot, error) {
	url := c.baseURL + "/api/catalog/snapshot"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var snapshot Snapshot
	if err := json.Unmarshal(bodyBytes, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &snapshot, nil
}
