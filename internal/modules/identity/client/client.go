// Package client wraps the Clerk REST API's user-listing endpoint. A single
// unbounded fetch returns the whole user base; there is no pagination or
// retry handling here.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"anoa.com/sekolahadmin/internal/modules/identity/dto"
	"anoa.com/sekolahadmin/pkg/apperror"
)

type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ListUsers fetches all identity records from the provider.
func (c *Client) ListUsers(ctx context.Context) ([]dto.IdentityUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/users", nil)
	if err != nil {
		return nil, fmt.Errorf("build clerk request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: clerk request failed: %v", apperror.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: clerk returned %d: %s", apperror.ErrUpstream, resp.StatusCode, string(body))
	}

	var users []dto.IdentityUser
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("%w: decode clerk response: %v", apperror.ErrUpstream, err)
	}

	return users, nil
}
