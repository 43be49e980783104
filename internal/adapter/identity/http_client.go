package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"streamview-ads/internal/core/domain"
	"streamview-ads/internal/core/port"
)

// Client resolves bearer credentials against the external identity
// provider's user endpoint. It implements port.IdentityProvider. The
// provider owns authentication entirely; this client only asks "who is
// the holder of this credential".
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the identity provider at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Resolve asks the provider for the principal behind the credential. A
// 401 or 403 from the provider maps to port.ErrUnauthorized; transport
// failures and unexpected statuses are returned as-is for the caller to
// treat as a denial.
func (c *Client) Resolve(ctx context.Context, credential string) (*domain.Principal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+credential)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, port.ErrUnauthorized
	default:
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var body struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Email == "" {
		return nil, port.ErrUnauthorized
	}
	return &domain.Principal{ID: body.ID, Email: body.Email}, nil
}
