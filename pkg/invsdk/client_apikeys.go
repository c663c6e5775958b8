package invsdk

import (
	"context"
	"net/http"
)

// MintAPIKey creates a new API key. The plaintext key is returned exactly
// once in the response and never again.
func (c *Client) MintAPIKey(ctx context.Context, req APIKeyRequest) (APIKeyResponse, error) {
	var out APIKeyResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/apikeys", req, &out)
	return out, err
}

// RevokeAPIKey deactivates a key. In-flight requests already verified are
// unaffected; the key simply stops working.
func (c *Client) RevokeAPIKey(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/apikeys/"+id, nil, nil)
}
