package invsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// AssetListOptions mirror the list endpoint's query parameters.
type AssetListOptions struct {
	Search   string
	Status   string
	Type     string
	Vendor   string
	SortBy   string
	SortDesc bool
	Offset   int
	Limit    int
}

func (o AssetListOptions) encode() string {
	q := url.Values{}
	if o.Search != "" {
		q.Set("q", o.Search)
	}
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	if o.Type != "" {
		q.Set("type", o.Type)
	}
	if o.Vendor != "" {
		q.Set("vendor", o.Vendor)
	}
	if o.SortBy != "" {
		q.Set("sort", o.SortBy)
	}
	if o.SortDesc {
		q.Set("desc", "true")
	}
	if o.Offset > 0 {
		q.Set("offset", strconv.Itoa(o.Offset))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// UpsertAsset creates or updates an asset by natural key.
func (c *Client) UpsertAsset(ctx context.Context, req AssetRequest) (UpsertAssetResponse, error) {
	var out UpsertAssetResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/assets", req, &out)
	return out, err
}

// ListAssets returns a filtered page of assets.
func (c *Client) ListAssets(ctx context.Context, opts AssetListOptions) (AssetListResponse, error) {
	var out AssetListResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/assets"+opts.encode(), nil, &out)
	return out, err
}

// GetAsset fetches a single asset by id.
func (c *Client) GetAsset(ctx context.Context, id string) (AssetResponse, error) {
	var out AssetResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/assets/"+id, nil, &out)
	return out, err
}

// UpdateAsset replaces an asset's mutable fields.
func (c *Client) UpdateAsset(ctx context.Context, id string, req AssetRequest) (AssetResponse, error) {
	var out AssetResponse
	err := c.do(ctx, http.MethodPut, "/api/v1/assets/"+id, req, &out)
	return out, err
}

// DeleteAsset removes an asset and its controllers.
func (c *Client) DeleteAsset(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/assets/"+id, nil, nil)
}

// ListControllers returns the management controllers attached to an asset.
func (c *Client) ListControllers(ctx context.Context, assetID string) ([]ControllerResponse, error) {
	var out []ControllerResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/assets/"+assetID+"/controllers", nil, &out)
	return out, err
}

// AttachController adds a management controller to an asset.
func (c *Client) AttachController(
	ctx context.Context,
	assetID string,
	req ControllerRequest,
) (ControllerResponse, error) {
	var out ControllerResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/assets/"+assetID+"/controllers", req, &out)
	return out, err
}

// DetachController removes a management controller.
func (c *Client) DetachController(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/controllers/"+id, nil, nil)
}
