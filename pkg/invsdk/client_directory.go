package invsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// UserListOptions mirror the people list endpoint's query parameters.
type UserListOptions struct {
	Search     string
	ActiveOnly bool
	Offset     int
	Limit      int
}

func (o UserListOptions) encode() string {
	q := url.Values{}
	if o.Search != "" {
		q.Set("q", o.Search)
	}
	if o.ActiveOnly {
		q.Set("active", "true")
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

func (c *Client) ListUsers(ctx context.Context, opts UserListOptions) (UserListResponse, error) {
	var out UserListResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/users"+opts.encode(), nil, &out)
	return out, err
}

func (c *Client) CreateUser(ctx context.Context, req UserRequest) (UserResponse, error) {
	var out UserResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/users", req, &out)
	return out, err
}

func (c *Client) GetUser(ctx context.Context, id string) (UserResponse, error) {
	var out UserResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/users/"+id, nil, &out)
	return out, err
}

func (c *Client) UpdateUser(ctx context.Context, id string, req UserRequest) (UserResponse, error) {
	var out UserResponse
	err := c.do(ctx, http.MethodPut, "/api/v1/users/"+id, req, &out)
	return out, err
}

// DeactivateUser retires a person; their assets keep the owner reference.
func (c *Client) DeactivateUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/users/"+id, nil, nil)
}

func (c *Client) ListApplications(ctx context.Context) ([]ApplicationResponse, error) {
	var out []ApplicationResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/applications", nil, &out)
	return out, err
}

func (c *Client) CreateApplication(ctx context.Context, req ApplicationRequest) (ApplicationResponse, error) {
	var out ApplicationResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/applications", req, &out)
	return out, err
}

func (c *Client) GetApplication(ctx context.Context, id string) (ApplicationResponse, error) {
	var out ApplicationResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/applications/"+id, nil, &out)
	return out, err
}

func (c *Client) UpdateApplication(
	ctx context.Context,
	id string,
	req ApplicationRequest,
) (ApplicationResponse, error) {
	var out ApplicationResponse
	err := c.do(ctx, http.MethodPut, "/api/v1/applications/"+id, req, &out)
	return out, err
}

func (c *Client) DeleteApplication(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/applications/"+id, nil, nil)
}

// ListAuditEntries returns the newest audit entries, capped at limit. Zero
// means the server default.
func (c *Client) ListAuditEntries(ctx context.Context, limit int) (AuditListResponse, error) {
	path := "/api/v1/audit"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out AuditListResponse
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// ListReports returns the report catalogue.
func (c *Client) ListReports(ctx context.Context) (ReportListResponse, error) {
	var out ReportListResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/reports", nil, &out)
	return out, err
}
