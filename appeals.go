package cinder

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/cinderhq/cinder-go/generated"
	"github.com/cinderhq/cinder-go/routes"
)

// AppealsClient wraps the appeal endpoints.
type AppealsClient struct {
	client *Client
}

func (a *AppealsClient) ensureInitialized() error {
	if a == nil || a.client == nil {
		return ConfigError{Reason: "appeals client not initialized"}
	}
	return nil
}

// Create files an appeal against an existing decision.
func (a *AppealsClient) Create(ctx context.Context, appeal generated.CreateAppealSchema) (*generated.Appeal, error) {
	if err := a.ensureInitialized(); err != nil {
		return nil, err
	}
	var payload generated.Appeal
	if err := a.client.sendJSON(ctx, http.MethodPost, routes.AppealCreate, appeal, "Appeal", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Get fetches a single appeal by ID.
func (a *AppealsClient) Get(ctx context.Context, appealID string) (*generated.Appeal, error) {
	if err := a.ensureInitialized(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(appealID) == "" {
		return nil, fmt.Errorf("cinder: appeal id required")
	}
	path := routes.Appeals + url.PathEscape(appealID) + "/"
	var payload generated.Appeal
	if err := a.client.sendJSON(ctx, http.MethodGet, path, nil, "Appeal", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// List returns a page of appeals.
func (a *AppealsClient) List(ctx context.Context, params *ListParams) (*generated.PagedAppeal, error) {
	if err := a.ensureInitialized(); err != nil {
		return nil, err
	}
	path := joinQuery(routes.Appeals, params.values())
	var payload generated.PagedAppeal
	if err := a.client.sendJSON(ctx, http.MethodGet, path, nil, "PagedAppeal", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
