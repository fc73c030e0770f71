package cinder

import (
	"context"
	"net/http"

	"github.com/cinderhq/cinder-go/generated"
	"github.com/cinderhq/cinder-go/routes"
)

// ReportsClient wraps the report endpoints.
type ReportsClient struct {
	client *Client
}

func (r *ReportsClient) ensureInitialized() error {
	if r == nil || r.client == nil {
		return ConfigError{Reason: "reports client not initialized"}
	}
	return nil
}

// Create submits a new report and returns the server-assigned representation,
// including the generated identifier.
func (r *ReportsClient) Create(ctx context.Context, report generated.CreateReportSchema) (*generated.Report, error) {
	if err := r.ensureInitialized(); err != nil {
		return nil, err
	}
	var payload generated.Report
	if err := r.client.sendJSON(ctx, http.MethodPost, routes.ReportCreate, report, "Report", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// List returns a page of reports. Nil params means server-side defaults.
func (r *ReportsClient) List(ctx context.Context, params *ListParams) (*generated.PagedReport, error) {
	if err := r.ensureInitialized(); err != nil {
		return nil, err
	}
	path := joinQuery(routes.Reports, params.values())
	var payload generated.PagedReport
	if err := r.client.sendJSON(ctx, http.MethodGet, path, nil, "PagedReport", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
