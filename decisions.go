package cinder

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cinderhq/cinder-go/generated"
	"github.com/cinderhq/cinder-go/routes"
)

// DecisionsClient wraps the decision endpoints.
type DecisionsClient struct {
	client *Client
}

func (d *DecisionsClient) ensureInitialized() error {
	if d == nil || d.client == nil {
		return ConfigError{Reason: "decisions client not initialized"}
	}
	return nil
}

// Create records a moderation decision.
func (d *DecisionsClient) Create(ctx context.Context, decision generated.CreateDecisionSchema) (*generated.DecisionSchema, error) {
	if err := d.ensureInitialized(); err != nil {
		return nil, err
	}
	var payload generated.DecisionSchema
	if err := d.client.sendJSON(ctx, http.MethodPost, routes.DecisionCreate, decision, "DecisionSchema", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Get fetches a single decision by ID. A missing decision surfaces as
// *NotFoundError.
func (d *DecisionsClient) Get(ctx context.Context, decisionID string) (*generated.DecisionSchema, error) {
	if err := d.ensureInitialized(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(decisionID) == "" {
		return nil, fmt.Errorf("cinder: decision id required")
	}
	path := routes.Decisions + url.PathEscape(decisionID) + "/"
	var payload generated.DecisionSchema
	if err := d.client.sendJSON(ctx, http.MethodGet, path, nil, "DecisionSchema", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// List returns a page of decisions. The structured filter and the open
// params.Filters map are merged into the query string; structured fields win
// on key conflicts.
func (d *DecisionsClient) List(ctx context.Context, params *ListParams, filter *generated.DecisionFilter) (*generated.PagedDecisionSchema, error) {
	if err := d.ensureInitialized(); err != nil {
		return nil, err
	}
	q := params.values()
	mergeDecisionFilter(q, filter)
	path := joinQuery(routes.Decisions, q)
	var payload generated.PagedDecisionSchema
	if err := d.client.sendJSON(ctx, http.MethodGet, path, nil, "PagedDecisionSchema", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func mergeDecisionFilter(q url.Values, filter *generated.DecisionFilter) {
	if filter == nil {
		return
	}
	setOpt := func(key string, value *string) {
		if value != nil {
			q.Set(key, *value)
		}
	}
	setOpt("entity_type", filter.EntityType)
	setOpt("entity_id", filter.EntityID)
	setOpt("analyst", filter.Analyst)
	setOpt("decision", filter.Decision)
	setOpt("queue_slug", filter.QueueSlug)
	if filter.CreatedAtGte != nil {
		q.Set("created_at__gte", filter.CreatedAtGte.Format(time.RFC3339))
	}
	if filter.CreatedAtLte != nil {
		q.Set("created_at__lte", filter.CreatedAtLte.Format(time.RFC3339))
	}
}
