package cinder

import (
	"context"
	"net/http"

	"github.com/cinderhq/cinder-go/generated"
	"github.com/cinderhq/cinder-go/routes"
)

// GraphClient wraps the graph schema and upsert endpoints.
type GraphClient struct {
	client *Client
}

func (g *GraphClient) ensureInitialized() error {
	if g == nil || g.client == nil {
		return ConfigError{Reason: "graph client not initialized"}
	}
	return nil
}

// Schema returns the entity and relationship schemas that define the shape of
// the Cinder graph.
func (g *GraphClient) Schema(ctx context.Context) (*generated.SchemaResponse, error) {
	if err := g.ensureInitialized(); err != nil {
		return nil, err
	}
	var payload generated.SchemaResponse
	if err := g.client.sendJSON(ctx, http.MethodGet, routes.GraphSchema, nil, "SchemaResponse", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Upsert creates or updates graph entities and relationships. Entities are
// identified by entity type plus id attribute; an existing match is updated
// in place.
func (g *GraphClient) Upsert(ctx context.Context, entities []generated.EntityApiSchema, relationships []generated.RelationshipApiSchema) (*generated.CreateEntitiesAndRelationshipsResponseSchema, error) {
	if err := g.ensureInitialized(); err != nil {
		return nil, err
	}
	req := generated.CreateEntitiesAndRelationshipsSchema{}
	if entities != nil {
		req.Entities = &entities
	}
	if relationships != nil {
		req.Relationships = &relationships
	}
	var payload generated.CreateEntitiesAndRelationshipsResponseSchema
	if err := g.client.sendJSON(ctx, http.MethodPost, routes.Graph, req, "CreateEntitiesAndRelationshipsResponseSchema", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
