package cinder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cinderhq/cinder-go/generated"
	"github.com/cinderhq/cinder-go/routes"
)

func TestGraphSchema(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != routes.GraphSchema || r.Method != http.MethodGet {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, sampleGraphSchema())
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	schema, err := client.Graph.Schema(context.Background())
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	if len(schema.EntitySchemas) != 2 {
		t.Fatalf("expected 2 entity schemas, got %d", len(schema.EntitySchemas))
	}
	user := schema.EntitySchemas[0]
	if user.Slug != "user" || user.Label != "User" {
		t.Fatalf("unexpected entity schema %+v", user)
	}
	if len(user.AttributeSchemas) != 2 || user.AttributeSchemas[0].Slug != "username" {
		t.Fatalf("unexpected attributes %+v", user.AttributeSchemas)
	}
	if user.TitleAttribute == nil || user.TitleAttribute.Slug != "username" {
		t.Fatalf("unexpected title attribute %+v", user.TitleAttribute)
	}
	if len(schema.RelationshipSchemas) != 1 {
		t.Fatalf("expected 1 relationship schema, got %d", len(schema.RelationshipSchemas))
	}
	rel := schema.RelationshipSchemas[0]
	if rel.Slug != "authored" || rel.ReverseLabel != "Authored by" {
		t.Fatalf("unexpected relationship schema %+v", rel)
	}
	if len(rel.EntityPairsBySlug) != 1 || rel.EntityPairsBySlug[0].SourceSlug != "user" {
		t.Fatalf("unexpected entity pairs %+v", rel.EntityPairsBySlug)
	}
}

func TestGraphSchemaEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"entity_schemas":       []any{},
			"relationship_schemas": []any{},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	schema, err := client.Graph.Schema(context.Background())
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	if len(schema.EntitySchemas) != 0 || len(schema.RelationshipSchemas) != 0 {
		t.Fatalf("expected empty schema, got %+v", schema)
	}
}

func TestGraphSchemaInvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"invalid": "data"})
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	_, err := client.Graph.Schema(context.Background())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if verr.Schema != "SchemaResponse" {
		t.Fatalf("unexpected schema %q", verr.Schema)
	}
}

func TestGraphUpsert(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != routes.Graph || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req generated.CreateEntitiesAndRelationshipsSchema
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Entities == nil || len(*req.Entities) != 2 {
			t.Fatalf("unexpected entities %+v", req.Entities)
		}
		if req.Relationships == nil || len(*req.Relationships) != 1 {
			t.Fatalf("unexpected relationships %+v", req.Relationships)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"entities":      *req.Entities,
			"relationships": *req.Relationships,
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	result, err := client.Graph.Upsert(context.Background(),
		[]generated.EntityApiSchema{
			{EntityType: "user", Attributes: map[string]interface{}{"id": "user123", "name": "John Doe"}},
			{EntityType: "post", Attributes: map[string]interface{}{"id": "post456", "content": "Hello world"}},
		},
		[]generated.RelationshipApiSchema{
			{
				SourceType:       "user",
				SourceID:         "user123",
				TargetType:       "post",
				TargetID:         "post456",
				RelationshipType: "author_of",
			},
		},
	)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if len(result.Entities) != 2 || len(result.Relationships) != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestGraphUpsertOmitsNilSlices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if _, ok := raw["relationships"]; ok {
			t.Error("nil relationships should be omitted from the body")
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"entities":      []any{},
			"relationships": []any{},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	_, err := client.Graph.Upsert(context.Background(),
		[]generated.EntityApiSchema{{EntityType: "user", Attributes: map[string]interface{}{"id": "u1"}}},
		nil,
	)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
}
