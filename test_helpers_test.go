package cinder

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

// Shared fixtures.
var (
	testDecisionID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testReportID   = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	testAppealID   = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	testTimestamp  = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
)

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	client, err := NewClientWithToken("test-token",
		WithBaseURL(srv.URL),
		WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("new test client: %v", err)
	}
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, payload any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		t.Fatalf("encode response: %v", err)
	}
}

func sampleDecision() map[string]any {
	return map[string]any{
		"id":          testDecisionID.String(),
		"entity_type": "user",
		"entity_id":   "user-123",
		"decision":    "remove",
		"analyst":     "analyst@example.com",
		"created_at":  testTimestamp.Format(time.RFC3339),
	}
}

func sampleReport() map[string]any {
	return map[string]any{
		"id":          testReportID.String(),
		"entity":      map[string]any{"type": "user", "id": "user-123"},
		"report_type": "abuse",
		"reason":      "spam",
		"status":      "open",
		"created_at":  testTimestamp.Format(time.RFC3339),
	}
}

func sampleAppeal() map[string]any {
	return map[string]any{
		"id":          testAppealID.String(),
		"decision_id": testDecisionID.String(),
		"reason":      "mistaken identity",
		"status":      "pending",
		"created_at":  testTimestamp.Format(time.RFC3339),
	}
}

func sampleGraphSchema() map[string]any {
	return map[string]any{
		"entity_schemas": []any{
			map[string]any{
				"slug":  "user",
				"label": "User",
				"attribute_schemas": []any{
					map[string]any{"slug": "username", "label": "Username", "attribute_type": "string"},
					map[string]any{"slug": "email", "label": "Email", "attribute_type": "string"},
				},
				"title_attribute": map[string]any{"slug": "username", "label": "Username", "attribute_type": "string"},
			},
			map[string]any{
				"slug":  "post",
				"label": "Post",
				"attribute_schemas": []any{
					map[string]any{"slug": "title", "label": "Title", "attribute_type": "string"},
					map[string]any{"slug": "content", "label": "Content", "attribute_type": "text"},
				},
				"title_attribute": map[string]any{"slug": "title", "label": "Title", "attribute_type": "string"},
			},
		},
		"relationship_schemas": []any{
			map[string]any{
				"slug":          "authored",
				"label":         "Authored",
				"reverse_label": "Authored by",
				"entity_pairs_by_slug": []any{
					map[string]any{"source_slug": "user", "target_slug": "post"},
				},
			},
		},
	}
}
