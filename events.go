package cinder

import (
	"context"
	"net/http"

	"github.com/cinderhq/cinder-go/generated"
	"github.com/cinderhq/cinder-go/routes"
)

// EventsClient wraps the workflow event endpoints.
type EventsClient struct {
	client *Client
}

// SyncEventResult is the outcome of a synchronous event submission. Exactly
// one field is set: Workflow when a workflow ran (200), Status when no
// enabled workflow matched the event (202).
type SyncEventResult struct {
	Workflow *generated.WorkflowResult
	Status   *generated.StatusOkResponse
}

func (e *EventsClient) ensureInitialized() error {
	if e == nil || e.client == nil {
		return ConfigError{Reason: "events client not initialized"}
	}
	return nil
}

// Send enqueues an event for asynchronous workflow processing. It returns as
// soon as the event is accepted, without waiting for workflow execution.
func (e *EventsClient) Send(ctx context.Context, event generated.CustomerEvent) (*generated.StatusOkResponse, error) {
	if err := e.ensureInitialized(); err != nil {
		return nil, err
	}
	var payload generated.StatusOkResponse
	if err := e.client.sendJSON(ctx, http.MethodPost, routes.WorkflowEvent, event, "StatusOkResponse", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SendSync processes an event synchronously, waiting for workflow execution
// to finish. Expect latency; the server aborts runs that exceed its own
// execution deadline.
func (e *EventsClient) SendSync(ctx context.Context, event generated.CustomerEvent) (*SyncEventResult, error) {
	if err := e.ensureInitialized(); err != nil {
		return nil, err
	}
	req, err := e.client.NewRequest(ctx, http.MethodPost, routes.WorkflowEventSync, event)
	if err != nil {
		return nil, err
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// 202 means no enabled workflow matched; the body shape differs.
	if resp.StatusCode == http.StatusAccepted {
		var status generated.StatusOkResponse
		if err := decodeBody(resp.Body, "StatusOkResponse", &status); err != nil {
			return nil, err
		}
		return &SyncEventResult{Status: &status}, nil
	}
	var result generated.WorkflowResult
	if err := decodeBody(resp.Body, "WorkflowResult", &result); err != nil {
		return nil, err
	}
	return &SyncEventResult{Workflow: &result}, nil
}
