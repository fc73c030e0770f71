// Package routes provides shared API route constants so client code and
// tests agree on endpoint paths.
package routes

// Cinder keeps the Django convention of trailing slashes on every route.
const (
	// ReportCreate accepts a new report for an entity.
	ReportCreate = "/api/v1/create_report/"

	// Reports lists reports with pagination and filters.
	Reports = "/api/v1/report/"

	// DecisionCreate records a moderation decision.
	DecisionCreate = "/api/v1/create_decision/"

	// Decisions lists decisions; append "{id}/" for a single decision.
	Decisions = "/api/v1/decisions/"

	// AppealCreate files an appeal against a decision.
	AppealCreate = "/api/v1/create_appeal/"

	// Appeals lists appeals; append "{id}/" for a single appeal.
	Appeals = "/api/v1/appeal/"

	// GraphSchema returns the entity and relationship schemas.
	GraphSchema = "/api/v1/graph/schema/"

	// Graph upserts entities and relationships.
	Graph = "/api/v1/graph/"

	// WorkflowEvent enqueues an event for asynchronous workflow processing.
	WorkflowEvent = "/api/v2/workflows/event/"

	// WorkflowEventSync processes an event synchronously and returns the
	// workflow result.
	WorkflowEventSync = "/api/v2/workflows/event/sync/"
)
