// Package cinder is a typed Go client for the Cinder decision/graph HTTP API.
//
// Construct a client explicitly or from the environment:
//
//	client, err := cinder.NewClientWithToken(token, cinder.WithBaseURL("https://api.example.com"))
//	// or
//	client, err := cinder.NewClientFromEnv() // CINDER_API_BASE_URL, CINDER_API_TOKEN
//	defer client.Close()
//
// Operations are grouped by resource:
//
//	schema, err := client.Graph.Schema(ctx)
//	page, err := client.Decisions.List(ctx, &cinder.ListParams{Limit: cinder.Int(10)}, nil)
//	report, err := client.Reports.Create(ctx, generated.CreateReportSchema{...})
//
// Endpoints without a named method are reachable through NewRequest/Do, which
// still applies auth, telemetry, and error mapping. Every failure is one of
// the typed errors in this package; nothing is retried internally.
package cinder
