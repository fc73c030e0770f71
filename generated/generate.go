package generated

// Regenerate models from the committed OpenAPI document.
// Requires: go install github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@latest

//go:generate oapi-codegen -config oapi-codegen.yaml openapi.json
