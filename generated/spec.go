package generated

import _ "embed"

// OpenAPISpec is the committed OpenAPI document the models are generated
// from. The SDK validates response bodies against its component schemas.
//
//go:embed openapi.json
var OpenAPISpec []byte
