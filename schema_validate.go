package cinder

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/cinderhq/cinder-go/generated"
)

// componentSchemas holds one compiled validator per OpenAPI component,
// compiled lazily from the embedded document.
var (
	componentOnce    sync.Once
	componentCompile map[string]*gojsonschema.Schema
	componentErr     error
)

func compileComponents() (map[string]*gojsonschema.Schema, error) {
	componentOnce.Do(func() {
		var doc struct {
			Components struct {
				Schemas map[string]json.RawMessage `json:"schemas"`
			} `json:"components"`
		}
		if err := json.Unmarshal(generated.OpenAPISpec, &doc); err != nil {
			componentErr = fmt.Errorf("parse embedded openapi document: %w", err)
			return
		}
		schemas := make(map[string]any, len(doc.Components.Schemas))
		for name, raw := range doc.Components.Schemas {
			var s any
			if err := json.Unmarshal(raw, &s); err != nil {
				componentErr = fmt.Errorf("parse component %s: %w", name, err)
				return
			}
			schemas[name] = s
		}
		compiled := make(map[string]*gojsonschema.Schema, len(schemas))
		for name := range schemas {
			// Each validator is the component itself with the full component
			// set alongside, so internal $refs resolve.
			root := map[string]any{
				"$ref":       "#/components/schemas/" + name,
				"components": map[string]any{"schemas": schemas},
			}
			schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(root))
			if err != nil {
				componentErr = fmt.Errorf("compile component %s: %w", name, err)
				return
			}
			compiled[name] = schema
		}
		componentCompile = compiled
	})
	return componentCompile, componentErr
}

// validateComponent checks raw JSON against the named OpenAPI component
// schema, returning a ValidationError describing every violation.
func validateComponent(name string, data []byte) error {
	compiled, err := compileComponents()
	if err != nil {
		return &ValidationError{Schema: name, Err: err}
	}
	schema, ok := compiled[name]
	if !ok {
		return &ValidationError{Schema: name, Err: fmt.Errorf("unknown component schema %q", name)}
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &ValidationError{Schema: name, Err: err}
	}
	if result.Valid() {
		return nil
	}
	causes := make([]string, 0, len(result.Errors()))
	for _, cause := range result.Errors() {
		causes = append(causes, cause.String())
	}
	return &ValidationError{Schema: name, Causes: causes}
}
