// Package contract embeds the machine-readable wire contract for the
// interview exchange and validates raw payloads against it. It is a
// defensive layer collaborators can run before the typed decode in pkg/wire:
// the named component schemas gate the envelope, the typed packages enforce
// the full union semantics.
package contract

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed contract.yaml
var contractYAML []byte

var (
	loadOnce sync.Once
	loaded   *openapi3.T
	loadErr  error
)

// Load parses and validates the embedded contract document. The result is
// cached; callers must treat it as read-only.
func Load(ctx context.Context) (*openapi3.T, error) {
	loadOnce.Do(func() {
		loader := &openapi3.Loader{Context: ctx}
		doc, err := loader.LoadFromData(contractYAML)
		if err != nil {
			loadErr = fmt.Errorf("contract: load document: %w", err)
			return
		}
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			loadErr = fmt.Errorf("contract: validate document: %w", err)
			return
		}
		loaded = doc
	})
	return loaded, loadErr
}

// Schema returns the named component schema from the contract.
func Schema(ctx context.Context, name string) (*openapi3.Schema, error) {
	doc, err := Load(ctx)
	if err != nil {
		return nil, err
	}
	if doc.Components == nil {
		return nil, fmt.Errorf("contract: document has no components")
	}
	ref, ok := doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("contract: no schema named %q", name)
	}
	return ref.Value, nil
}

// ValidatePayload checks a raw JSON payload against the named component
// schema. A nil error means the payload fits the contract envelope; it says
// nothing about the deeper union semantics the typed packages enforce.
func ValidatePayload(ctx context.Context, name string, raw []byte) error {
	schema, err := Schema(ctx, name)
	if err != nil {
		return err
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("contract: payload is not JSON: %w", err)
	}

	if err := schema.VisitJSON(value); err != nil {
		return fmt.Errorf("contract: payload does not match %s: %w", name, err)
	}
	return nil
}
