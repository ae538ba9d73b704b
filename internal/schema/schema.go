// Package schema compiles JSON Schemas written as Go maps and caches them
// by name. Model artifacts and LLM responses are both checked through it.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Registry caches compiled schemas under a URL prefix.
type Registry struct {
	prefix string
	cache  sync.Map // name → *jsonschema.Schema
}

// NewRegistry returns a registry whose resources live under
// schema://<prefix>/<name>.json.
func NewRegistry(prefix string) *Registry {
	return &Registry{prefix: prefix}
}

// Compile returns the cached schema for name, compiling def on first use.
// A name is compiled once; later definitions under the same name are
// ignored.
func (r *Registry) Compile(name string, def any) (*jsonschema.Schema, error) {
	if cached, ok := r.cache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants plain JSON values, not typed Go maps.
	raw, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %s: %w", name, err)
	}
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s/%s.json", r.prefix, name)
	if err := c.AddResource(url, parsed); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", name, err)
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}

	actual, _ := r.cache.LoadOrStore(name, s)
	return actual.(*jsonschema.Schema), nil
}

// Validate checks an already decoded document against the named schema.
func (r *Registry) Validate(name string, def, doc any) error {
	s, err := r.Compile(name, def)
	if err != nil {
		return err
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("schema %s: %w", name, err)
	}
	return nil
}

// ValidateJSON decodes raw and validates it. Decoding goes through the
// jsonschema decoder so numbers keep their exact value.
func (r *Registry) ValidateJSON(name string, def any, raw []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return r.Validate(name, def, doc)
}
