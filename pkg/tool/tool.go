// Package tool defines the Executor's deterministic tool contract: a
// schema-described, permissioned callable invoked as (action, parameters)
// -> {success, result, error?}. Determinism is required so that repeated
// execution yields the same output even when the deduplication layers
// fail.
package tool

import (
	"context"

	"github.com/wilhg/triad/pkg/errmodel"
	"github.com/wilhg/triad/pkg/validator"
)

// Permission describes a capability a tool requires.
type Permission struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Descriptor declares the static interface of a tool. InputSchema and
// OutputSchema are JSON Schemas (draft 2020-12) in UTF-8 bytes.
type Descriptor struct {
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	InputSchema  []byte       `json:"input_schema"`
	OutputSchema []byte       `json:"output_schema"`
	Permissions  []Permission `json:"permissions,omitempty"`
}

// Tool is a callable unit with schema-validated inputs/outputs. A tool
// must be a pure function of its arguments: given the same action and
// parameters, it always returns the same result.
type Tool interface {
	Describe() Descriptor
	Invoke(ctx context.Context, args map[string]any) (map[string]any, error)
}

// Describe is a nil-safe helper to fetch a Tool's descriptor.
func Describe(t Tool) Descriptor {
	if t == nil {
		return Descriptor{}
	}
	return t.Describe()
}

// Result is what the Executor persists as an ActionResult.
type Result struct {
	Success bool
	Output  map[string]any
	Error   string
}

// SafeInvoke validates input against the tool's schema, invokes it, and
// validates output, converting any failure into a Result rather than
// propagating a transport-level error — a tool failure is a business
// outcome, not a transport-level error.
func SafeInvoke(ctx context.Context, t Tool, args map[string]any, allowed map[string]bool, validate validator.ValidateFunc) Result {
	if t == nil {
		return Result{Success: false, Error: "tool is nil"}
	}
	d := t.Describe()
	for _, p := range d.Permissions {
		if !allowed[p.Name] {
			return Result{Success: false, Error: "permission denied: " + p.Name}
		}
	}
	if err := validate(d.InputSchema, args); err != nil {
		return Result{Success: false, Error: "invalid tool input: " + err.Error()}
	}
	out, err := t.Invoke(ctx, args)
	if err != nil {
		return Result{Success: false, Error: err.Error()}
	}
	if err := validate(d.OutputSchema, out); err != nil {
		return Result{Success: false, Error: "invalid tool output: " + err.Error()}
	}
	return Result{Success: true, Output: out}
}

// asValidationError is a convenience used by callers that want the
// compact categorized error model instead of a bare Result (e.g. the
// registry's own setup-time failures).
func asValidationError(code, message string, details map[string]any) error {
	return errmodel.Validation(code, message, details)
}
