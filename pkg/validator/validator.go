// Package validator implements the structural schema validator: a pure,
// total function that checks a reasoning function's intent candidate
// against a fixed JSON Schema before it is allowed to cross the boundary
// into execution. It never panics and never performs I/O.
package validator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidateFunc validates data against a JSON schema (bytes) and returns an
// error on failure. Reused by the tool registry to validate tool input and
// output payloads. JSONSchemaValidator compiles the schema on every call;
// only the intent candidate schema is compiled once, at package init.
type ValidateFunc func(schema []byte, data any) error

// JSONSchemaValidator is a ValidateFunc backed by jsonschema/v6.
func JSONSchemaValidator(schema []byte, data any) error {
	if len(schema) == 0 {
		return nil
	}
	sch, err := compile(schema)
	if err != nil {
		return err
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return sch.Validate(v)
}

// CompileJSONSchema compiles the provided schema and returns an error only if
// the schema itself is invalid; it does not validate any instance data.
func CompileJSONSchema(schema []byte) error {
	if len(schema) == 0 {
		return nil
	}
	_, err := compile(schema)
	return err
}

func compile(schema []byte) (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	var doc any
	if err := json.Unmarshal(schema, &doc); err != nil {
		return nil, err
	}
	// Anonymous in-memory resource; a fresh URL per call keeps compilations
	// independent (the compiler caches resources by URL internally).
	url := fmt.Sprintf("mem://schema-%p.json", schema)
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	return c.Compile(url)
}

// ValidActions enumerates the closed set of intent actions the pipeline allows.
var ValidActions = map[string]bool{
	"search":    true,
	"calculate": true,
	"summarize": true,
	"translate": true,
}

// intentCandidateSchema is the structural shape required of a reasoning
// function's output, minus the UUID format check (done separately below so
// the error message names the offending field precisely).
const intentCandidateSchema = `{
  "type": "object",
  "properties": {
    "intentId": {"type": "string", "minLength": 1},
    "conversationId": {"type": "string", "minLength": 1},
    "messageId": {"type": "string", "minLength": 1},
    "action": {"type": "string", "enum": ["search", "calculate", "summarize", "translate"]},
    "parameters": {"type": "object"},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1}
  },
  "required": ["intentId", "conversationId", "messageId", "action", "parameters", "confidence"],
  "additionalProperties": true
}`

var compiledIntentSchema *jsonschema.Schema

func init() {
	sch, err := compile([]byte(intentCandidateSchema))
	if err != nil {
		// The schema above is a fixed literal; a compile failure here is a
		// programming error caught immediately at process start, not a
		// runtime condition callers need to handle.
		panic(fmt.Sprintf("validator: intent candidate schema failed to compile: %v", err))
	}
	compiledIntentSchema = sch
}

// IntentCandidate is the shape a reasoning function returns: intentId,
// conversationId, messageId, action, parameters, confidence.
type IntentCandidate struct {
	IntentID       string         `json:"intentId"`
	ConversationID string         `json:"conversationId"`
	MessageID      string         `json:"messageId"`
	Action         string         `json:"action"`
	Parameters     map[string]any `json:"parameters"`
	Confidence     float64        `json:"confidence"`
}

// Result is the outcome of validating an intent candidate.
type Result struct {
	Valid bool
	Error string
}

// ValidateIntentCandidate checks a candidate against the intent schema.
// It is pure and total: it never returns a Go error, only a Result
// describing whether the candidate is valid and, if not, a human-readable
// summary of every violated path.
func ValidateIntentCandidate(candidate IntentCandidate) Result {
	b, err := json.Marshal(candidate)
	if err != nil {
		return Result{Valid: false, Error: "candidate is not serializable: " + err.Error()}
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return Result{Valid: false, Error: "candidate is not serializable: " + err.Error()}
	}

	var violations []string
	if err := compiledIntentSchema.Validate(v); err != nil {
		violations = append(violations, summarizeSchemaError(err))
	}
	if _, err := uuid.Parse(candidate.IntentID); err != nil {
		violations = append(violations, fmt.Sprintf("intentId: not a valid UUID (%q)", candidate.IntentID))
	}

	if len(violations) == 0 {
		return Result{Valid: true}
	}
	return Result{Valid: false, Error: strings.Join(violations, "; ")}
}

// summarizeSchemaError flattens a jsonschema validation error (which prints
// as one "path: reason" line per cause, newline-separated) into a single
// human-readable, semicolon-joined summary.
func summarizeSchemaError(err error) string {
	lines := strings.Split(strings.TrimSpace(err.Error()), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.Join(lines, "; ")
}
