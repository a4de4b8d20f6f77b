package validator

import (
	"testing"

	"github.com/google/uuid"
)

func validCandidate() IntentCandidate {
	return IntentCandidate{
		IntentID:       uuid.NewString(),
		ConversationID: "conv-1",
		MessageID:      "msg-1",
		Action:         "search",
		Parameters:     map[string]any{"query": "cats"},
		Confidence:     0.9,
	}
}

func TestValidateIntentCandidate_Valid(t *testing.T) {
	r := ValidateIntentCandidate(validCandidate())
	if !r.Valid {
		t.Fatalf("expected valid, got error: %s", r.Error)
	}
	if r.Error != "" {
		t.Fatalf("valid result should carry no error, got %q", r.Error)
	}
}

func TestValidateIntentCandidate_UnknownAction(t *testing.T) {
	c := validCandidate()
	c.Action = "dance"
	r := ValidateIntentCandidate(c)
	if r.Valid {
		t.Fatal("expected invalid for unknown action")
	}
	if r.Error == "" {
		t.Fatal("expected a non-empty validation error")
	}
}

func TestValidateIntentCandidate_BadConfidence(t *testing.T) {
	c := validCandidate()
	c.Confidence = 1.5
	r := ValidateIntentCandidate(c)
	if r.Valid {
		t.Fatal("expected invalid for out-of-range confidence")
	}
}

func TestValidateIntentCandidate_NotUUID(t *testing.T) {
	c := validCandidate()
	c.IntentID = "not-a-uuid"
	r := ValidateIntentCandidate(c)
	if r.Valid {
		t.Fatal("expected invalid for non-UUID intentId")
	}
}

func TestValidateIntentCandidate_MissingConversationID(t *testing.T) {
	c := validCandidate()
	c.ConversationID = ""
	r := ValidateIntentCandidate(c)
	if r.Valid {
		t.Fatal("expected invalid for empty conversationId")
	}
}

func TestValidateIntentCandidate_NeverPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("ValidateIntentCandidate panicked: %v", r)
		}
	}()
	ValidateIntentCandidate(IntentCandidate{})
}

func TestJSONSchemaValidator_EmptySchemaAlwaysPasses(t *testing.T) {
	if err := JSONSchemaValidator(nil, map[string]any{"anything": true}); err != nil {
		t.Fatalf("empty schema should never fail validation: %v", err)
	}
}

func TestJSONSchemaValidator_RejectsBadInput(t *testing.T) {
	schema := []byte(`{"type":"object","properties":{"n":{"type":"number"}},"required":["n"]}`)
	if err := JSONSchemaValidator(schema, map[string]any{"n": "not-a-number"}); err == nil {
		t.Fatal("expected validation error")
	}
	if err := JSONSchemaValidator(schema, map[string]any{"n": 1.0}); err != nil {
		t.Fatalf("expected valid input to pass: %v", err)
	}
}

func TestCompileJSONSchema_RejectsInvalidSchema(t *testing.T) {
	if err := CompileJSONSchema([]byte(`{"type": 123}`)); err == nil {
		t.Fatal("expected schema compile error")
	}
}
