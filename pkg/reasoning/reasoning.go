// Package reasoning defines the pure, deterministic content -> intent
// candidate mapping the Reasoner treats as an external black box. Real
// inference is out of scope (Non-goal); this package provides the
// interface every deployment plugs a model or fixture behind, plus a
// deterministic keyword-rule fixture for local runs and tests.
package reasoning

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Candidate is the raw shape the Reasoner hands to the schema validator.
// It intentionally mirrors validator.IntentCandidate's field set before
// validation, since the function under Func may produce a malformed
// candidate that must still flow through validation rather than being
// rejected earlier.
type Candidate struct {
	IntentID       string
	ConversationID string
	MessageID      string
	Action         string
	Parameters     map[string]any
	Confidence     float64
}

// Func is the pure content -> intent candidate mapping supplied by the
// deployment. contextBlocks is the Reasoner's assembled, token-budgeted
// slice of prior event-log (and, if recall is enabled, similar past
// intent) text — additional enrichment a real reasoning function may
// use, but content alone remains authoritative for what the caller asked.
// Implementations must be deterministic and side-effect free.
type Func func(ctx context.Context, conversationID, messageID, content string, contextBlocks []string) (Candidate, error)

// FixtureReasoner is a deterministic keyword-rule reasoner: it never
// calls out to a model and ignores contextBlocks entirely, since its
// rule only ever looks at the literal message content. It exists so the
// pipeline is runnable and testable without any real inference, per the
// Non-goal on real machine-learning inference.
func FixtureReasoner(ctx context.Context, conversationID, messageID, content string, contextBlocks []string) (Candidate, error) {
	lower := strings.ToLower(content)
	candidate := Candidate{
		// Derived, not random: a redelivered event (stale-receipt reclaim,
		// publish-failure retry) must reason to the same intentId so the
		// Reasoner's repeated PersistIntent is a no-op on the existing
		// document instead of writing a second ReasoningIntent.
		IntentID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte(conversationID+"/"+messageID)).String(),
		ConversationID: conversationID,
		MessageID:      messageID,
		Confidence:     0.8,
	}
	switch {
	case strings.HasPrefix(lower, "search for "):
		candidate.Action = "search"
		candidate.Parameters = map[string]any{"query": strings.TrimPrefix(lower, "search for ")}
	case strings.HasPrefix(lower, "calculate "):
		candidate.Action = "calculate"
		candidate.Parameters = map[string]any{"expression": strings.TrimPrefix(lower, "calculate ")}
	case strings.HasPrefix(lower, "summarize "):
		candidate.Action = "summarize"
		candidate.Parameters = map[string]any{"text": strings.TrimPrefix(content, "summarize ")}
	case strings.HasPrefix(lower, "translate "):
		candidate.Action = "translate"
		candidate.Parameters = map[string]any{"text": strings.TrimPrefix(content, "translate ")}
	default:
		// Deliberately outside the schema's action enum: exercises the
		// FAILED_VALIDATION path for content the fixture cannot classify.
		candidate.Action = "unknown"
		candidate.Parameters = map[string]any{"content": content}
		candidate.Confidence = 0.1
	}
	return candidate, nil
}
