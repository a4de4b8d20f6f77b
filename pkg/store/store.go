// Package store defines the document-store contract the orchestrator's
// three stages share: conversations, their child messages/intents/actions,
// the append-only event log, and the two deduplication primitives
// (receipts and idempotency keys). Implementations must provide every
// multi-document invariant via a transaction scoped to either a
// conversation's hierarchy or a single receipt/key document.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/wilhg/triad/pkg/statemachine"
)

// ErrNotFound is returned by GetConversation when no conversation with the
// given id exists. Callers distinguish this from a transient store failure
// with errors.Is.
var ErrNotFound = errors.New("store: conversation not found")

// Conversation is the root document. Its state is mutated only through
// TransitionState.
type Conversation struct {
	ConversationID string
	State          statemachine.State
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Message is an immutable child of a conversation.
type Message struct {
	MessageID      string
	ConversationID string
	Content        string
	IdempotencyKey string // empty if the client did not supply one
	CreatedAt      time.Time
}

// Intent is an immutable child of a conversation, written exactly once by
// the Reasoner.
type Intent struct {
	IntentID        string
	ConversationID  string
	MessageID       string
	Action          string
	Parameters      map[string]any
	Confidence      float64
	Valid           bool
	ValidationError string // present iff !Valid
	CreatedAt       time.Time
}

// Action is an immutable child of a conversation, written exactly once by
// the Executor.
type Action struct {
	ActionID       string
	ConversationID string
	IntentID       string
	MessageID      string
	Result         map[string]any
	Success        bool
	Error          string
	ExecutedAt     time.Time
}

// EventLogEntry is an append-only audit record scoped beneath a
// conversation.
type EventLogEntry struct {
	EventID        string
	ConversationID string
	EventType      string
	Payload        map[string]any
	CreatedAt      time.Time
}

// ReceiptMeta is the handler-supplied context attached to a claimed
// receipt.
type ReceiptMeta struct {
	Handler        string
	ConversationID string
	MessageID      string
}

// IdempotencyClaim is the result of ClaimIdempotencyKey.
type IdempotencyClaim struct {
	IsNew             bool
	ExistingMessageID string // set iff !IsNew
}

// Store is the full persistence contract. Every method that mutates more
// than one field of a single document runs inside an implementation-owned
// transaction; callers never see partial writes.
type Store interface {
	// CreateConversation sets state RECEIVED and timestamps. Fails if id
	// already exists.
	CreateConversation(ctx context.Context, conversationID string) error

	// TransitionState checks (current -> next) against the transition
	// table and, if legal, writes next and bumps updatedAt. Returns
	// *statemachine.InvalidTransitionError otherwise.
	TransitionState(ctx context.Context, conversationID string, next statemachine.State) error

	// GetConversation returns the current conversation document, or
	// ErrNotFound if no conversation with that id exists.
	GetConversation(ctx context.Context, conversationID string) (Conversation, error)

	// ClaimReceipt is the central deduplication primitive: every handler
	// that processes a bus event claims a receipt before acting, which
	// also rejects duplicate delivery of the same event. staleThreshold
	// governs when a "processing" receipt is considered
	// abandoned and eligible for reclamation.
	ClaimReceipt(ctx context.Context, eventID string, meta ReceiptMeta, staleThreshold time.Duration) (bool, error)

	// CompleteReceipt is an idempotent upsert: it must not fail if the
	// receipt document is absent.
	CompleteReceipt(ctx context.Context, eventID string) error

	// ClaimIdempotencyKey never overwrites an existing key.
	ClaimIdempotencyKey(ctx context.Context, key, messageID string) (IdempotencyClaim, error)

	// FindActionResultByIntentID is the Executor's second line of
	// defense against duplicate execution.
	FindActionResultByIntentID(ctx context.Context, conversationID, intentID string) (bool, error)

	// PersistMessage writes an immutable UserMessage beneath its
	// conversation.
	PersistMessage(ctx context.Context, msg Message) error

	// PersistIntent writes an immutable ReasoningIntent, valid or not. A
	// second call with an intentId already on record is a no-op success.
	PersistIntent(ctx context.Context, intent Intent) error

	// PersistAction writes an immutable ActionResult.
	PersistAction(ctx context.Context, action Action) error

	// AppendEventLog appends an audit record beneath a conversation.
	AppendEventLog(ctx context.Context, entry EventLogEntry) error

	// ListEventLog returns a conversation's audit records in creation
	// order, oldest first. Used by the Reasoner to assemble bounded
	// context before invoking the reasoning function.
	ListEventLog(ctx context.Context, conversationID string) ([]EventLogEntry, error)

	// Close releases underlying resources.
	Close() error
}
