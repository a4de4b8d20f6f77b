package reasoner

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wilhg/triad/pkg/bus"
	"github.com/wilhg/triad/pkg/reasoning"
	"github.com/wilhg/triad/pkg/recall"
	"github.com/wilhg/triad/pkg/statemachine"
	"github.com/wilhg/triad/pkg/store"
	"github.com/wilhg/triad/pkg/store/entstore"
)

func newTestWorker(t *testing.T) (*Worker, *entstore.Store, *bus.MemoryBus) {
	t.Helper()
	ctx := context.Background()
	dsn := "sqlite:file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_fk=1"
	st, err := entstore.Open(ctx, dsn)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(ctx); err != nil {
		t.Fatal(err)
	}
	b := bus.NewMemoryBus(8)
	w := New(st, b, reasoning.FixtureReasoner, 2*time.Minute, bus.TopicActionRequested, nil)
	return w, st, b
}

func TestWorker_ValidIntentAdvancesToActionRequested(t *testing.T) {
	ctx := context.Background()
	w, st, b := newTestWorker(t)

	convID := uuid.NewString()
	if err := st.CreateConversation(ctx, convID); err != nil {
		t.Fatal(err)
	}
	if err := st.TransitionState(ctx, convID, statemachine.ReasoningRequested); err != nil {
		t.Fatal(err)
	}

	env := bus.Envelope{
		EventID:        uuid.NewString(),
		EventType:      bus.EventReasoningRequested,
		ConversationID: convID,
		MessageID:      uuid.NewString(),
		Payload:        map[string]any{"content": "search for cats"},
	}
	if err := w.Handle(ctx, env); err != nil {
		t.Fatal(err)
	}

	conv, err := st.GetConversation(ctx, convID)
	if err != nil {
		t.Fatal(err)
	}
	if conv.State != statemachine.ActionRequested {
		t.Fatalf("state=%s want ACTION_REQUESTED", conv.State)
	}

	dead := b.DeadLettered(bus.TopicActionDeadLetter)
	if len(dead) != 0 {
		t.Fatalf("expected no dead-lettered action events, got %d", len(dead))
	}
}

func TestWorker_InvalidIntentFailsValidation(t *testing.T) {
	ctx := context.Background()
	w, st, _ := newTestWorker(t)

	convID := uuid.NewString()
	if err := st.CreateConversation(ctx, convID); err != nil {
		t.Fatal(err)
	}
	if err := st.TransitionState(ctx, convID, statemachine.ReasoningRequested); err != nil {
		t.Fatal(err)
	}

	env := bus.Envelope{
		EventID:        uuid.NewString(),
		EventType:      bus.EventReasoningRequested,
		ConversationID: convID,
		MessageID:      uuid.NewString(),
		Payload:        map[string]any{"content": "dance for me"},
	}
	if err := w.Handle(ctx, env); err != nil {
		t.Fatal(err)
	}

	conv, err := st.GetConversation(ctx, convID)
	if err != nil {
		t.Fatal(err)
	}
	if conv.State != statemachine.FailedValidation {
		t.Fatalf("state=%s want FAILED_VALIDATION", conv.State)
	}
}

func TestWorker_DuplicateDeliveryShortCircuits(t *testing.T) {
	ctx := context.Background()
	w, st, _ := newTestWorker(t)

	convID := uuid.NewString()
	if err := st.CreateConversation(ctx, convID); err != nil {
		t.Fatal(err)
	}
	if err := st.TransitionState(ctx, convID, statemachine.ReasoningRequested); err != nil {
		t.Fatal(err)
	}

	env := bus.Envelope{
		EventID:        uuid.NewString(),
		EventType:      bus.EventReasoningRequested,
		ConversationID: convID,
		MessageID:      uuid.NewString(),
		Payload:        map[string]any{"content": "search for cats"},
	}
	if err := w.Handle(ctx, env); err != nil {
		t.Fatal(err)
	}
	// Second delivery of the same event must short-circuit on the receipt
	// and not attempt a second (now-illegal) transition.
	if err := w.Handle(ctx, env); err != nil {
		t.Fatal(err)
	}
}

func TestWorker_ContextAssemblyReceivesPriorEventLog(t *testing.T) {
	ctx := context.Background()
	st := entOpen(t)
	b := bus.NewMemoryBus(8)

	var captured []string
	capture := func(ctx context.Context, conversationID, messageID, content string, contextBlocks []string) (reasoning.Candidate, error) {
		captured = contextBlocks
		return reasoning.FixtureReasoner(ctx, conversationID, messageID, content, contextBlocks)
	}
	w := New(st, b, capture, 2*time.Minute, bus.TopicActionRequested, nil)

	convID := uuid.NewString()
	if err := st.CreateConversation(ctx, convID); err != nil {
		t.Fatal(err)
	}
	if err := st.AppendEventLog(ctx, store.EventLogEntry{
		EventID:        uuid.NewString(),
		ConversationID: convID,
		EventType:      "reasoning_requested",
		Payload:        map[string]any{"content": "search for cats"},
		CreatedAt:      time.Now().UTC(),
	}); err != nil {
		t.Fatal(err)
	}
	if err := st.TransitionState(ctx, convID, statemachine.ReasoningRequested); err != nil {
		t.Fatal(err)
	}

	env := bus.Envelope{
		EventID:        uuid.NewString(),
		EventType:      bus.EventReasoningRequested,
		ConversationID: convID,
		MessageID:      uuid.NewString(),
		Payload:        map[string]any{"content": "search for cats"},
	}
	if err := w.Handle(ctx, env); err != nil {
		t.Fatal(err)
	}
	if len(captured) == 0 {
		t.Fatal("expected the prior event-log entry to appear in the assembled context")
	}
}

func TestWorker_RecallEnrichesContext(t *testing.T) {
	ctx := context.Background()
	st := entOpen(t)
	b := bus.NewMemoryBus(8)

	embedder := recall.NewFakeEmbedder(8)
	vs := recall.NewMemoryStore()
	vecs, err := embedder.Embed(ctx, []string{"search for cats"})
	if err != nil {
		t.Fatal(err)
	}
	convID := uuid.NewString()
	if err := vs.Upsert(ctx, []recall.Item{{ID: "past-intent-1", Namespace: convID, Vector: vecs[0], Metadata: map[string]any{"action": "search"}}}); err != nil {
		t.Fatal(err)
	}

	var captured []string
	capture := func(ctx context.Context, conversationID, messageID, content string, contextBlocks []string) (reasoning.Candidate, error) {
		captured = contextBlocks
		return reasoning.FixtureReasoner(ctx, conversationID, messageID, content, contextBlocks)
	}
	w := New(st, b, capture, 2*time.Minute, bus.TopicActionRequested, nil, WithRecall(embedder, vs, 1))

	if err := st.CreateConversation(ctx, convID); err != nil {
		t.Fatal(err)
	}
	if err := st.TransitionState(ctx, convID, statemachine.ReasoningRequested); err != nil {
		t.Fatal(err)
	}

	env := bus.Envelope{
		EventID:        uuid.NewString(),
		EventType:      bus.EventReasoningRequested,
		ConversationID: convID,
		MessageID:      uuid.NewString(),
		Payload:        map[string]any{"content": "search for cats"},
	}
	if err := w.Handle(ctx, env); err != nil {
		t.Fatal(err)
	}
	if len(captured) == 0 {
		t.Fatal("expected the recalled past intent to appear in the assembled context")
	}
}

func entOpen(t *testing.T) *entstore.Store {
	t.Helper()
	ctx := context.Background()
	dsn := "sqlite:file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_fk=1"
	st, err := entstore.Open(ctx, dsn)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(ctx); err != nil {
		t.Fatal(err)
	}
	return st
}
