package entstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wilhg/triad/pkg/statemachine"
	"github.com/wilhg/triad/pkg/store"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	dsn := "sqlite:file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_fk=1"
	st, err := Open(ctx, dsn)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(ctx); err != nil {
		t.Fatal(err)
	}
	return st
}

func TestSQLite_CreateAndTransitionConversation(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	id := uuid.NewString()
	if err := st.CreateConversation(ctx, id); err != nil {
		t.Fatal(err)
	}
	conv, err := st.GetConversation(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if conv.State != statemachine.Received {
		t.Fatalf("state=%s want RECEIVED", conv.State)
	}

	if err := st.TransitionState(ctx, id, statemachine.ReasoningRequested); err != nil {
		t.Fatal(err)
	}
	conv, err = st.GetConversation(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if conv.State != statemachine.ReasoningRequested {
		t.Fatalf("state=%s want REASONING_REQUESTED", conv.State)
	}

	// Illegal transition must fail and leave state unchanged.
	if err := st.TransitionState(ctx, id, statemachine.ActionCompleted); err == nil {
		t.Fatal("expected InvalidTransitionError")
	}
	conv, err = st.GetConversation(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if conv.State != statemachine.ReasoningRequested {
		t.Fatalf("state changed after failed transition: %s", conv.State)
	}
}

func TestSQLite_CreateConversation_Duplicate(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	id := uuid.NewString()
	if err := st.CreateConversation(ctx, id); err != nil {
		t.Fatal(err)
	}
	if err := st.CreateConversation(ctx, id); err == nil {
		t.Fatal("expected duplicate conversation creation to fail")
	}
}

func TestSQLite_ClaimReceipt_FirstClaimWinsThenDuplicateShortCircuits(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	eventID := uuid.NewString()
	meta := store.ReceiptMeta{Handler: "reasoner", ConversationID: "c1", MessageID: "m1"}

	ok, err := st.ClaimReceipt(ctx, eventID, meta, 2*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected first claim to succeed")
	}

	ok, err = st.ClaimReceipt(ctx, eventID, meta, 2*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected second claim (still processing, not stale) to be rejected")
	}

	if err := st.CompleteReceipt(ctx, eventID); err != nil {
		t.Fatal(err)
	}
	ok, err = st.ClaimReceipt(ctx, eventID, meta, 2*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected claim on a completed receipt to be rejected (genuine duplicate)")
	}
}

func TestSQLite_ClaimReceipt_StaleReclaim(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	eventID := uuid.NewString()
	meta := store.ReceiptMeta{Handler: "executor", ConversationID: "c1", MessageID: "m1"}

	if ok, err := st.ClaimReceipt(ctx, eventID, meta, 1*time.Millisecond); !ok || err != nil {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	time.Sleep(5 * time.Millisecond)
	ok, err := st.ClaimReceipt(ctx, eventID, meta, 1*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected stale receipt to be reclaimed")
	}
}

func TestSQLite_CompleteReceipt_AbsentIsUpsert(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	if err := st.CompleteReceipt(ctx, uuid.NewString()); err != nil {
		t.Fatalf("CompleteReceipt on absent receipt must not fail: %v", err)
	}
}

func TestSQLite_ClaimIdempotencyKey(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	key := uuid.NewString()

	claim, err := st.ClaimIdempotencyKey(ctx, key, "msg-1")
	if err != nil {
		t.Fatal(err)
	}
	if !claim.IsNew {
		t.Fatal("expected first claim to be new")
	}

	claim, err = st.ClaimIdempotencyKey(ctx, key, "msg-2")
	if err != nil {
		t.Fatal(err)
	}
	if claim.IsNew {
		t.Fatal("expected second claim of the same key to not be new")
	}
	if claim.ExistingMessageID != "msg-1" {
		t.Fatalf("existingMessageID=%s want msg-1", claim.ExistingMessageID)
	}
}

func TestSQLite_FindActionResultByIntentID(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	convID := uuid.NewString()
	intentID := uuid.NewString()

	found, err := st.FindActionResultByIntentID(ctx, convID, intentID)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("expected no action result before one is persisted")
	}

	if err := st.PersistAction(ctx, store.Action{
		ActionID:       uuid.NewString(),
		ConversationID: convID,
		IntentID:       intentID,
		MessageID:      uuid.NewString(),
		Success:        true,
		ExecutedAt:     time.Now().UTC(),
	}); err != nil {
		t.Fatal(err)
	}

	found, err = st.FindActionResultByIntentID(ctx, convID, intentID)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected action result to be found after persisting")
	}
}

func TestSQLite_PersistMessageAndIntent(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	convID := uuid.NewString()
	if err := st.CreateConversation(ctx, convID); err != nil {
		t.Fatal(err)
	}

	msgID := uuid.NewString()
	if err := st.PersistMessage(ctx, store.Message{
		MessageID:      msgID,
		ConversationID: convID,
		Content:        "search for cats",
		CreatedAt:      time.Now().UTC(),
	}); err != nil {
		t.Fatal(err)
	}

	if err := st.PersistIntent(ctx, store.Intent{
		IntentID:       uuid.NewString(),
		ConversationID: convID,
		MessageID:      msgID,
		Action:         "search",
		Parameters:     map[string]any{"query": "cats"},
		Confidence:     0.9,
		Valid:          true,
		CreatedAt:      time.Now().UTC(),
	}); err != nil {
		t.Fatal(err)
	}
}

func TestSQLite_AppendEventLog(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	convID := uuid.NewString()
	if err := st.CreateConversation(ctx, convID); err != nil {
		t.Fatal(err)
	}
	if err := st.AppendEventLog(ctx, store.EventLogEntry{
		EventID:        uuid.NewString(),
		ConversationID: convID,
		EventType:      "reasoning_requested",
		Payload:        map[string]any{"foo": "bar"},
		CreatedAt:      time.Now().UTC(),
	}); err != nil {
		t.Fatal(err)
	}
}

func TestSQLite_PersistIntent_DuplicateIntentIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	convID := uuid.NewString()
	if err := st.CreateConversation(ctx, convID); err != nil {
		t.Fatal(err)
	}

	intent := store.Intent{
		IntentID:       uuid.NewString(),
		ConversationID: convID,
		MessageID:      uuid.NewString(),
		Action:         "search",
		Parameters:     map[string]any{"query": "cats"},
		Confidence:     0.9,
		Valid:          true,
		CreatedAt:      time.Now().UTC(),
	}
	if err := st.PersistIntent(ctx, intent); err != nil {
		t.Fatal(err)
	}
	// A redelivered event that reasons to the same intentId must not fail.
	if err := st.PersistIntent(ctx, intent); err != nil {
		t.Fatalf("expected a repeat PersistIntent of the same intentId to be a no-op, got: %v", err)
	}
}

func TestSQLite_ListEventLog_OldestFirst(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	convID := uuid.NewString()
	if err := st.CreateConversation(ctx, convID); err != nil {
		t.Fatal(err)
	}

	first := time.Now().UTC()
	second := first.Add(time.Second)
	if err := st.AppendEventLog(ctx, store.EventLogEntry{
		EventID:        uuid.NewString(),
		ConversationID: convID,
		EventType:      "reasoning_requested",
		Payload:        map[string]any{"seq": 1.0},
		CreatedAt:      first,
	}); err != nil {
		t.Fatal(err)
	}
	if err := st.AppendEventLog(ctx, store.EventLogEntry{
		EventID:        uuid.NewString(),
		ConversationID: convID,
		EventType:      "action_requested",
		Payload:        map[string]any{"seq": 2.0},
		CreatedAt:      second,
	}); err != nil {
		t.Fatal(err)
	}

	entries, err := st.ListEventLog(ctx, convID)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("len=%d want 2", len(entries))
	}
	if entries[0].EventType != "reasoning_requested" || entries[1].EventType != "action_requested" {
		t.Fatalf("unexpected order: %+v", entries)
	}
}
