package executor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wilhg/triad/pkg/bus"
	"github.com/wilhg/triad/pkg/statemachine"
	"github.com/wilhg/triad/pkg/store/entstore"
	"github.com/wilhg/triad/pkg/tool"
	"github.com/wilhg/triad/pkg/tool/tools"
)

var registerOnce sync.Once

func ensureToolsRegistered() {
	registerOnce.Do(func() {
		_ = tool.Register(tools.SearchTool{})
		_ = tool.Register(tools.CalculateTool{})
	})
}

func newTestStore(t *testing.T) *entstore.Store {
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

func TestWorker_SuccessfulExecution(t *testing.T) {
	ensureToolsRegistered()
	ctx := context.Background()
	st := newTestStore(t)
	w := New(st, 2*time.Minute, nil, nil)

	convID := uuid.NewString()
	if err := st.CreateConversation(ctx, convID); err != nil {
		t.Fatal(err)
	}
	for _, s := range []statemachine.State{statemachine.ReasoningRequested, statemachine.IntentValidated, statemachine.ActionRequested} {
		if err := st.TransitionState(ctx, convID, s); err != nil {
			t.Fatal(err)
		}
	}

	intentID := uuid.NewString()
	env := bus.Envelope{
		EventID:        uuid.NewString(),
		EventType:      bus.EventActionRequested,
		ConversationID: convID,
		MessageID:      uuid.NewString(),
		Payload: map[string]any{
			"intentId":   intentID,
			"action":     "search",
			"parameters": map[string]any{"query": "cats"},
		},
	}
	if err := w.Handle(ctx, env); err != nil {
		t.Fatal(err)
	}

	conv, err := st.GetConversation(ctx, convID)
	if err != nil {
		t.Fatal(err)
	}
	if conv.State != statemachine.ActionCompleted {
		t.Fatalf("state=%s want ACTION_COMPLETED", conv.State)
	}

	found, err := st.FindActionResultByIntentID(ctx, convID, intentID)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected an ActionResult to be persisted")
	}
}

func TestWorker_ToolFailureTransitionsFailedExecution(t *testing.T) {
	ensureToolsRegistered()
	ctx := context.Background()
	st := newTestStore(t)
	w := New(st, 2*time.Minute, nil, nil)

	convID := uuid.NewString()
	if err := st.CreateConversation(ctx, convID); err != nil {
		t.Fatal(err)
	}
	for _, s := range []statemachine.State{statemachine.ReasoningRequested, statemachine.IntentValidated, statemachine.ActionRequested} {
		if err := st.TransitionState(ctx, convID, s); err != nil {
			t.Fatal(err)
		}
	}

	env := bus.Envelope{
		EventID:        uuid.NewString(),
		EventType:      bus.EventActionRequested,
		ConversationID: convID,
		MessageID:      uuid.NewString(),
		Payload: map[string]any{
			"intentId":   uuid.NewString(),
			"action":     "calculate",
			"parameters": map[string]any{"op": "div", "a": 1.0, "b": 0.0},
		},
	}
	if err := w.Handle(ctx, env); err != nil {
		t.Fatal(err)
	}

	conv, err := st.GetConversation(ctx, convID)
	if err != nil {
		t.Fatal(err)
	}
	if conv.State != statemachine.FailedExecution {
		t.Fatalf("state=%s want FAILED_EXECUTION", conv.State)
	}
}

func TestWorker_DuplicateExecutionGuardedByIntentID(t *testing.T) {
	ensureToolsRegistered()
	ctx := context.Background()
	st := newTestStore(t)
	w := New(st, 2*time.Minute, nil, nil)

	convID := uuid.NewString()
	if err := st.CreateConversation(ctx, convID); err != nil {
		t.Fatal(err)
	}
	for _, s := range []statemachine.State{statemachine.ReasoningRequested, statemachine.IntentValidated, statemachine.ActionRequested} {
		if err := st.TransitionState(ctx, convID, s); err != nil {
			t.Fatal(err)
		}
	}

	intentID := uuid.NewString()
	env := bus.Envelope{
		EventID:        uuid.NewString(),
		EventType:      bus.EventActionRequested,
		ConversationID: convID,
		MessageID:      uuid.NewString(),
		Payload: map[string]any{
			"intentId":   intentID,
			"action":     "search",
			"parameters": map[string]any{"query": "cats"},
		},
	}
	if err := w.Handle(ctx, env); err != nil {
		t.Fatal(err)
	}

	// A second envelope with a fresh eventId but the same intentId must
	// be caught by the defense-in-depth check and not re-execute.
	env2 := env
	env2.EventID = uuid.NewString()
	if err := w.Handle(ctx, env2); err != nil {
		t.Fatal(err)
	}
}
