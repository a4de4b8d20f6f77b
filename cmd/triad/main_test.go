package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wilhg/triad/pkg/bus"
	"github.com/wilhg/triad/pkg/executor"
	"github.com/wilhg/triad/pkg/ingress"
	"github.com/wilhg/triad/pkg/reasoner"
	"github.com/wilhg/triad/pkg/reasoning"
	"github.com/wilhg/triad/pkg/statemachine"
	"github.com/wilhg/triad/pkg/store/entstore"
)

// TestWiring_EndToEndHappyPath exercises the same wiring main() performs
// (store + bus + ingress + reasoner + executor) without going through a
// real listening socket, confirming a message reaches ACTION_COMPLETED.
func TestWiring_EndToEndHappyPath(t *testing.T) {
	registerTools()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dsn := "sqlite:file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_fk=1"
	st, err := entstore.Open(ctx, dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = st.Close() }()
	if err := st.Migrate(ctx); err != nil {
		t.Fatal(err)
	}

	b := bus.NewMemoryBus(64)
	reasonerWorker := reasoner.New(st, b, reasoning.FixtureReasoner, 2*time.Minute, bus.TopicActionRequested, nil)
	executorWorker := executor.New(st, 2*time.Minute, nil, nil)

	go func() { _ = b.Subscribe(ctx, bus.TopicReasoningRequested, reasonerWorker.Handle) }()
	go func() { _ = b.Subscribe(ctx, bus.TopicActionRequested, executorWorker.Handle) }()

	srv := ingress.New(st, b, bus.TopicReasoningRequested)
	body, _ := json.Marshal(map[string]any{"content": "search for cats"})
	req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	convID, _ := resp["conversationId"].(string)
	if convID == "" {
		t.Fatal("expected a conversationId in the response")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		conv, err := st.GetConversation(ctx, convID)
		if err != nil {
			t.Fatal(err)
		}
		if conv.State == statemachine.ActionCompleted {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("conversation never reached ACTION_COMPLETED")
}
