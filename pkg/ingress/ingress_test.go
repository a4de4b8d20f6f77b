package ingress

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/wilhg/triad/pkg/bus"
	"github.com/wilhg/triad/pkg/statemachine"
	"github.com/wilhg/triad/pkg/store/entstore"
)

func newTestServer(t *testing.T) (*Server, *bus.MemoryBus) {
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
	return New(st, b, bus.TopicReasoningRequested), b
}

func TestPostMessage_HappyPath(t *testing.T) {
	srv, _ := newTestServer(t)
	body, _ := json.Marshal(map[string]any{"content": "search for cats"})
	req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["state"] != string(statemachine.ReasoningRequested) {
		t.Fatalf("state=%v", resp["state"])
	}
	if resp["conversationId"] == "" {
		t.Fatal("expected a minted conversationId")
	}
}

func TestPostMessage_MissingContent(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want 400", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["error"] != `Missing or invalid "content" field` {
		t.Fatalf("error=%v", resp["error"])
	}
}

func TestPostMessage_IdempotencyKeyReplay(t *testing.T) {
	srv, _ := newTestServer(t)
	body, _ := json.Marshal(map[string]any{"content": "search for cats"})

	req1 := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewReader(body))
	req1.Header.Set("X-Idempotency-Key", "k1")
	rec1 := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusCreated {
		t.Fatalf("first request status=%d body=%s", rec1.Code, rec1.Body.String())
	}
	var first map[string]any
	_ = json.Unmarshal(rec1.Body.Bytes(), &first)

	req2 := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewReader(body))
	req2.Header.Set("X-Idempotency-Key", "k1")
	rec2 := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusOK {
		t.Fatalf("second request status=%d want 200", rec2.Code)
	}
	var second map[string]any
	_ = json.Unmarshal(rec2.Body.Bytes(), &second)
	if second["duplicate"] != true {
		t.Fatalf("expected duplicate=true, got %v", second)
	}
	if second["messageId"] != first["messageId"] {
		t.Fatalf("messageId mismatch: %v vs %v", second["messageId"], first["messageId"])
	}
}

func TestGetConversation_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/conversations/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status=%d want 404", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["error"] != "Conversation not found" {
		t.Fatalf("error=%v", resp["error"])
	}
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d want 200", rec.Code)
	}
}
