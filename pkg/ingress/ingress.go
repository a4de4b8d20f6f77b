// Package ingress implements the synchronous HTTP entrypoint: dedupe by
// client key, create the conversation, persist the message, publish the
// reasoning event, and transition the conversation out of RECEIVED.
package ingress

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/wilhg/triad/pkg/bus"
	"github.com/wilhg/triad/pkg/errmodel"
	"github.com/wilhg/triad/pkg/statemachine"
	"github.com/wilhg/triad/pkg/store"
)

// Server is the Ingress HTTP façade.
type Server struct {
	st        store.Store
	publisher bus.Publisher
	topic     string
	tracer    trace.Tracer
}

// New constructs an Ingress server.
func New(st store.Store, publisher bus.Publisher, reasoningTopic string) *Server {
	return &Server{st: st, publisher: publisher, topic: reasoningTopic, tracer: otel.Tracer("ingress")}
}

// Mux builds the three-route ServeMux.
func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /messages", s.handlePostMessage)
	mux.HandleFunc("GET /conversations/{id}", s.handleGetConversation)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok", "service": "api"})
}

// writeErrorString writes the plain-string error envelope the external
// HTTP contract documents for client-facing rejections: {"error": msg}.
// Internal failures (store/bus/transient) use errmodel.WriteHTTP's richer
// categorized envelope instead.
func writeErrorString(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": msg})
}

type postMessageRequest struct {
	Content        string `json:"content"`
	ConversationID string `json:"conversationId"`
}

func (s *Server) handlePostMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "Ingress.PostMessage")
	defer span.End()

	var req postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
		writeErrorString(w, http.StatusBadRequest, `Missing or invalid "content" field`)
		return
	}

	messageID := uuid.NewString()

	if key := r.Header.Get("X-Idempotency-Key"); key != "" {
		claim, err := s.st.ClaimIdempotencyKey(ctx, key, messageID)
		if err != nil {
			errmodel.WriteHTTP(w, r, errmodel.Transient("store_error", "failed to claim idempotency key", err))
			return
		}
		if !claim.IsNew {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"messageId": claim.ExistingMessageID,
				"duplicate": true,
				"message":   "idempotency key already claimed; no new write performed",
			})
			return
		}
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
		if err := s.st.CreateConversation(ctx, conversationID); err != nil {
			errmodel.WriteHTTP(w, r, errmodel.Transient("store_error", "failed to create conversation", err))
			return
		}
	}

	now := time.Now().UTC()
	if err := s.st.PersistMessage(ctx, store.Message{
		MessageID:      messageID,
		ConversationID: conversationID,
		Content:        req.Content,
		IdempotencyKey: r.Header.Get("X-Idempotency-Key"),
		CreatedAt:      now,
	}); err != nil {
		errmodel.WriteHTTP(w, r, errmodel.Transient("store_error", "failed to persist message", err))
		return
	}

	eventID := uuid.NewString()
	env := bus.Envelope{
		EventID:        eventID,
		EventType:      bus.EventReasoningRequested,
		ConversationID: conversationID,
		MessageID:      messageID,
		Timestamp:      now,
		Producer:       bus.ProducerAPI,
		Payload:        map[string]any{"content": req.Content},
	}
	span.SetAttributes(
		attribute.String("conversation.id", conversationID),
		attribute.String("message.id", messageID),
		attribute.String("event.id", eventID),
	)
	if err := s.publisher.Publish(ctx, s.topic, env); err != nil {
		errmodel.WriteHTTP(w, r, errmodel.Transient("bus_error", "failed to publish reasoning event", err))
		return
	}
	if err := s.st.AppendEventLog(ctx, store.EventLogEntry{
		EventID:        eventID,
		ConversationID: conversationID,
		EventType:      string(bus.EventReasoningRequested),
		Payload:        env.Payload,
		CreatedAt:      now,
	}); err != nil {
		errmodel.WriteHTTP(w, r, errmodel.Transient("store_error", "failed to append event log", err))
		return
	}

	if err := s.st.TransitionState(ctx, conversationID, statemachine.ReasoningRequested); err != nil {
		// Reuse of an active conversation is not a supported operation:
		// surfaced as a plain 500, not retried.
		errmodel.WriteHTTP(w, r, errmodel.System("invalid_transition", "conversation is not in a startable state", nil, err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"messageId":      messageID,
		"conversationId": conversationID,
		"eventId":        eventID,
		"state":          string(statemachine.ReasoningRequested),
	})
}

func (s *Server) handleGetConversation(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "Ingress.GetConversation")
	defer span.End()

	id := r.PathValue("id")
	conv, err := s.st.GetConversation(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeErrorString(w, http.StatusNotFound, "Conversation not found")
			return
		}
		errmodel.WriteHTTP(w, r, errmodel.Transient("store_error", "failed to load conversation", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"conversationId": conv.ConversationID,
		"state":          string(conv.State),
		"createdAt":      conv.CreatedAt,
		"updatedAt":      conv.UpdatedAt,
	})
}
