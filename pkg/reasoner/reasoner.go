// Package reasoner implements the Reasoner stage: claim a receipt, invoke
// the reasoning function, validate the resulting intent candidate,
// persist it, and either fail validation or publish the next stage's
// event.
package reasoner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/wilhg/triad/pkg/assembler"
	"github.com/wilhg/triad/pkg/bus"
	"github.com/wilhg/triad/pkg/reasoning"
	"github.com/wilhg/triad/pkg/recall"
	"github.com/wilhg/triad/pkg/statemachine"
	"github.com/wilhg/triad/pkg/store"
	"github.com/wilhg/triad/pkg/validator"
)

// Worker consumes reasoning_requested envelopes.
type Worker struct {
	st             store.Store
	publisher      bus.Publisher
	reason         reasoning.Func
	staleThreshold time.Duration
	actionTopic    string
	tracer         trace.Tracer
	logger         *slog.Logger

	assembler *assembler.Assembler

	embedder    recall.Embedder
	vectorStore recall.VectorStore
	recallTopK  int
}

// Option configures optional pre-invocation enrichment a Worker performs
// before calling its reasoning function.
type Option func(*Worker)

// WithContextBudget bounds the event-log slice assembled for the reasoning
// function to maxTokens, using est to estimate each entry's cost. A nil
// est falls back to the assembler's default rune-length estimator.
func WithContextBudget(maxTokens int, est assembler.TokenEstimator) Option {
	return func(w *Worker) {
		opts := []assembler.Option{assembler.WithMaxTokens(maxTokens)}
		if est != nil {
			opts = append(opts, assembler.WithTokenEstimator(est))
		}
		w.assembler = assembler.New(opts...)
	}
}

// WithRecall enables similarity recall over past intents in the same
// conversation. topK <= 0 disables recall even if embedder/store are set.
// The Worker only queries vectorStore; it does not add the intents it
// persists to it, so recall finds only items the caller has upserted.
func WithRecall(embedder recall.Embedder, vectorStore recall.VectorStore, topK int) Option {
	return func(w *Worker) {
		if embedder == nil || vectorStore == nil || topK <= 0 {
			return
		}
		w.embedder = embedder
		w.vectorStore = vectorStore
		w.recallTopK = topK
	}
}

// New constructs a Reasoner worker.
func New(st store.Store, publisher bus.Publisher, reason reasoning.Func, staleThreshold time.Duration, actionTopic string, logger *slog.Logger, opts ...Option) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Worker{
		st:             st,
		publisher:      publisher,
		reason:         reason,
		staleThreshold: staleThreshold,
		actionTopic:    actionTopic,
		tracer:         otel.Tracer("reasoner"),
		logger:         logger,
		assembler:      assembler.New(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Handle implements bus.Handler.
func (w *Worker) Handle(ctx context.Context, env bus.Envelope) error {
	ctx, span := w.tracer.Start(ctx, "Reasoner.Handle", trace.WithAttributes(
		attribute.String("event.id", env.EventID),
		attribute.String("conversation.id", env.ConversationID),
	))
	defer span.End()

	content, _ := env.Payload["content"].(string)
	if content == "" && env.Payload != nil {
		// Malformed payload: treat as poison, ack, do not retry.
		w.logger.Warn("reasoner: decode error, acking poison message", "eventId", env.EventID)
		return nil
	}

	ok, err := w.st.ClaimReceipt(ctx, env.EventID, store.ReceiptMeta{
		Handler:        "reasoner",
		ConversationID: env.ConversationID,
		MessageID:      env.MessageID,
	}, w.staleThreshold)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	contextBlocks, err := w.assembleContext(ctx, env.ConversationID, content)
	if err != nil {
		return err
	}

	candidate, err := w.reason(ctx, env.ConversationID, env.MessageID, content, contextBlocks)
	if err != nil {
		return err
	}
	if candidate.IntentID == "" {
		candidate.IntentID = uuid.NewString()
	}

	ic := validator.IntentCandidate{
		IntentID:       candidate.IntentID,
		ConversationID: candidate.ConversationID,
		MessageID:      candidate.MessageID,
		Action:         candidate.Action,
		Parameters:     candidate.Parameters,
		Confidence:     candidate.Confidence,
	}
	result := validator.ValidateIntentCandidate(ic)

	now := time.Now().UTC()
	if err := w.st.PersistIntent(ctx, store.Intent{
		IntentID:        candidate.IntentID,
		ConversationID:  candidate.ConversationID,
		MessageID:       candidate.MessageID,
		Action:          candidate.Action,
		Parameters:      candidate.Parameters,
		Confidence:      candidate.Confidence,
		Valid:           result.Valid,
		ValidationError: result.Error,
		CreatedAt:       now,
	}); err != nil {
		return err
	}

	if !result.Valid {
		if err := w.st.TransitionState(ctx, env.ConversationID, statemachine.FailedValidation); err != nil {
			return err
		}
		return w.st.CompleteReceipt(ctx, env.EventID)
	}

	// The two-step transition is deliberate: it preserves an observable
	// "validated but not yet dispatched" state. A retry that resumes here
	// tolerates already being in INTENT_VALIDATED.
	if err := w.st.TransitionState(ctx, env.ConversationID, statemachine.IntentValidated); err != nil {
		current, gerr := w.st.GetConversation(ctx, env.ConversationID)
		if gerr != nil || current.State != statemachine.IntentValidated {
			return err
		}
	}

	actionEventID := uuid.NewString()
	actionEnv := bus.Envelope{
		EventID:        actionEventID,
		EventType:      bus.EventActionRequested,
		ConversationID: candidate.ConversationID,
		MessageID:      candidate.MessageID,
		Timestamp:      now,
		Producer:       bus.ProducerReasoner,
		Payload: map[string]any{
			"intentId":   candidate.IntentID,
			"action":     candidate.Action,
			"parameters": candidate.Parameters,
			"confidence": candidate.Confidence,
		},
	}
	if err := w.publisher.Publish(ctx, w.actionTopic, actionEnv); err != nil {
		// Raise (nack): the bus redelivers and the retry reclaims the
		// stale receipt, replaying from the beginning.
		return err
	}
	if err := w.st.AppendEventLog(ctx, store.EventLogEntry{
		EventID:        actionEventID,
		ConversationID: candidate.ConversationID,
		EventType:      string(bus.EventActionRequested),
		Payload:        actionEnv.Payload,
		CreatedAt:      now,
	}); err != nil {
		return err
	}

	if err := w.st.TransitionState(ctx, env.ConversationID, statemachine.ActionRequested); err != nil {
		return err
	}
	return w.st.CompleteReceipt(ctx, env.EventID)
}

// assembleContext builds the bounded, deterministic context slice handed
// to the reasoning function: the conversation's event log, deduplicated
// and token-budgeted, plus (if recall is configured) the most similar
// past intents in the same conversation.
func (w *Worker) assembleContext(ctx context.Context, conversationID, content string) ([]string, error) {
	entries, err := w.st.ListEventLog(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	candidates := make([]assembler.ContextEntry, 0, len(entries))
	for _, e := range entries {
		b, merr := json.Marshal(e.Payload)
		if merr != nil {
			continue
		}
		candidates = append(candidates, assembler.ContextEntry{EventType: e.EventType, EventID: e.EventID, Text: string(b)})
	}

	if w.embedder != nil && w.vectorStore != nil && w.recallTopK > 0 {
		matches, rerr := w.recallSimilar(ctx, conversationID, content)
		if rerr != nil {
			// Recall is enrichment only: a lookup failure never blocks the
			// pipeline, it just loses this round's enrichment.
			w.logger.Warn("reasoner: similarity recall failed, continuing without it", "error", rerr)
		} else {
			candidates = append(candidates, matches...)
		}
	}

	selected, log := w.assembler.Assemble(candidates)
	w.logger.Debug("reasoner: context assembled", "included", len(selected), "dropped", log.DroppedCount)

	blocks := make([]string, 0, len(selected))
	for _, e := range selected {
		blocks = append(blocks, e.Text)
	}
	return blocks, nil
}

// recallSimilar embeds content and queries the configured vector store for
// the top-K most similar past intents recorded in this conversation. The
// matches come back pinned: a recalled past intent was selected for its
// direct relevance to the current message, so it outranks the raw event
// log when the token budget forces a cut.
func (w *Worker) recallSimilar(ctx context.Context, conversationID, content string) ([]assembler.ContextEntry, error) {
	vecs, err := w.embedder.Embed(ctx, []string{content})
	if err != nil || len(vecs) == 0 {
		return nil, err
	}
	matches, err := w.vectorStore.Query(ctx, vecs[0], w.recallTopK, recall.Filter{Namespace: conversationID})
	if err != nil {
		return nil, err
	}
	out := make([]assembler.ContextEntry, 0, len(matches))
	for _, m := range matches {
		b, merr := json.Marshal(m.Item.Metadata)
		if merr != nil {
			continue
		}
		out = append(out, assembler.ContextEntry{
			EventType: "recall",
			EventID:   m.Item.ID,
			Text:      fmt.Sprintf("%.3f %s", m.Score, string(b)),
			Pinned:    true,
		})
	}
	return out, nil
}
