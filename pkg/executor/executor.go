// Package executor implements the Executor stage: claim a receipt, guard
// against duplicate execution by intent, invoke the deterministic tool
// function, persist the result, and transition the conversation to a
// terminal state.
package executor

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/wilhg/triad/pkg/bus"
	"github.com/wilhg/triad/pkg/statemachine"
	"github.com/wilhg/triad/pkg/store"
	"github.com/wilhg/triad/pkg/tool"
	"github.com/wilhg/triad/pkg/validator"
)

// Worker consumes action_requested envelopes.
type Worker struct {
	st             store.Store
	staleThreshold time.Duration
	allowed        map[string]bool
	tracer         trace.Tracer
	logger         *slog.Logger
}

// New constructs an Executor worker. allowed is the permission set every
// tool invocation is checked against.
func New(st store.Store, staleThreshold time.Duration, allowed map[string]bool, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{st: st, staleThreshold: staleThreshold, allowed: allowed, tracer: otel.Tracer("executor"), logger: logger}
}

// Handle implements bus.Handler.
func (w *Worker) Handle(ctx context.Context, env bus.Envelope) error {
	ctx, span := w.tracer.Start(ctx, "Executor.Handle", trace.WithAttributes(
		attribute.String("event.id", env.EventID),
		attribute.String("conversation.id", env.ConversationID),
	))
	defer span.End()

	action, _ := env.Payload["action"].(string)
	intentID, _ := env.Payload["intentId"].(string)
	if action == "" || intentID == "" {
		w.logger.Warn("executor: decode error, acking poison message", "eventId", env.EventID)
		return nil
	}
	parameters, _ := env.Payload["parameters"].(map[string]any)

	ok, err := w.st.ClaimReceipt(ctx, env.EventID, store.ReceiptMeta{
		Handler:        "executor",
		ConversationID: env.ConversationID,
		MessageID:      env.MessageID,
	}, w.staleThreshold)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	// Defense-in-depth: the receipt already dedupes by event id, this
	// second check dedupes by intent id in case a replay minted a new one.
	found, err := w.st.FindActionResultByIntentID(ctx, env.ConversationID, intentID)
	if err != nil {
		return err
	}
	if found {
		return w.st.CompleteReceipt(ctx, env.EventID)
	}

	t, ok := tool.Resolve(action)
	var result tool.Result
	if !ok {
		result = tool.Result{Success: false, Error: "unknown action: " + action}
	} else {
		result = tool.SafeInvoke(ctx, t, parameters, w.allowed, validator.JSONSchemaValidator)
	}

	now := time.Now().UTC()
	if err := w.st.PersistAction(ctx, store.Action{
		ActionID:       uuid.NewString(),
		ConversationID: env.ConversationID,
		IntentID:       intentID,
		MessageID:      env.MessageID,
		Result:         result.Output,
		Success:        result.Success,
		Error:          result.Error,
		ExecutedAt:     now,
	}); err != nil {
		return err
	}

	if err := w.st.AppendEventLog(ctx, store.EventLogEntry{
		EventID:        uuid.NewString(),
		ConversationID: env.ConversationID,
		EventType:      "action_executed",
		Payload:        map[string]any{"intentId": intentID, "success": result.Success},
		CreatedAt:      now,
	}); err != nil {
		return err
	}

	next := statemachine.ActionCompleted
	if !result.Success {
		next = statemachine.FailedExecution
	}
	if err := w.st.TransitionState(ctx, env.ConversationID, next); err != nil {
		return err
	}
	return w.st.CompleteReceipt(ctx, env.EventID)
}
