package bus

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// MaxDeliveryAttempts is the transport-owned retry budget before an
// envelope is routed to its dead-letter companion topic.
const MaxDeliveryAttempts = 5

// deadLetterTopics maps a primary topic to its dead-letter companion.
var deadLetterTopics = map[string]string{
	TopicReasoningRequested: TopicReasoningDeadLetter,
	TopicActionRequested:    TopicActionDeadLetter,
}

// delivery wraps an envelope with its current attempt count.
type delivery struct {
	env     Envelope
	attempt int
}

// MemoryBus is a channel-backed Bus reference implementation: at-least-once,
// unordered, single process. It exists because no broker client is in
// scope here; production deployments wire a real transport behind the
// same Bus interface.
type MemoryBus struct {
	mu       sync.Mutex
	queues   map[string]chan delivery
	dead     map[string][]Envelope
	tracer   trace.Tracer
}

// NewMemoryBus constructs an empty in-memory bus. bufferSize governs the
// per-topic channel capacity.
func NewMemoryBus(bufferSize int) *MemoryBus {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	b := &MemoryBus{
		queues: make(map[string]chan delivery),
		dead:   make(map[string][]Envelope),
		tracer: otel.Tracer("bus/memory"),
	}
	for _, topic := range []string{TopicReasoningRequested, TopicActionRequested, TopicReasoningDeadLetter, TopicActionDeadLetter} {
		b.queues[topic] = make(chan delivery, bufferSize)
	}
	return b
}

func (b *MemoryBus) queue(topic string) chan delivery {
	b.mu.Lock()
	defer b.mu.Unlock()
	q, ok := b.queues[topic]
	if !ok {
		q = make(chan delivery, 64)
		b.queues[topic] = q
	}
	return q
}

// Publish enqueues env on topic with a fresh attempt count of 1.
func (b *MemoryBus) Publish(ctx context.Context, topic string, env Envelope) error {
	_, span := b.tracer.Start(ctx, "MemoryBus.Publish", trace.WithAttributes(
		attribute.String("bus.topic", topic),
		attribute.String("event.id", env.EventID),
		attribute.String("event.type", string(env.EventType)),
	))
	defer span.End()

	select {
	case b.queue(topic) <- delivery{env: env, attempt: 1}:
		return nil
	default:
		return &BusFullError{Topic: topic}
	}
}

// Subscribe drains topic, invoking h for each delivery. A non-nil return
// from h is a nack: the envelope is requeued with an incremented attempt
// count, or routed to the dead-letter topic once MaxDeliveryAttempts is
// exhausted. Subscribe returns when ctx is cancelled.
func (b *MemoryBus) Subscribe(ctx context.Context, topic string, h Handler) error {
	q := b.queue(topic)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d := <-q:
			ctx, span := b.tracer.Start(ctx, "MemoryBus.Deliver", trace.WithAttributes(
				attribute.String("bus.topic", topic),
				attribute.String("event.id", d.env.EventID),
				attribute.Int("delivery.attempt", d.attempt),
			))
			err := h(ctx, d.env)
			if err != nil {
				span.RecordError(err)
				if d.attempt >= MaxDeliveryAttempts {
					b.mu.Lock()
					dlTopic := deadLetterTopics[topic]
					b.dead[dlTopic] = append(b.dead[dlTopic], d.env)
					b.mu.Unlock()
				} else {
					d.attempt++
					q <- d
				}
			}
			span.End()
		}
	}
}

// DeadLettered returns a snapshot of envelopes routed to a dead-letter
// topic, for operator-manual inspection. Dead-lettered envelopes are never
// replayed automatically.
func (b *MemoryBus) DeadLettered(dlTopic string) []Envelope {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Envelope, len(b.dead[dlTopic]))
	copy(out, b.dead[dlTopic])
	return out
}

// BusFullError reports a publish that could not be enqueued because the
// topic's in-memory buffer is saturated. A real broker would not have
// this failure mode; this is a reference-adapter-only concern and maps
// to errmodel's transient category at the caller.
type BusFullError struct {
	Topic string
}

func (e *BusFullError) Error() string {
	return "bus: topic " + e.Topic + " is full"
}
