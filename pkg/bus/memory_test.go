package bus

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestMemoryBus_PublishAndDeliver(t *testing.T) {
	b := NewMemoryBus(8)
	env := Envelope{EventID: "e1", EventType: EventReasoningRequested, ConversationID: "c1", MessageID: "m1", Producer: ProducerAPI}
	if err := b.Publish(context.Background(), TopicReasoningRequested, env); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	var got Envelope
	done := make(chan struct{})
	go func() {
		_ = b.Subscribe(ctx, TopicReasoningRequested, func(_ context.Context, e Envelope) error {
			got = e
			cancel()
			close(done)
			return nil
		})
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for delivery")
	}
	if got.EventID != "e1" {
		t.Fatalf("eventID=%s want e1", got.EventID)
	}
}

func TestMemoryBus_NackRetriesThenDeadLetters(t *testing.T) {
	b := NewMemoryBus(8)
	env := Envelope{EventID: "e2", EventType: EventActionRequested, ConversationID: "c1", MessageID: "m1", Producer: ProducerReasoner}
	if err := b.Publish(context.Background(), TopicActionRequested, env); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var attempts int64
	handlerDone := make(chan struct{})
	go func() {
		_ = b.Subscribe(ctx, TopicActionRequested, func(_ context.Context, e Envelope) error {
			n := atomic.AddInt64(&attempts, 1)
			if n == MaxDeliveryAttempts {
				close(handlerDone)
			}
			return errors.New("always fails")
		})
	}()

	select {
	case <-handlerDone:
	case <-time.After(2 * time.Second):
		t.Fatalf("did not observe %d attempts, got %d", MaxDeliveryAttempts, atomic.LoadInt64(&attempts))
	}

	// Give the final failed delivery a moment to land in the dead-letter queue.
	time.Sleep(20 * time.Millisecond)
	dead := b.DeadLettered(TopicActionDeadLetter)
	if len(dead) != 1 {
		t.Fatalf("dead-lettered count=%d want 1", len(dead))
	}
	if dead[0].EventID != "e2" {
		t.Fatalf("dead-lettered eventID=%s want e2", dead[0].EventID)
	}
}

func TestEnvelope_Attributes(t *testing.T) {
	env := Envelope{EventID: "e3", EventType: EventReasoningRequested, ConversationID: "c9"}
	attrs := env.Attributes()
	if attrs["eventId"] != "e3" || attrs["eventType"] != "reasoning_requested" || attrs["conversationId"] != "c9" {
		t.Fatalf("unexpected attributes: %+v", attrs)
	}
}
