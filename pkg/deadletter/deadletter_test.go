package deadletter

import (
	"context"
	"testing"

	"github.com/wilhg/triad/pkg/bus"
)

func TestInspectorList(t *testing.T) {
	b := bus.NewMemoryBus(4)
	insp := NewInspector(b)
	if got := insp.List(context.Background(), bus.TopicActionDeadLetter); len(got) != 0 {
		t.Fatalf("expected empty dead-letter queue, got %d", len(got))
	}
}

func TestReplayer_RejectsUnknownTopic(t *testing.T) {
	b := bus.NewMemoryBus(4)
	replayer := NewReplayer(b)
	err := replayer.Replay(context.Background(), "not-a-real-topic", bus.Envelope{EventID: "e1"})
	if err == nil {
		t.Fatal("expected error replaying to an unknown topic")
	}
}

func TestReplayer_RepublishesToOriginalTopic(t *testing.T) {
	b := bus.NewMemoryBus(4)
	replayer := NewReplayer(b)
	env := bus.Envelope{EventID: "e2", EventType: bus.EventReasoningRequested, ConversationID: "c1"}
	if err := replayer.Replay(context.Background(), bus.TopicReasoningRequested, env); err != nil {
		t.Fatalf("expected replay to succeed: %v", err)
	}
}
