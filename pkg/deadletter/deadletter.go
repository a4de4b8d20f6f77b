// Package deadletter provides the operator-facing inspection and manual
// replay path for envelopes exhausted by the bus's retry budget. This is
// intentionally not automated: an operator lists what landed on a
// dead-letter topic, decides case by case, and republishes explicitly.
package deadletter

import (
	"context"
	"fmt"

	"github.com/wilhg/triad/pkg/bus"
)

// Lister exposes the envelopes currently held on a dead-letter topic.
// bus.MemoryBus satisfies this; a production broker adapter would too.
type Lister interface {
	DeadLettered(topic string) []bus.Envelope
}

// Inspector is the read side of the manual dead-letter workflow.
type Inspector struct {
	lister Lister
}

// NewInspector constructs an Inspector over the given bus.
func NewInspector(lister Lister) *Inspector {
	return &Inspector{lister: lister}
}

// List returns the envelopes currently dead-lettered on topic, for an
// operator to review. It performs no mutation.
func (i *Inspector) List(_ context.Context, topic string) []bus.Envelope {
	return i.lister.DeadLettered(topic)
}

// Replayer republishes a single, operator-selected envelope back onto its
// original topic. It never runs automatically; every call is an explicit
// operator decision.
type Replayer struct {
	publisher bus.Publisher
}

// NewReplayer constructs a Replayer over the given bus.
func NewReplayer(publisher bus.Publisher) *Replayer {
	return &Replayer{publisher: publisher}
}

// Replay republishes env onto originalTopic. The caller is responsible
// for having inspected env and decided it is safe to reprocess; Replay
// performs no deduplication of its own beyond what the normal receipt
// machinery already provides downstream.
func (r *Replayer) Replay(ctx context.Context, originalTopic string, env bus.Envelope) error {
	if originalTopic != bus.TopicReasoningRequested && originalTopic != bus.TopicActionRequested {
		return fmt.Errorf("deadletter: %q is not a known replay target", originalTopic)
	}
	return r.publisher.Publish(ctx, originalTopic, env)
}
