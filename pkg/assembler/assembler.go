// Package assembler builds the bounded context slice the Reasoner hands to
// its reasoning function: the conversation's event log plus any recalled
// past intents, deduplicated, token-budgeted, and in deterministic order.
package assembler

import "sort"

// ContextEntry is one candidate unit of context. EventType/EventID
// identify the source record (an event-log entry's type and id, or
// "recall" paired with the matched vector store item's id) and double as
// the dedup/sort key. Pinned entries are always considered before
// unpinned ones, budget permitting — recalled past intents are pinned
// since they were selected for direct relevance to the incoming message,
// unlike the raw event log which is included for general continuity.
type ContextEntry struct {
	EventType string
	EventID   string
	Text      string
	Pinned    bool
}

// AssemblyLog summarizes an Assemble call.
type AssemblyLog struct {
	IncludedTokens int // total estimated tokens of the entries returned
	DroppedCount   int // entries excluded by the token budget (duplicates don't count)
}

// TokenEstimator estimates the token cost of a context entry's text.
type TokenEstimator func(text string) int

// Assembler deterministically assembles context under a token budget.
type Assembler struct {
	estimate  TokenEstimator
	maxTokens int
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithTokenEstimator overrides the default rune-length estimator.
func WithTokenEstimator(est TokenEstimator) Option {
	return func(a *Assembler) {
		if est != nil {
			a.estimate = est
		}
	}
}

// WithMaxTokens sets the token budget. A non-positive value is ignored.
func WithMaxTokens(n int) Option {
	return func(a *Assembler) {
		if n > 0 {
			a.maxTokens = n
		}
	}
}

// New constructs an Assembler with a large default budget (effectively
// unbounded) and a rune-length token estimator.
func New(opts ...Option) *Assembler {
	a := &Assembler{
		estimate:  func(s string) int { return len([]rune(s)) },
		maxTokens: 1_000_000_000,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble returns a deterministic, budgeted selection of entries:
//   - deduplicated by (EventType, EventID), first occurrence wins
//   - pinned entries first, then the rest, each group ordered by
//     (EventType, EventID) for reproducibility
//   - accumulated until the token budget would be exceeded
func (a *Assembler) Assemble(entries []ContextEntry) ([]ContextEntry, AssemblyLog) {
	type key struct{ eventType, eventID string }
	seen := make(map[key]ContextEntry, len(entries))
	order := make([]key, 0, len(entries))
	for _, e := range entries {
		k := key{e.EventType, e.EventID}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = e
		order = append(order, k)
	}

	pinned := make([]ContextEntry, 0, len(order))
	rest := make([]ContextEntry, 0, len(order))
	for _, k := range order {
		e := seen[k]
		if e.Pinned {
			pinned = append(pinned, e)
		} else {
			rest = append(rest, e)
		}
	}

	less := func(s []ContextEntry) func(i, j int) bool {
		return func(i, j int) bool {
			if s[i].EventType != s[j].EventType {
				return s[i].EventType < s[j].EventType
			}
			return s[i].EventID < s[j].EventID
		}
	}
	sort.Slice(pinned, less(pinned))
	sort.Slice(rest, less(rest))

	budget := a.maxTokens
	selected := make([]ContextEntry, 0, len(entries))
	log := AssemblyLog{}
	take := func(e ContextEntry) bool {
		cost := a.estimate(e.Text)
		if cost > budget {
			return false
		}
		budget -= cost
		log.IncludedTokens += cost
		selected = append(selected, e)
		return true
	}
	for _, e := range pinned {
		if !take(e) {
			log.DroppedCount++
		}
	}
	for _, e := range rest {
		if !take(e) {
			log.DroppedCount++
		}
	}
	return selected, log
}
