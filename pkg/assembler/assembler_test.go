package assembler

import "testing"

// Test cases cover:
// - Pinning: pinned entries always included first until budget exhausted
// - Deduplication: duplicate (eventType, eventID) pairs are included once
// - Token budgeting: respects max tokens using a simple token estimator
// - Deterministic ordering: stable tie-breaker by eventType then eventID

func TestAssemble_Pinning_Dedup_Budget(t *testing.T) {
	est := func(text string) int { return len([]rune(text)) }
	asm := New(WithTokenEstimator(est), WithMaxTokens(10))

	entries := []ContextEntry{
		{EventType: "event_log", EventID: "1", Text: "abcd"}, // 4 tokens
		{EventType: "event_log", EventID: "1", Text: "abcd"}, // duplicate
		{EventType: "event_log", EventID: "2", Text: "ef"},   // 2 tokens
		{EventType: "recall", EventID: "3", Text: "ghijk", Pinned: true}, // 5 tokens
	}

	out, log := asm.Assemble(entries)

	// Expect the pinned recall entry first (5), then event_log:1 (4) fits,
	// event_log:2 (2) would exceed the 10-token budget (5+4+2=11) so it's dropped.
	if len(out) != 2 {
		t.Fatalf("got %d entries, want 2", len(out))
	}
	if out[0].EventType != "recall" || out[0].EventID != "3" {
		t.Fatalf("first not pinned: %+v", out[0])
	}
	if out[1].EventType != "event_log" || out[1].EventID != "1" {
		t.Fatalf("second unexpected: %+v", out[1])
	}
	seen := map[string]bool{}
	for _, e := range out {
		key := e.EventType + ":" + e.EventID
		if seen[key] {
			t.Fatalf("duplicate present: %s", key)
		}
		seen[key] = true
	}
	if log.IncludedTokens != 9 || log.DroppedCount != 1 {
		t.Fatalf("log mismatch: %+v", log)
	}
}

func TestAssemble_DeterministicOrder(t *testing.T) {
	est := func(text string) int { return len(text) }
	asm := New(WithTokenEstimator(est), WithMaxTokens(100))
	entries := []ContextEntry{
		{EventType: "b", EventID: "2", Text: "x"},
		{EventType: "a", EventID: "2", Text: "x"},
		{EventType: "a", EventID: "1", Text: "x"},
	}
	out, _ := asm.Assemble(entries)
	if len(out) != 3 {
		t.Fatalf("len=%d", len(out))
	}
	want := []struct{ eventType, eventID string }{{"a", "1"}, {"a", "2"}, {"b", "2"}}
	for i, w := range want {
		if out[i].EventType != w.eventType || out[i].EventID != w.eventID {
			t.Fatalf("order[%d]=%s:%s want %s:%s", i, out[i].EventType, out[i].EventID, w.eventType, w.eventID)
		}
	}
}

func TestAssemble_BudgetExceededDropsEntry(t *testing.T) {
	est := func(text string) int { return len(text) }
	asm := New(WithTokenEstimator(est), WithMaxTokens(3))
	entries := []ContextEntry{
		{EventType: "event_log", EventID: "1", Text: "xxxx"}, // 4 tokens, exceeds budget alone
	}
	out, log := asm.Assemble(entries)
	if len(out) != 0 {
		t.Fatalf("expected entry over budget to be dropped, got %+v", out)
	}
	if log.DroppedCount != 1 {
		t.Fatalf("dropped=%d want 1", log.DroppedCount)
	}
}
