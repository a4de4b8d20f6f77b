package recall

import (
	"context"
	"testing"
)

func TestMemoryStore_UpsertAndQuery(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	items := []Item{
		{ID: "a1", Namespace: "conv-1", Vector: Vector{1, 0}, Metadata: map[string]any{"action": "search"}},
		{ID: "a2", Namespace: "conv-1", Vector: Vector{0.8, 0.2}, Metadata: map[string]any{"action": "calculate"}},
		{ID: "b1", Namespace: "conv-2", Vector: Vector{0, 1}, Metadata: map[string]any{"action": "search"}},
	}
	if err := s.Upsert(ctx, items); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	matches, err := s.Query(ctx, Vector{1, 0}, 2, Filter{Namespace: "conv-1"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(matches) != 2 || matches[0].Item.ID != "a1" {
		t.Fatalf("unexpected matches: %+v", matches)
	}

	matches, err = s.Query(ctx, Vector{1, 0}, 2, Filter{Namespace: "conv-1", Equals: map[string]any{"action": "calculate"}})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(matches) != 1 || matches[0].Item.ID != "a2" {
		t.Fatalf("filtered result unexpected: %+v", matches)
	}

	// Namespace isolation.
	matches, err = s.Query(ctx, Vector{0, 1}, 10, Filter{Namespace: "conv-2"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(matches) != 1 || matches[0].Item.ID != "b1" {
		t.Fatalf("conv-2 query unexpected: %+v", matches)
	}
}

func TestFakeEmbedder_Deterministic(t *testing.T) {
	e := NewFakeEmbedder(8)
	ctx := context.Background()
	v1, err := e.Embed(ctx, []string{"search for cats"})
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	v2, err := e.Embed(ctx, []string{"search for cats"})
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	if len(v1[0]) != 8 {
		t.Fatalf("dim=%d want 8", len(v1[0]))
	}
	for i := range v1[0] {
		if v1[0][i] != v2[0][i] {
			t.Fatalf("embedder not deterministic at index %d: %v vs %v", i, v1[0][i], v2[0][i])
		}
	}
}

func TestRegisterEmbedder(t *testing.T) {
	name := "test-embedder"
	if _, ok := ResolveEmbedder(name); ok {
		t.Fatalf("%s unexpectedly pre-registered", name)
	}
	if err := RegisterEmbedder(name, func(ctx context.Context, cfg map[string]any) (Embedder, error) {
		return NewFakeEmbedder(8), nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	f, ok := ResolveEmbedder(name)
	if !ok {
		t.Fatalf("resolve failed for %s", name)
	}
	e, err := f(context.Background(), nil)
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if e.Name() == "" {
		t.Fatalf("embedder missing name")
	}
}
