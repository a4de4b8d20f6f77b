package tools

import (
	"context"
	"testing"
)

func TestSearchTool_Deterministic(t *testing.T) {
	tl := SearchTool{}
	out1, err := tl.Invoke(context.Background(), map[string]any{"query": "cats"})
	if err != nil {
		t.Fatal(err)
	}
	out2, err := tl.Invoke(context.Background(), map[string]any{"query": "cats"})
	if err != nil {
		t.Fatal(err)
	}
	if out1["query"] != out2["query"] {
		t.Fatal("expected deterministic output for identical input")
	}
}

func TestSearchTool_MissingQuery(t *testing.T) {
	if _, err := (SearchTool{}).Invoke(context.Background(), map[string]any{}); err == nil {
		t.Fatal("expected error for missing query")
	}
}

func TestCalculateTool(t *testing.T) {
	tl := CalculateTool{}
	out, err := tl.Invoke(context.Background(), map[string]any{"op": "add", "a": 2.0, "b": 3.0})
	if err != nil {
		t.Fatal(err)
	}
	if out["value"] != 5.0 {
		t.Fatalf("value=%v want 5", out["value"])
	}
}

func TestCalculateTool_DivisionByZero(t *testing.T) {
	tl := CalculateTool{}
	if _, err := tl.Invoke(context.Background(), map[string]any{"op": "div", "a": 1.0, "b": 0.0}); err == nil {
		t.Fatal("expected division-by-zero error")
	}
}

func TestCalculateTool_UnsupportedOp(t *testing.T) {
	tl := CalculateTool{}
	if _, err := tl.Invoke(context.Background(), map[string]any{"op": "pow", "a": 1.0, "b": 2.0}); err == nil {
		t.Fatal("expected unsupported-op error")
	}
}

func TestSummarizeTool_Truncates(t *testing.T) {
	tl := SummarizeTool{}
	text := "one two three four five six seven eight nine ten"
	out, err := tl.Invoke(context.Background(), map[string]any{"text": text, "max_words": 3.0})
	if err != nil {
		t.Fatal(err)
	}
	if out["summary"] != "one two three…" {
		t.Fatalf("summary=%q", out["summary"])
	}
}

func TestTranslateTool_KnownWord(t *testing.T) {
	tl := TranslateTool{}
	out, err := tl.Invoke(context.Background(), map[string]any{"text": "hello", "target_language": "es"})
	if err != nil {
		t.Fatal(err)
	}
	if out["translated"] != "hola" {
		t.Fatalf("translated=%q want hola", out["translated"])
	}
}

func TestTranslateTool_UnsupportedLanguage(t *testing.T) {
	tl := TranslateTool{}
	if _, err := tl.Invoke(context.Background(), map[string]any{"text": "hello", "target_language": "de"}); err == nil {
		t.Fatal("expected unsupported-language error")
	}
}
