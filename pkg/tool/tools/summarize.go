package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/wilhg/triad/pkg/tool"
)

// SummarizeTool truncates text to a deterministic length bound rather
// than invoking any summarization model — real inference is out of
// scope for the Executor's tool layer.
type SummarizeTool struct{}

func (SummarizeTool) Describe() tool.Descriptor {
	in := []byte(`{"type":"object","properties":{"text":{"type":"string","minLength":1},"max_words":{"type":"integer","minimum":1}},"required":["text"],"additionalProperties":false}`)
	out := []byte(`{"type":"object","properties":{"tool":{"type":"string"},"summary":{"type":"string"}},"required":["tool","summary"],"additionalProperties":false}`)
	return tool.Descriptor{
		Name:         "summarize",
		Description:  "Deterministic word-count truncation, not real summarization",
		InputSchema:  in,
		OutputSchema: out,
	}
}

func (SummarizeTool) Invoke(_ context.Context, args map[string]any) (map[string]any, error) {
	text, _ := args["text"].(string)
	if text == "" {
		return nil, fmt.Errorf("missing text parameter")
	}
	maxWords := 25
	if v, ok := asFloat(args["max_words"]); ok && v > 0 {
		maxWords = int(v)
	}
	words := strings.Fields(text)
	truncated := words
	suffix := ""
	if len(words) > maxWords {
		truncated = words[:maxWords]
		suffix = "…"
	}
	return map[string]any{"tool": "summarize", "summary": strings.Join(truncated, " ") + suffix}, nil
}
