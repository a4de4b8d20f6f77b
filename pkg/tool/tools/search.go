// Package tools provides the four deterministic reference tools that
// back the intent schema's closed action set: search, calculate,
// summarize, translate. None perform real inference or network I/O —
// they are fixtures a deployment replaces with its own deterministic
// implementations.
package tools

import (
	"context"
	"fmt"

	"github.com/wilhg/triad/pkg/tool"
)

// SearchTool returns a deterministic, fabricated result set derived from
// the query string — stable across repeated invocation with the same
// input, as required of every Executor tool.
type SearchTool struct{}

func (SearchTool) Describe() tool.Descriptor {
	in := []byte(`{"type":"object","properties":{"query":{"type":"string","minLength":1}},"required":["query"],"additionalProperties":true}`)
	out := []byte(`{"type":"object","properties":{"tool":{"type":"string"},"query":{"type":"string"},"results":{"type":"array"}},"required":["tool","query","results"],"additionalProperties":false}`)
	return tool.Descriptor{
		Name:         "search",
		Description:  "Deterministic fixture search over the query string",
		InputSchema:  in,
		OutputSchema: out,
	}
}

func (SearchTool) Invoke(_ context.Context, args map[string]any) (map[string]any, error) {
	query, _ := args["query"].(string)
	if query == "" {
		return nil, fmt.Errorf("missing query parameter")
	}
	results := []any{
		map[string]any{"title": fmt.Sprintf("Result for %q (1)", query), "score": 0.91},
		map[string]any{"title": fmt.Sprintf("Result for %q (2)", query), "score": 0.74},
	}
	return map[string]any{"tool": "search", "query": query, "results": results}, nil
}
