package tools

import (
	"context"
	"fmt"

	"github.com/wilhg/triad/pkg/tool"
)

// CalculateTool evaluates a fixed, closed set of binary arithmetic
// operations. It never parses arbitrary expressions — that would make
// the tool's failure modes depend on an embedded language, which the
// deterministic-tool contract forbids.
type CalculateTool struct{}

func (CalculateTool) Describe() tool.Descriptor {
	in := []byte(`{"type":"object","properties":{"op":{"type":"string","enum":["add","sub","mul","div"]},"a":{"type":"number"},"b":{"type":"number"}},"required":["op","a","b"],"additionalProperties":false}`)
	out := []byte(`{"type":"object","properties":{"tool":{"type":"string"},"op":{"type":"string"},"value":{"type":"number"}},"required":["tool","op","value"],"additionalProperties":false}`)
	return tool.Descriptor{
		Name:         "calculate",
		Description:  "Evaluates a fixed set of binary arithmetic operations",
		InputSchema:  in,
		OutputSchema: out,
	}
}

func (CalculateTool) Invoke(_ context.Context, args map[string]any) (map[string]any, error) {
	op, _ := args["op"].(string)
	a, aok := asFloat(args["a"])
	b, bok := asFloat(args["b"])
	if !aok || !bok {
		return nil, fmt.Errorf("a and b must be numbers")
	}
	var value float64
	switch op {
	case "add":
		value = a + b
	case "sub":
		value = a - b
	case "mul":
		value = a * b
	case "div":
		if b == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		value = a / b
	default:
		return nil, fmt.Errorf("unsupported op %q", op)
	}
	return map[string]any{"tool": "calculate", "op": op, "value": value}, nil
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
