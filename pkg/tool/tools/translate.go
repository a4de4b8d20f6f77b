package tools

import (
	"context"
	"fmt"

	"github.com/wilhg/triad/pkg/tool"
)

// TranslateTool applies a fixed lookup-table substitution rather than a
// real translation model; it exists to exercise the translate branch of
// the intent schema's action enum with a deterministic fixture.
type TranslateTool struct{}

var fixtureDictionary = map[string]map[string]string{
	"es": {"hello": "hola", "goodbye": "adiós", "cat": "gato", "dog": "perro"},
	"fr": {"hello": "bonjour", "goodbye": "au revoir", "cat": "chat", "dog": "chien"},
}

func (TranslateTool) Describe() tool.Descriptor {
	in := []byte(`{"type":"object","properties":{"text":{"type":"string","minLength":1},"target_language":{"type":"string","enum":["es","fr"]}},"required":["text","target_language"],"additionalProperties":false}`)
	out := []byte(`{"type":"object","properties":{"tool":{"type":"string"},"translated":{"type":"string"}},"required":["tool","translated"],"additionalProperties":false}`)
	return tool.Descriptor{
		Name:         "translate",
		Description:  "Deterministic fixture translation via a fixed dictionary",
		InputSchema:  in,
		OutputSchema: out,
	}
}

func (TranslateTool) Invoke(_ context.Context, args map[string]any) (map[string]any, error) {
	text, _ := args["text"].(string)
	target, _ := args["target_language"].(string)
	dict, ok := fixtureDictionary[target]
	if !ok {
		return nil, fmt.Errorf("unsupported target_language %q", target)
	}
	translated, ok := dict[text]
	if !ok {
		translated = text
	}
	return map[string]any{"tool": "translate", "translated": translated}, nil
}
