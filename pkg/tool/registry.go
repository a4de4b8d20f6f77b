package tool

import (
	"sync"
)

// registry keeps tools by name, process-wide.
var (
	mu    sync.RWMutex
	tools = map[string]Tool{}
)

// Register adds a Tool under its descriptor name. Re-registering the same
// name is an error: tool identity is expected to be fixed at process
// startup, not reassigned at runtime.
func Register(t Tool) error {
	if t == nil {
		return asValidationError("nil_tool", "tool is nil", nil)
	}
	d := t.Describe()
	if d.Name == "" {
		return asValidationError("empty_tool_name", "tool descriptor name is empty", nil)
	}
	mu.Lock()
	defer mu.Unlock()
	if _, exists := tools[d.Name]; exists {
		return asValidationError("duplicate_tool", "tool already registered", map[string]any{"name": d.Name})
	}
	tools[d.Name] = t
	return nil
}

// Resolve returns the Tool registered under name, if any.
func Resolve(name string) (Tool, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := tools[name]
	return t, ok
}
