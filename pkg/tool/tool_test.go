package tool

import (
	"context"
	"testing"
)

type echoTool struct {
	desc Descriptor
	fn   func(ctx context.Context, args map[string]any) (map[string]any, error)
}

func (e echoTool) Describe() Descriptor { return e.desc }
func (e echoTool) Invoke(ctx context.Context, args map[string]any) (map[string]any, error) {
	return e.fn(ctx, args)
}

func passValidator(_ []byte, _ any) error { return nil }

func TestSafeInvoke_Success(t *testing.T) {
	tl := echoTool{
		desc: Descriptor{Name: "echo"},
		fn: func(_ context.Context, args map[string]any) (map[string]any, error) {
			return map[string]any{"ok": true}, nil
		},
	}
	res := SafeInvoke(context.Background(), tl, map[string]any{}, nil, passValidator)
	if !res.Success {
		t.Fatalf("expected success, got error %q", res.Error)
	}
}

func TestSafeInvoke_NilTool(t *testing.T) {
	res := SafeInvoke(context.Background(), nil, nil, nil, passValidator)
	if res.Success {
		t.Fatal("expected failure for nil tool")
	}
}

func TestSafeInvoke_PermissionDenied(t *testing.T) {
	tl := echoTool{
		desc: Descriptor{Name: "secure", Permissions: []Permission{{Name: "network:outbound"}}},
		fn: func(_ context.Context, args map[string]any) (map[string]any, error) {
			return map[string]any{}, nil
		},
	}
	res := SafeInvoke(context.Background(), tl, map[string]any{}, map[string]bool{}, passValidator)
	if res.Success {
		t.Fatal("expected permission-denied failure")
	}
}

func TestSafeInvoke_InvokeError(t *testing.T) {
	tl := echoTool{
		desc: Descriptor{Name: "fails"},
		fn: func(_ context.Context, args map[string]any) (map[string]any, error) {
			return nil, errToolFailure{}
		},
	}
	res := SafeInvoke(context.Background(), tl, map[string]any{}, nil, passValidator)
	if res.Success {
		t.Fatal("expected failure to propagate as a Result, not a panic")
	}
}

type errToolFailure struct{}

func (errToolFailure) Error() string { return "deliberate failure" }

func TestRegisterAndResolve(t *testing.T) {
	tl := echoTool{desc: Descriptor{Name: "registry-test-tool"}}
	if err := Register(tl); err != nil {
		t.Fatal(err)
	}
	got, ok := Resolve("registry-test-tool")
	if !ok {
		t.Fatal("expected tool to resolve")
	}
	if got.Describe().Name != "registry-test-tool" {
		t.Fatalf("unexpected descriptor: %+v", got.Describe())
	}
	if err := Register(tl); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}
