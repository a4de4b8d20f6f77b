package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TopicReasoning != "reasoning-requested" {
		t.Fatalf("TopicReasoning=%s", cfg.TopicReasoning)
	}
	if cfg.TopicAction != "action-requested" {
		t.Fatalf("TopicAction=%s", cfg.TopicAction)
	}
	if cfg.ReceiptStaleThreshold != 120*time.Second {
		t.Fatalf("ReceiptStaleThreshold=%s want 120s", cfg.ReceiptStaleThreshold)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr=%s want :8080", cfg.HTTPAddr)
	}
	if cfg.SimilarityTopK != 0 {
		t.Fatalf("SimilarityTopK=%d want 0 (recall disabled by default)", cfg.SimilarityTopK)
	}
	if cfg.ContextMaxTokens <= 0 {
		t.Fatalf("ContextMaxTokens=%d want a positive default", cfg.ContextMaxTokens)
	}
}

func TestLoad_OverridesFromEnv(t *testing.T) {
	t.Setenv("RECEIPT_STALE_THRESHOLD_MS", "5000")
	t.Setenv("TOPIC_REASONING", "custom-reasoning")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ReceiptStaleThreshold != 5*time.Second {
		t.Fatalf("ReceiptStaleThreshold=%s want 5s", cfg.ReceiptStaleThreshold)
	}
	if cfg.TopicReasoning != "custom-reasoning" {
		t.Fatalf("TopicReasoning=%s", cfg.TopicReasoning)
	}
}

func TestLoad_InvalidThreshold(t *testing.T) {
	t.Setenv("RECEIPT_STALE_THRESHOLD_MS", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a non-numeric threshold")
	}
}

func TestLoad_ContextAndRecallOverrides(t *testing.T) {
	t.Setenv("CONTEXT_MAX_TOKENS", "256")
	t.Setenv("SIMILARITY_TOP_K", "3")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ContextMaxTokens != 256 {
		t.Fatalf("ContextMaxTokens=%d want 256", cfg.ContextMaxTokens)
	}
	if cfg.SimilarityTopK != 3 {
		t.Fatalf("SimilarityTopK=%d want 3", cfg.SimilarityTopK)
	}
}
