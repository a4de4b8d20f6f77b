package reasoning

import (
	"context"
	"testing"
)

func TestFixtureReasoner_Search(t *testing.T) {
	c, err := FixtureReasoner(context.Background(), "conv1", "msg1", "search for cats", nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.Action != "search" {
		t.Fatalf("action=%s want search", c.Action)
	}
	if c.Parameters["query"] != "cats" {
		t.Fatalf("query=%v want cats", c.Parameters["query"])
	}
}

func TestFixtureReasoner_UnknownFallsThrough(t *testing.T) {
	c, err := FixtureReasoner(context.Background(), "conv1", "msg1", "dance for me", nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.Action != "unknown" {
		t.Fatalf("action=%s want unknown", c.Action)
	}
}

func TestFixtureReasoner_Deterministic(t *testing.T) {
	c1, _ := FixtureReasoner(context.Background(), "conv1", "msg1", "calculate 2+2", nil)
	c2, _ := FixtureReasoner(context.Background(), "conv1", "msg1", "calculate 2+2", nil)
	if c1.Action != c2.Action || c1.Parameters["expression"] != c2.Parameters["expression"] {
		t.Fatal("expected deterministic output for identical input")
	}
	if c1.IntentID != c2.IntentID {
		t.Fatalf("intentId=%s vs %s: a redelivered event must reason to the same intentId", c1.IntentID, c2.IntentID)
	}
}

func TestFixtureReasoner_IntentIDVariesByMessage(t *testing.T) {
	c1, _ := FixtureReasoner(context.Background(), "conv1", "msg1", "calculate 2+2", nil)
	c2, _ := FixtureReasoner(context.Background(), "conv1", "msg2", "calculate 2+2", nil)
	if c1.IntentID == c2.IntentID {
		t.Fatal("expected distinct messages to derive distinct intentIds")
	}
}
