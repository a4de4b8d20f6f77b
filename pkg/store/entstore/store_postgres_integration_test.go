//go:build integration

package entstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/google/uuid"

	"github.com/wilhg/triad/pkg/statemachine"
	"github.com/wilhg/triad/pkg/store"
)

func TestPostgres_ConversationLifecycle(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpostgres.RunContainer(ctx,
		tcpostgres.WithDatabase("triad"),
		tcpostgres.WithUsername("triad"),
		tcpostgres.WithPassword("triad"),
		tcpostgres.WithSQLDriver("pgx"),
	)
	if err != nil {
		t.Skipf("skip: cannot start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}

	st, err := Open(ctx, fmt.Sprintf("postgres://%s", dsn))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(ctx); err != nil {
		t.Fatal(err)
	}

	id := uuid.NewString()
	if err := st.CreateConversation(ctx, id); err != nil {
		t.Fatal(err)
	}
	if err := st.TransitionState(ctx, id, statemachine.ReasoningRequested); err != nil {
		t.Fatal(err)
	}
	if err := st.TransitionState(ctx, id, statemachine.IntentValidated); err != nil {
		t.Fatal(err)
	}
	if err := st.TransitionState(ctx, id, statemachine.ActionRequested); err != nil {
		t.Fatal(err)
	}
	if err := st.TransitionState(ctx, id, statemachine.ActionCompleted); err != nil {
		t.Fatal(err)
	}
	conv, err := st.GetConversation(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if conv.State != statemachine.ActionCompleted {
		t.Fatalf("state=%s want ACTION_COMPLETED", conv.State)
	}

	eventID := uuid.NewString()
	meta := store.ReceiptMeta{Handler: "executor", ConversationID: id, MessageID: "m1"}
	ok, err := st.ClaimReceipt(ctx, eventID, meta, 2*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected first claim to succeed")
	}
	if err := st.CompleteReceipt(ctx, eventID); err != nil {
		t.Fatal(err)
	}
}
