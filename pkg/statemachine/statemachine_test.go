package statemachine

import "testing"

func TestAllowed_HappyPath(t *testing.T) {
	path := []State{
		Received,
		ReasoningRequested,
		IntentValidated,
		ActionRequested,
		ActionCompleted,
	}
	for i := 0; i < len(path)-1; i++ {
		if !Allowed(path[i], path[i+1]) {
			t.Fatalf("expected %s -> %s to be allowed", path[i], path[i+1])
		}
	}
}

func TestAllowed_ValidationFailure(t *testing.T) {
	if !Allowed(ReasoningRequested, FailedValidation) {
		t.Fatal("expected REASONING_REQUESTED -> FAILED_VALIDATION to be allowed")
	}
}

func TestAllowed_ExecutionFailure(t *testing.T) {
	if !Allowed(ActionRequested, FailedExecution) {
		t.Fatal("expected ACTION_REQUESTED -> FAILED_EXECUTION to be allowed")
	}
}

func TestTerminalStatesHaveNoOutgoing(t *testing.T) {
	for _, s := range []State{ActionCompleted, FailedValidation, FailedExecution} {
		if !Terminal(s) {
			t.Fatalf("expected %s to be terminal", s)
		}
		for _, to := range []State{Received, ReasoningRequested, IntentValidated, ActionRequested, ActionCompleted, FailedValidation, FailedExecution} {
			if Allowed(s, to) {
				t.Fatalf("expected no transition out of terminal state %s, got %s -> %s allowed", s, s, to)
			}
		}
	}
}

func TestAllowed_IllegalSkip(t *testing.T) {
	if Allowed(Received, ActionRequested) {
		t.Fatal("expected RECEIVED -> ACTION_REQUESTED to be disallowed (skips intermediate states)")
	}
	if Allowed(Received, IntentValidated) {
		t.Fatal("expected RECEIVED -> INTENT_VALIDATED to be disallowed")
	}
}

func TestAllowed_UnknownFromState(t *testing.T) {
	if Allowed(State("BOGUS"), Received) {
		t.Fatal("expected unknown from-state to never allow a transition")
	}
}

func TestValid(t *testing.T) {
	if !Valid(Received) {
		t.Fatal("expected RECEIVED to be a valid state")
	}
	if Valid(State("BOGUS")) {
		t.Fatal("expected BOGUS to be an invalid state")
	}
}

func TestCheck(t *testing.T) {
	if err := Check(Received, ReasoningRequested); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	err := Check(Received, ActionCompleted)
	if err == nil {
		t.Fatal("expected an InvalidTransitionError")
	}
	if _, ok := err.(*InvalidTransitionError); !ok {
		t.Fatalf("expected *InvalidTransitionError, got %T", err)
	}
}
