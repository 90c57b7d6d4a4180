package workflow

import (
	"errors"
	"testing"

	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/errs"
)

func TestParseState(t *testing.T) {
	for _, s := range AllStates {
		t.Run(string(s), func(t *testing.T) {
			got, err := ParseState(string(s))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != s {
				t.Fatalf("expected %s, got %s", s, got)
			}
		})
	}

	for _, raw := range []string{"", "draft", "PAUSED", " DRAFT"} {
		t.Run("unknown "+raw, func(t *testing.T) {
			_, err := ParseState(raw)
			if !errors.Is(err, errs.ErrUnknownState) {
				t.Fatalf("expected ErrUnknownState, got %v", err)
			}
		})
	}
}

func TestParseState_RehydrationIsIdempotent(t *testing.T) {
	for _, s := range AllStates {
		first, err := ParseState(string(s))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := ParseState(string(s))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Capabilities() != second.Capabilities() {
			t.Fatalf("capabilities differ for %s: %+v vs %+v", s, first.Capabilities(), second.Capabilities())
		}
	}
}

func TestState_Capabilities(t *testing.T) {
	tests := []struct {
		state          State
		canModify      bool
		customerCanSee bool
	}{
		{StateDraft, true, false},
		{StateSubmitted, false, true},
		{StateApproved, false, true},
		{StateRejected, false, true},
		{StateInProgress, false, true},
		{StateCompleted, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			if got := tt.state.TechnicianCanModify(); got != tt.canModify {
				t.Errorf("TechnicianCanModify() = %v, want %v", got, tt.canModify)
			}
			if got := tt.state.CustomerCanSee(); got != tt.customerCanSee {
				t.Errorf("CustomerCanSee() = %v, want %v", got, tt.customerCanSee)
			}
		})
	}

	if (State("BOGUS").Capabilities() != Capabilities{}) {
		t.Fatalf("expected no capabilities for an invalid state")
	}
}

func TestState_IsTerminal(t *testing.T) {
	terminal := map[State]bool{StateRejected: true, StateCompleted: true}
	for _, s := range AllStates {
		if got := s.IsTerminal(); got != terminal[s] {
			t.Errorf("%s.IsTerminal() = %v, want %v", s, got, terminal[s])
		}
	}
	if State("BOGUS").IsTerminal() {
		t.Fatalf("invalid state must not be terminal")
	}
}

func TestOrderStatusFor(t *testing.T) {
	want := map[State]entities.RepairOrderStatus{
		StateDraft:      entities.RepairOrderStatusPendingConfirmation,
		StateSubmitted:  entities.RepairOrderStatusAwaitingApproval,
		StateApproved:   entities.RepairOrderStatusApproved,
		StateRejected:   entities.RepairOrderStatusRejected,
		StateInProgress: entities.RepairOrderStatusInProgress,
		StateCompleted:  entities.RepairOrderStatusCompleted,
	}
	for s, status := range want {
		got, err := OrderStatusFor(s)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", s, err)
		}
		if got != status {
			t.Fatalf("expected %s for %s, got %s", status, s, got)
		}
	}

	if _, err := OrderStatusFor(State("BOGUS")); !errors.Is(err, errs.ErrUnknownState) {
		t.Fatalf("expected ErrUnknownState, got %v", err)
	}
}
