package workflow

import (
	"errors"
	"testing"
	"time"

	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/errs"
)

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func TestEngine_SubmitCompleteDraft(t *testing.T) {
	created := time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC)
	now := created.Add(time.Hour)

	r := completeReport()
	r.LastUpdatedAt = created
	e := NewDraft(r, fixedClock(now))

	if err := e.Submit(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.State() != StateSubmitted {
		t.Fatalf("expected SUBMITTED, got %s", e.State())
	}
	got := e.Report()
	if got.Status != "SUBMITTED" {
		t.Fatalf("expected status string SUBMITTED, got %q", got.Status)
	}
	if !got.LastUpdatedAt.Equal(now) {
		t.Fatalf("expected LastUpdatedAt %v, got %v", now, got.LastUpdatedAt)
	}
}

func TestEngine_FailedSubmitLeavesDraftUntouched(t *testing.T) {
	created := time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC)

	r := completeReport()
	r.Diagnosis = ""
	r.LastUpdatedAt = created
	e := NewDraft(r, fixedClock(created.Add(time.Hour)))

	err := e.Submit()
	if !errors.Is(err, errs.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if e.State() != StateDraft {
		t.Fatalf("expected DRAFT, got %s", e.State())
	}
	got := e.Report()
	if got.Status != "DRAFT" || !got.LastUpdatedAt.Equal(created) {
		t.Fatalf("report changed after failed submit: %+v", got)
	}
}

func TestEngine_FullLifecycle(t *testing.T) {
	e := NewDraft(completeReport(), nil)

	steps := []struct {
		fire func() error
		want State
	}{
		{e.Submit, StateSubmitted},
		{e.Approve, StateApproved},
		{e.StartWork, StateInProgress},
		{e.Complete, StateCompleted},
	}
	for _, step := range steps {
		if err := step.fire(); err != nil {
			t.Fatalf("unexpected error moving to %s: %v", step.want, err)
		}
		if e.State() != step.want {
			t.Fatalf("expected %s, got %s", step.want, e.State())
		}
		if step.want == StateApproved || step.want == StateInProgress || step.want == StateCompleted {
			if err := e.Reject(); !errors.Is(err, errs.ErrIllegalStateTransition) {
				t.Fatalf("reject after approval must fail, got %v", err)
			}
			if e.State() != step.want {
				t.Fatalf("state changed after illegal reject: %s", e.State())
			}
		}
	}
}

func TestEngine_RejectIsTerminal(t *testing.T) {
	r := completeReport()
	r.Status = "SUBMITTED"
	e, err := Load(r, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Reject(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, a := range AllActions {
		if err := e.Fire(a); !errors.Is(err, errs.ErrIllegalStateTransition) {
			t.Fatalf("expected %s from REJECTED to be illegal, got %v", a, err)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Run("rehydrates from status string", func(t *testing.T) {
		r := completeReport()
		r.Status = "IN_PROGRESS"

		first, err := Load(r, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := Load(r, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.State() != StateInProgress || first.Capabilities() != second.Capabilities() {
			t.Fatalf("unexpected rehydration: %s %+v %+v", first.State(), first.Capabilities(), second.Capabilities())
		}
	})

	t.Run("unknown status is fatal", func(t *testing.T) {
		r := completeReport()
		r.Status = "REVISION_REQUESTED"
		e, err := Load(r, nil)
		if !errors.Is(err, errs.ErrUnknownState) {
			t.Fatalf("expected ErrUnknownState, got %v", err)
		}
		if e != nil {
			t.Fatalf("expected no engine")
		}
	})
}

func TestEngine_ApproveRechecksCompleteness(t *testing.T) {
	r := entities.TechnicianReport{ID: "rep-1", Status: "SUBMITTED", Diagnosis: "noise", ActionPlan: "replace fan"}
	e, err := Load(r, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Approve(); !errors.Is(err, errs.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState for missing cost, got %v", err)
	}
	if e.State() != StateSubmitted {
		t.Fatalf("expected SUBMITTED, got %s", e.State())
	}
}
