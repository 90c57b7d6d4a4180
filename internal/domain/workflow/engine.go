package workflow

import (
	"time"

	"repairflow/internal/domain/entities"
)

// Engine drives one technician report through its lifecycle.
//
// A successful Fire replaces the state, writes its canonical name into the
// report status and stamps LastUpdatedAt. All three are computed before any
// field is assigned, so a failed Fire leaves the report untouched.
type Engine struct {
	report entities.TechnicianReport
	state  State
	now    func() time.Time
}

// Load rehydrates the engine from the persisted status string.
// now may be nil, in which case time.Now is used.
func Load(report entities.TechnicianReport, now func() time.Time) (*Engine, error) {
	state, err := ParseState(report.Status)
	if err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{report: report, state: state, now: now}, nil
}

// NewDraft returns an engine over a report placed in DRAFT.
func NewDraft(report entities.TechnicianReport, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	report.Status = StateDraft.String()
	return &Engine{report: report, state: StateDraft, now: now}
}

func (e *Engine) State() State {
	return e.state
}

// Report returns a copy of the report as it currently stands.
func (e *Engine) Report() entities.TechnicianReport {
	return e.report
}

func (e *Engine) Capabilities() Capabilities {
	return e.state.Capabilities()
}

func (e *Engine) Fire(action Action) error {
	next, err := Transition(e.state, action, e.report)
	if err != nil {
		return err
	}

	updated := e.report
	updated.Status = next.String()
	updated.LastUpdatedAt = e.now().UTC()

	e.report = updated
	e.state = next
	return nil
}

func (e *Engine) Submit() error    { return e.Fire(ActionSubmit) }
func (e *Engine) Approve() error   { return e.Fire(ActionApprove) }
func (e *Engine) Reject() error    { return e.Fire(ActionReject) }
func (e *Engine) StartWork() error { return e.Fire(ActionStartWork) }
func (e *Engine) Complete() error  { return e.Fire(ActionComplete) }
