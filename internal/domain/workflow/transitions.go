package workflow

import (
	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/errs"
)

// Action is a named request to move a report to another state.
type Action string

const (
	ActionSubmit    Action = "submit"
	ActionApprove   Action = "approve"
	ActionReject    Action = "reject"
	ActionStartWork Action = "start_work"
	ActionComplete  Action = "complete"
)

// AllActions lists every workflow action.
var AllActions = []Action{
	ActionSubmit,
	ActionApprove,
	ActionReject,
	ActionStartWork,
	ActionComplete,
}

func (a Action) String() string {
	return string(a)
}

type transition struct {
	to    State
	guard Guard
}

// transitionTable is the single source of truth for legal moves.
// A (state, action) pair that is absent is illegal.
var transitionTable = map[State]map[Action]transition{
	StateDraft: {
		ActionSubmit: {to: StateSubmitted, guard: ValidateForSubmission},
	},
	StateSubmitted: {
		ActionApprove: {to: StateApproved, guard: ValidateForApproval},
		ActionReject:  {to: StateRejected},
	},
	StateApproved: {
		ActionStartWork: {to: StateInProgress, guard: ValidateForWorkStart},
	},
	StateInProgress: {
		ActionComplete: {to: StateCompleted},
	},
	StateRejected:  {},
	StateCompleted: {},
}

// Allowed reports whether action is legal from s, ignoring guards.
func Allowed(s State, action Action) bool {
	_, ok := transitionTable[s][action]
	return ok
}

// PermittedActions returns the actions legal from s in declaration order.
func PermittedActions(s State) []Action {
	out := make([]Action, 0, len(AllActions))
	for _, a := range AllActions {
		if Allowed(s, a) {
			out = append(out, a)
		}
	}
	return out
}

// Transition computes the state reached by applying action to a report in from.
// The table is consulted first; the guard runs only for legal pairs.
func Transition(from State, action Action, report entities.TechnicianReport) (State, error) {
	if !from.IsValid() {
		return "", errs.UnknownState(string(from))
	}
	t, ok := transitionTable[from][action]
	if !ok {
		return "", &errs.IllegalTransitionError{State: from.String(), Action: action.String()}
	}
	if t.guard != nil {
		if err := t.guard(report); err != nil {
			return "", err
		}
	}
	return t.to, nil
}
