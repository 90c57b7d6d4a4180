// Package workflow contains the technician report state machine.
//
// Everything here is pure: the transition table, the capability table, the
// validation guards and the permission gate take values and return values or
// errors. Loading and saving reports is the usecase layer's job.
package workflow

import (
	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/errs"
)

// State is the lifecycle stage of a technician report.
type State string

const (
	StateDraft      State = "DRAFT"
	StateSubmitted  State = "SUBMITTED"
	StateApproved   State = "APPROVED"
	StateRejected   State = "REJECTED"
	StateInProgress State = "IN_PROGRESS"
	StateCompleted  State = "COMPLETED"
)

// AllStates lists every state in lifecycle order.
var AllStates = []State{
	StateDraft,
	StateSubmitted,
	StateApproved,
	StateRejected,
	StateInProgress,
	StateCompleted,
}

// Capabilities are the per-state predicates consumed by the permission gate.
type Capabilities struct {
	TechnicianCanModify bool
	CustomerCanSee      bool
}

var capabilityTable = map[State]Capabilities{
	StateDraft:      {TechnicianCanModify: true, CustomerCanSee: false},
	StateSubmitted:  {TechnicianCanModify: false, CustomerCanSee: true},
	StateApproved:   {TechnicianCanModify: false, CustomerCanSee: true},
	StateRejected:   {TechnicianCanModify: false, CustomerCanSee: true},
	StateInProgress: {TechnicianCanModify: false, CustomerCanSee: true},
	StateCompleted:  {TechnicianCanModify: false, CustomerCanSee: true},
}

var orderStatusTable = map[State]entities.RepairOrderStatus{
	StateDraft:      entities.RepairOrderStatusPendingConfirmation,
	StateSubmitted:  entities.RepairOrderStatusAwaitingApproval,
	StateApproved:   entities.RepairOrderStatusApproved,
	StateRejected:   entities.RepairOrderStatusRejected,
	StateInProgress: entities.RepairOrderStatusInProgress,
	StateCompleted:  entities.RepairOrderStatusCompleted,
}

// ParseState rebuilds a State from its persisted name.
// Unrecognized input is never defaulted.
func ParseState(raw string) (State, error) {
	s := State(raw)
	if _, ok := capabilityTable[s]; !ok {
		return "", errs.UnknownState(raw)
	}
	return s, nil
}

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	_, ok := capabilityTable[s]
	return ok
}

// IsTerminal reports whether no action is legal from s.
func (s State) IsTerminal() bool {
	return s.IsValid() && len(transitionTable[s]) == 0
}

// Capabilities returns the zero value (nothing allowed) for an invalid state.
func (s State) Capabilities() Capabilities {
	return capabilityTable[s]
}

func (s State) TechnicianCanModify() bool {
	return capabilityTable[s].TechnicianCanModify
}

func (s State) CustomerCanSee() bool {
	return capabilityTable[s].CustomerCanSee
}

// OrderStatusFor returns the order status driven by a report in state s.
func OrderStatusFor(s State) (entities.RepairOrderStatus, error) {
	status, ok := orderStatusTable[s]
	if !ok {
		return "", errs.UnknownState(string(s))
	}
	return status, nil
}
