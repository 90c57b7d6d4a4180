package workflow

import (
	"strings"

	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/errs"
)

// Operation is anything a caller can ask to do with a report.
type Operation string

const (
	OpRead        Operation = "read"
	OpUpdateDraft Operation = "update_draft"
	OpDeleteDraft Operation = "delete_draft"
	OpSubmit      Operation = "submit"
	OpApprove     Operation = "approve"
	OpReject      Operation = "reject"
	OpStartWork   Operation = "start_work"
	OpComplete    Operation = "complete"
)

// OperationFor maps a workflow action to the operation the gate authorizes.
func OperationFor(action Action) Operation {
	return Operation(action)
}

type capabilityCheck int

const (
	checkNone capabilityCheck = iota
	checkCustomerCanSee
	checkTechnicianCanModify
)

type operationRule struct {
	roles []entities.Role
	check capabilityCheck
}

var operationRules = map[Operation]operationRule{
	OpRead:        {roles: []entities.Role{entities.RoleCustomer, entities.RoleTechnician}, check: checkCustomerCanSee},
	OpUpdateDraft: {roles: []entities.Role{entities.RoleTechnician}, check: checkTechnicianCanModify},
	OpDeleteDraft: {roles: []entities.Role{entities.RoleTechnician}, check: checkTechnicianCanModify},
	OpSubmit:      {roles: []entities.Role{entities.RoleTechnician}, check: checkTechnicianCanModify},
	OpApprove:     {roles: []entities.Role{entities.RoleCustomer}, check: checkCustomerCanSee},
	OpReject:      {roles: []entities.Role{entities.RoleCustomer}, check: checkCustomerCanSee},
	OpStartWork:   {roles: []entities.Role{entities.RoleTechnician}, check: checkNone},
	OpComplete:    {roles: []entities.Role{entities.RoleTechnician}, check: checkNone},
}

// Authorize evaluates whether caller may perform op on report.
// Rules:
// - The caller's role must be allowed to perform the operation
// - A technician must be the report's technician; a customer must be the report's customer
// - A customer may only see reports whose state allows it
// - A technician may only change draft contents while the state allows it
//
// A nil result means allowed. Denials wrap errs.ErrIllegalAccess.
func Authorize(report entities.TechnicianReport, caller entities.Caller, op Operation) error {
	rule, ok := operationRules[op]
	if !ok {
		return errs.IllegalAccess("unknown operation %q", op)
	}
	if !roleAllowed(rule.roles, caller.Role) {
		return errs.IllegalAccess("role %q may not %s reports", caller.Role, op)
	}

	callerID := strings.TrimSpace(caller.ID)
	switch caller.Role {
	case entities.RoleTechnician:
		if callerID == "" || callerID != report.TechnicianID {
			return errs.IllegalAccess("technician %s does not own report %s", callerID, report.ID)
		}
	case entities.RoleCustomer:
		if callerID == "" || callerID != report.CustomerID {
			return errs.IllegalAccess("customer %s is not associated with report %s", callerID, report.ID)
		}
	}

	state, err := ParseState(report.Status)
	if err != nil {
		return err
	}

	switch rule.check {
	case checkCustomerCanSee:
		if caller.Role == entities.RoleCustomer && !state.CustomerCanSee() {
			return errs.IllegalAccess("report %s is not visible to customers in state %s", report.ID, state)
		}
	case checkTechnicianCanModify:
		if caller.Role == entities.RoleTechnician && !state.TechnicianCanModify() {
			return errs.IllegalAccess("report %s cannot be modified in state %s", report.ID, state)
		}
	}
	return nil
}

func roleAllowed(roles []entities.Role, role entities.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
