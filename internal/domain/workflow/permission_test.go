package workflow

import (
	"errors"
	"testing"

	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/errs"
)

const (
	ownerTechnician = "tech-1"
	ownerCustomer   = "cust-1"
)

func reportIn(s State) entities.TechnicianReport {
	r := completeReport()
	r.TechnicianID = ownerTechnician
	r.CustomerID = ownerCustomer
	r.Status = string(s)
	return r
}

func customer(id string) entities.Caller {
	return entities.Caller{Role: entities.RoleCustomer, ID: id}
}

func technician(id string) entities.Caller {
	return entities.Caller{Role: entities.RoleTechnician, ID: id}
}

func TestAuthorize_CustomerRead(t *testing.T) {
	for _, s := range AllStates {
		t.Run(string(s), func(t *testing.T) {
			err := Authorize(reportIn(s), customer(ownerCustomer), OpRead)
			if s == StateDraft {
				if !errors.Is(err, errs.ErrIllegalAccess) {
					t.Fatalf("expected ErrIllegalAccess reading a draft, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("owner should read %s report, got %v", s, err)
			}
		})
	}
}

func TestAuthorize_CustomerReadingDraftDeniedRegardlessOfOwnership(t *testing.T) {
	for _, id := range []string{ownerCustomer, "cust-2", ""} {
		if err := Authorize(reportIn(StateDraft), customer(id), OpRead); !errors.Is(err, errs.ErrIllegalAccess) {
			t.Fatalf("expected ErrIllegalAccess for customer %q, got %v", id, err)
		}
	}
}

func TestAuthorize_TechnicianRead(t *testing.T) {
	for _, s := range AllStates {
		if err := Authorize(reportIn(s), technician(ownerTechnician), OpRead); err != nil {
			t.Fatalf("owner technician should read %s report, got %v", s, err)
		}
		if err := Authorize(reportIn(s), technician("tech-2"), OpRead); !errors.Is(err, errs.ErrIllegalAccess) {
			t.Fatalf("other technician should not read %s report, got %v", s, err)
		}
	}
}

func TestAuthorize_DraftWrites(t *testing.T) {
	for _, op := range []Operation{OpUpdateDraft, OpDeleteDraft, OpSubmit} {
		for _, s := range AllStates {
			t.Run(string(op)+"/"+string(s), func(t *testing.T) {
				err := Authorize(reportIn(s), technician(ownerTechnician), op)
				if s == StateDraft {
					if err != nil {
						t.Fatalf("unexpected error: %v", err)
					}
					return
				}
				if !errors.Is(err, errs.ErrIllegalAccess) {
					t.Fatalf("expected ErrIllegalAccess, got %v", err)
				}
			})
		}
	}
}

func TestAuthorize_Rules(t *testing.T) {
	tests := []struct {
		name    string
		report  entities.TechnicianReport
		caller  entities.Caller
		op      Operation
		wantErr error
	}{
		{
			name:   "customer approves submitted report",
			report: reportIn(StateSubmitted),
			caller: customer(ownerCustomer),
			op:     OpApprove,
		},
		{
			name:   "customer rejects submitted report",
			report: reportIn(StateSubmitted),
			caller: customer(ownerCustomer),
			op:     OpReject,
		},
		{
			name:    "other customer cannot approve",
			report:  reportIn(StateSubmitted),
			caller:  customer("cust-2"),
			op:      OpApprove,
			wantErr: errs.ErrIllegalAccess,
		},
		{
			name:    "technician cannot approve",
			report:  reportIn(StateSubmitted),
			caller:  technician(ownerTechnician),
			op:      OpApprove,
			wantErr: errs.ErrIllegalAccess,
		},
		{
			name:    "customer cannot submit",
			report:  reportIn(StateDraft),
			caller:  customer(ownerCustomer),
			op:      OpSubmit,
			wantErr: errs.ErrIllegalAccess,
		},
		{
			name:    "customer cannot approve a draft",
			report:  reportIn(StateDraft),
			caller:  customer(ownerCustomer),
			op:      OpApprove,
			wantErr: errs.ErrIllegalAccess,
		},
		{
			name:   "owner technician starts work",
			report: reportIn(StateApproved),
			caller: technician(ownerTechnician),
			op:     OpStartWork,
		},
		{
			name:   "owner technician completes",
			report: reportIn(StateInProgress),
			caller: technician(ownerTechnician),
			op:     OpComplete,
		},
		{
			name:    "other technician cannot complete",
			report:  reportIn(StateInProgress),
			caller:  technician("tech-2"),
			op:      OpComplete,
			wantErr: errs.ErrIllegalAccess,
		},
		{
			name:    "unknown role",
			report:  reportIn(StateSubmitted),
			caller:  entities.Caller{Role: "ADMIN", ID: "adm-1"},
			op:      OpRead,
			wantErr: errs.ErrIllegalAccess,
		},
		{
			name:    "unknown operation",
			report:  reportIn(StateSubmitted),
			caller:  customer(ownerCustomer),
			op:      Operation("archive"),
			wantErr: errs.ErrIllegalAccess,
		},
		{
			name:    "unknown stored state",
			report:  func() entities.TechnicianReport { r := reportIn(StateDraft); r.Status = "ARCHIVED"; return r }(),
			caller:  technician(ownerTechnician),
			op:      OpRead,
			wantErr: errs.ErrUnknownState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.report, tt.caller, tt.op)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestOperationFor(t *testing.T) {
	want := map[Action]Operation{
		ActionSubmit:    OpSubmit,
		ActionApprove:   OpApprove,
		ActionReject:    OpReject,
		ActionStartWork: OpStartWork,
		ActionComplete:  OpComplete,
	}
	for a, op := range want {
		if got := OperationFor(a); got != op {
			t.Fatalf("OperationFor(%s) = %s, want %s", a, got, op)
		}
	}
}
