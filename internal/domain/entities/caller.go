package entities

// Role identifies the kind of actor calling the workflow.
type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleTechnician Role = "TECHNICIAN"
)

func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleTechnician
}

// Caller is the authenticated actor behind a request.
type Caller struct {
	Role Role
	ID   string
}
