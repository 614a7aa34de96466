package entities

type Role string

const (
	RoleBuyer      Role = "buyer"
	RoleSeller     Role = "seller"
	RoleRider      Role = "rider"
	RoleSuperadmin Role = "superadmin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleRider, RoleSuperadmin:
		return true
	}
	return false
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) IsSuperadmin() bool {
	return a.Role == RoleSuperadmin
}
