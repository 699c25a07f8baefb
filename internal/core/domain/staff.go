package domain

// StaffAccount is a fixed, built-in non-customer account.
type StaffAccount struct {
	Password string
	Role     Role
	Name     string
}

// StaffRoster maps reserved staff usernames to their accounts. It is
// compile-time fixed and never mutated at runtime; these exact credentials
// are relied on by the driver and owner portals.
var StaffRoster = map[string]StaffAccount{
	"DRIVER123": {Password: "driver123", Role: RoleDriver, Name: "John Driver"},
	"DRIVER456": {Password: "driver456", Role: RoleDriver, Name: "Sarah Driver"},
	"OWNER789":  {Password: "owner789", Role: RoleOwner, Name: "Owner Admin"},
	"ADMIN123":  {Password: "admin123", Role: RoleAdmin, Name: "System Admin"},
}

// The demo account behaves like a zero-th roster entry with a customer role.
const (
	DemoUsername = "demo"
	DemoPassword = "password"
)

// DemoIdentity returns the fixed identity produced by a demo login.
func DemoIdentity() Identity {
	return Identity{
		ID:       "1",
		Username: DemoUsername,
		Name:     "Demo User",
		Email:    "demo@example.com",
		Role:     RoleCustomer,
	}
}

// UsernameReserved reports whether a username is claimed by the staff roster
// or the demo account and therefore unavailable for customer signup.
func UsernameReserved(username string) bool {
	if username == DemoUsername {
		return true
	}
	_, ok := StaffRoster[username]
	return ok
}
