package domain

// Role determines which protected views an actor may reach.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
)

// Identity is the resolved actor record representing "who is logged in".
// It is immutable once created; a logout discards it rather than mutating it.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
	Role     Role   `json:"role"`
}

// RegisteredUser is the persisted form of a self-registered customer account.
// The password is stored in plaintext: the roster simulates a backend user
// store and is a stated limitation of the platform, not a hashing bug.
type RegisteredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Role     Role   `json:"role"`
}

// Identity projects the roster record into the actor record handed to the
// session, dropping the password on the way.
func (u RegisteredUser) Identity() Identity {
	return Identity{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Name:     u.Name,
		Role:     RoleCustomer,
	}
}

// RegistrationEvent is the payload delivered to the registration webhook when
// a new customer signs up. Field names are part of the outbound contract.
type RegistrationEvent struct {
	Event            string `json:"event"`
	CustomerID       string `json:"customer_id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Username         string `json:"username"`
	RegistrationDate string `json:"registration_date"`
	Location         string `json:"location"`
	Phone            string `json:"phone"`
}

// EventNewCustomerSignup is the event name carried by RegistrationEvent.
const EventNewCustomerSignup = "new_customer_signup"
