// Package user defines the user account model shared by the storage,
// service and transport layers.
package user

// Address is a postal address owned by exactly one User.
type Address struct {
	// ID is the public 30-character identifier of the address.
	ID string

	City       string
	Country    string
	StreetName string
	PostalCode string

	// Type is caller-supplied, e.g. "shipping" or "billing". It is not
	// checked against a closed set.
	Type string
}

// User represents a registered account.
type User struct {
	// ID is the public 30-character identifier of the user. It never changes
	// after creation.
	ID string

	FirstName string
	LastName  string

	// Email is the unique business key used for login.
	Email string

	// PasswordHash is the bcrypt hash of the password. The plain password is
	// never stored.
	PasswordHash string

	// EmailVerified gates login. It is false on creation and set by the
	// out-of-band verification process.
	EmailVerified bool

	// Addresses in insertion order.
	Addresses []Address
}

// Clone returns a deep copy of the user so callers can't mutate shared state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	if u.Addresses != nil {
		clone.Addresses = make([]Address, len(u.Addresses))
		copy(clone.Addresses, u.Addresses)
	}

	return &clone
}
