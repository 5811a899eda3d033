// Package models contains the wire types exchanged with the bookmarket API.
// Field names follow the server's JSON contract verbatim.
package models

// Role is the coarse permission class the server assigns to a user.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the roles the server can issue.
func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// ParseRole maps a wire string to a Role. Unknown values are returned
// as-is with ok=false so callers can decide how strict to be.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// UserProfile is the authenticated user's record as served by GET /profile/.
//
// Role is the authoritative role claim. IsStaff is an orthogonal
// elevated-access marker: a staff user passes both the admin and the
// seller authorization checks regardless of Role.
type UserProfile struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Role        Role   `json:"role"`
	IsStaff     bool   `json:"is_staff"`
}

// Registration is the payload for POST /register/. The server forces the
// initial role to buyer; role changes go through the admin endpoint.
type Registration struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// TokenPair is the response of POST /token/.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
