package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity is the currently authenticated user. At most one identity is
// active at a time.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
}
