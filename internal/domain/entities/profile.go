package entities

// RoleAdmin unlocks the finance reporting endpoints. This is the only
// authorization distinction in the system.
const RoleAdmin = "admin"

// Profile is the staff record kept alongside the upstream auth service's
// user. The auth service owns credentials; we only look profiles up by the
// authenticated user id.
//
// Storage model (DynamoDB):
//   - PK: id (same id the auth service assigns)

type Profile struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

// Session is the resolved caller identity, threaded explicitly through
// handlers and use cases instead of living in ambient global state.

type Session struct {
	UserID   string
	FullName string
	IsAdmin  bool
}
