package auth

import (
	"github.com/google/uuid"

	"github.com/yourarttoy/arttoy-backend/pkg/enums"
)

// Principal is the authenticated caller, threaded explicitly through service
// calls rather than smuggled in context values.
type Principal struct {
	UserID uuid.UUID
	Role   enums.UserRole
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == enums.UserRoleAdmin
}
