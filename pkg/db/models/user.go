package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/yourarttoy/arttoy-backend/pkg/enums"
)

// User mirrors the identity records minted by the external auth service. The
// API only reads these rows to populate order responses and scope queries.
type User struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string         `gorm:"column:name;not null"`
	Email     string         `gorm:"column:email;not null;uniqueIndex"`
	Role      enums.UserRole `gorm:"column:role;not null;default:member"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
