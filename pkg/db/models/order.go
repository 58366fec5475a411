package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is a member's pre-order for a single art toy. A user can hold at most
// one order per toy (unique user_id + art_toy_id). ArtToyID carries no FK
// constraint: deleting a toy leaves its orders in place with a dangling
// reference, so the preloaded ArtToy can come back nil.
type Order struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ArtToyID    uuid.UUID `gorm:"column:art_toy_id;type:uuid;not null;uniqueIndex:idx_orders_user_art_toy"`
	UserID      uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_orders_user_art_toy"`
	OrderAmount int       `gorm:"column:order_amount;not null"`
	TotalPrice  float64   `gorm:"column:total_price;not null"`
	ArtToy      *ArtToy   `gorm:"foreignKey:ArtToyID"`
	User        *User     `gorm:"foreignKey:UserID"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
