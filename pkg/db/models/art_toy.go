package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ArtToy is the canonical catalog record for a pre-orderable art toy.
type ArtToy struct {
	ID                 uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SKU                string         `gorm:"column:sku;not null;uniqueIndex"`
	Name               string         `gorm:"column:name;not null"`
	Description        string         `gorm:"column:description;not null"`
	Price              float64        `gorm:"column:price;not null"`
	DiscountPercentage float64        `gorm:"column:discount_percentage;not null;default:0"`
	Rating             float64        `gorm:"column:rating;not null;default:0;index"`
	ArrivalDate        time.Time      `gorm:"column:arrival_date;not null;index"`
	AvailableQuota     int            `gorm:"column:available_quota;not null"`
	PosterPicture      string         `gorm:"column:poster_picture;not null"`
	Images             pq.StringArray `gorm:"column:images;type:text[];not null;default:ARRAY[]::text[]"`
	Tags               pq.StringArray `gorm:"column:tags;type:text[];not null;default:ARRAY[]::text[];index:idx_art_toys_tags,type:gin"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
