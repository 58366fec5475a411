package arttoys

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yourarttoy/arttoy-backend/pkg/db/models"
)

type ArtToyDTO struct {
	ID                 uuid.UUID `json:"id"`
	SKU                string    `json:"sku"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Price              float64   `json:"price"`
	DiscountPercentage float64   `json:"discountPercentage"`
	DiscountedPrice    float64   `json:"discountedPrice"`
	Rating             float64   `json:"rating"`
	ArrivalDate        time.Time `json:"arrivalDate"`
	AvailableQuota     int       `json:"availableQuota"`
	PosterPicture      string    `json:"posterPicture"`
	Images             []string  `json:"images"`
	Tags               []string  `json:"tags"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// DiscountedPrice applies the percentage discount to the list price using
// decimal arithmetic so prices like 19.99 at 10% round predictably.
func DiscountedPrice(price, discountPercentage float64) float64 {
	p := decimal.NewFromFloat(price)
	d := p.Mul(decimal.NewFromFloat(discountPercentage)).Div(decimal.NewFromInt(100))
	out, _ := p.Sub(d).Round(2).Float64()
	return out
}

func toArtToyDTO(toy models.ArtToy) ArtToyDTO {
	images := toy.Images
	if images == nil {
		images = []string{}
	}
	tags := toy.Tags
	if tags == nil {
		tags = []string{}
	}
	return ArtToyDTO{
		ID:                 toy.ID,
		SKU:                toy.SKU,
		Name:               toy.Name,
		Description:        toy.Description,
		Price:              toy.Price,
		DiscountPercentage: toy.DiscountPercentage,
		DiscountedPrice:    DiscountedPrice(toy.Price, toy.DiscountPercentage),
		Rating:             toy.Rating,
		ArrivalDate:        toy.ArrivalDate,
		AvailableQuota:     toy.AvailableQuota,
		PosterPicture:      toy.PosterPicture,
		Images:             images,
		Tags:               tags,
		CreatedAt:          toy.CreatedAt,
		UpdatedAt:          toy.UpdatedAt,
	}
}

func toArtToyDTOs(toys []models.ArtToy) []ArtToyDTO {
	out := make([]ArtToyDTO, 0, len(toys))
	for _, toy := range toys {
		out = append(out, toArtToyDTO(toy))
	}
	return out
}
