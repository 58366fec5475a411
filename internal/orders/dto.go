package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/yourarttoy/arttoy-backend/internal/arttoys"
	"github.com/yourarttoy/arttoy-backend/pkg/db/models"
)

// OrderArtToy is the toy snapshot embedded in order responses. It carries
// both the list price and the discounted price the order was charged at.
type OrderArtToy struct {
	ID              uuid.UUID `json:"id"`
	SKU             string    `json:"sku"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	ArrivalDate     time.Time `json:"arrivalDate"`
	AvailableQuota  int       `json:"availableQuota"`
	PosterPicture   string    `json:"posterPicture"`
	Price           float64   `json:"price"`
	DiscountedPrice float64   `json:"discountedPrice"`
}

// OrderUser is the owner snapshot exposed to admins.
type OrderUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type OrderDTO struct {
	ID          uuid.UUID    `json:"id"`
	OrderAmount int          `json:"orderAmount"`
	TotalPrice  float64      `json:"totalPrice"`
	ArtToy      *OrderArtToy `json:"artToy,omitempty"`
	User        *OrderUser   `json:"user,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func toOrderArtToy(toy *models.ArtToy) *OrderArtToy {
	if toy == nil {
		return nil
	}
	return &OrderArtToy{
		ID:              toy.ID,
		SKU:             toy.SKU,
		Name:            toy.Name,
		Description:     toy.Description,
		ArrivalDate:     toy.ArrivalDate,
		AvailableQuota:  toy.AvailableQuota,
		PosterPicture:   toy.PosterPicture,
		Price:           toy.Price,
		DiscountedPrice: arttoys.DiscountedPrice(toy.Price, toy.DiscountPercentage),
	}
}

func toOrderUser(user *models.User) *OrderUser {
	if user == nil {
		return nil
	}
	return &OrderUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// toOrderDTO renders the order; includeUser keeps the owner snapshot out of
// member-facing listings.
func toOrderDTO(order models.Order, includeUser bool) OrderDTO {
	dto := OrderDTO{
		ID:          order.ID,
		OrderAmount: order.OrderAmount,
		TotalPrice:  order.TotalPrice,
		ArtToy:      toOrderArtToy(order.ArtToy),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
	if includeUser {
		dto.User = toOrderUser(order.User)
	}
	return dto
}

func toOrderDTOs(orders []models.Order, includeUser bool) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderDTO(order, includeUser))
	}
	return out
}
