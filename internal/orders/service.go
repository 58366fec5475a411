package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourarttoy/arttoy-backend/internal/arttoys"
	"github.com/yourarttoy/arttoy-backend/pkg/auth"
	"github.com/yourarttoy/arttoy-backend/pkg/db/models"
	pkgerrors "github.com/yourarttoy/arttoy-backend/pkg/errors"
)

const (
	minOrderAmount = 1
	maxOrderAmount = 5
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines the pre-order operations. Every call takes the
// authenticated principal explicitly; what a caller may see or touch is
// decided here, not in middleware.
type Service interface {
	ListOrders(ctx context.Context, principal auth.Principal) ([]OrderDTO, error)
	GetOrder(ctx context.Context, principal auth.Principal, id uuid.UUID) (*OrderDTO, error)
	CreateOrder(ctx context.Context, principal auth.Principal, input CreateOrderInput) (*OrderDTO, error)
	UpdateOrder(ctx context.Context, principal auth.Principal, id uuid.UUID, input UpdateOrderInput) (*OrderDTO, error)
	DeleteOrder(ctx context.Context, principal auth.Principal, id uuid.UUID) error
}

// CreateOrderInput holds the validated payload to place a pre-order.
type CreateOrderInput struct {
	ArtToyID    uuid.UUID
	OrderAmount int
}

// UpdateOrderInput changes the amount of an existing pre-order.
type UpdateOrderInput struct {
	OrderAmount int
}

type service struct {
	repo  *Repository
	tx    txRunner
	quota QuotaReserver
}

// NewService builds the order service.
func NewService(repo *Repository, tx txRunner, quota QuotaReserver) Service {
	return &service{repo: repo, tx: tx, quota: quota}
}

func (s *service) ListOrders(ctx context.Context, principal auth.Principal) ([]OrderDTO, error) {
	records, err := s.repo.ListForPrincipal(ctx, principal)
	if err != nil {
		return nil, err
	}
	return toOrderDTOs(records, principal.IsAdmin()), nil
}

func (s *service) GetOrder(ctx context.Context, principal auth.Principal, id uuid.UUID) (*OrderDTO, error) {
	order, err := s.repo.FindPopulated(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != principal.UserID && !principal.IsAdmin() {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Not authorized to access this order")
	}
	dto := toOrderDTO(*order, true)
	return &dto, nil
}

func (s *service) CreateOrder(ctx context.Context, principal auth.Principal, input CreateOrderInput) (*OrderDTO, error) {
	var orderID uuid.UUID
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		// resolve the toy first so an unknown id answers 404 even when the
		// amount is also bad
		toy, err := txRepo.FindArtToy(ctx, input.ArtToyID)
		if err != nil {
			return err
		}

		if err := validateOrderAmount(input.OrderAmount); err != nil {
			return err
		}

		reserved, err := s.quota.Reserve(ctx, tx, toy.ID, input.OrderAmount)
		if err != nil {
			return err
		}
		if !reserved {
			return pkgerrors.New(pkgerrors.CodeValidation, "Order amount exceeds available quota")
		}

		order := &models.Order{
			ArtToyID:    toy.ID,
			UserID:      principal.UserID,
			OrderAmount: input.OrderAmount,
			TotalPrice:  totalPrice(toy, input.OrderAmount),
		}
		if _, err := txRepo.Create(ctx, order); err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	created, err := s.repo.FindPopulated(ctx, orderID)
	if err != nil {
		return nil, err
	}
	dto := toOrderDTO(*created, true)
	return &dto, nil
}

func (s *service) UpdateOrder(ctx context.Context, principal auth.Principal, id uuid.UUID, input UpdateOrderInput) (*OrderDTO, error) {
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		order, err := txRepo.FindScoped(ctx, id, principal)
		if err != nil {
			return err
		}

		// Hand the old reservation back first so the new amount is judged
		// against the full remaining quota.
		if err := s.quota.Restore(ctx, tx, order.ArtToyID, order.OrderAmount); err != nil {
			return err
		}

		if err := validateOrderAmount(input.OrderAmount); err != nil {
			return err
		}

		reserved, err := s.quota.Reserve(ctx, tx, order.ArtToyID, input.OrderAmount)
		if err != nil {
			return err
		}
		if !reserved {
			return pkgerrors.New(pkgerrors.CodeValidation, "Not enough quota available")
		}

		toy, err := txRepo.FindArtToy(ctx, order.ArtToyID)
		if err != nil {
			return err
		}

		order.OrderAmount = input.OrderAmount
		order.TotalPrice = totalPrice(toy, input.OrderAmount)
		_, err = txRepo.Save(ctx, order)
		return err
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.FindPopulated(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toOrderDTO(*updated, true)
	return &dto, nil
}

func (s *service) DeleteOrder(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		order, err := txRepo.FindScoped(ctx, id, principal)
		if err != nil {
			return err
		}
		if err := s.quota.Restore(ctx, tx, order.ArtToyID, order.OrderAmount); err != nil {
			return err
		}
		return txRepo.Delete(ctx, order.ID)
	})
}

func validateOrderAmount(amount int) error {
	if amount < minOrderAmount || amount > maxOrderAmount {
		return pkgerrors.New(pkgerrors.CodeValidation, "Order amount must be between 1 and 5")
	}
	return nil
}

// totalPrice charges the discounted unit price for every unit in the order.
func totalPrice(toy *models.ArtToy, amount int) float64 {
	return arttoys.DiscountedPrice(toy.Price, toy.DiscountPercentage) * float64(amount)
}
