package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourarttoy/arttoy-backend/internal/repo"
	"github.com/yourarttoy/arttoy-backend/pkg/auth"
	"github.com/yourarttoy/arttoy-backend/pkg/db"
	"github.com/yourarttoy/arttoy-backend/pkg/db/models"
	pkgerrors "github.com/yourarttoy/arttoy-backend/pkg/errors"
)

// Repository wires together order persistence helpers.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(tx)}
}

// ListForPrincipal returns orders visible to the caller, newest first.
// Admins see every order with both associations; members see only their own,
// with the toy attached.
func (r *Repository) ListForPrincipal(ctx context.Context, principal auth.Principal) ([]models.Order, error) {
	qb := r.DB(ctx).Model(&models.Order{}).Preload("ArtToy")
	if principal.IsAdmin() {
		qb = qb.Preload("User")
	} else {
		qb = qb.Where("user_id = ?", principal.UserID)
	}

	var orders []models.Order
	if err := qb.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}
	return orders, nil
}

// FindPopulated loads the order with its user and toy attached.
func (r *Repository) FindPopulated(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.DB(ctx).
		Preload("ArtToy").
		Preload("User").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound,
				fmt.Sprintf("Order not found with id of %s", id))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}
	return &order, nil
}

// FindScoped loads the order without associations, restricted to the caller's
// own orders unless the caller is an admin. Orders outside the caller's scope
// look the same as missing ones.
func (r *Repository) FindScoped(ctx context.Context, id uuid.UUID, principal auth.Principal) (*models.Order, error) {
	qb := r.DB(ctx).Where("id = ?", id)
	if !principal.IsAdmin() {
		qb = qb.Where("user_id = ?", principal.UserID)
	}

	var order models.Order
	if err := qb.First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}
	return &order, nil
}

// FindArtToy loads the toy referenced by an order operation.
func (r *Repository) FindArtToy(ctx context.Context, id uuid.UUID) (*models.ArtToy, error) {
	var toy models.ArtToy
	if err := r.DB(ctx).First(&toy, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound,
				fmt.Sprintf("Art toy not found with id of %s", id))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load art toy")
	}
	return &toy, nil
}

// Create inserts the order; a second order for the same toy by the same user
// hits the unique index and comes back as a validation error.
func (r *Repository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.DB(ctx).Create(order).Error; err != nil {
		if db.IsUniqueViolation(err, "idx_orders_user_art_toy") {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "You already have an order for this art toy")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
	}
	return order, nil
}

func (r *Repository) Save(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.DB(ctx).Save(order).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update order")
	}
	return order, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.DB(ctx).Delete(&models.Order{}, "id = ?", id)
	if result.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "delete order")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
	}
	return nil
}
