package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/yourarttoy/arttoy-backend/pkg/errors"
)

// QuotaReserver adjusts an art toy's remaining pre-order quota inside an open
// transaction. Reserve is conditional: it only succeeds when enough quota
// remains, so concurrent orders can never drive the quota negative.
type QuotaReserver interface {
	Reserve(ctx context.Context, tx *gorm.DB, artToyID uuid.UUID, qty int) (bool, error)
	Restore(ctx context.Context, tx *gorm.DB, artToyID uuid.UUID, qty int) error
}

type quotaReserverImpl struct{}

// NewQuotaReserver exposes the default quota reservation implementation.
func NewQuotaReserver() QuotaReserver {
	return quotaReserverImpl{}
}

func (quotaReserverImpl) Reserve(ctx context.Context, tx *gorm.DB, artToyID uuid.UUID, qty int) (bool, error) {
	if qty <= 0 {
		return true, nil
	}
	if tx == nil {
		return false, pkgerrors.New(pkgerrors.CodeDependency, "transaction required for quota reservation")
	}

	res := tx.WithContext(ctx).Exec(`
		UPDATE art_toys
		SET available_quota = available_quota - ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND available_quota >= ?
	`, qty, artToyID, qty)
	if res.Error != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, res.Error, "reserve quota")
	}
	return res.RowsAffected > 0, nil
}

func (quotaReserverImpl) Restore(ctx context.Context, tx *gorm.DB, artToyID uuid.UUID, qty int) error {
	if qty <= 0 {
		return nil
	}
	if tx == nil {
		return pkgerrors.New(pkgerrors.CodeDependency, "transaction required for quota restore")
	}

	res := tx.WithContext(ctx).Exec(`
		UPDATE art_toys
		SET available_quota = available_quota + ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, qty, artToyID)
	if res.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, res.Error, "restore quota")
	}
	return nil
}
