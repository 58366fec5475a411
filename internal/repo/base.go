package repo

import (
	"context"

	"gorm.io/gorm"
)

// Base is embedded by the domain repositories so they share one way of
// binding queries to a request context.
type Base struct {
	db *gorm.DB
}

func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the connection scoped to ctx. A nil context yields the raw
// connection, which keeps transaction-bound copies cheap to construct.
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}
