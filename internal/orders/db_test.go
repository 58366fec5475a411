package orders

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yourarttoy/arttoy-backend/pkg/db/models"
	"github.com/yourarttoy/arttoy-backend/pkg/enums"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("ARTTOY_DB_DSN")
	if dsn == "" {
		t.Skip("ARTTOY_DB_DSN is not set")
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	return conn
}

// gormTxRunner adapts a raw test connection to the service's transaction
// contract.
type gormTxRunner struct {
	db *gorm.DB
}

func (r gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	conn := openTestDB(t)
	return NewService(NewRepository(conn), gormTxRunner{db: conn}, NewQuotaReserver()), conn
}

func seedUser(t *testing.T, conn *gorm.DB, role enums.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Name:  "Test User",
		Email: fmt.Sprintf("user-%s@example.com", uuid.NewString()[:8]),
		Role:  role,
	}
	if err := conn.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	t.Cleanup(func() {
		conn.Delete(&models.User{}, "id = ?", user.ID)
	})
	return user
}

func seedToy(t *testing.T, conn *gorm.DB, quota int, price, discount float64) *models.ArtToy {
	t.Helper()

	toy := &models.ArtToy{
		SKU:                fmt.Sprintf("SKU-%s", uuid.NewString()[:8]),
		Name:               "Test Toy",
		Description:        "test toy",
		Price:              price,
		DiscountPercentage: discount,
		ArrivalDate:        time.Now().AddDate(0, 1, 0),
		AvailableQuota:     quota,
		PosterPicture:      "https://cdn.example.com/poster.png",
	}
	if err := conn.Create(toy).Error; err != nil {
		t.Fatalf("seed toy: %v", err)
	}
	t.Cleanup(func() {
		conn.Delete(&models.Order{}, "art_toy_id = ?", toy.ID)
		conn.Delete(&models.ArtToy{}, "id = ?", toy.ID)
	})
	return toy
}

func remainingQuota(t *testing.T, conn *gorm.DB, toyID uuid.UUID) int {
	t.Helper()

	var toy models.ArtToy
	if err := conn.First(&toy, "id = ?", toyID).Error; err != nil {
		t.Fatalf("load toy: %v", err)
	}
	return toy.AvailableQuota
}
