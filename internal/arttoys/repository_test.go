package arttoys

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/yourarttoy/arttoy-backend/pkg/db/models"
	"github.com/yourarttoy/arttoy-backend/pkg/enums"
	pkgerrors "github.com/yourarttoy/arttoy-backend/pkg/errors"
	"github.com/yourarttoy/arttoy-backend/pkg/pagination"
)

func seedToy(t *testing.T, repo *Repository, name string, price float64, rating float64, tags []string) *models.ArtToy {
	t.Helper()

	toy := &models.ArtToy{
		SKU:            fmt.Sprintf("SKU-%s", uuid.NewString()[:8]),
		Name:           name,
		Description:    "test toy",
		Price:          price,
		Rating:         rating,
		ArrivalDate:    time.Now().AddDate(0, 1, 0),
		AvailableQuota: 10,
		PosterPicture:  "https://cdn.example.com/poster.png",
		Tags:           pq.StringArray(tags),
	}
	created, err := repo.Create(context.Background(), toy)
	if err != nil {
		t.Fatalf("seed toy: %v", err)
	}
	t.Cleanup(func() {
		_ = repo.Delete(context.Background(), created.ID)
	})
	return created
}

func TestRepositoryCreateAndFind(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	created := seedToy(t, repo, "Labubu Forest", 29.90, 4.5, []string{"labubu", "forest"})

	found, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if found.Name != "Labubu Forest" {
		t.Fatalf("unexpected name %q", found.Name)
	}

	_, err = repo.FindByID(ctx, uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRepositoryDuplicateSKU(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	created := seedToy(t, repo, "Dimoo Space", 49.90, 4.8, nil)

	_, err := repo.Create(ctx, &models.ArtToy{
		SKU:            created.SKU,
		Name:           "Dimoo Space Copy",
		Price:          49.90,
		ArrivalDate:    time.Now().AddDate(0, 1, 0),
		AvailableQuota: 5,
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error on duplicate sku, got %v", err)
	}
}

func TestRepositoryListFiltered(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	seedToy(t, repo, "Cheap Toy", 9.90, 3.0, []string{"budget"})
	seedToy(t, repo, "Fancy Toy", 199.90, 4.9, []string{"premium"})

	priceMax := 50.0
	result, err := repo.List(ctx, filterQuery{
		Filters:    ListFilters{PriceMax: &priceMax},
		Pagination: pagination.Params{Limit: 10, Page: 1},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, toy := range result.Toys {
		if toy.Price > priceMax {
			t.Fatalf("toy %q exceeds price cap: %v", toy.Name, toy.Price)
		}
	}
}

func TestRepositoryListSearchPaginatesScoredSet(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	marker := uuid.NewString()[:8]
	for i := 0; i < 3; i++ {
		seedToy(t, repo, fmt.Sprintf("Zorblat %s %d", marker, i), 19.90, 4.0, nil)
	}

	result, err := repo.List(ctx, searchQuery{
		Search:     "zorblat",
		Pagination: pagination.Params{Limit: 2, Page: 1},
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(result.Toys) > 2 {
		t.Fatalf("page larger than limit: %d", len(result.Toys))
	}
	if result.Total < 3 {
		t.Fatalf("expected total >= 3, got %d", result.Total)
	}
	if result.TotalPages < 2 {
		t.Fatalf("expected at least 2 pages, got %d", result.TotalPages)
	}
}

func TestRepositoryFindByTags(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	marker := "tag-" + uuid.NewString()[:8]
	seedToy(t, repo, "Tagged Toy", 29.90, 4.2, []string{marker})

	toys, err := repo.FindByTags(ctx, []string{marker, "no-such-tag"})
	if err != nil {
		t.Fatalf("find by tags: %v", err)
	}
	if len(toys) != 1 || toys[0].Name != "Tagged Toy" {
		t.Fatalf("unexpected result %+v", toys)
	}
}

func TestRepositoryDeleteWithOutstandingOrders(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	toy := seedToy(t, repo, "Retiring Toy", 49.90, 4.0, []string{"retired"})

	user := &models.User{
		Name:  "Order Holder",
		Email: fmt.Sprintf("holder-%s@example.com", uuid.NewString()[:8]),
		Role:  enums.UserRoleMember,
	}
	if err := conn.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	t.Cleanup(func() {
		conn.Delete(&models.User{}, "id = ?", user.ID)
	})

	order := &models.Order{
		ArtToyID:    toy.ID,
		UserID:      user.ID,
		OrderAmount: 2,
		TotalPrice:  99.80,
	}
	if err := conn.Create(order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	t.Cleanup(func() {
		conn.Delete(&models.Order{}, "id = ?", order.ID)
	})

	if err := repo.Delete(ctx, toy.ID); err != nil {
		t.Fatalf("delete with outstanding orders: %v", err)
	}

	var kept models.Order
	if err := conn.First(&kept, "id = ?", order.ID).Error; err != nil {
		t.Fatalf("order must survive the catalog delete: %v", err)
	}
	if kept.ArtToyID != toy.ID {
		t.Fatalf("order reference changed, got %s", kept.ArtToyID)
	}
}
