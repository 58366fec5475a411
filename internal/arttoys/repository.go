package arttoys

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/yourarttoy/arttoy-backend/internal/repo"
	"github.com/yourarttoy/arttoy-backend/pkg/db"
	"github.com/yourarttoy/arttoy-backend/pkg/db/models"
	pkgerrors "github.com/yourarttoy/arttoy-backend/pkg/errors"
	"github.com/yourarttoy/arttoy-backend/pkg/pagination"
)

// Repository wires together the art toy persistence helpers.
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

// IsDuplicateSKU reports whether err is the unique violation on the sku
// column.
func IsDuplicateSKU(err error) bool {
	return db.IsUniqueViolation(err, "idx_art_toys_sku")
}

// FindByID loads the toy, translating a miss into a typed not-found error.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.ArtToy, error) {
	var toy models.ArtToy
	if err := r.DB(ctx).First(&toy, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Art Toy not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load art toy")
	}
	return &toy, nil
}

func (r *Repository) Create(ctx context.Context, toy *models.ArtToy) (*models.ArtToy, error) {
	if err := r.DB(ctx).Create(toy).Error; err != nil {
		if IsDuplicateSKU(err) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "An art toy with this SKU already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create art toy")
	}
	return toy, nil
}

func (r *Repository) Save(ctx context.Context, toy *models.ArtToy) (*models.ArtToy, error) {
	if err := r.DB(ctx).Save(toy).Error; err != nil {
		if IsDuplicateSKU(err) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "An art toy with this SKU already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update art toy")
	}
	return toy, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.DB(ctx).Delete(&models.ArtToy{}, "id = ?", id)
	if result.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "delete art toy")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Art Toy not found")
	}
	return nil
}

// FindByTags returns toys carrying at least one of the given tags, newest
// first.
func (r *Repository) FindByTags(ctx context.Context, tags []string) ([]models.ArtToy, error) {
	var toys []models.ArtToy
	err := r.DB(ctx).
		Where("tags && ?", pq.StringArray(tags)).
		Order("created_at DESC").
		Find(&toys).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list art toys by tags")
	}
	return toys, nil
}

// List runs the resolved catalog query. Plain filter queries page in the
// database; search queries load the filtered candidate set, score it in
// process, then page the ranked matches.
func (r *Repository) List(ctx context.Context, query listQuery) (*ListResult, error) {
	switch q := query.(type) {
	case filterQuery:
		return r.listFiltered(ctx, q)
	case searchQuery:
		return r.listSearched(ctx, q)
	default:
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "unknown list query")
	}
}

func (r *Repository) listFiltered(ctx context.Context, query filterQuery) (*ListResult, error) {
	limit, page, offset := query.Pagination.Normalize()

	qb := applyFilters(r.DB(ctx).Model(&models.ArtToy{}), query.Filters)

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count art toys")
	}

	var toys []models.ArtToy
	err := qb.Order(orderClause(query.Sort)).
		Limit(limit).
		Offset(offset).
		Find(&toys).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list art toys")
	}

	return &ListResult{
		Toys:       toArtToyDTOs(toys),
		Total:      int(total),
		Page:       page,
		TotalPages: pagination.TotalPages(int(total), limit),
	}, nil
}

func (r *Repository) listSearched(ctx context.Context, query searchQuery) (*ListResult, error) {
	limit, page, _ := query.Pagination.Normalize()

	qb := applyFilters(r.DB(ctx).Model(&models.ArtToy{}), query.Filters)

	var candidates []models.ArtToy
	if err := qb.Find(&candidates).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load search candidates")
	}

	matched := scoreCatalog(query.Search, candidates)
	if query.Sort != nil {
		sortScored(matched, query.Sort)
	}

	total := len(matched)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	toys := make([]models.ArtToy, 0, end-start)
	for _, m := range matched[start:end] {
		toys = append(toys, m.toy)
	}

	return &ListResult{
		Toys:       toArtToyDTOs(toys),
		Total:      total,
		Page:       page,
		TotalPages: pagination.TotalPages(total, limit),
	}, nil
}

func applyFilters(qb *gorm.DB, filters ListFilters) *gorm.DB {
	if filters.RatingMin != nil {
		qb = qb.Where("rating >= ?", *filters.RatingMin)
	}
	if filters.DiscountMin != nil {
		qb = qb.Where("discount_percentage >= ?", *filters.DiscountMin)
	}
	if filters.QuotaMin != nil {
		qb = qb.Where("available_quota >= ?", *filters.QuotaMin)
	}
	if filters.PriceMax != nil {
		qb = qb.Where("price <= ?", *filters.PriceMax)
	}
	if filters.ArrivalDateFrom != nil {
		qb = qb.Where("arrival_date >= ?", *filters.ArrivalDateFrom)
	}
	if filters.CreatedFrom != nil {
		qb = qb.Where("created_at >= ?", *filters.CreatedFrom)
	}
	if len(filters.Tags) > 0 {
		qb = qb.Where("tags && ?", pq.StringArray(filters.Tags))
	}
	return qb
}
