package arttoys

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/yourarttoy/arttoy-backend/pkg/db/models"
	pkgerrors "github.com/yourarttoy/arttoy-backend/pkg/errors"
)

// Service exposes the catalog operations: public browsing and admin
// management of art toys.
type Service interface {
	ListArtToys(ctx context.Context, input ListInput) (*ListResult, error)
	GetArtToy(ctx context.Context, id uuid.UUID) (*ArtToyDTO, error)
	SearchByTags(ctx context.Context, tags []string) ([]ArtToyDTO, error)
	CreateArtToy(ctx context.Context, input CreateArtToyInput) (*ArtToyDTO, error)
	UpdateArtToy(ctx context.Context, id uuid.UUID, input UpdateArtToyInput) (*ArtToyDTO, error)
	DeleteArtToy(ctx context.Context, id uuid.UUID) error
}

// CreateArtToyInput holds the validated payload to create an art toy.
type CreateArtToyInput struct {
	SKU                string
	Name               string
	Description        string
	Price              float64
	DiscountPercentage float64
	Rating             float64
	ArrivalDate        time.Time
	AvailableQuota     int
	PosterPicture      string
	Images             []string
	Tags               []string
}

// UpdateArtToyInput holds optional mutation values; nil fields keep the
// stored value.
type UpdateArtToyInput struct {
	SKU                *string
	Name               *string
	Description        *string
	Price              *float64
	DiscountPercentage *float64
	Rating             *float64
	ArrivalDate        *time.Time
	AvailableQuota     *int
	PosterPicture      *string
	Images             *[]string
	Tags               *[]string
}

type service struct {
	repo *Repository
	now  func() time.Time
}

// NewService builds the catalog service on top of the repository.
func NewService(repo *Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) ListArtToys(ctx context.Context, input ListInput) (*ListResult, error) {
	return s.repo.List(ctx, resolveListQuery(input))
}

func (s *service) GetArtToy(ctx context.Context, id uuid.UUID) (*ArtToyDTO, error) {
	toy, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toArtToyDTO(*toy)
	return &dto, nil
}

func (s *service) SearchByTags(ctx context.Context, tags []string) ([]ArtToyDTO, error) {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	if len(cleaned) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Please provide tags to search for")
	}
	toys, err := s.repo.FindByTags(ctx, cleaned)
	if err != nil {
		return nil, err
	}
	if len(toys) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "No art toys found with the given tags")
	}
	return toArtToyDTOs(toys), nil
}

func (s *service) CreateArtToy(ctx context.Context, input CreateArtToyInput) (*ArtToyDTO, error) {
	if err := s.validateArrivalDate(input.ArrivalDate); err != nil {
		return nil, err
	}

	toy := &models.ArtToy{
		SKU:                input.SKU,
		Name:               input.Name,
		Description:        input.Description,
		Price:              input.Price,
		DiscountPercentage: input.DiscountPercentage,
		Rating:             input.Rating,
		ArrivalDate:        input.ArrivalDate,
		AvailableQuota:     input.AvailableQuota,
		PosterPicture:      input.PosterPicture,
		Images:             pq.StringArray(input.Images),
		Tags:               pq.StringArray(input.Tags),
	}
	created, err := s.repo.Create(ctx, toy)
	if err != nil {
		return nil, err
	}
	dto := toArtToyDTO(*created)
	return &dto, nil
}

func (s *service) UpdateArtToy(ctx context.Context, id uuid.UUID, input UpdateArtToyInput) (*ArtToyDTO, error) {
	toy, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ArrivalDate != nil {
		if err := s.validateArrivalDate(*input.ArrivalDate); err != nil {
			return nil, err
		}
		toy.ArrivalDate = *input.ArrivalDate
	}
	if input.SKU != nil {
		toy.SKU = *input.SKU
	}
	if input.Name != nil {
		toy.Name = *input.Name
	}
	if input.Description != nil {
		toy.Description = *input.Description
	}
	if input.Price != nil {
		toy.Price = *input.Price
	}
	if input.DiscountPercentage != nil {
		toy.DiscountPercentage = *input.DiscountPercentage
	}
	if input.Rating != nil {
		toy.Rating = *input.Rating
	}
	if input.AvailableQuota != nil {
		toy.AvailableQuota = *input.AvailableQuota
	}
	if input.PosterPicture != nil {
		toy.PosterPicture = *input.PosterPicture
	}
	if input.Images != nil {
		toy.Images = pq.StringArray(*input.Images)
	}
	if input.Tags != nil {
		toy.Tags = pq.StringArray(*input.Tags)
	}

	saved, err := s.repo.Save(ctx, toy)
	if err != nil {
		return nil, err
	}
	dto := toArtToyDTO(*saved)
	return &dto, nil
}

func (s *service) DeleteArtToy(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// validateArrivalDate rejects dates before today at day granularity; a toy
// arriving later today is still valid.
func (s *service) validateArrivalDate(arrival time.Time) error {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if arrival.UTC().Before(today) {
		return pkgerrors.New(pkgerrors.CodeValidation, "Arrival date cannot be earlier than current date")
	}
	return nil
}
