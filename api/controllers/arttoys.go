package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yourarttoy/arttoy-backend/api/responses"
	"github.com/yourarttoy/arttoy-backend/api/validators"
	"github.com/yourarttoy/arttoy-backend/internal/arttoys"
	"github.com/yourarttoy/arttoy-backend/pkg/enums"
	pkgerrors "github.com/yourarttoy/arttoy-backend/pkg/errors"
	"github.com/yourarttoy/arttoy-backend/pkg/logger"
	"github.com/yourarttoy/arttoy-backend/pkg/pagination"
	"github.com/yourarttoy/arttoy-backend/pkg/types"
)

// ListArtToys handles the public catalog listing with filters, free-text
// search, sorting and pagination.
func ListArtToys(svc arttoys.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input := arttoys.ListInput{
			Filters: arttoys.ListFilters{
				RatingMin:       validators.QueryFloat(r, "rating"),
				DiscountMin:     validators.QueryFloat(r, "discountPercentage"),
				QuotaMin:        validators.QueryInt(r, "availableQuota"),
				PriceMax:        validators.QueryFloat(r, "price"),
				ArrivalDateFrom: validators.QueryDate(r, "arrivalDate"),
				CreatedFrom:     validators.QueryDate(r, "createdAt"),
				Tags:            validators.QueryStringList(r, "tags"),
			},
			Search: validators.QueryString(r, "search"),
			Pagination: pagination.Params{
				Limit: validators.QueryIntDefault(r, "limit", pagination.DefaultLimit),
				Page:  validators.QueryIntDefault(r, "page", 1),
			},
		}
		if field := validators.QueryString(r, "sortField"); field != "" {
			input.Sort = &arttoys.SortSpec{
				Field: field,
				Order: enums.ParseSortOrder(validators.QueryString(r, "sortOrder")),
			}
		}

		result, err := svc.ListArtToys(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		envelope := types.ListEnvelope{
			Count:      len(result.Toys),
			Total:      result.Total,
			Page:       result.Page,
			TotalPages: result.TotalPages,
			Data:       result.Toys,
		}
		responses.WriteList(w, envelope)
	}
}

// GetArtToy handles single toy lookup. A malformed id reads as a miss, the
// same as an unknown one.
func GetArtToy(svc arttoys.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Art Toy not found - Invalid ID"))
			return
		}

		toy, err := svc.GetArtToy(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toy)
	}
}

// SearchArtToysByTags handles tag-based lookup with a comma-separated tags
// parameter.
func SearchArtToysByTags(svc arttoys.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toys, err := svc.SearchByTags(r.Context(), validators.QueryStringList(r, "tags"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, types.ListEnvelope{
			Count: len(toys),
			Data:  toys,
		})
	}
}

type createArtToyRequest struct {
	SKU                string   `json:"sku" validate:"required"`
	Name               string   `json:"name" validate:"required"`
	Description        string   `json:"description" validate:"required"`
	Price              float64  `json:"price" validate:"required,gte=0"`
	DiscountPercentage float64  `json:"discountPercentage" validate:"gte=0,lte=99"`
	Rating             float64  `json:"rating" validate:"gte=0,lte=5"`
	ArrivalDate        string   `json:"arrivalDate" validate:"required"`
	// pointer so a zero quota still counts as provided
	AvailableQuota     *int     `json:"availableQuota" validate:"required,gte=0"`
	PosterPicture      string   `json:"posterPicture" validate:"required,url"`
	Images             []string `json:"images,omitempty" validate:"omitempty,dive,url"`
	Tags               []string `json:"tags,omitempty" validate:"omitempty,dive,required"`
}

type updateArtToyRequest struct {
	SKU                *string   `json:"sku,omitempty" validate:"omitempty,min=1"`
	Name               *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Description        *string   `json:"description,omitempty" validate:"omitempty,min=1"`
	Price              *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	DiscountPercentage *float64  `json:"discountPercentage,omitempty" validate:"omitempty,gte=0,lte=99"`
	Rating             *float64  `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	ArrivalDate        *string   `json:"arrivalDate,omitempty"`
	AvailableQuota     *int      `json:"availableQuota,omitempty" validate:"omitempty,gte=0"`
	PosterPicture      *string   `json:"posterPicture,omitempty" validate:"omitempty,url"`
	Images             *[]string `json:"images,omitempty" validate:"omitempty,dive,url"`
	Tags               *[]string `json:"tags,omitempty" validate:"omitempty,dive,required"`
}

func sanitizedPtr(value *string) *string {
	if value == nil {
		return nil
	}
	clean := validators.SanitizeString(*value, 0)
	return &clean
}

func parseArrivalDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if value, err := time.Parse(layout, raw); err == nil {
			return value, nil
		}
	}
	return time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "arrivalDate must be an ISO 8601 date").
		WithDetails(map[string]string{"arrivalDate": raw})
}

// CreateArtToy handles admin catalog additions.
func CreateArtToy(svc arttoys.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createArtToyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		arrival, err := parseArrivalDate(payload.ArrivalDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		toy, err := svc.CreateArtToy(r.Context(), arttoys.CreateArtToyInput{
			SKU:                validators.SanitizeString(payload.SKU, 0),
			Name:               validators.SanitizeString(payload.Name, 0),
			Description:        validators.SanitizeString(payload.Description, 0),
			Price:              payload.Price,
			DiscountPercentage: payload.DiscountPercentage,
			Rating:             payload.Rating,
			ArrivalDate:        arrival,
			AvailableQuota:     *payload.AvailableQuota,
			PosterPicture:      payload.PosterPicture,
			Images:             payload.Images,
			Tags:               payload.Tags,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, toy)
	}
}

// UpdateArtToy handles partial admin edits to a toy.
func UpdateArtToy(svc arttoys.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Art Toy not found - Invalid ID"))
			return
		}

		var payload updateArtToyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := arttoys.UpdateArtToyInput{
			SKU:                sanitizedPtr(payload.SKU),
			Name:               sanitizedPtr(payload.Name),
			Description:        sanitizedPtr(payload.Description),
			Price:              payload.Price,
			DiscountPercentage: payload.DiscountPercentage,
			Rating:             payload.Rating,
			AvailableQuota:     payload.AvailableQuota,
			PosterPicture:      payload.PosterPicture,
			Images:             payload.Images,
			Tags:               payload.Tags,
		}
		if payload.ArrivalDate != nil {
			arrival, err := parseArrivalDate(*payload.ArrivalDate)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			input.ArrivalDate = &arrival
		}

		toy, err := svc.UpdateArtToy(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toy)
	}
}

// DeleteArtToy handles admin catalog removal.
func DeleteArtToy(svc arttoys.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Art Toy not found - Invalid ID"))
			return
		}

		if err := svc.DeleteArtToy(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "Art Toy deleted")
	}
}
