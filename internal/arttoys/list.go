package arttoys

import (
	"time"

	"github.com/yourarttoy/arttoy-backend/pkg/enums"
	"github.com/yourarttoy/arttoy-backend/pkg/pagination"
)

// ListFilters describe the supported filter knobs for the browse endpoint.
// Every field is optional; absent fields leave the predicate out entirely.
type ListFilters struct {
	RatingMin          *float64   `json:"rating,omitempty"`
	DiscountMin        *float64   `json:"discountPercentage,omitempty"`
	QuotaMin           *int       `json:"availableQuota,omitempty"`
	PriceMax           *float64   `json:"price,omitempty"`
	ArrivalDateFrom    *time.Time `json:"arrivalDate,omitempty"`
	CreatedFrom        *time.Time `json:"createdAt,omitempty"`
	Tags               []string   `json:"tags,omitempty"`
}

// SortSpec is an explicit sort request from the caller.
type SortSpec struct {
	Field string
	Order enums.SortOrder
}

// ListInput captures the inputs needed to paginate/filter/search the catalog.
type ListInput struct {
	Filters    ListFilters
	Search     string
	Sort       *SortSpec
	Pagination pagination.Params
}

// ListResult carries one page of toys plus exact pagination metadata.
type ListResult struct {
	Toys       []ArtToyDTO
	Total      int
	Page       int
	TotalPages int
}

// listQuery is the resolved query strategy: a plain filtered lookup or a
// text-search pass over the filtered candidate set. The choice is made once,
// at the entry of the listing operation.
type listQuery interface {
	isListQuery()
}

type filterQuery struct {
	Filters    ListFilters
	Sort       *SortSpec
	Pagination pagination.Params
}

type searchQuery struct {
	Filters    ListFilters
	Search     string
	Sort       *SortSpec
	Pagination pagination.Params
}

func (filterQuery) isListQuery() {}
func (searchQuery) isListQuery() {}

func resolveListQuery(input ListInput) listQuery {
	if input.Search != "" {
		return searchQuery{
			Filters:    input.Filters,
			Search:     input.Search,
			Sort:       input.Sort,
			Pagination: input.Pagination,
		}
	}
	return filterQuery{
		Filters:    input.Filters,
		Sort:       input.Sort,
		Pagination: input.Pagination,
	}
}

// sortColumns whitelists the sortable fields; the key is the public query
// parameter, the value the underlying column.
var sortColumns = map[string]string{
	"price":              "price",
	"rating":             "rating",
	"name":               "name",
	"sku":                "sku",
	"discountPercentage": "discount_percentage",
	"availableQuota":     "available_quota",
	"arrivalDate":        "arrival_date",
	"createdAt":          "created_at",
}

// orderClause renders the SQL ORDER BY expression for an optional explicit
// sort. The default is newest first.
func orderClause(sort *SortSpec) string {
	column := "created_at"
	direction := "DESC"
	if sort != nil {
		if mapped, ok := sortColumns[sort.Field]; ok {
			column = mapped
			if sort.Order.Ascending() {
				direction = "ASC"
			}
		}
	}
	return column + " " + direction
}
