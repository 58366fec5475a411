package pagination

// DefaultLimit is the standard page size when a limit is not provided.
const DefaultLimit = 12

// MaxLimit caps how many rows any listing query can request.
const MaxLimit = 100

// Params holds page pagination inputs from controllers or services.
type Params struct {
	Limit int
	Page  int
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// NormalizePage clamps the 1-indexed page number.
func NormalizePage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

// Normalize returns the effective limit, page and row offset.
func (p Params) Normalize() (limit, page, offset int) {
	limit = NormalizeLimit(p.Limit)
	page = NormalizePage(p.Page)
	return limit, page, (page - 1) * limit
}

// TotalPages derives the page count for the given total row count.
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}
