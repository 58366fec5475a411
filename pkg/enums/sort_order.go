package enums

// SortOrder captures the listing sort direction. Anything other than "asc"
// sorts descending, matching the public query contract.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// ParseSortOrder maps raw query input onto a direction.
func ParseSortOrder(value string) SortOrder {
	if value == string(SortOrderAsc) {
		return SortOrderAsc
	}
	return SortOrderDesc
}

// Ascending reports whether the order sorts low-to-high.
func (s SortOrder) Ascending() bool {
	return s == SortOrderAsc
}
