package shared

// Filter carries pagination options for list queries.
type Filter struct {
	Page     int
	PageSize int
}

// DefaultFilter returns the first page with the standard page size.
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
	}
}
