package paginator

const (
	// DefaultLimit is the page size used when a cursor asks for a non-positive limit.
	DefaultLimit = 50
	// MaxLimit caps the page size to prevent excessive queries.
	MaxLimit = 1000
	// UnknownTotal stands in for the total when it could not be counted in time.
	UnknownTotal = 9999
)
