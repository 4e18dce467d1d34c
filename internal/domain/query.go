package domain

// Defaults applied by NewsQuery.Normalize.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// NewsQuery carries the caller's filters for one aggregation run.
// Every field is optional; zero values mean "no filter".
type NewsQuery struct {
	Category string
	Page     int
	PageSize int

	Region   Region
	State    string
	District string
	Country  string
}

// Normalize applies the endpoint defaults in place and returns the query.
// Invalid values are defaulted, never rejected.
func (q NewsQuery) Normalize() NewsQuery {
	q.Category = string(ParseCategory(q.Category))
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	if q.Region != "" && !q.Region.Valid() {
		q.Region = ""
	}
	return q
}
