package domain

import "strings"

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// SortField is a whitelisted article sort column.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
	SortByViews     SortField = "views"
	SortByTitle     SortField = "title"
)

// Column maps the sort field to its database column. The whitelist keeps
// caller input out of the generated SQL.
func (f SortField) Column() string {
	switch f {
	case SortByUpdatedAt:
		return "updated_at"
	case SortByViews:
		return "views"
	case SortByTitle:
		return "title"
	default:
		return "created_at"
	}
}

// SortOrder is the sort direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ListQuery describes an article listing request after input coercion.
type ListQuery struct {
	Category Category
	Search   string
	Page     int
	Limit    int
	SortBy   SortField
	Order    SortOrder
}

// NewListQuery coerces raw query parameters into a well-formed query.
// Out-of-range or unrecognized values fall back to defaults rather than
// failing the request.
func NewListQuery(category, search string, page, limit int, sortBy, order string) ListQuery {
	q := ListQuery{
		Search: strings.TrimSpace(search),
		Page:   page,
		Limit:  limit,
	}

	if c := Category(strings.TrimSpace(category)); c.Valid() {
		q.Category = c
	}
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}

	switch SortField(sortBy) {
	case SortByUpdatedAt, SortByViews, SortByTitle:
		q.SortBy = SortField(sortBy)
	default:
		q.SortBy = SortByCreatedAt
	}

	if SortOrder(strings.ToLower(order)) == OrderAsc {
		q.Order = OrderAsc
	} else {
		q.Order = OrderDesc
	}

	return q
}

// Offset returns the number of rows to skip for the requested page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Pagination summarizes a result page.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination computes the page count for a total row count.
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}

// ArticlePage is one page of a listing result.
type ArticlePage struct {
	Articles   []*Article `json:"news"`
	Pagination Pagination `json:"pagination"`
}
