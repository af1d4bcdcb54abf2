package domain

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage      = 1
	DefaultPageLimit = 10
	MaxPageLimit     = 100
	DefaultSortKey   = "createdAt"
)

// PageRequest holds list parameters. Out-of-range values are clamped or
// defaulted by Normalize and never produce an error.
type PageRequest struct {
	Page  int
	Limit int
	Sort  string
	Order SortOrder
}

// ParsePageRequest builds a normalized PageRequest from raw query values.
// Unparsable numbers fall back to defaults.
func ParsePageRequest(page, limit, sort, order string) PageRequest {
	p := PageRequest{
		Page:  atoiOr(page, DefaultPage),
		Limit: atoiOr(limit, DefaultPageLimit),
		Sort:  strings.TrimSpace(sort),
		Order: SortDesc,
	}
	if order == string(SortAsc) {
		p.Order = SortAsc
	}
	return p.Normalize()
}

// Normalize applies defaults and clamps values.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Sort == "" {
		p.Sort = DefaultSortKey
	}
	if p.Order != SortAsc {
		p.Order = SortDesc
	}
	return p
}

// Skip returns the number of records preceding the page. It saturates
// instead of overflowing for absurdly large page numbers.
func (p PageRequest) Skip() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// TotalPages returns ceil(total/limit).
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Page is one slice of a listing plus its metadata.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// NewPage assembles a Page for req. items is never nil in the result.
func NewPage[T any](items []T, total int, req PageRequest) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: TotalPages(total, req.Limit),
	}
}

func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}
