// Package pagination implements skip/limit paging for list endpoints.
package pagination

import "gorm.io/gorm"

const (
	// DefaultLimit is used when the caller does not send a limit.
	DefaultLimit = 100
	// MaxLimit bounds a single page; larger requests are clamped.
	MaxLimit = 500
)

// PageRequest holds pagination parameters parsed from query strings.
// Pointers distinguish an absent parameter from an explicit zero.
type PageRequest struct {
	Skip  *int `form:"skip" binding:"omitempty,min=0"`
	Limit *int `form:"limit" binding:"omitempty,min=1"`
}

// New builds a PageRequest from plain values.
func New(skip, limit int) PageRequest {
	return PageRequest{Skip: &skip, Limit: &limit}
}

// Offset returns the SQL OFFSET for the request.
func (p PageRequest) Offset() int {
	if p.Skip == nil || *p.Skip < 0 {
		return 0
	}
	return *p.Skip
}

// Size returns the effective SQL LIMIT: DefaultLimit when absent, clamped to MaxLimit.
func (p PageRequest) Size() int {
	if p.Limit == nil || *p.Limit <= 0 {
		return DefaultLimit
	}
	if *p.Limit > MaxLimit {
		return MaxLimit
	}
	return *p.Limit
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given page request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.Size())
	}
}
