package pagination

import (
	"math"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 100
)

// Params holds page-based pagination parameters extracted from a request.
type Params struct {
	Page  int
	Limit int
}

// Parse normalizes raw page and limit values. Missing, non-numeric or zero
// values fall back to the defaults; the result always has Page >= 1 and
// 1 <= Limit <= MaxLimit, and Page is capped so that Offset cannot overflow.
func Parse(rawPage, rawLimit string) Params {
	page, err := strconv.Atoi(strings.TrimSpace(rawPage))
	if err != nil || page == 0 {
		page = DefaultPage
	}
	if page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(strings.TrimSpace(rawLimit))
	if err != nil || limit == 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if limit < 1 {
		limit = 1
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}

	return Params{Page: page, Limit: limit}
}

// FromContext extracts pagination parameters from the echo context.
func FromContext(c echo.Context) Params {
	return Parse(c.QueryParam("page"), c.QueryParam("limit"))
}

// Offset returns the number of rows skipped before this page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Result is one page of rows plus the totals a client needs to navigate.
type Result[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NewResult assembles a page. A nil data slice is rendered as [].
func NewResult[T any](data []T, total int, p Params) *Result[T] {
	if data == nil {
		data = []T{}
	}
	return &Result[T]{
		Data:       data,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: TotalPages(total, p.Limit),
	}
}

// TotalPages returns ceil(total/limit), and 0 when there is nothing to page
// or the limit is not positive.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
