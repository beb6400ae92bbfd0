// Package pagination converts 1-based page/limit query values into
// offset/limit for the storage layer and builds response metadata.
package pagination

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type Options struct {
	Offset      int
	Limit       int
	CurrentPage int
}

type Meta struct {
	TotalItems   int64 `json:"totalItems"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
	CurrentItems int   `json:"currentItems"`
	Limit        int   `json:"limit"`
	HasNext      bool  `json:"hasNext"`
	HasPrevious  bool  `json:"hasPrevious"`
	NextPage     *int  `json:"nextPage"`
	PrevPage     *int  `json:"prevPage"`
}

// Paginate clamps page and limit to >=1; non-numeric or missing values fall
// back to the defaults (1, 10).
func Paginate(page, limit string) Options {
	p := atoiMin1(page, DefaultPage)
	l := atoiMin1(limit, DefaultLimit)
	return Options{
		Offset:      (p - 1) * l,
		Limit:       l,
		CurrentPage: p,
	}
}

func BuildMeta(totalItems int64, currentPage, limit, currentItems int) Meta {
	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))
	m := Meta{
		TotalItems:   totalItems,
		TotalPages:   totalPages,
		CurrentPage:  currentPage,
		CurrentItems: currentItems,
		Limit:        limit,
		HasNext:      currentPage < totalPages,
		HasPrevious:  currentPage > 1,
	}
	if m.HasNext {
		next := currentPage + 1
		m.NextPage = &next
	}
	if m.HasPrevious {
		prev := currentPage - 1
		m.PrevPage = &prev
	}
	return m
}

func atoiMin1(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil && v >= 1 {
		return v
	}
	return def
}
