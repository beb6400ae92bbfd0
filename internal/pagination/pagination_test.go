package pagination

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name  string
		page  string
		limit string
		want  Options
	}{
		{"defaults on empty", "", "", Options{Offset: 0, Limit: 10, CurrentPage: 1}},
		{"defaults on non-numeric", "abc", "xyz", Options{Offset: 0, Limit: 10, CurrentPage: 1}},
		{"defaults on zero", "0", "0", Options{Offset: 0, Limit: 10, CurrentPage: 1}},
		{"defaults on negative", "-3", "-1", Options{Offset: 0, Limit: 10, CurrentPage: 1}},
		{"first page explicit", "1", "10", Options{Offset: 0, Limit: 10, CurrentPage: 1}},
		{"third page of five", "3", "5", Options{Offset: 10, Limit: 5, CurrentPage: 3}},
		{"large page", "100", "25", Options{Offset: 2475, Limit: 25, CurrentPage: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(tt.page, tt.limit))
		})
	}
}

func TestPaginateOffsetInvariant(t *testing.T) {
	for page := 1; page <= 20; page++ {
		for limit := 1; limit <= 20; limit++ {
			got := Paginate(strconv.Itoa(page), strconv.Itoa(limit))
			assert.Equal(t, (page-1)*limit, got.Offset)
		}
	}
}

func TestBuildMeta(t *testing.T) {
	intp := func(v int) *int { return &v }

	tests := []struct {
		name         string
		totalItems   int64
		currentPage  int
		limit        int
		currentItems int
		want         Meta
	}{
		{
			name: "middle page", totalItems: 25, currentPage: 2, limit: 10, currentItems: 10,
			want: Meta{
				TotalItems: 25, TotalPages: 3, CurrentPage: 2, CurrentItems: 10, Limit: 10,
				HasNext: true, HasPrevious: true, NextPage: intp(3), PrevPage: intp(1),
			},
		},
		{
			name: "first page", totalItems: 25, currentPage: 1, limit: 10, currentItems: 10,
			want: Meta{
				TotalItems: 25, TotalPages: 3, CurrentPage: 1, CurrentItems: 10, Limit: 10,
				HasNext: true, HasPrevious: false, NextPage: intp(2), PrevPage: nil,
			},
		},
		{
			name: "last page", totalItems: 25, currentPage: 3, limit: 10, currentItems: 5,
			want: Meta{
				TotalItems: 25, TotalPages: 3, CurrentPage: 3, CurrentItems: 5, Limit: 10,
				HasNext: false, HasPrevious: true, NextPage: nil, PrevPage: intp(2),
			},
		},
		{
			name: "empty set", totalItems: 0, currentPage: 1, limit: 10, currentItems: 0,
			want: Meta{
				TotalItems: 0, TotalPages: 0, CurrentPage: 1, CurrentItems: 0, Limit: 10,
				HasNext: false, HasPrevious: false, NextPage: nil, PrevPage: nil,
			},
		},
		{
			name: "exact multiple", totalItems: 20, currentPage: 2, limit: 10, currentItems: 10,
			want: Meta{
				TotalItems: 20, TotalPages: 2, CurrentPage: 2, CurrentItems: 10, Limit: 10,
				HasNext: false, HasPrevious: true, NextPage: nil, PrevPage: intp(1),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildMeta(tt.totalItems, tt.currentPage, tt.limit, tt.currentItems))
		})
	}
}

func TestBuildMetaHasNextInvariant(t *testing.T) {
	for total := int64(0); total <= 45; total += 5 {
		for page := 1; page <= 6; page++ {
			m := BuildMeta(total, page, 10, 0)
			ceil := int((total + 9) / 10)
			assert.Equal(t, page < ceil, m.HasNext, "total=%d page=%d", total, page)
		}
	}
}
