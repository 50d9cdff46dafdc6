package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFieldFilter(t *testing.T) {
	t.Run("empty means unset", func(t *testing.T) {
		_, ok := ParseFieldFilter("").Value()
		assert.False(t, ok)
	})

	t.Run("all sentinel means no predicate", func(t *testing.T) {
		_, ok := ParseFieldFilter("all").Value()
		assert.False(t, ok)
	})

	t.Run("concrete value is applied", func(t *testing.T) {
		value, ok := ParseFieldFilter("pending").Value()
		assert.True(t, ok)
		assert.Equal(t, "pending", value)
	})
}

func TestParseSortKey(t *testing.T) {
	cases := []struct {
		raw  string
		want SortKey
	}{
		{"newest", SortNewest},
		{"oldest", SortOldest},
		{"a-z", SortAZ},
		{"z-a", SortZA},
		{"", SortNewest},
		{"garbage", SortNewest},
		{"NEWEST", SortNewest}, // enumeration is case-sensitive
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseSortKey(tc.raw), "raw=%q", tc.raw)
	}
}

func TestSortKeyOrderClause(t *testing.T) {
	assert.Equal(t, "created_at DESC", SortNewest.OrderClause())
	assert.Equal(t, "created_at ASC", SortOldest.OrderClause())
	assert.Equal(t, "position ASC", SortAZ.OrderClause())
	assert.Equal(t, "position DESC", SortZA.OrderClause())

	// an unknown key that somehow bypassed ParseSortKey still sorts newest-first
	assert.Equal(t, "created_at DESC", SortKey("bogus").OrderClause())
}

func TestNewPagination(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := NewPagination(25, 0, 0)
		assert.Equal(t, 1, p.CurrentPage)
		assert.Equal(t, 10, p.Limit)
		assert.Equal(t, 0, p.Skip)
		assert.Equal(t, 3, p.NumOfPages)
	})

	t.Run("skip offset", func(t *testing.T) {
		p := NewPagination(100, 3, 10)
		assert.Equal(t, 20, p.Skip)
		assert.Equal(t, 10, p.NumOfPages)
	})

	t.Run("empty result set has zero pages", func(t *testing.T) {
		p := NewPagination(0, 1, 10)
		assert.Equal(t, 0, p.NumOfPages)
		assert.Equal(t, int64(0), p.TotalJobs)
	})

	t.Run("partial last page rounds up", func(t *testing.T) {
		assert.Equal(t, 3, NewPagination(21, 1, 10).NumOfPages)
		assert.Equal(t, 2, NewPagination(20, 1, 10).NumOfPages)
		assert.Equal(t, 1, NewPagination(1, 1, 10).NumOfPages)
	})

	t.Run("negative page clamps to first", func(t *testing.T) {
		p := NewPagination(50, -3, 10)
		assert.Equal(t, 1, p.CurrentPage)
		assert.Equal(t, 0, p.Skip)
	})

	t.Run("skip never negative", func(t *testing.T) {
		for page := -5; page <= 5; page++ {
			p := NewPagination(42, page, 7)
			assert.GreaterOrEqual(t, p.Skip, 0, "page=%d", page)
		}
	})
}

func TestParsePageParam(t *testing.T) {
	assert.Equal(t, 1, ParsePageParam("", 1))
	assert.Equal(t, 1, ParsePageParam("abc", 1))
	assert.Equal(t, 1, ParsePageParam("-2", 1))
	assert.Equal(t, 1, ParsePageParam("0", 1))
	assert.Equal(t, 7, ParsePageParam("7", 1))
	assert.Equal(t, 0, ParsePageParam("", 0))
}
