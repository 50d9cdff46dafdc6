package models

import "strconv"

// FieldFilter is a tagged choice for an optional equality filter. The
// client signals "no constraint" either by omitting the parameter or by
// sending the literal "all"; both add no predicate, but the two cases are
// kept distinct so the literal is never mistaken for data.
type FieldFilter struct {
	kind  filterKind
	value string
}

type filterKind int

const (
	filterUnset filterKind = iota
	filterAll
	filterSpecific
)

const filterSentinelAll = "all"

func ParseFieldFilter(raw string) FieldFilter {
	switch raw {
	case "":
		return FieldFilter{kind: filterUnset}
	case filterSentinelAll:
		return FieldFilter{kind: filterAll}
	default:
		return FieldFilter{kind: filterSpecific, value: raw}
	}
}

// Value returns the concrete filter value and whether a predicate
// should be applied at all.
func (f FieldFilter) Value() (string, bool) {
	return f.value, f.kind == filterSpecific
}

// SortKey is the closed enumeration of accepted sort orders.
type SortKey string

const (
	SortNewest SortKey = "newest"
	SortOldest SortKey = "oldest"
	SortAZ     SortKey = "a-z"
	SortZA     SortKey = "z-a"
)

// ParseSortKey maps a raw query value onto the enumeration. Unrecognized
// values fall back to newest-first; that fallback is deliberate and not
// an error.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortOldest:
		return SortOldest
	case SortAZ:
		return SortAZ
	case SortZA:
		return SortZA
	default:
		return SortNewest
	}
}

// OrderClause returns the SQL ORDER BY expression for the key.
func (s SortKey) OrderClause() string {
	switch s {
	case SortOldest:
		return "created_at ASC"
	case SortAZ:
		return "position ASC"
	case SortZA:
		return "position DESC"
	default:
		return "created_at DESC"
	}
}

// JobQuery carries the fully normalized search criteria for one request.
// OwnerID is always set; jobs belonging to anyone else are never visible.
type JobQuery struct {
	OwnerID string
	Search  string
	Status  FieldFilter
	Type    FieldFilter
	Sort    SortKey
}

// Pagination is derived once per request from the total matching count
// and the raw page/limit parameters.
type Pagination struct {
	TotalJobs   int64 `json:"totalJobs"`
	NumOfPages  int   `json:"numOfPages"`
	CurrentPage int   `json:"currentPage"`
	Skip        int   `json:"-"`
	Limit       int   `json:"-"`
}

const defaultPageSize = 10

// NewPagination computes skip/limit for the fetch step. A non-positive or
// non-numeric page behaves as page 1, a non-positive limit as the default
// page size. NumOfPages is 0 when nothing matched.
func NewPagination(totalJobs int64, page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}

	numOfPages := int((totalJobs + int64(limit) - 1) / int64(limit))

	return Pagination{
		TotalJobs:   totalJobs,
		NumOfPages:  numOfPages,
		CurrentPage: page,
		Skip:        (page - 1) * limit,
		Limit:       limit,
	}
}

// ParsePageParam converts a raw numeric query parameter, falling back to
// the given default when it is absent or not a number.
func ParsePageParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
