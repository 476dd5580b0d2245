package usecase

import (
	"strconv"
	"strings"

	"github.com/estatedesk/leadbook/internal/entity"
)

const PageSize = 10

// BuildListQuery translates the raw filters into a store-agnostic predicate.
// Enum values outside their known sets are silently dropped, so arbitrary
// query-string values never reach a storage predicate. Pages are 1-based.
func BuildListQuery(owner entity.Identity, f ListFilters) entity.ListQuery {
	q := entity.ListQuery{
		OwnerID: owner.ID,
		Search:  strings.TrimSpace(f.Q),
		Limit:   PageSize,
	}

	if isOneOf(entity.Statuses, f.Status) {
		q.Status = f.Status
	}
	if isOneOf(entity.Cities, f.City) {
		q.City = f.City
	}
	if isOneOf(entity.PropertyTypes, f.PropertyType) {
		q.PropertyType = f.PropertyType
	}
	if isOneOf(entity.Timelines, f.Timeline) {
		q.Timeline = f.Timeline
	}

	q.BudgetMin, q.BudgetMax = parseBudgetToken(f.Budget)

	page := f.Page
	if page < 1 {
		page = 1
	}
	q.Offset = (page - 1) * PageSize

	return q
}

// BuildExportQuery is the list predicate without pagination: exports cover
// every matching lead.
func BuildExportQuery(owner entity.Identity, f ListFilters) entity.ListQuery {
	q := BuildListQuery(owner, f)
	q.Limit = 0
	q.Offset = 0
	return q
}

// parseBudgetToken splits a "<min>-<max>" token on the first dash. An empty
// side means unbounded; a side that does not parse as a non-negative number
// is ignored like any other unknown filter value. The sides translate to
// overlapping-range semantics: min bounds the lead's budgetMax, max bounds
// the lead's budgetMin.
func parseBudgetToken(tok string) (min, max *int64) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return nil, nil
	}
	left, right, found := strings.Cut(tok, "-")
	if !found {
		return nil, nil
	}
	min = parseBound(left)
	max = parseBound(right)
	return min, max
}

func parseBound(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

// TotalPages is ceil(total / PageSize).
func TotalPages(total int) int {
	return (total + PageSize - 1) / PageSize
}
