package magento

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Condition is a searchCriteria comparison condition.
type Condition string

// Supported comparison conditions.
const (
	ConditionEqual        Condition = "eq"
	ConditionGreater      Condition = "gt"
	ConditionLess         Condition = "lt"
	ConditionGreaterEqual Condition = "gteq"
	ConditionLessEqual    Condition = "lteq"
	ConditionIn           Condition = "in"
	ConditionLike         Condition = "like"
)

// Criterion is a single filter of a searchCriteria filter group.
type Criterion struct {
	Field     string
	Value     string
	Condition Condition
	Group     int
	Filter    int
}

// SortOrder is a searchCriteria sort order entry.
type SortOrder struct {
	Field     string
	Direction string
}

// Query builds the searchCriteria interface of the Magento API.
//
// Filters in the same group are combined with OR; separate groups are
// combined with AND. AddCriteria starts a new group, AddFilter appends to
// the most recent one.
type Query struct {
	criteria []Criterion
	sort     []SortOrder
	page     int
	perPage  int
	fields   []string
}

// NewQuery creates an empty query with default pagination.
func NewQuery() *Query {
	return &Query{}
}

// AddCriteria adds a filter in a new filter group (AND semantics).
func (q *Query) AddCriteria(field string, value interface{}, condition Condition) *Query {
	if value == nil {
		return q
	}

	q.criteria = append(q.criteria, Criterion{
		Field:     field,
		Value:     fmt.Sprintf("%v", value),
		Condition: condition,
		Group:     q.lastGroup() + 1,
	})

	return q
}

// AddFilter adds a filter to the most recent filter group (OR semantics).
func (q *Query) AddFilter(field string, value interface{}, condition Condition) *Query {
	group := q.lastGroup()
	if group < 0 {
		group = 0
	}

	filter := 0

	for _, criterion := range q.criteria {
		if criterion.Group == group && criterion.Filter >= filter {
			filter = criterion.Filter + 1
		}
	}

	q.criteria = append(q.criteria, Criterion{
		Field:     field,
		Value:     fmt.Sprintf("%v", value),
		Condition: condition,
		Group:     group,
		Filter:    filter,
	})

	return q
}

// In adds a comma separated membership filter in a new group.
func (q *Query) In(field string, values []string) *Query {
	return q.AddCriteria(field, strings.Join(values, ","), ConditionIn)
}

// Since matches items with created_at >= date.
func (q *Query) Since(date string) *Query {
	return q.AddCriteria("created_at", date, ConditionGreaterEqual)
}

// Until matches items with created_at <= date.
func (q *Query) Until(date string) *Query {
	return q.AddCriteria("created_at", date, ConditionLessEqual)
}

// SortBy sets the sort order. Direction must be ASC or DESC.
func (q *Query) SortBy(field, direction string) *Query {
	direction = strings.ToUpper(direction)
	if direction != "ASC" && direction != "DESC" {
		direction = "ASC"
	}

	q.sort = append(q.sort, SortOrder{Field: field, Direction: direction})

	return q
}

// Paginate sets the current page and page size.
func (q *Query) Paginate(page, perPage int) *Query {
	q.page = page
	q.perPage = perPage

	return q
}

// Page returns the current page, defaulting to 1.
func (q *Query) Page() int {
	if q.page < 1 {
		return 1
	}

	return q.page
}

// PerPage returns the page size, or 0 when unset.
func (q *Query) PerPage() int {
	return q.perPage
}

// RestrictFields constrains the response to the given item fields. The
// identifier field is always included so results stay addressable.
func (q *Query) RestrictFields(identifier string, fields ...string) *Query {
	restricted := append([]string(nil), fields...)

	if identifier != "" && !contains(restricted, identifier) {
		restricted = append(restricted, identifier)
	}

	q.fields = restricted

	return q
}

// Values renders the query as searchCriteria URL parameters.
func (q *Query) Values() url.Values {
	values := url.Values{}

	for _, criterion := range q.criteria {
		prefix := fmt.Sprintf("searchCriteria[filter_groups][%d][filters][%d]", criterion.Group, criterion.Filter)
		values.Set(prefix+"[field]", criterion.Field)
		values.Set(prefix+"[value]", criterion.Value)
		values.Set(prefix+"[condition_type]", string(criterion.Condition))
	}

	for i, order := range q.sort {
		prefix := fmt.Sprintf("searchCriteria[sortOrders][%d]", i)
		values.Set(prefix+"[field]", order.Field)
		values.Set(prefix+"[direction]", order.Direction)
	}

	if q.page > 0 {
		values.Set("searchCriteria[currentPage]", strconv.Itoa(q.page))
	}

	if q.perPage > 0 {
		values.Set("searchCriteria[pageSize]", strconv.Itoa(q.perPage))
	}

	if len(q.fields) > 0 {
		values.Set("fields", "items["+strings.Join(q.fields, ",")+"]")
	}

	return values
}

// lastGroup returns the most recent filter group, or -1 when no criteria
// have been added.
func (q *Query) lastGroup() int {
	last := -1

	for _, criterion := range q.criteria {
		if criterion.Group > last {
			last = criterion.Group
		}
	}

	return last
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}

	return false
}
