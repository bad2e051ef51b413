package repositories

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

const coursesTable = "courses"

// courseColumns is the scan order used by every course SELECT.
var courseColumns = []string{
	"id", "name", "description", "price", "image", "duration",
	"difficulty", "category", "instructor", "enrollment_count", "rating",
}

// SortField names a sortable course attribute. The zero value means "no sort".
type SortField string

const (
	SortNone          SortField = ""
	SortByID          SortField = "id"
	SortByName        SortField = "name"
	SortByDescription SortField = "description"
	SortByPrice       SortField = "price"
	SortByImage       SortField = "image"
	SortByDuration    SortField = "duration"
	SortByDifficulty  SortField = "difficulty"
	SortByCategory    SortField = "category"
	SortByInstructor  SortField = "instructor"
	SortByEnrollment  SortField = "enrollment_count"
	SortByRating      SortField = "rating"
)

// sortColumns maps accepted sort_by values to their column. Anything outside
// this table is ignored rather than rejected.
var sortColumns = map[string]SortField{
	"id":               SortByID,
	"name":             SortByName,
	"description":      SortByDescription,
	"price":            SortByPrice,
	"image":            SortByImage,
	"duration":         SortByDuration,
	"difficulty":       SortByDifficulty,
	"category":         SortByCategory,
	"instructor":       SortByInstructor,
	"enrollment_count": SortByEnrollment,
	"rating":           SortByRating,
}

// ParseSortField resolves a sort_by value. Unknown names return SortNone and false.
func ParseSortField(name string) (SortField, bool) {
	field, ok := sortColumns[strings.TrimSpace(name)]
	if !ok {
		return SortNone, false
	}
	return field, true
}

// SortOrder is the direction of a listing
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// ParseSortOrder is case-insensitive; only "desc" sorts descending.
func ParseSortOrder(order string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(order), "desc") {
		return SortDesc
	}
	return SortAsc
}

// CourseFilter holds the optional criteria of a course listing. Empty strings
// impose no constraint; set criteria are AND-ed together.
type CourseFilter struct {
	Search     string
	Category   string
	Difficulty string
	SortBy     SortField
	Order      SortOrder
}

// NewCourseFilter builds a filter from raw request values.
func NewCourseFilter(search, category, difficulty, sortBy, order string) CourseFilter {
	field, _ := ParseSortField(sortBy)
	return CourseFilter{
		Search:     strings.TrimSpace(search),
		Category:   category,
		Difficulty: difficulty,
		SortBy:     field,
		Order:      ParseSortOrder(order),
	}
}

// orderClauses returns the ORDER BY terms for the filter, or nil when unsorted.
// id in the same direction breaks ties so asc and desc listings mirror each other.
func (f CourseFilter) orderClauses() []string {
	if f.SortBy == SortNone {
		return nil
	}
	dir := f.Order
	if dir != SortDesc {
		dir = SortAsc
	}
	if f.SortBy == SortByID {
		return []string{"id " + string(dir)}
	}
	return []string{string(f.SortBy) + " " + string(dir), "id " + string(dir)}
}

// searchPattern wraps the search term for a substring LIKE match
func (f CourseFilter) searchPattern() string {
	return "%" + f.Search + "%"
}

// buildListQuery renders the filter as a squirrel SELECT over courses.
func buildListQuery(sb squirrel.StatementBuilderType, f CourseFilter) squirrel.SelectBuilder {
	query := sb.Select(courseColumns...).From(coursesTable)

	if f.Search != "" {
		pattern := f.searchPattern()
		query = query.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		})
	}
	if f.Category != "" {
		query = query.Where(squirrel.Eq{"category": f.Category})
	}
	if f.Difficulty != "" {
		query = query.Where(squirrel.Eq{"difficulty": f.Difficulty})
	}

	if clauses := f.orderClauses(); len(clauses) > 0 {
		query = query.OrderBy(clauses...)
	}

	return query
}

// buildTopRatedQuery selects the best rated courses of a category.
// Equal ratings fall back to creation order (lowest id first).
func buildTopRatedQuery(sb squirrel.StatementBuilderType, category string, limit uint64) squirrel.SelectBuilder {
	return sb.Select(courseColumns...).
		From(coursesTable).
		Where(squirrel.Eq{"category": category}).
		OrderBy("rating DESC", "id ASC").
		Limit(limit)
}

// buildCategoryAggregateQuery groups every course by category.
func buildCategoryAggregateQuery(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return sb.Select("category", "COUNT(id) AS count", "AVG(rating) AS avg_rating").
		From(coursesTable).
		GroupBy("category").
		OrderBy("category ASC")
}
