package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studymate/courseapi/internal/app/models"
	"github.com/studymate/courseapi/internal/db"
)

func strPtr(s string) *string { return &s }

func newCourse(name, description, category, difficulty string, price, rating float64) *models.Course {
	return &models.Course{
		Name:        name,
		Description: description,
		Price:       decimal.NewFromFloat(price),
		Image:       "/images/" + name + ".png",
		Duration:    10,
		Difficulty:  difficulty,
		Category:    category,
		Rating:      decimal.NewFromFloat(rating),
	}
}

// newTestRepository opens a throwaway sqlite store and inserts the given courses in order.
func newTestRepository(t *testing.T, courses ...*models.Course) *GormCourseRepository {
	t.Helper()

	gdb, err := db.OpenGorm(db.SQLiteDialector(filepath.Join(t.TempDir(), "courses.db")), 1, 1, "1h")
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Course{}))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	repo := NewGormCourseRepository(gdb)
	for _, c := range courses {
		_, err := repo.Create(context.Background(), c)
		require.NoError(t, err)
	}
	return repo
}

func names(courses []*models.Course) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.Name)
	}
	return out
}

func catalog() []*models.Course {
	return []*models.Course{
		newCourse("Python Basics", "Learn python from scratch", "Programming", "Beginner", 49.99, 4.5),
		newCourse("Go in Depth", "Concurrency and PYTHON interop", "Programming", "Advanced", 89.00, 4.8),
		newCourse("Watercolor", "Painting for everyone", "Art", "Beginner", 19.50, 4.0),
		newCourse("Data Science", "Statistics with notebooks", "Data", "Intermediate", 120.00, 4.2),
	}
}

func TestGormCourseRepository_CreateAssignsIDs(t *testing.T) {
	repo := newTestRepository(t)

	first := newCourse("One", "d", "Art", "Beginner", 1, 1)
	first.Instructor = strPtr("Ada")
	id1, err := repo.Create(context.Background(), first)
	require.NoError(t, err)

	second := newCourse("Two", "d", "Art", "Beginner", 1, 1)
	second.Instructor = strPtr("   ")
	id2, err := repo.Create(context.Background(), second)
	require.NoError(t, err)

	assert.Greater(t, id2, id1)

	got, err := repo.GetByID(context.Background(), id1)
	require.NoError(t, err)
	require.NotNil(t, got.Instructor)
	assert.Equal(t, "Ada", *got.Instructor)

	got, err = repo.GetByID(context.Background(), id2)
	require.NoError(t, err)
	assert.Nil(t, got.Instructor)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGormCourseRepository_GetByIDNotFound(t *testing.T) {
	repo := newTestRepository(t, catalog()...)

	_, err := repo.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestGormCourseRepository_ListNoFilter(t *testing.T) {
	repo := newTestRepository(t, catalog()...)

	courses, err := repo.List(context.Background(), CourseFilter{})
	require.NoError(t, err)
	assert.Len(t, courses, 4)
}

func TestGormCourseRepository_ListEmptyStore(t *testing.T) {
	repo := newTestRepository(t)

	courses, err := repo.List(context.Background(), CourseFilter{})
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
}

func TestGormCourseRepository_ListSearchIsCaseInsensitive(t *testing.T) {
	repo := newTestRepository(t, catalog()...)

	courses, err := repo.List(context.Background(), NewCourseFilter("Python", "", "", "name", "asc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Go in Depth", "Python Basics"}, names(courses))
}

func TestGormCourseRepository_ListCombinesCriteria(t *testing.T) {
	repo := newTestRepository(t, catalog()...)

	courses, err := repo.List(context.Background(), NewCourseFilter("python", "Programming", "Beginner", "", ""))
	require.NoError(t, err)
	assert.Equal(t, []string{"Python Basics"}, names(courses))

	courses, err = repo.List(context.Background(), NewCourseFilter("", "Programming", "Intermediate", "", ""))
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestGormCourseRepository_ListCategoryIsExactMatch(t *testing.T) {
	repo := newTestRepository(t, catalog()...)

	courses, err := repo.List(context.Background(), NewCourseFilter("", "programming", "", "", ""))
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestGormCourseRepository_ListSortDirections(t *testing.T) {
	repo := newTestRepository(t, catalog()...)

	asc, err := repo.List(context.Background(), NewCourseFilter("", "", "", "price", "asc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Watercolor", "Python Basics", "Go in Depth", "Data Science"}, names(asc))

	desc, err := repo.List(context.Background(), NewCourseFilter("", "", "", "price", "DESC"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Data Science", "Go in Depth", "Python Basics", "Watercolor"}, names(desc))
}

func TestGormCourseRepository_ListUnknownSortKeepsStorageOrder(t *testing.T) {
	repo := newTestRepository(t, catalog()...)

	baseline, err := repo.List(context.Background(), CourseFilter{})
	require.NoError(t, err)

	courses, err := repo.List(context.Background(), NewCourseFilter("", "", "", "popularity", "desc"))
	require.NoError(t, err)
	assert.Equal(t, names(baseline), names(courses))
}

func TestGormCourseRepository_ListRatingOrderReverses(t *testing.T) {
	courses := append(catalog(), newCourse("Sketching", "Pencil drawing", "Art", "Beginner", 25, 4.5))
	repo := newTestRepository(t, courses...)

	asc, err := repo.List(context.Background(), NewCourseFilter("", "", "", "rating", "asc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Watercolor", "Data Science", "Python Basics", "Sketching", "Go in Depth"}, names(asc))

	desc, err := repo.List(context.Background(), NewCourseFilter("", "", "", "rating", "desc"))
	require.NoError(t, err)
	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestGormCourseRepository_CategoryFiltersPartitionCatalog(t *testing.T) {
	repo := newTestRepository(t, catalog()...)

	all, err := repo.List(context.Background(), CourseFilter{})
	require.NoError(t, err)

	aggregates, err := repo.AggregateByCategory(context.Background())
	require.NoError(t, err)

	var union []int64
	for _, agg := range aggregates {
		courses, err := repo.List(context.Background(), NewCourseFilter("", agg.Category, "", "", ""))
		require.NoError(t, err)
		assert.Len(t, courses, int(agg.Count))
		for _, c := range courses {
			assert.Equal(t, agg.Category, c.Category)
			union = append(union, c.ID)
		}
	}

	var allIDs []int64
	for _, c := range all {
		allIDs = append(allIDs, c.ID)
	}
	assert.ElementsMatch(t, allIDs, union)
}

func TestGormCourseRepository_ListSearchFoldsUnicode(t *testing.T) {
	repo := newTestRepository(t, append(catalog(),
		newCourse("Élan Vital", "Movement and dance", "Art", "Beginner", 30, 4.1),
		newCourse("German Grammar", "Über die Sprache", "Languages", "Intermediate", 40, 4.3),
	)...)

	for _, term := range []string{"élan", "ÉLAN", "Élan"} {
		courses, err := repo.List(context.Background(), NewCourseFilter(term, "", "", "", ""))
		require.NoError(t, err)
		assert.Equal(t, []string{"Élan Vital"}, names(courses), "search %q", term)
	}

	courses, err := repo.List(context.Background(), NewCourseFilter("ÜBER", "", "", "", ""))
	require.NoError(t, err)
	assert.Equal(t, []string{"German Grammar"}, names(courses))
}

func TestGormCourseRepository_TopRatedInCategory(t *testing.T) {
	repo := newTestRepository(t,
		newCourse("A", "d", "Programming", "Beginner", 10, 4.0),
		newCourse("B", "d", "Programming", "Beginner", 10, 4.9),
		newCourse("C", "d", "Programming", "Beginner", 10, 4.7),
		newCourse("D", "d", "Art", "Beginner", 10, 5.0),
	)

	courses, err := repo.TopRatedInCategory(context.Background(), "Programming", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, names(courses))
}

func TestGormCourseRepository_TopRatedTieFallsBackToID(t *testing.T) {
	repo := newTestRepository(t,
		newCourse("First", "d", "Art", "Beginner", 10, 4.5),
		newCourse("Second", "d", "Art", "Beginner", 10, 4.5),
		newCourse("Third", "d", "Art", "Beginner", 10, 4.5),
	)

	courses, err := repo.TopRatedInCategory(context.Background(), "Art", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"First", "Second"}, names(courses))
}

func TestGormCourseRepository_AggregateByCategory(t *testing.T) {
	repo := newTestRepository(t,
		newCourse("A", "d", "Programming", "Beginner", 10, 4.0),
		newCourse("B", "d", "Programming", "Beginner", 10, 4.0),
		newCourse("C", "d", "Programming", "Beginner", 10, 5.0),
		newCourse("D", "d", "Art", "Beginner", 10, 3.0),
	)

	aggregates, err := repo.AggregateByCategory(context.Background())
	require.NoError(t, err)
	require.Len(t, aggregates, 2)

	assert.Equal(t, "Art", aggregates[0].Category)
	assert.Equal(t, int64(1), aggregates[0].Count)
	assert.True(t, decimal.NewFromInt(3).Equal(aggregates[0].AvgRating.Round(2)))

	assert.Equal(t, "Programming", aggregates[1].Category)
	assert.Equal(t, int64(3), aggregates[1].Count)
	assert.Equal(t, "4.33", aggregates[1].AvgRating.Round(2).StringFixed(2))

	var total int64
	for _, agg := range aggregates {
		total += agg.Count
	}
	assert.Equal(t, int64(4), total)
}

func TestGormCourseRepository_AggregateEmptyStore(t *testing.T) {
	repo := newTestRepository(t)

	aggregates, err := repo.AggregateByCategory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, aggregates)
}
