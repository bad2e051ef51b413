package services

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/studymate/courseapi/internal/app/models"
	"github.com/studymate/courseapi/internal/app/repositories"
	"github.com/studymate/courseapi/internal/pkg/llm"
)

// fakeCourseRepo is an in-memory CourseRepository. Set err to fail every call.
type fakeCourseRepo struct {
	courses    []*models.Course
	aggregates []models.CategoryAggregate
	err        error
	lastFilter repositories.CourseFilter
}

func (f *fakeCourseRepo) List(ctx context.Context, filter repositories.CourseFilter) ([]*models.Course, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	out := append([]*models.Course{}, f.courses...)
	if filter.SortBy == repositories.SortByID {
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	}
	return out, nil
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repositories.ErrCourseNotFound
}

func (f *fakeCourseRepo) TopRatedInCategory(ctx context.Context, category string, limit int) ([]*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Course
	for _, c := range f.courses {
		if c.Category == category {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Rating.Equal(out[j].Rating) {
			return out[i].Rating.GreaterThan(out[j].Rating)
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCourseRepo) AggregateByCategory(ctx context.Context) ([]models.CategoryAggregate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.aggregates, nil
}

func (f *fakeCourseRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.courses)), f.err
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	course.ID = int64(len(f.courses) + 1)
	f.courses = append(f.courses, course)
	return course.ID, nil
}

// fakeCompleter records the last request and replies with answer or err
type fakeCompleter struct {
	answer string
	err    error
	last   llm.Request
	calls  int
}

func (f *fakeCompleter) Complete(ctx context.Context, req llm.Request) (string, error) {
	f.calls++
	f.last = req
	return f.answer, f.err
}

func course(id int64, name, category string, rating string) *models.Course {
	return &models.Course{
		ID:          id,
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString("10.00"),
		Image:       "/img.png",
		Duration:    5,
		Difficulty:  "Beginner",
		Category:    category,
		Rating:      decimal.RequireFromString(rating),
	}
}
