package repository

import (
	"context"
	"sync"
	"time"

	"courses/internal/apperror"
	"courses/internal/model"

	"github.com/rs/zerolog"
)

type memoryCourseRepo struct {
	mu      sync.Mutex
	courses []model.Course
	// last id handed out per teacher
	lastID map[int]int
	now    func() time.Time
	logger zerolog.Logger
}

// NewMemoryCourseRepo creates a CourseRepository that lives as long as the process
func NewMemoryCourseRepo(logger zerolog.Logger) CourseRepository {
	return newMemoryCourseRepo(logger, time.Now)
}

func newMemoryCourseRepo(logger zerolog.Logger, now func() time.Time) *memoryCourseRepo {
	return &memoryCourseRepo{
		lastID: make(map[int]int),
		now:    now,
		logger: logger,
	}
}

// CreateCourse assigns the next id within the teacher's scope and stamps the creation time
func (r *memoryCourseRepo) CreateCourse(_ context.Context, c *model.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.lastID[c.TeacherID] + 1
	r.lastID[c.TeacherID] = id
	createdAt := r.now().UTC()

	c.ID = &id
	c.Time = &createdAt
	r.courses = append(r.courses, cloneCourse(*c))

	r.logger.Debug().Int("teacher_id", c.TeacherID).Int("course_id", id).Msg("Course stored in memory")
	return nil
}

func (r *memoryCourseRepo) GetCoursesByTeacherID(_ context.Context, teacherID int) ([]model.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var courses []model.Course
	for _, c := range r.courses {
		if c.TeacherID == teacherID {
			courses = append(courses, cloneCourse(c))
		}
	}
	if len(courses) == 0 {
		return nil, apperror.NotFound(msgCoursesNotFound)
	}
	return courses, nil
}

func (r *memoryCourseRepo) GetCourseByID(_ context.Context, teacherID, courseID int) (*model.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.courses {
		if c.TeacherID == teacherID && c.ID != nil && *c.ID == courseID {
			found := cloneCourse(c)
			return &found, nil
		}
	}
	return nil, apperror.NotFound(msgCourseNotFound)
}

func (r *memoryCourseRepo) Ping(context.Context) error { return nil }

// cloneCourse copies the pointer fields so callers never share state with the store
func cloneCourse(c model.Course) model.Course {
	if c.ID != nil {
		id := *c.ID
		c.ID = &id
	}
	if c.Time != nil {
		t := *c.Time
		c.Time = &t
	}
	return c
}
