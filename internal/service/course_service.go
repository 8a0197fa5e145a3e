package service

import (
	"context"

	"courses/internal/model"
	"courses/internal/repository"
)

// CourseService defines the interface for course operations
type CourseService interface {
	CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error)
	// ListCourses returns every course owned by a teacher
	ListCourses(ctx context.Context, teacherID int) ([]model.Course, error)
	// GetCourse retrieves a single course of a teacher
	GetCourse(ctx context.Context, teacherID, courseID int) (*model.Course, error)
}

// courseService is the implementation of CourseService
type courseService struct {
	repo repository.CourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

// CreateCourse creates a new course record. Identity and time always come from the store.
func (s *courseService) CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	c.ID = nil
	c.Time = nil
	if err := s.repo.CreateCourse(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *courseService) ListCourses(ctx context.Context, teacherID int) ([]model.Course, error) {
	return s.repo.GetCoursesByTeacherID(ctx, teacherID)
}

func (s *courseService) GetCourse(ctx context.Context, teacherID, courseID int) (*model.Course, error) {
	return s.repo.GetCourseByID(ctx, teacherID, courseID)
}
