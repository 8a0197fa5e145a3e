package repository

import (
	"context"

	"courses/internal/model"
)

const (
	msgCoursesNotFound = "Courses not found for teacher"
	msgCourseNotFound  = "Course not found"
)

// CourseRepository defines the interface for interacting with course data
type CourseRepository interface {
	// CreateCourse stores c and fills in the assigned id and time
	CreateCourse(ctx context.Context, c *model.Course) error
	// GetCoursesByTeacherID returns a teacher's courses in insertion order
	GetCoursesByTeacherID(ctx context.Context, teacherID int) ([]model.Course, error)
	// GetCourseByID retrieves one course of a teacher
	GetCourseByID(ctx context.Context, teacherID, courseID int) (*model.Course, error)
	Ping(ctx context.Context) error
}
