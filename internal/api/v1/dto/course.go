package dto

import (
	"time"

	"courses/internal/model"
)

// CourseCreateDTO is used for incoming course creation requests.
// Both fields must be present; an empty name is allowed. TeacherID is int32
// to match the course.teacher_id column. ID and Time are accepted for
// compatibility and ignored.
type CourseCreateDTO struct {
	TeacherID *int32     `json:"teacher_id" validate:"required"`
	Name      *string    `json:"name" validate:"required"`
	ID        *int       `json:"id,omitempty"`
	Time      *time.Time `json:"time,omitempty"`
}

// CourseResponseDTO is returned in API responses for courses
type CourseResponseDTO struct {
	TeacherID int        `json:"teacher_id"`
	ID        *int       `json:"id"`
	Name      string     `json:"name"`
	Time      *time.Time `json:"time"`
}

func NewCourseResponse(c *model.Course) CourseResponseDTO {
	return CourseResponseDTO{
		TeacherID: c.TeacherID,
		ID:        c.ID,
		Name:      c.Name,
		Time:      c.Time,
	}
}

func NewCourseListResponse(courses []model.Course) []CourseResponseDTO {
	resp := make([]CourseResponseDTO, 0, len(courses))
	for i := range courses {
		resp = append(resp, NewCourseResponse(&courses[i]))
	}
	return resp
}
