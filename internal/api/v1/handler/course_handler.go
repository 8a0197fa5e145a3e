package handler

import (
	"encoding/json"
	"net/http"

	"courses/internal/api/v1/dto"
	"courses/internal/apperror"
	"courses/internal/model"
	"courses/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CourseHandler handles course-related endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, validate *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		validate:      validate,
		logger:        logger,
	}
}

// RegisterRoutes mounts course routes
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /courses", h.createCourse)
	mux.HandleFunc("POST /courses/{$}", h.createCourse)
	mux.HandleFunc("GET /courses/{teacher_id}", h.getCoursesForTeacher)
	mux.HandleFunc("GET /courses/{teacher_id}/{course_id}", h.getCourseDetail)
}

// createCourse godoc
// @Summary Create a new course
// @Description Stores a course for a teacher. Any id or time in the body is ignored.
// @Tags courses
// @Accept json
// @Produce json
// @Param course body dto.CourseCreateDTO true "Course creation request"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 400 {object} dto.ErrorResponseDTO "Invalid JSON payload or validation failed"
// @Failure 500 {object} dto.ErrorResponseDTO "Database error"
// @Router /courses/ [post]
func (h *CourseHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	var req dto.CourseCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.logger, apperror.Validation("Invalid JSON payload: "+err.Error(), err))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, r, h.logger, apperror.Validation("Validation failed: "+err.Error(), err))
		return
	}

	course := &model.Course{
		TeacherID: int(*req.TeacherID),
		Name:      *req.Name,
	}
	created, err := h.courseService.CreateCourse(r.Context(), course)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.logger.Info().Int("teacher_id", created.TeacherID).Int("course_id", *created.ID).Msg("Received new course")
	writeJSON(w, h.logger, http.StatusOK, dto.NewCourseResponse(created))
}

// getCoursesForTeacher godoc
// @Summary List a teacher's courses
// @Tags courses
// @Produce json
// @Param teacher_id path int true "Teacher ID"
// @Success 200 {array} dto.CourseResponseDTO
// @Failure 400 {object} dto.ErrorResponseDTO "Invalid teacher_id"
// @Failure 404 {object} dto.ErrorResponseDTO "Courses not found for teacher"
// @Failure 500 {object} dto.ErrorResponseDTO "Database error"
// @Router /courses/{teacher_id} [get]
func (h *CourseHandler) getCoursesForTeacher(w http.ResponseWriter, r *http.Request) {
	teacherID, err := pathInt(r, "teacher_id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	courses, err := h.courseService.ListCourses(r.Context(), teacherID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, dto.NewCourseListResponse(courses))
}

// getCourseDetail godoc
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param teacher_id path int true "Teacher ID"
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 400 {object} dto.ErrorResponseDTO "Invalid path parameter"
// @Failure 404 {object} dto.ErrorResponseDTO "Course not found"
// @Failure 500 {object} dto.ErrorResponseDTO "Database error"
// @Router /courses/{teacher_id}/{course_id} [get]
func (h *CourseHandler) getCourseDetail(w http.ResponseWriter, r *http.Request) {
	teacherID, err := pathInt(r, "teacher_id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	courseID, err := pathInt(r, "course_id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	course, err := h.courseService.GetCourse(r.Context(), teacherID, courseID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, dto.NewCourseResponse(course))
}
