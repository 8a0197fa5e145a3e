package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"courses/internal/api/v1/dto"
	"courses/internal/apperror"
	"courses/internal/model"
	"courses/internal/repository"
	"courses/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(courseSvc service.CourseService) *http.ServeMux {
	mux := http.NewServeMux()
	NewCourseHandler(courseSvc, validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop()).RegisterRoutes(mux)
	NewHealthHandler(service.NewHealthService("I'm OK."), zerolog.Nop()).RegisterRoutes(mux)
	return mux
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.ErrorResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.ErrorMsg
}

func TestCourseHandler_Scenario(t *testing.T) {
	mux := newTestMux(service.NewCourseService(repository.NewMemoryCourseRepo(zerolog.Nop())))

	rec := doRequest(t, mux, http.MethodPost, "/courses/", `{"teacher_id":1,"name":"Algebra","id":null,"time":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var algebra dto.CourseResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &algebra))
	require.NotNil(t, algebra.ID)
	assert.Equal(t, 1, *algebra.ID)
	assert.NotNil(t, algebra.Time)

	rec = doRequest(t, mux, http.MethodPost, "/courses/", `{"teacher_id":1,"name":"Geometry"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var geometry dto.CourseResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &geometry))
	assert.Equal(t, 2, *geometry.ID)

	rec = doRequest(t, mux, http.MethodGet, "/courses/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []dto.CourseResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Algebra", list[0].Name)
	assert.Equal(t, "Geometry", list[1].Name)

	rec = doRequest(t, mux, http.MethodGet, "/courses/1/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var one dto.CourseResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &one))
	assert.Equal(t, "Algebra", one.Name)
	assert.Equal(t, 1, one.TeacherID)

	rec = doRequest(t, mux, http.MethodGet, "/courses/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Courses not found for teacher", decodeError(t, rec))

	rec = doRequest(t, mux, http.MethodGet, "/courses/1/3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Course not found", decodeError(t, rec))
}

func TestCourseHandler_CreateWithoutTrailingSlash(t *testing.T) {
	mux := newTestMux(service.NewCourseService(repository.NewMemoryCourseRepo(zerolog.Nop())))

	rec := doRequest(t, mux, http.MethodPost, "/courses", `{"teacher_id":4,"name":"Art"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCourseHandler_CreateAcceptsEmptyName(t *testing.T) {
	mux := newTestMux(service.NewCourseService(repository.NewMemoryCourseRepo(zerolog.Nop())))

	rec := doRequest(t, mux, http.MethodPost, "/courses/", `{"teacher_id":1,"name":""}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created dto.CourseResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "", created.Name)
	assert.Equal(t, 1, *created.ID)
}

func TestCourseHandler_ValidationFailures(t *testing.T) {
	mux := newTestMux(service.NewCourseService(repository.NewMemoryCourseRepo(zerolog.Nop())))

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"malformed json", http.MethodPost, "/courses/", `{"teacher_id":`},
		{"wrong type", http.MethodPost, "/courses/", `{"teacher_id":"one","name":"Algebra"}`},
		{"missing teacher", http.MethodPost, "/courses/", `{"name":"Algebra"}`},
		{"missing name", http.MethodPost, "/courses/", `{"teacher_id":1}`},
		{"non numeric teacher", http.MethodGet, "/courses/abc", ""},
		{"non numeric course", http.MethodGet, "/courses/1/xyz", ""},
		{"teacher id beyond int32 in body", http.MethodPost, "/courses/", `{"teacher_id":3000000000,"name":"Algebra"}`},
		{"teacher id beyond int32 in path", http.MethodGet, "/courses/3000000000", ""},
		{"course id beyond int32 in path", http.MethodGet, "/courses/1/3000000000", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, mux, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decodeError(t, rec))
		})
	}
}

type failingCourseService struct {
	err error
}

func (s failingCourseService) CreateCourse(context.Context, *model.Course) (*model.Course, error) {
	return nil, s.err
}

func (s failingCourseService) ListCourses(context.Context, int) ([]model.Course, error) {
	return nil, s.err
}

func (s failingCourseService) GetCourse(context.Context, int, int) (*model.Course, error) {
	return nil, s.err
}

func TestCourseHandler_StorageErrorsDoNotLeak(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.5:5432: connection refused")
	mux := newTestMux(failingCourseService{err: apperror.Storage("querying courses", cause)})

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodPost, "/courses/", `{"teacher_id":1,"name":"Algebra"}`},
		{http.MethodGet, "/courses/1", ""},
		{http.MethodGet, "/courses/1/1", ""},
	} {
		rec := doRequest(t, mux, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, tc.path)
		assert.Equal(t, "Database error", decodeError(t, rec))
		assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	}
}

func TestHealthHandler_CountsVisits(t *testing.T) {
	mux := newTestMux(failingCourseService{})

	for i, want := range []string{"I'm OK. 0 times", "I'm OK. 1 times", "I'm OK. 2 times"} {
		rec := doRequest(t, mux, http.MethodGet, "/health", "")
		require.Equal(t, http.StatusOK, rec.Code, "visit %d", i)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var got string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, want, got)
	}
}
