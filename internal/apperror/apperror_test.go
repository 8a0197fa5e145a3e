package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusAndPublicMessage(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found passes message through", NotFound("Course not found"), http.StatusNotFound, "Course not found"},
		{"storage hides detail", Storage("inserting course", cause), http.StatusInternalServerError, "Database error"},
		{"validation passes message through", Validation("name is required", nil), http.StatusBadRequest, "name is required"},
		{"internal hides detail", Internal("encoding response", cause), http.StatusInternalServerError, "Internal server error"},
		{"unclassified error is internal", cause, http.StatusInternalServerError, "Internal server error"},
		{"wrapped kind survives", fmt.Errorf("service: %w", NotFound("gone")), http.StatusNotFound, "gone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, HTTPStatus(tt.err))
			assert.Equal(t, tt.wantMsg, PublicMessage(tt.err))
		})
	}
}

func TestUnwrapKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := Storage("querying courses", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindStorage, KindOf(err))
	assert.False(t, IsNotFound(err))
	assert.True(t, IsNotFound(NotFound("x")))
	assert.False(t, IsNotFound(nil))
}
