package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-course-platform/internal/domain"
)

func TestFromError_TokenFailuresAreUniform(t *testing.T) {
	for _, code := range []domain.Code{domain.CodeExpired, domain.CodeBadSignature, domain.CodeMalformedToken} {
		status, env := FromError(domain.E(code, "boom"))
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.False(t, env.Success)
		if assert.NotNil(t, env.Error) {
			assert.Equal(t, "UNAUTHENTICATED", *env.Error)
		}
	}
}

func TestFromError_StatusMapping(t *testing.T) {
	cases := []struct {
		code domain.Code
		want int
	}{
		{domain.CodeInvalidInput, http.StatusBadRequest},
		{domain.CodeForbidden, http.StatusForbidden},
		{domain.CodeAlreadyEnrolled, http.StatusConflict},
		{domain.CodeInvalidTransition, http.StatusConflict},
		{domain.CodeCourseNotFound, http.StatusNotFound},
		{domain.CodeDependencyUnavailable, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		status, env := FromError(domain.E(tc.code, ""))
		assert.Equal(t, tc.want, status, string(tc.code))
		assert.Equal(t, string(tc.code), *env.Error)
	}
}

func TestFromError_UnknownErrorIsInternal(t *testing.T) {
	status, env := FromError(errors.New("driver: bad connection"))
	assert.Equal(t, http.StatusInternalServerError, status)
	if assert.NotNil(t, env.Error) {
		// Internal details never reach the body.
		assert.Equal(t, "INTERNAL", *env.Error)
	}
}

func TestOK_NeverNullData(t *testing.T) {
	env := OK(nil)
	assert.True(t, env.Success)
	assert.NotNil(t, env.Data)
	assert.Nil(t, env.Error)
}
