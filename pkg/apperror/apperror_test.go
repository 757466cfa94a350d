package apperror

import (
	"fmt"
	"net/http"
	"testing"
)

func TestMapErrorToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrBadRequest, http.StatusBadRequest},
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrConflict, http.StatusConflict},
		{ErrUpstream, http.StatusBadGateway},
		{ErrInternal, http.StatusInternalServerError},
		{fmt.Errorf("some database failure"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := MapErrorToStatus(tc.err); got != tc.want {
			t.Errorf("MapErrorToStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestMapErrorToStatusWrapped(t *testing.T) {
	err := fmt.Errorf("role with name librarian: %w", ErrConflict)
	if got := MapErrorToStatus(err); got != http.StatusConflict {
		t.Errorf("wrapped conflict mapped to %d, want 409", got)
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	inner := ErrNotFound
	appErr := New(http.StatusNotFound, "student not found", inner)

	if appErr.Error() != inner.Error() {
		t.Errorf("Error() = %q, want %q", appErr.Error(), inner.Error())
	}
	if appErr.Unwrap() != inner {
		t.Error("Unwrap() did not return the inner error")
	}
}
