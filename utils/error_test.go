package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	base := NewAppError(KindConflict, "slot taken")
	if KindOf(base) != KindConflict {
		t.Errorf("KindOf(AppError) = %q", KindOf(base))
	}

	wrapped := fmt.Errorf("outer: %w", base)
	if KindOf(wrapped) != KindConflict {
		t.Errorf("KindOf(wrapped) = %q, wrapping should preserve the kind", KindOf(wrapped))
	}

	if KindOf(errors.New("plain")) != KindInternal {
		t.Error("plain errors should default to internal")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		kind ErrorKind
		want int
	}{
		{KindInvalid, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindBlocked, http.StatusUnauthorized},
		{KindExpired, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.kind); got != tc.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	inner := errors.New("driver failure")
	appErr := WrapAppError(KindInternal, "failed to load booking", inner)
	if !errors.Is(appErr, inner) {
		t.Error("AppError should unwrap to the inner error")
	}
}
