package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByKind(t *testing.T) {
	err := Storage("Failed to fetch skills", errors.New("connection refused"))
	wrapped := fmt.Errorf("list skills: %w", err)

	assert.ErrorIs(t, wrapped, ErrStorage)
	assert.NotErrorIs(t, wrapped, ErrNotFound)
	assert.Equal(t, KindStorage, KindOf(wrapped))
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(KindStorage, "Failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed: boom", err.Error())
}

func TestHTTPStatus(t *testing.T) {
	cases := map[string]struct {
		err  error
		want int
	}{
		"validation":   {Validation("missing"), http.StatusBadRequest},
		"unauthorized": {New(KindUnauthorized, "no"), http.StatusUnauthorized},
		"forbidden":    {New(KindForbidden, "no"), http.StatusForbidden},
		"not found":    {NotFound("gone"), http.StatusNotFound},
		"storage":      {Storage("db", nil), http.StatusInternalServerError},
		"plain":        {errors.New("plain"), http.StatusInternalServerError},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestMessageFallback(t *testing.T) {
	assert.Equal(t, "Project not found", Message(NotFound("Project not found"), "x"))
	assert.Equal(t, "fallback", Message(errors.New("raw"), "fallback"))
}
