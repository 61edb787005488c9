package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrelay/internal"
)

func TestIsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("direct HTTPError", func(t *testing.T) {
		t.Parallel()
		err := internal.NewHTTPError(http.StatusNotFound, "not found")
		require.True(t, internal.IsHTTPError(err))
	})

	t.Run("wrapped HTTPError", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("handler failed: %w", internal.ErrBadRequest("bad request"))
		require.True(t, internal.IsHTTPError(err))
	})

	t.Run("unrelated error", func(t *testing.T) {
		t.Parallel()
		require.False(t, internal.IsHTTPError(errors.New("something went wrong")))
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		require.False(t, internal.IsHTTPError(nil))
	})
}

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("extracts code and message", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("outer: %w", internal.ErrRequestTooLarge("request body too large"))

		he, ok := internal.AsHTTPError(err)
		require.True(t, ok)
		require.Equal(t, http.StatusRequestEntityTooLarge, he.StatusCode())
		require.Equal(t, "request body too large", he.Error())
	})

	t.Run("keeps the cause", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("provider down")
		err := internal.ErrInternal("send failed", internal.WithError(cause))

		require.ErrorIs(t, err, cause)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		he, ok := internal.AsHTTPError(errors.New("plain"))
		require.False(t, ok)
		require.Nil(t, he)
	})
}

func TestNewHTTPError_DefaultMessage(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Method Not Allowed", internal.ErrMethodNotAllowed("").Message)
	require.Equal(t, "Not Found", internal.ErrNotFound("").Message)
}
