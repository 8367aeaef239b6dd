package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAsClient(t *testing.T) {
	t.Run("plain client error", func(t *testing.T) {
		err := NewClientError(http.StatusNotFound, "cant find product with productId 42")

		clientErr, ok := AsClient(err)
		require.True(t, ok)
		require.Equal(t, http.StatusNotFound, clientErr.Status)
		require.Equal(t, "cant find product with productId 42", clientErr.Message)
	})

	t.Run("wrapped client error", func(t *testing.T) {
		err := fmt.Errorf("add to cart: %w", NewClientError(http.StatusBadRequest, "no results"))

		clientErr, ok := AsClient(err)
		require.True(t, ok)
		require.Equal(t, http.StatusBadRequest, clientErr.Status)
	})

	t.Run("unexpected error", func(t *testing.T) {
		_, ok := AsClient(errors.New("connection refused"))
		require.False(t, ok)
	})
}
