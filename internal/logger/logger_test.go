package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	base := New()
	ctx := context.WithValue(context.Background(), ContextKey, base)
	require.Equal(t, base, FromContext(ctx))

	// falls back to a fresh logger when the context carries none
	require.NotNil(t, FromContext(context.Background()))
}
