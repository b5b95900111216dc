package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalidateDropsOnlyTargetPath(t *testing.T) {
	cache := NewViewCache()
	cache.Put("/dashboard/invoices", []byte("rendered list"))
	cache.Put("/dashboard/customers", []byte("rendered customers"))

	require.NoError(t, cache.Invalidate(context.Background(), "/dashboard/invoices"))

	_, ok := cache.Get("/dashboard/invoices")
	require.False(t, ok)
	payload, ok := cache.Get("/dashboard/customers")
	require.True(t, ok)
	require.Equal(t, []byte("rendered customers"), payload)
}

func TestInvalidateMissingPathIsNoop(t *testing.T) {
	cache := NewViewCache()
	require.NoError(t, cache.Invalidate(context.Background(), "/dashboard/invoices"))
}
