package baggage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/payment-service/internal/lib/baggage"
)

func TestReader_Entry(t *testing.T) {
	var r baggage.Reader

	_, ok := r.Entry(context.Background(), "synthetic_request")
	assert.False(t, ok)

	ctx, err := baggage.WithEntry(context.Background(), "synthetic_request", "true")
	require.NoError(t, err)

	v, ok := r.Entry(ctx, "synthetic_request")
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	_, ok = r.Entry(ctx, "other")
	assert.False(t, ok)
}

func TestWithEntry_KeepsExistingMembers(t *testing.T) {
	var r baggage.Reader

	ctx, err := baggage.WithEntry(context.Background(), "tenant", "acme")
	require.NoError(t, err)
	ctx, err = baggage.WithEntry(ctx, "synthetic_request", "false")
	require.NoError(t, err)

	v, ok := r.Entry(ctx, "tenant")
	assert.True(t, ok)
	assert.Equal(t, "acme", v)

	v, ok = r.Entry(ctx, "synthetic_request")
	assert.True(t, ok)
	assert.Equal(t, "false", v)
}

func TestWithEntry_EmptyKey(t *testing.T) {
	_, err := baggage.WithEntry(context.Background(), "", "v")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baggage.WithEntry")
}
