package identifier_test

import (
	"strings"
	"testing"

	"github.com/paylane/payment-gateway/internal/identifier"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	id := identifier.New(identifier.PaymentPrefix)
	require.True(t, strings.HasPrefix(id, "pay_"))
	require.Len(t, strings.TrimPrefix(id, "pay_"), 16)
}

func TestNew_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := identifier.New(identifier.RefundPrefix)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
