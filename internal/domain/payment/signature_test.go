//go:build unit

package payment_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noumaankhatib/mindfulqalb-payments/internal/domain/payment"
)

func TestSignatureVerifier(t *testing.T) {
	verifier := payment.NewSignatureVerifier("test-webhook-secret")

	t.Run("accepts a correctly signed pair", func(t *testing.T) {
		sig := verifier.Sign("order_abc123", "pay_def456")
		assert.True(t, verifier.Verify("order_abc123", "pay_def456", sig))
	})

	t.Run("rejects a signature for different ids", func(t *testing.T) {
		sig := verifier.Sign("order_abc123", "pay_def456")
		assert.False(t, verifier.Verify("order_abc123", "pay_other", sig))
		assert.False(t, verifier.Verify("order_other", "pay_def456", sig))
	})

	t.Run("rejects a signature made with a different secret", func(t *testing.T) {
		other := payment.NewSignatureVerifier("wrong-secret")
		sig := other.Sign("order_abc123", "pay_def456")
		assert.False(t, verifier.Verify("order_abc123", "pay_def456", sig))
	})

	t.Run("rejects tampered digests", func(t *testing.T) {
		sig := verifier.Sign("order_abc123", "pay_def456")
		flipped := "0" + sig[1:]
		if flipped == sig {
			flipped = "1" + sig[1:]
		}
		assert.False(t, verifier.Verify("order_abc123", "pay_def456", flipped))
	})

	t.Run("rejects wrong-length input without panicking", func(t *testing.T) {
		assert.False(t, verifier.Verify("order_abc123", "pay_def456", ""))
		assert.False(t, verifier.Verify("order_abc123", "pay_def456", "deadbeef"))
		assert.False(t, verifier.Verify("order_abc123", "pay_def456", strings.Repeat("a", 128)))
	})
}
