package orderController

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentSignature(t *testing.T) {
	sig := paymentSignature("topsecret", "order123", "pay456")

	// Deterministic for the same inputs.
	assert.Equal(t, sig, paymentSignature("topsecret", "order123", "pay456"))

	// Any changed input produces a different signature.
	assert.NotEqual(t, sig, paymentSignature("other", "order123", "pay456"))
	assert.NotEqual(t, sig, paymentSignature("topsecret", "order124", "pay456"))
	assert.NotEqual(t, sig, paymentSignature("topsecret", "order123", "pay457"))

	// Hex-encoded SHA256.
	assert.Len(t, sig, 64)
}
