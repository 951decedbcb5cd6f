package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUPIURI(t *testing.T) {
	payload, err := parseUPIURI("upi://pay?pa=furnili@okaxis&pn=Furnili%20Furniture&am=672.00")

	assert.NoError(t, err)
	assert.Equal(t, "furnili@okaxis", payload.PayeeAddress)
	assert.Equal(t, "Furnili Furniture", payload.PayeeName)
	assert.Equal(t, "672.00", payload.Amount)
}

func TestParseUPIURIRejectsNonUPI(t *testing.T) {
	_, err := parseUPIURI("https://example.com/pay")
	assert.Error(t, err)
}

func TestParseUPIURIRejectsEmptyPayee(t *testing.T) {
	_, err := parseUPIURI("upi://pay?am=100")
	assert.Error(t, err)
}

func TestSplitLines(t *testing.T) {
	lines := splitLines("  ₹672 \n\n Paid to FURNILI \n")

	assert.Equal(t, []string{"₹672", "Paid to FURNILI"}, lines)
}
