package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExtractionResultAmountIsJSONNumber(t *testing.T) {
	result := ExtractionResult{
		Amount:     decimal.NewFromInt(672),
		Vendor:     "Furnili Furniture",
		Date:       "2024-08-12",
		Platform:   PlatformUPI,
		Confidence: 93,
	}

	data, err := json.Marshal(result)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &decoded))

	amount, ok := decoded["amount"].(float64)
	assert.True(t, ok, "amount must decode as a JSON number, got %T", decoded["amount"])
	assert.Equal(t, 672.0, amount)
}

func TestExtractionResultAmountKeepsFraction(t *testing.T) {
	result := ExtractionResult{Amount: decimal.RequireFromString("1250.50")}

	data, err := json.Marshal(result)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"amount":1250.5`)
}
