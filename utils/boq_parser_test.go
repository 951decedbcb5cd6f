package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBOQDescriptionFull(t *testing.T) {
	parsed := ParseBOQDescription("Gurjan Plywood - 18mm - 8 X 4 feet")

	assert.Equal(t, "Gurjan Plywood", parsed.ProductName)
	assert.Equal(t, "18mm", parsed.Thickness)
	assert.Equal(t, "8x4 feet", parsed.Size)
	assert.Equal(t, "Gurjan", parsed.Brand)
}

func TestParseBOQDescriptionSizeVariants(t *testing.T) {
	assert.Equal(t, "8x4 feet", ParseBOQDescription("Board 8x4 feet").Size)
	assert.Equal(t, "8x4 feet", ParseBOQDescription("Board 8 × 4 ft").Size)
	assert.Equal(t, "2440x1220", ParseBOQDescription("Sheet 2440 x 1220").Size)
}

func TestParseBOQDescriptionThicknessVariants(t *testing.T) {
	assert.Equal(t, "18mm", ParseBOQDescription("Plywood 18 mm").Thickness)
	assert.Equal(t, "12mm", ParseBOQDescription("MDF 12MM board").Thickness)
}

func TestParseBOQDescriptionPartialFields(t *testing.T) {
	parsed := ParseBOQDescription("Hettich soft-close hinges")

	assert.Equal(t, "Hettich soft close hinges", parsed.ProductName)
	assert.Equal(t, "Hettich", parsed.Brand)
	assert.Empty(t, parsed.Thickness)
	assert.Empty(t, parsed.Size)
}

func TestParseBOQDescriptionNoMatches(t *testing.T) {
	parsed := ParseBOQDescription("assorted consumables")

	assert.Equal(t, "assorted consumables", parsed.ProductName)
	assert.Empty(t, parsed.Thickness)
	assert.Empty(t, parsed.Size)
	assert.Empty(t, parsed.Brand)
}

func TestParseBOQDescriptionEmpty(t *testing.T) {
	parsed := ParseBOQDescription("")

	assert.Empty(t, parsed.ProductName)
	assert.Empty(t, parsed.Thickness)
	assert.Empty(t, parsed.Size)
	assert.Empty(t, parsed.Brand)
}
