package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simplykool123/furnili-sub002/dto"
)

func testCatalog() []dto.Product {
	return []dto.Product{
		{ID: 1, Name: "Plywood", Brand: "Gurjan", Thickness: "18mm", Size: "8x4 feet", Unit: "sheets"},
		{ID: 2, Name: "Laminate", Brand: "Merino", Thickness: "1mm", Size: "8x4 feet", Unit: "sheets"},
		{ID: 3, Name: "Hinge", Brand: "Hettich", Unit: "pieces"},
	}
}

func TestProductMatcherRanksCatalog(t *testing.T) {
	matcher := NewProductMatcher(DefaultMatcherConfig())
	item := dto.BOQLineItem{
		Description: "Gurjan Plywood - 18mm - 8 X 4 feet",
		Unit:        "sheets",
	}

	results := matcher.Match(item, testCatalog())

	assert.NotEmpty(t, results)
	assert.Equal(t, 1, results[0].ProductID)
	assert.Greater(t, results[0].Confidence, 70.0)

	// name partial (>=30, weight .5) + thickness exact (.25) + size exact
	// (.15) + brand exact (.10) + unit bonus
	assert.Contains(t, results[0].MatchedFields, "Name: 85%")
	assert.Contains(t, results[0].MatchedFields, "Thickness: 100%")
	assert.Contains(t, results[0].MatchedFields, "Size: 100%")
	assert.Contains(t, results[0].MatchedFields, "Brand: 100%")
	assert.Contains(t, results[0].MatchedFields, "Unit: 100%")
}

func TestProductMatcherSortedDescending(t *testing.T) {
	matcher := NewProductMatcher(DefaultMatcherConfig())
	item := dto.BOQLineItem{Description: "Plywood 18mm", Unit: "sheets"}

	results := matcher.Match(item, testCatalog())
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Confidence, results[i].Confidence)
	}
}

func TestProductMatcherExcludesNonQualifying(t *testing.T) {
	matcher := NewProductMatcher(DefaultMatcherConfig())
	item := dto.BOQLineItem{Description: "site labour charges"}

	results := matcher.Match(item, testCatalog())
	assert.Empty(t, results)
}

func TestProductMatcherAbsentFieldsContributeNothing(t *testing.T) {
	matcher := NewProductMatcher(DefaultMatcherConfig())
	// no thickness/size/brand parsed: only the name can contribute
	item := dto.BOQLineItem{Description: "Hinge", Unit: "pieces"}

	results := matcher.Match(item, testCatalog())
	assert.NotEmpty(t, results)
	assert.Equal(t, 3, results[0].ProductID)
}

func TestBestMatchEmptyCatalog(t *testing.T) {
	matcher := NewProductMatcher(DefaultMatcherConfig())
	item := dto.BOQLineItem{Description: "Gurjan Plywood 18mm"}

	_, ok := matcher.BestMatch(item, nil)
	assert.False(t, ok)
}

func TestProductMatcherConfidenceCapped(t *testing.T) {
	cfg := DefaultMatcherConfig()
	cfg.NameWeight = 2.0 // force an overflow
	matcher := NewProductMatcher(cfg)

	item := dto.BOQLineItem{Description: "Plywood", Unit: "sheets"}
	results := matcher.Match(item, testCatalog())

	assert.NotEmpty(t, results)
	for _, r := range results {
		assert.LessOrEqual(t, r.Confidence, 100.0)
	}
}
