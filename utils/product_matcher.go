package utils

import (
	"fmt"
	"sort"
	"sync"

	"github.com/simplykool123/furnili-sub002/dto"
)

// MatcherConfig carries the weights and per-field minimum similarity
// thresholds of the catalog matcher. The values are tunable, not baked into
// the scorer.
type MatcherConfig struct {
	NameWeight      float64
	ThicknessWeight float64
	SizeWeight      float64
	BrandWeight     float64

	NameMin      float64
	ThicknessMin float64
	SizeMin      float64
	BrandMin     float64
	UnitMin      float64

	// Flat bonus added (not multiplied) when unit strings are similar.
	UnitBonus float64
	// A product enters the result list only above this summed confidence.
	InclusionMin float64
}

func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		NameWeight:      0.50,
		ThicknessWeight: 0.25,
		SizeWeight:      0.15,
		BrandWeight:     0.10,
		NameMin:         30,
		ThicknessMin:    70,
		SizeMin:         60,
		BrandMin:        60,
		UnitMin:         70,
		UnitBonus:       5,
		InclusionMin:    25,
	}
}

// ProductMatcher scores catalog products against parsed BOQ line items using
// weighted field-level similarity.
type ProductMatcher struct {
	cfg MatcherConfig
}

func NewProductMatcher(cfg MatcherConfig) *ProductMatcher {
	return &ProductMatcher{cfg: cfg}
}

// Match ranks every catalog product against the BOQ item. The catalog scan
// fans out across goroutines; results are collected by index so ties keep
// catalog iteration order, then sorted by confidence descending.
func (m *ProductMatcher) Match(item dto.BOQLineItem, catalog []dto.Product) []dto.MatchResult {
	parsed := ParseBOQDescription(item.Description)
	return m.MatchParsed(parsed, item.Unit, catalog)
}

// MatchParsed is Match with the description already parsed, for callers that
// reuse the parse.
func (m *ProductMatcher) MatchParsed(parsed dto.ParsedBOQFields, unit string, catalog []dto.Product) []dto.MatchResult {
	scored := make([]*dto.MatchResult, len(catalog))

	var wg sync.WaitGroup
	for i := range catalog {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			scored[i] = m.scoreProduct(parsed, unit, catalog[i])
		}(i)
	}
	wg.Wait()

	results := make([]dto.MatchResult, 0, len(catalog))
	for _, r := range scored {
		if r != nil {
			results = append(results, *r)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})

	return results
}

// BestMatch returns the top-ranked catalog product, or false when no product
// qualifies. An empty result is a normal outcome, not an error.
func (m *ProductMatcher) BestMatch(item dto.BOQLineItem, catalog []dto.Product) (dto.MatchResult, bool) {
	results := m.Match(item, catalog)
	if len(results) == 0 {
		return dto.MatchResult{}, false
	}
	return results[0], true
}

// scoreProduct computes the weighted confidence of one (item, product) pair.
// A field contributes only when present on both sides and its similarity
// clears the per-field minimum; sub-threshold similarity contributes nothing.
func (m *ProductMatcher) scoreProduct(parsed dto.ParsedBOQFields, unit string, product dto.Product) *dto.MatchResult {
	var confidence float64
	var matchCount int
	var matchedFields []string

	if parsed.ProductName != "" && product.Name != "" {
		if sim := Similarity(parsed.ProductName, product.Name); sim > m.cfg.NameMin {
			confidence += sim * m.cfg.NameWeight
			matchCount++
			matchedFields = append(matchedFields, fmt.Sprintf("Name: %.0f%%", sim))
		}
	}

	if parsed.Thickness != "" && product.Thickness != "" {
		if sim := Similarity(parsed.Thickness, product.Thickness); sim > m.cfg.ThicknessMin {
			confidence += sim * m.cfg.ThicknessWeight
			matchCount++
			matchedFields = append(matchedFields, fmt.Sprintf("Thickness: %.0f%%", sim))
		}
	}

	if parsed.Size != "" && product.Size != "" {
		if sim := Similarity(parsed.Size, product.Size); sim > m.cfg.SizeMin {
			confidence += sim * m.cfg.SizeWeight
			matchCount++
			matchedFields = append(matchedFields, fmt.Sprintf("Size: %.0f%%", sim))
		}
	}

	if parsed.Brand != "" && product.Brand != "" {
		if sim := Similarity(parsed.Brand, product.Brand); sim > m.cfg.BrandMin {
			confidence += sim * m.cfg.BrandWeight
			matchCount++
			matchedFields = append(matchedFields, fmt.Sprintf("Brand: %.0f%%", sim))
		}
	}

	// Unit similarity is a flat bonus on top of the weighted fields, not a
	// qualifying field on its own.
	if unit != "" && product.Unit != "" {
		if sim := Similarity(unit, product.Unit); sim > m.cfg.UnitMin {
			confidence += m.cfg.UnitBonus
			matchedFields = append(matchedFields, fmt.Sprintf("Unit: %.0f%%", sim))
		}
	}

	if matchCount == 0 || confidence <= m.cfg.InclusionMin {
		return nil
	}
	if confidence > 100 {
		confidence = 100
	}

	return &dto.MatchResult{
		ProductID:     product.ID,
		Confidence:    confidence,
		MatchedFields: matchedFields,
	}
}
