package utils

import (
	"regexp"
	"strings"

	"github.com/simplykool123/furnili-sub002/dto"
)

var (
	thicknessRe = regexp.MustCompile(`(?i)(\d+)\s*mm`)
	sizeRe      = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*[x×]\s*(\d+(?:\.\d+)?)(\s*(?:feet|ft))?`)
)

// KnownBrands is scanned in order; the first case-insensitive hit wins.
var KnownBrands = []string{
	"Gurjan", "Century", "Greenply", "Kitply", "Archid", "Merino",
	"Action Tesa", "Hettich", "Ebco", "Godrej", "Fevicol", "Asian Paints",
}

// ParseBOQDescription splits a free-text BOQ line-item description into
// structured sub-fields. A sub-field with no match stays empty, which means
// "contributes nothing to scoring", never a failed parse.
func ParseBOQDescription(description string) dto.ParsedBOQFields {
	var parsed dto.ParsedBOQFields
	remainder := description

	// Thickness and size are stripped using the exact matched substrings so
	// the product name is not double-stripped by re-derived patterns.
	if m := thicknessRe.FindStringSubmatch(description); len(m) > 1 {
		parsed.Thickness = m[1] + "mm"
		remainder = strings.Replace(remainder, m[0], " ", 1)
	}

	if m := sizeRe.FindStringSubmatch(remainder); len(m) > 2 {
		parsed.Size = m[1] + "x" + m[2]
		if strings.TrimSpace(m[3]) != "" {
			parsed.Size += " feet"
		}
		remainder = strings.Replace(remainder, m[0], " ", 1)
	}

	lowered := strings.ToLower(description)
	for _, brand := range KnownBrands {
		if strings.Contains(lowered, strings.ToLower(brand)) {
			parsed.Brand = brand
			break
		}
	}

	remainder = strings.ReplaceAll(remainder, "-", " ")
	parsed.ProductName = CollapseSpaces(remainder)

	return parsed
}
