package utils

import (
	"regexp"
	"strings"

	"github.com/simplykool123/furnili-sub002/dto"
)

// DefaultDescriptionVocabulary lists business/category words that make a line
// a strong description candidate. Callers may supply their own list.
var DefaultDescriptionVocabulary = []string{
	"plywood", "laminate", "board", "hardware", "furniture", "timber", "wood",
	"veneer", "glass", "fabric", "paint", "polish", "adhesive", "fitting",
	"channel", "hinge", "handle", "material", "labour", "transport",
}

var (
	metadataWordRe = regexp.MustCompile(`(?i)\b(?:transaction|completed|upi\s*id|txn|utr|ref(?:erence)?\s*no)\b`)
	// currency-symbol misread glued to digits, e.g. "%672" or "F672"
	corruptionRe   = regexp.MustCompile(`^[^\sA-Za-z0-9][0-9]+$`)
	pureNumericRe  = regexp.MustCompile(`^[\d\s.,:/₹$-]+$`)
	timeOnlyLineRe = regexp.MustCompile(`(?i)^\s*\d{1,2}:\d{2}(?::\d{2})?\s*(?:am|pm)?\s*$`)
)

// DescriptionExtractor proposes description candidates: lines carrying known
// business vocabulary first, then the longest line that is not metadata.
type DescriptionExtractor struct {
	Vocabulary []string
}

func (DescriptionExtractor) Field() dto.FieldKind { return dto.FieldDescription }

func (e DescriptionExtractor) Scan(lines []dto.RawLine) []dto.FieldCandidate {
	vocab := e.Vocabulary
	if len(vocab) == 0 {
		vocab = DefaultDescriptionVocabulary
	}

	var candidates []dto.FieldCandidate
	var longest dto.RawLine

	for _, line := range lines {
		text := strings.TrimSpace(line.Text)
		if text == "" || isMetadataLine(text) {
			continue
		}

		lower := strings.ToLower(text)
		for _, word := range vocab {
			if strings.Contains(lower, word) {
				candidates = append(candidates, dto.FieldCandidate{
					Field:      dto.FieldDescription,
					Value:      text,
					Confidence: 0.80,
					Strategy:   "business_vocabulary",
					RawMatch:   line,
				})
				break
			}
		}

		if len(text) > len(strings.TrimSpace(longest.Text)) {
			longest = line
		}
	}

	if text := strings.TrimSpace(longest.Text); text != "" {
		candidates = append(candidates, dto.FieldCandidate{
			Field:      dto.FieldDescription,
			Value:      text,
			Confidence: 0.50,
			Strategy:   "longest_line",
			RawMatch:   longest,
		})
	}

	return candidates
}

func isMetadataLine(text string) bool {
	return metadataWordRe.MatchString(text) ||
		corruptionRe.MatchString(text) ||
		pureNumericRe.MatchString(text) ||
		timeOnlyLineRe.MatchString(text)
}
