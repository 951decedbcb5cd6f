package utils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/simplykool123/furnili-sub002/dto"
)

// Transaction amount sanity bounds. A number outside this range is never
// created as an amount candidate.
var (
	MinTransactionAmount = decimal.NewFromInt(1)
	MaxTransactionAmount = decimal.NewFromInt(1000000)
)

// amountPattern is one family of amount-bearing text shapes. Families are
// probed in declaration order; each carries its own base confidence which the
// contextual boost rules below adjust.
type amountPattern struct {
	name           string
	re             *regexp.Regexp
	baseConfidence float64
}

var amountPatterns = []amountPattern{
	{"currency_prefixed", regexp.MustCompile(`[₹$]\s*([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]{1,2})?|[0-9]+(?:\.[0-9]{1,2})?)`), 0.90},
	{"rs_prefixed", regexp.MustCompile(`(?i)\b(?:rs\.?|inr)\s*:?\s*([0-9]+(?:,[0-9]{3})*(?:\.[0-9]{1,2})?)`), 0.85},
	{"keyword_adjacent", regexp.MustCompile(`(?i)\b(?:paid|amount|total|payment|sent)\b[^0-9]{0,15}([0-9]+(?:,[0-9]{3})*(?:\.[0-9]{1,2})?)`), 0.80},
	{"comma_grouped", regexp.MustCompile(`\b([0-9]{1,3}(?:,[0-9]{3})+(?:\.[0-9]{1,2})?)\b`), 0.65},
	{"bare_number", regexp.MustCompile(`^\s*([0-9]{2,7}(?:\.[0-9]{1,2})?)\s*$`), 0.50},
}

// Spans matching these shapes are never amounts: calendar dates, clock times
// and long ids (UPI references run 10+ digits).
var amountExclusions = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{2,4}\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}(?::\d{2})?\s*(?:am|pm)?\b`),
	regexp.MustCompile(`\d{10,}`),
}

var (
	currencyMarkerRe = regexp.MustCompile(`(?i)[₹$]|\b(?:rs\.?|inr)\b`)
	amountKeywordRe  = regexp.MustCompile(`(?i)\b(?:paid|total|amount|payment)\b`)
)

const (
	currencyMarkerBoost = 0.25
	amountKeywordBoost  = 0.20
)

// AmountExtractor proposes transaction amount candidates from OCR lines.
type AmountExtractor struct{}

func (AmountExtractor) Field() dto.FieldKind { return dto.FieldAmount }

func (AmountExtractor) Scan(lines []dto.RawLine) []dto.FieldCandidate {
	var candidates []dto.FieldCandidate

	for _, line := range lines {
		excluded := exclusionSpans(line.Text)
		hasCurrency := currencyMarkerRe.MatchString(line.Text)
		hasKeyword := amountKeywordRe.MatchString(line.Text)
		hasDate := len(amountExclusions[0].FindStringIndex(line.Text)) > 0 ||
			len(amountExclusions[1].FindStringIndex(line.Text)) > 0

		for _, pat := range amountPatterns {
			// A line carrying a date never yields a bare standalone number:
			// "2026" next to date context is a year, not a rupee amount.
			if pat.name == "bare_number" && hasDate {
				continue
			}

			for _, m := range pat.re.FindAllStringSubmatchIndex(line.Text, -1) {
				start, end := m[2], m[3]
				if start < 0 || overlapsAny(start, end, excluded) {
					continue
				}

				raw := strings.ReplaceAll(line.Text[start:end], ",", "")
				amount, err := decimal.NewFromString(raw)
				if err != nil {
					continue
				}
				if amount.LessThan(MinTransactionAmount) || amount.GreaterThan(MaxTransactionAmount) {
					continue
				}

				confidence := pat.baseConfidence
				if hasCurrency {
					confidence += currencyMarkerBoost
				}
				if hasKeyword {
					confidence += amountKeywordBoost
				}
				if confidence > 1.0 {
					confidence = 1.0
				}

				candidates = append(candidates, dto.FieldCandidate{
					Field:      dto.FieldAmount,
					Value:      amount.String(),
					Confidence: confidence,
					Strategy:   pat.name,
					RawMatch:   line,
				})
			}
		}
	}

	return candidates
}

func exclusionSpans(text string) [][]int {
	var spans [][]int
	for _, re := range amountExclusions {
		spans = append(spans, re.FindAllStringIndex(text, -1)...)
	}
	return spans
}

func overlapsAny(start, end int, spans [][]int) bool {
	for _, s := range spans {
		if start < s[1] && end > s[0] {
			return true
		}
	}
	return false
}
