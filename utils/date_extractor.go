package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/simplykool123/furnili-sub002/dto"
)

type datePattern struct {
	name           string
	re             *regexp.Regexp
	baseConfidence float64
	parse          func(m []string) (time.Time, error)
}

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Families in declaration order; the selector's date tie-break follows this
// order, so the stricter shapes come first.
var datePatterns = []datePattern{
	{
		name:           "iso_date",
		re:             regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`),
		baseConfidence: 0.95,
		parse: func(m []string) (time.Time, error) {
			return buildDate(m[3], m[2], m[1])
		},
	},
	{
		name:           "dmy_slash",
		re:             regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`),
		baseConfidence: 0.85,
		parse: func(m []string) (time.Time, error) {
			return buildDate(m[1], m[2], m[3])
		},
	},
	{
		name:           "dmy_dash",
		re:             regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})-(\d{2,4})\b`),
		baseConfidence: 0.85,
		parse: func(m []string) (time.Time, error) {
			return buildDate(m[1], m[2], m[3])
		},
	},
	{
		name:           "day_month_name",
		re:             regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+(\d{4})\b`),
		baseConfidence: 0.80,
		parse: func(m []string) (time.Time, error) {
			month, ok := monthsByPrefix[strings.ToLower(m[2])]
			if !ok {
				return time.Time{}, fmt.Errorf("unknown month %q", m[2])
			}
			day, _ := strconv.Atoi(m[1])
			year, _ := strconv.Atoi(m[3])
			return validateDate(year, month, day)
		},
	},
}

// DateExtractor proposes transaction date candidates. Every recognized raw
// date is converted to a canonical ISO calendar date; unparseable shapes
// produce no candidate.
type DateExtractor struct{}

func (DateExtractor) Field() dto.FieldKind { return dto.FieldDate }

func (DateExtractor) Scan(lines []dto.RawLine) []dto.FieldCandidate {
	var candidates []dto.FieldCandidate

	for _, pat := range datePatterns {
		for _, line := range lines {
			for _, m := range pat.re.FindAllStringSubmatch(line.Text, -1) {
				parsed, err := pat.parse(m)
				if err != nil {
					continue
				}
				candidates = append(candidates, dto.FieldCandidate{
					Field:      dto.FieldDate,
					Value:      parsed.Format("2006-01-02"),
					Confidence: pat.baseConfidence,
					Strategy:   pat.name,
					RawMatch:   line,
				})
			}
		}
	}

	return candidates
}

// buildDate assembles a date from day-first string components, per the
// dd/mm/yyyy convention of the source documents.
func buildDate(dayStr, monthStr, yearStr string) (time.Time, error) {
	day, _ := strconv.Atoi(dayStr)
	month, _ := strconv.Atoi(monthStr)
	year, _ := strconv.Atoi(yearStr)
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month out of range: %d", month)
	}
	return validateDate(year, time.Month(month), day)
}

func validateDate(year int, month time.Month, day int) (time.Time, error) {
	if year < 1990 || year > 2100 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("date out of range: %d-%d-%d", year, month, day)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month {
		// e.g. 31/02 normalized by time.Date; reject rather than shift
		return time.Time{}, fmt.Errorf("invalid calendar date: %d-%d-%d", year, month, day)
	}
	return t, nil
}
