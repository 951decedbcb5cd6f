package utils

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/simplykool123/furnili-sub002/dto"
)

var (
	upiIDRe  = regexp.MustCompile(`(?i)\b([a-z0-9][a-z0-9._-]{1,40})@([a-z]{2,20})\b`)
	paidToRe = regexp.MustCompile(`(?i)\b(?:paid\s+to|sent\s+to|transferred\s+to|received\s+from)\s+([A-Za-z][A-Za-z0-9 .&'-]{2,50})`)
	// short ALL-CAPS business-name lines, e.g. "FURNILI FURNITURE"
	allCapsRe    = regexp.MustCompile(`^\s*([A-Z][A-Z .&'-]{2,40})\s*$`)
	properNounRe = regexp.MustCompile(`^[A-Z][a-z]+(?: [A-Z][a-z]+)*$`)
)

// Platform noise words and trailing connectives ("via Google Pay") stripped
// from vendor names before title-casing.
var vendorNoiseRe = regexp.MustCompile(`(?i)\b(?:via|through|using|gpay|google\s*pay|phonepe|paytm|upi|payments?|pvt\.?\s*ltd\.?)\b`)

// VendorExtractor proposes vendor/recipient candidates: UPI ids, "paid to"
// phrasing and ALL-CAPS business-name tokens.
type VendorExtractor struct{}

func (VendorExtractor) Field() dto.FieldKind { return dto.FieldVendor }

func (VendorExtractor) Scan(lines []dto.RawLine) []dto.FieldCandidate {
	var candidates []dto.FieldCandidate

	for _, line := range lines {
		if m := paidToRe.FindStringSubmatch(line.Text); len(m) > 1 {
			if name := NormalizeVendorName(m[1]); name != "" {
				candidates = append(candidates, dto.FieldCandidate{
					Field:      dto.FieldVendor,
					Value:      name,
					Confidence: 0.90,
					Strategy:   "paid_to_phrase",
					RawMatch:   line,
				})
			}
		}

		if m := upiIDRe.FindStringSubmatch(line.Text); len(m) > 2 {
			handle := strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(m[1])
			if name := NormalizeVendorName(handle); name != "" && !isNumericOnly(name) {
				candidates = append(candidates, dto.FieldCandidate{
					Field:      dto.FieldVendor,
					Value:      name,
					Confidence: 0.75,
					Strategy:   "upi_id",
					RawMatch:   line,
				})
			}
		}

		if m := allCapsRe.FindStringSubmatch(line.Text); len(m) > 1 {
			token := strings.TrimSpace(m[1])
			if len(strings.Fields(token)) <= 4 && !looksLikeMetadata(token) {
				if name := NormalizeVendorName(token); name != "" {
					candidates = append(candidates, dto.FieldCandidate{
						Field:      dto.FieldVendor,
						Value:      name,
						Confidence: 0.60,
						Strategy:   "all_caps_token",
						RawMatch:   line,
					})
				}
			}
		}
	}

	return candidates
}

// NormalizeVendorName strips platform noise words and title-cases the rest.
func NormalizeVendorName(name string) string {
	lowered := strings.ToLower(CollapseSpaces(name))
	lowered = vendorNoiseRe.ReplaceAllString(lowered, " ")
	lowered = CollapseSpaces(strings.Trim(lowered, " .,:-"))
	if lowered == "" {
		return ""
	}
	// a Caser carries internal state, so build one per call
	return cases.Title(language.English).String(lowered)
}

// IsProperNoun reports whether a vendor value matches Title Case word shape.
// The selector prefers proper-noun candidates on confidence ties.
func IsProperNoun(s string) bool {
	return properNounRe.MatchString(s)
}

func isNumericOnly(s string) bool {
	for _, r := range s {
		if r != ' ' && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

func looksLikeMetadata(s string) bool {
	l := strings.ToLower(s)
	for _, word := range []string{"upi", "transaction", "completed", "success", "paid", "total", "neft", "rtgs", "imps"} {
		if strings.Contains(l, word) {
			return true
		}
	}
	return false
}
