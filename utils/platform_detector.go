package utils

import (
	"regexp"
	"strings"

	"github.com/simplykool123/furnili-sub002/dto"
)

type platformKeyword struct {
	platform dto.Platform
	re       *regexp.Regexp
}

// Fixed priority order: the first matching entry wins, exactly one platform
// value is ever returned.
var platformKeywords = []platformKeyword{
	{dto.PlatformGooglePay, regexp.MustCompile(`(?i)\bg(?:oogle\s*)?pay\b`)},
	{dto.PlatformPhonePe, regexp.MustCompile(`(?i)\bphonepe\b`)},
	{dto.PlatformPaytm, regexp.MustCompile(`(?i)\bpaytm\b`)},
	{dto.PlatformCred, regexp.MustCompile(`(?i)\bcred\b`)},
	{dto.PlatformUPI, regexp.MustCompile(`(?i)\bupi\b`)},
	{dto.PlatformCash, regexp.MustCompile(`(?i)\bcash\b`)},
	{dto.PlatformCard, regexp.MustCompile(`(?i)\b(?:visa|mastercard|rupay|amex|(?:credit|debit)\s*card|card)\b`)},
	{dto.PlatformBankTransfer, regexp.MustCompile(`(?i)\b(?:neft|rtgs|imps|bank\s*transfer|net\s*banking)\b`)},
}

// Markers of a digital payment receipt: currency next to paid/received
// phrasing, or a UPI handle. They bias the no-keyword default toward upi.
var digitalReceiptRe = regexp.MustCompile(`(?i)[₹$]|\brs\.?\s*\d|\b(?:paid|received|sent|transferred)\b|@[a-z]{2,}\b`)

// PlatformDetector infers the payment platform from the whole document text.
type PlatformDetector struct{}

// Detect scans the concatenation of all lines case-insensitively and returns
// the first platform whose keywords appear, in fixed priority order. With no
// keyword present, digital receipts default to upi, everything else to
// generic.
func (PlatformDetector) Detect(lines []dto.RawLine) dto.Platform {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line.Text)
		sb.WriteString("\n")
	}
	text := sb.String()

	for _, kw := range platformKeywords {
		if kw.re.MatchString(text) {
			return kw.platform
		}
	}

	if digitalReceiptRe.MatchString(text) {
		return dto.PlatformUPI
	}
	return dto.PlatformGeneric
}
