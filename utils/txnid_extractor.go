package utils

import (
	"regexp"
	"strings"

	"github.com/simplykool123/furnili-sub002/dto"
)

type txnIDPattern struct {
	name           string
	re             *regexp.Regexp
	baseConfidence float64
}

var txnIDPatterns = []txnIDPattern{
	{"labeled_id", regexp.MustCompile(`(?i)\b(?:transaction\s*id|txn\s*(?:id|no)|upi\s*(?:ref(?:erence)?|transaction)\s*(?:id|no)?|utr(?:\s*no)?|ref(?:erence)?\s*(?:id|no))\b[\s:#.-]*([A-Za-z0-9]{8,30})`), 0.90},
	{"upi_reference", regexp.MustCompile(`\b(\d{12})\b`), 0.60},
	{"long_alphanumeric", regexp.MustCompile(`\b([A-Z0-9]{10,25})\b`), 0.50},
}

// TransactionIdExtractor proposes transaction/reference id candidates.
type TransactionIdExtractor struct{}

func (TransactionIdExtractor) Field() dto.FieldKind { return dto.FieldTransactionID }

func (TransactionIdExtractor) Scan(lines []dto.RawLine) []dto.FieldCandidate {
	var candidates []dto.FieldCandidate

	for _, line := range lines {
		for _, pat := range txnIDPatterns {
			for _, m := range pat.re.FindAllStringSubmatch(line.Text, -1) {
				id := strings.ToUpper(m[1])
				// an all-letter token is a word, not a reference
				if pat.name == "long_alphanumeric" && !strings.ContainsAny(id, "0123456789") {
					continue
				}
				candidates = append(candidates, dto.FieldCandidate{
					Field:      dto.FieldTransactionID,
					Value:      id,
					Confidence: pat.baseConfidence,
					Strategy:   pat.name,
					RawMatch:   line,
				})
			}
		}
	}

	return candidates
}
