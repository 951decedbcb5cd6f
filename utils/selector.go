package utils

import (
	"math"
	"sort"

	"github.com/simplykool123/furnili-sub002/dto"
)

// CandidateExtractor scans OCR lines and proposes zero or more scored
// candidates for its field.
type CandidateExtractor interface {
	Field() dto.FieldKind
	Scan(lines []dto.RawLine) []dto.FieldCandidate
}

// Field defaults applied when no candidate survives.
const (
	DefaultVendor      = "Unknown Vendor"
	DefaultDescription = "Payment"
)

// Overall confidence weights. Only amount, vendor and date contribute.
const (
	amountWeight = 0.4
	vendorWeight = 0.4
	dateWeight   = 0.2
)

// SelectField picks the winning candidate for a field: confidence descending,
// with a fixed per-field secondary rule on ties. Amount ties prefer a
// candidate whose originating line carries an explicit currency marker;
// vendor ties prefer proper-noun shaped values; date ties keep strategy
// declaration order (the sort is stable and extractors emit in that order).
func SelectField(field dto.FieldKind, candidates []dto.FieldCandidate) (dto.FieldCandidate, bool) {
	if len(candidates) == 0 {
		return dto.FieldCandidate{}, false
	}

	sorted := make([]dto.FieldCandidate, len(candidates))
	copy(sorted, candidates)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Confidence != sorted[j].Confidence {
			return sorted[i].Confidence > sorted[j].Confidence
		}
		switch field {
		case dto.FieldAmount:
			return currencyMarkerRe.MatchString(sorted[i].RawMatch.Text) &&
				!currencyMarkerRe.MatchString(sorted[j].RawMatch.Text)
		case dto.FieldVendor:
			return IsProperNoun(sorted[i].Value) && !IsProperNoun(sorted[j].Value)
		default:
			return false
		}
	})

	return sorted[0], true
}

// OverallConfidence combines the best per-field candidate confidences into a
// single 0-100 record score. A missing field contributes zero.
func OverallConfidence(amountConf, vendorConf, dateConf float64) int {
	score := amountWeight*amountConf + vendorWeight*vendorConf + dateWeight*dateConf
	scaled := int(math.Round(score * 100))
	if scaled < 0 {
		return 0
	}
	if scaled > 100 {
		return 100
	}
	return scaled
}
