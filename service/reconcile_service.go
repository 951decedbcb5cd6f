package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simplykool123/furnili-sub002/dto"
	"github.com/simplykool123/furnili-sub002/utils"
)

// amount printed on the document may disagree with quantity*rate by up to
// this fraction before we flag it
var amountTolerance = decimal.NewFromFloat(0.01)

// ReconcileService matches BOQ line items against the product catalog and
// partitions them into auto-matched and unmatched sets.
type ReconcileService struct {
	matcher            *utils.ProductMatcher
	autoMatchThreshold float64
	now                func() time.Time
}

func NewReconcileService(matcher *utils.ProductMatcher, autoMatchThreshold float64) *ReconcileService {
	return &ReconcileService{
		matcher:            matcher,
		autoMatchThreshold: autoMatchThreshold,
		now:                time.Now,
	}
}

// Reconcile scores every item against the catalog. An item lands in the
// auto-matched set only when its best match reaches the threshold; otherwise
// it stays unmatched for manual resolution. No item appears in both sets.
func (s *ReconcileService) Reconcile(items []dto.BOQLineItem, catalog []dto.Product) *dto.ReconcileResponse {
	response := &dto.ReconcileResponse{
		AutoMatched: []dto.ReconciledItem{},
		Unmatched:   []dto.ReconciledItem{},
		ProcessedAt: s.now().Format(time.RFC3339),
	}

	for _, item := range items {
		parsed := utils.ParseBOQDescription(item.Description)
		matches := s.matcher.MatchParsed(parsed, item.Unit, catalog)

		reconciled := dto.ReconciledItem{
			Item:     item,
			Parsed:   parsed,
			Matches:  matches,
			Warnings: checkAmount(item),
		}

		if len(matches) > 0 && matches[0].Confidence >= s.autoMatchThreshold {
			top := matches[0]
			reconciled.AutoMatched = &top
			response.AutoMatched = append(response.AutoMatched, reconciled)
		} else {
			response.Unmatched = append(response.Unmatched, reconciled)
		}
	}

	return response
}

// checkAmount tolerance-checks quantity * rate against the amount printed in
// the source row. A mismatch is a warning, never an error.
func checkAmount(item dto.BOQLineItem) []string {
	if item.Amount.IsZero() || item.Quantity.IsZero() {
		return nil
	}

	computed := item.Quantity.Mul(item.Rate)
	diff := computed.Sub(item.Amount).Abs()
	allowed := item.Amount.Abs().Mul(amountTolerance)

	if diff.GreaterThan(allowed) {
		return []string{fmt.Sprintf(
			"amount mismatch: quantity x rate = %s but document says %s",
			computed.StringFixed(2), item.Amount.StringFixed(2),
		)}
	}
	return nil
}
