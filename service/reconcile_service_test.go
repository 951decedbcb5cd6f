package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/simplykool123/furnili-sub002/dto"
	"github.com/simplykool123/furnili-sub002/utils"
)

func newTestReconcileService() *ReconcileService {
	return NewReconcileService(utils.NewProductMatcher(utils.DefaultMatcherConfig()), 70)
}

func reconcileCatalog() []dto.Product {
	return []dto.Product{
		{ID: 1, Name: "Plywood", Brand: "Gurjan", Thickness: "18mm", Size: "8x4 feet", Unit: "sheets"},
		{ID: 2, Name: "Laminate", Brand: "Merino", Thickness: "1mm", Size: "8x4 feet", Unit: "sheets"},
	}
}

func TestReconcilePartitionsItems(t *testing.T) {
	s := newTestReconcileService()

	items := []dto.BOQLineItem{
		{Description: "Gurjan Plywood - 18mm - 8 X 4 feet", Unit: "sheets", Quantity: decimal.NewFromInt(10)},
		{Description: "site labour charges", Quantity: decimal.NewFromInt(1)},
	}

	resp := s.Reconcile(items, reconcileCatalog())

	assert.Len(t, resp.AutoMatched, 1)
	assert.Len(t, resp.Unmatched, 1)
	assert.NotNil(t, resp.AutoMatched[0].AutoMatched)
	assert.Equal(t, 1, resp.AutoMatched[0].AutoMatched.ProductID)
	assert.Nil(t, resp.Unmatched[0].AutoMatched)
}

func TestReconcileThresholdPartitionIsDisjoint(t *testing.T) {
	s := newTestReconcileService()

	items := []dto.BOQLineItem{
		{Description: "Gurjan Plywood - 18mm - 8 X 4 feet", Unit: "sheets"},
		{Description: "Laminate sheet", Unit: "sheets"},
		{Description: "misc consumables"},
	}

	resp := s.Reconcile(items, reconcileCatalog())

	assert.Equal(t, len(items), len(resp.AutoMatched)+len(resp.Unmatched))
	for _, item := range resp.AutoMatched {
		assert.GreaterOrEqual(t, item.Matches[0].Confidence, 70.0)
	}
	for _, item := range resp.Unmatched {
		if len(item.Matches) > 0 {
			assert.Less(t, item.Matches[0].Confidence, 70.0)
		}
	}
}

func TestReconcileBelowThresholdStaysUnmatched(t *testing.T) {
	// raise the threshold so even a strong match needs manual resolution
	s := NewReconcileService(utils.NewProductMatcher(utils.DefaultMatcherConfig()), 99)

	items := []dto.BOQLineItem{
		{Description: "Gurjan Plywood - 18mm - 8 X 4 feet", Unit: "sheets"},
	}

	resp := s.Reconcile(items, reconcileCatalog())

	assert.Empty(t, resp.AutoMatched)
	assert.Len(t, resp.Unmatched, 1)
	assert.NotEmpty(t, resp.Unmatched[0].Matches, "ranked matches stay available for manual review")
}

func TestReconcileAmountToleranceWarning(t *testing.T) {
	s := newTestReconcileService()

	items := []dto.BOQLineItem{
		{
			Description: "Gurjan Plywood - 18mm - 8 X 4 feet",
			Unit:        "sheets",
			Quantity:    decimal.NewFromInt(10),
			Rate:        decimal.NewFromInt(2400),
			Amount:      decimal.NewFromInt(25000), // document says 25000, 10x2400 = 24000
		},
	}

	resp := s.Reconcile(items, reconcileCatalog())

	assert.Len(t, resp.AutoMatched, 1)
	assert.NotEmpty(t, resp.AutoMatched[0].Warnings)
}

func TestReconcileConsistentAmountNoWarning(t *testing.T) {
	s := newTestReconcileService()

	items := []dto.BOQLineItem{
		{
			Description: "Gurjan Plywood - 18mm - 8 X 4 feet",
			Unit:        "sheets",
			Quantity:    decimal.NewFromInt(10),
			Rate:        decimal.NewFromInt(2400),
			Amount:      decimal.NewFromInt(24000),
		},
	}

	resp := s.Reconcile(items, reconcileCatalog())

	assert.Len(t, resp.AutoMatched, 1)
	assert.Empty(t, resp.AutoMatched[0].Warnings)
}
