package dto

import "errors"

// Typed rejections. Everything else inside the pipeline degrades to defaults
// instead of failing.
var (
	ErrUnsupportedInput = errors.New("unsupported input type: expected JPEG, PNG, WebP or PDF")
	ErrScannedPDF       = errors.New("scanned PDF contains no extractable content: please resubmit as an image")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ExtractionResponse wraps one document's extraction outcome.
type ExtractionResponse struct {
	Result      *ExtractionResult `json:"result"`
	ProcessedAt string            `json:"processed_at"`
}

// ReconcileRequest carries BOQ line items plus the product catalog to match
// against. The catalog is an in-memory list scanned linearly per item.
type ReconcileRequest struct {
	Items    []BOQLineItem `json:"items" binding:"required"`
	Products []Product     `json:"products" binding:"required"`
}

// ReconciledItem pairs one BOQ line item with its ranked catalog matches.
type ReconciledItem struct {
	Item        BOQLineItem     `json:"item"`
	Parsed      ParsedBOQFields `json:"parsed"`
	Matches     []MatchResult   `json:"matches"`
	AutoMatched *MatchResult    `json:"auto_matched,omitempty"`
	Warnings    []string        `json:"warnings,omitempty"`
}

// ReconcileResponse partitions items into auto-matched and unmatched sets.
// No item appears in both.
type ReconcileResponse struct {
	AutoMatched []ReconciledItem `json:"auto_matched"`
	Unmatched   []ReconciledItem `json:"unmatched"`
	ProcessedAt string           `json:"processed_at"`
}
