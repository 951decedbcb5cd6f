package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Platform is the payment application or channel inferred from document text.
type Platform string

const (
	PlatformGooglePay    Platform = "googlepay"
	PlatformPhonePe      Platform = "phonepe"
	PlatformPaytm        Platform = "paytm"
	PlatformCred         Platform = "cred"
	PlatformUPI          Platform = "upi"
	PlatformCash         Platform = "cash"
	PlatformCard         Platform = "card"
	PlatformBankTransfer Platform = "bank_transfer"
	PlatformGeneric      Platform = "generic"
	PlatformUnknown      Platform = "unknown"
)

// FieldKind identifies which record field a candidate proposes a value for.
type FieldKind string

const (
	FieldAmount        FieldKind = "amount"
	FieldVendor        FieldKind = "vendor"
	FieldDate          FieldKind = "date"
	FieldDescription   FieldKind = "description"
	FieldPlatform      FieldKind = "platform"
	FieldTransactionID FieldKind = "transaction_id"
)

// RawLine is a single line of OCR output. Immutable once produced.
// Position preserves document order so extractors may use adjacency.
type RawLine struct {
	Text     string `json:"text"`
	Engine   string `json:"engine,omitempty"`
	Position int    `json:"position"`
}

// FieldCandidate is a provisional, confidence-scored value proposed by one
// extraction strategy for one field. Candidates are produced, never mutated;
// selection happens by sorting and filtering.
type FieldCandidate struct {
	Field      FieldKind `json:"field"`
	Value      string    `json:"value"`
	Confidence float64   `json:"confidence"` // 0-1
	Strategy   string    `json:"strategy"`
	RawMatch   RawLine   `json:"raw_match"`
}

// ExtractionResult is the final structured record for one document.
type ExtractionResult struct {
	Amount        decimal.Decimal `json:"amount"`
	Vendor        string          `json:"vendor"`
	Date          string          `json:"date"` // ISO calendar date
	Platform      Platform        `json:"platform"`
	Description   string          `json:"description"`
	TransactionID string          `json:"transactionId"`
	Confidence    int             `json:"confidence"` // 0-100
}

// MarshalJSON emits amount as a bare JSON number; decimal.Decimal quotes it
// by default, which breaks numeric consumers.
func (r ExtractionResult) MarshalJSON() ([]byte, error) {
	type alias ExtractionResult
	return json.Marshal(struct {
		alias
		Amount json.RawMessage `json:"amount"`
	}{
		alias:  alias(r),
		Amount: json.RawMessage(r.Amount.String()),
	})
}
