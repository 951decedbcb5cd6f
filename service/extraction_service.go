package service

import (
	"context"
	"image"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simplykool123/furnili-sub002/client"
	"github.com/simplykool123/furnili-sub002/dto"
	"github.com/simplykool123/furnili-sub002/utils"
)

// LineExtractor is the slice of LineSource the extraction pipeline needs.
type LineExtractor interface {
	Extract(ctx context.Context, data []byte, filename string) ([]dto.RawLine, image.Image, error)
}

// QRDecoder probes payment screenshots for a UPI QR code.
type QRDecoder interface {
	DecodeUPI(img image.Image) (*client.UPIPayload, error)
}

// ExtractionService runs the full pipeline: acquire lines, fan out the
// candidate extractors, select per-field winners, combine confidence.
type ExtractionService struct {
	lineSource LineExtractor
	qrClient   QRDecoder
	now        func() time.Time

	extractors       []utils.CandidateExtractor
	platformDetector utils.PlatformDetector
}

func NewExtractionService(lineSource LineExtractor, qrClient QRDecoder) *ExtractionService {
	return &ExtractionService{
		lineSource: lineSource,
		qrClient:   qrClient,
		now:        time.Now,
		extractors: []utils.CandidateExtractor{
			utils.AmountExtractor{},
			utils.VendorExtractor{},
			utils.DateExtractor{},
			utils.DescriptionExtractor{},
			utils.TransactionIdExtractor{},
		},
	}
}

// ExtractFromDocument extracts a structured payment record from an image or
// PDF. Total OCR failure yields an all-default record with confidence 0; the
// only errors are the typed input rejections.
func (s *ExtractionService) ExtractFromDocument(ctx context.Context, data []byte, filename string) (*dto.ExtractionResult, error) {
	lines, img, err := s.lineSource.Extract(ctx, data, filename)
	if err != nil {
		return nil, err
	}

	var extra []dto.FieldCandidate
	var platformOverride dto.Platform

	if img != nil && s.qrClient != nil {
		if payload, qrErr := s.qrClient.DecodeUPI(img); qrErr == nil {
			extra = qrCandidates(payload)
			platformOverride = dto.PlatformUPI
			log.Printf("decoded UPI QR: payee=%s", payload.PayeeAddress)
		}
	}

	result := s.ExtractFromLines(lines, extra, platformOverride)
	return result, nil
}

// ExtractFromLines is the pure part of the pipeline: identical line input
// always yields an identical record. Extra candidates (QR-derived) compete
// with OCR-derived ones in the same selection.
func (s *ExtractionService) ExtractFromLines(lines []dto.RawLine, extra []dto.FieldCandidate, platformOverride dto.Platform) *dto.ExtractionResult {
	byField := make(map[dto.FieldKind][]dto.FieldCandidate)
	for _, extractor := range s.extractors {
		byField[extractor.Field()] = append(byField[extractor.Field()], extractor.Scan(lines)...)
	}
	for _, c := range extra {
		byField[c.Field] = append(byField[c.Field], c)
	}

	result := &dto.ExtractionResult{
		Amount:      decimal.Zero,
		Vendor:      utils.DefaultVendor,
		Date:        s.now().Format("2006-01-02"),
		Description: utils.DefaultDescription,
	}

	var amountConf, vendorConf, dateConf float64

	if best, ok := utils.SelectField(dto.FieldAmount, byField[dto.FieldAmount]); ok {
		if amount, err := decimal.NewFromString(best.Value); err == nil {
			result.Amount = amount
			amountConf = best.Confidence
		}
	}

	if best, ok := utils.SelectField(dto.FieldVendor, byField[dto.FieldVendor]); ok {
		result.Vendor = best.Value
		vendorConf = best.Confidence
	}

	if best, ok := utils.SelectField(dto.FieldDate, byField[dto.FieldDate]); ok {
		result.Date = best.Value
		dateConf = best.Confidence
	}

	if best, ok := utils.SelectField(dto.FieldDescription, byField[dto.FieldDescription]); ok {
		result.Description = best.Value
	}

	if best, ok := utils.SelectField(dto.FieldTransactionID, byField[dto.FieldTransactionID]); ok {
		result.TransactionID = best.Value
	}

	if platformOverride != "" {
		result.Platform = platformOverride
	} else {
		result.Platform = s.platformDetector.Detect(lines)
	}

	result.Confidence = utils.OverallConfidence(amountConf, vendorConf, dateConf)
	return result
}

// qrCandidates turns a decoded UPI payload into high-confidence candidates.
func qrCandidates(payload *client.UPIPayload) []dto.FieldCandidate {
	var candidates []dto.FieldCandidate

	if payload.PayeeName != "" {
		candidates = append(candidates, dto.FieldCandidate{
			Field:      dto.FieldVendor,
			Value:      utils.NormalizeVendorName(payload.PayeeName),
			Confidence: 0.95,
			Strategy:   "upi_qr",
			RawMatch:   dto.RawLine{Text: payload.PayeeName, Engine: "qr"},
		})
	} else if payload.PayeeAddress != "" {
		candidates = append(candidates, dto.FieldCandidate{
			Field:      dto.FieldVendor,
			Value:      utils.NormalizeVendorName(vpaLocalPart(payload.PayeeAddress)),
			Confidence: 0.85,
			Strategy:   "upi_qr",
			RawMatch:   dto.RawLine{Text: payload.PayeeAddress, Engine: "qr"},
		})
	}

	if payload.Amount != "" {
		if amount, err := decimal.NewFromString(payload.Amount); err == nil &&
			!amount.LessThan(utils.MinTransactionAmount) && !amount.GreaterThan(utils.MaxTransactionAmount) {
			candidates = append(candidates, dto.FieldCandidate{
				Field:      dto.FieldAmount,
				Value:      amount.String(),
				Confidence: 0.95,
				Strategy:   "upi_qr",
				RawMatch:   dto.RawLine{Text: payload.Amount, Engine: "qr"},
			})
		}
	}

	return candidates
}

func vpaLocalPart(vpa string) string {
	for i, r := range vpa {
		if r == '@' {
			return vpa[:i]
		}
	}
	return vpa
}
