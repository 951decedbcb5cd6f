package service

import (
	"bytes"
	"context"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	_ "golang.org/x/image/webp"

	"github.com/simplykool123/furnili-sub002/dto"
)

// OCREngine is one text-recognition capability: given an image, produce lines
// of text, possibly low-fidelity. Engines are stateless per call.
type OCREngine interface {
	Name() string
	ExtractLines(ctx context.Context, img image.Image) ([]string, error)
}

// LineSource turns an image or PDF into an ordered sequence of raw text
// lines. Engines are tried in priority order (cloud first, local last); the
// first non-empty result wins and partial outputs from two engines are never
// merged into one call's result.
type LineSource struct {
	engines       []OCREngine
	pdfProcessor  PDFProcessor
	engineTimeout time.Duration
}

func NewLineSource(engines []OCREngine, pdfProcessor PDFProcessor, engineTimeout time.Duration) *LineSource {
	return &LineSource{
		engines:       engines,
		pdfProcessor:  pdfProcessor,
		engineTimeout: engineTimeout,
	}
}

// a text layer shorter than this means the PDF is effectively scanned
const minPDFTextLength = 20

// Extract acquires OCR lines for a document. It returns the decoded image
// alongside the lines when the input was an image, so callers can run image
// probes (QR) without decoding twice. An unsupported input type is the only
// error before engines are attempted; after that, total failure is "zero
// lines", never an error.
func (ls *LineSource) Extract(ctx context.Context, data []byte, filename string) ([]dto.RawLine, image.Image, error) {
	switch detectInputKind(data, filename) {
	case inputPDF:
		lines, err := ls.extractFromPDF(ctx, data)
		return lines, nil, err
	case inputImage:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			log.Printf("failed to decode image %s: %v", filename, err)
			return nil, nil, dto.ErrUnsupportedInput
		}
		return ls.ExtractFromImage(ctx, img), img, nil
	default:
		return nil, nil, dto.ErrUnsupportedInput
	}
}

// ExtractFromImage runs the engine fallback chain over a decoded image.
func (ls *LineSource) ExtractFromImage(ctx context.Context, img image.Image) []dto.RawLine {
	for _, engine := range ls.engines {
		engineCtx, cancel := context.WithTimeout(ctx, ls.engineTimeout)
		texts, err := engine.ExtractLines(engineCtx, img)
		cancel()

		if err != nil {
			log.Printf("OCR engine %s failed: %v. Falling through to next engine...", engine.Name(), err)
			continue
		}

		lines := toRawLines(texts, engine.Name())
		if len(lines) == 0 {
			log.Printf("OCR engine %s returned empty output. Falling through to next engine...", engine.Name())
			continue
		}
		return lines
	}

	// every engine failed: callers treat empty as "no data", not an error
	return nil
}

// extractFromPDF prefers the embedded text layer; only scanned PDFs fall
// through to true OCR over extracted page images.
func (ls *LineSource) extractFromPDF(ctx context.Context, data []byte) ([]dto.RawLine, error) {
	text, err := ls.pdfProcessor.ExtractText(data)
	if err != nil {
		log.Printf("PDF text extraction failed: %v", err)
	}

	if len(strings.TrimSpace(text)) >= minPDFTextLength {
		var texts []string
		for _, line := range strings.Split(text, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				texts = append(texts, trimmed)
			}
		}
		return toRawLines(texts, "pdf-text"), nil
	}

	log.Println("PDF has no usable text layer, attempting image-based OCR")

	images, err := ls.pdfProcessor.ExtractImages(data)
	if err != nil || len(images) == 0 {
		// rasterization is delegated to the caller: resubmit as an image
		log.Printf("failed to extract images from scanned PDF: %v", err)
		return nil, dto.ErrScannedPDF
	}

	var lines []dto.RawLine
	for _, img := range images {
		for _, line := range ls.ExtractFromImage(ctx, img) {
			line.Position = len(lines)
			lines = append(lines, line)
		}
	}
	return lines, nil
}

type inputKind int

const (
	inputUnknown inputKind = iota
	inputImage
	inputPDF
)

func detectInputKind(data []byte, filename string) inputKind {
	contentType := http.DetectContentType(data)
	switch contentType {
	case "application/pdf":
		return inputPDF
	case "image/jpeg", "image/png", "image/webp":
		return inputImage
	}

	// content sniffing is authoritative; fall back to the extension only for
	// formats DetectContentType does not recognize
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return inputPDF
	case ".jpg", ".jpeg", ".png", ".webp":
		return inputImage
	}

	return inputUnknown
}

func toRawLines(texts []string, engine string) []dto.RawLine {
	lines := make([]dto.RawLine, 0, len(texts))
	for i, text := range texts {
		lines = append(lines, dto.RawLine{
			Text:     text,
			Engine:   engine,
			Position: i,
		})
	}
	return lines
}
