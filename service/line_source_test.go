package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/simplykool123/furnili-sub002/dto"
)

type fakeEngine struct {
	name  string
	lines []string
	err   error
	calls int
}

func (f *fakeEngine) Name() string { return f.name }

func (f *fakeEngine) ExtractLines(ctx context.Context, img image.Image) ([]string, error) {
	f.calls++
	return f.lines, f.err
}

type fakePDFProcessor struct {
	text   string
	images []image.Image
	imgErr error
}

func (f *fakePDFProcessor) ExtractText(pdfData []byte) (string, error) { return f.text, nil }

func (f *fakePDFProcessor) ExtractImages(pdfData []byte) ([]image.Image, error) {
	return f.images, f.imgErr
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4)))
	assert.NoError(t, err)
	return buf.Bytes()
}

func TestLineSourceFirstEngineWins(t *testing.T) {
	cloud := &fakeEngine{name: "paddleocr", lines: []string{"₹672", "Paid to FURNILI"}}
	local := &fakeEngine{name: "tesseract", lines: []string{"different output"}}
	ls := NewLineSource([]OCREngine{cloud, local}, &fakePDFProcessor{}, time.Second)

	lines, img, err := ls.Extract(context.Background(), tinyPNG(t), "receipt.png")

	assert.NoError(t, err)
	assert.NotNil(t, img)
	assert.Len(t, lines, 2)
	assert.Equal(t, "paddleocr", lines[0].Engine)
	assert.Equal(t, 0, local.calls, "fallback engine must not run when the first succeeds")
}

func TestLineSourceFallsThroughOnFailure(t *testing.T) {
	cloud := &fakeEngine{name: "paddleocr", err: errors.New("connection refused")}
	local := &fakeEngine{name: "tesseract", lines: []string{"FURNILI FURNITURE"}}
	ls := NewLineSource([]OCREngine{cloud, local}, &fakePDFProcessor{}, time.Second)

	lines, _, err := ls.Extract(context.Background(), tinyPNG(t), "receipt.png")

	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, "tesseract", lines[0].Engine)
}

func TestLineSourceNeverMergesEngineOutputs(t *testing.T) {
	cloud := &fakeEngine{name: "paddleocr", lines: []string{"partial"}}
	local := &fakeEngine{name: "tesseract", lines: []string{"rest of it"}}
	ls := NewLineSource([]OCREngine{cloud, local}, &fakePDFProcessor{}, time.Second)

	lines, _, _ := ls.Extract(context.Background(), tinyPNG(t), "receipt.png")

	assert.Len(t, lines, 1)
	assert.Equal(t, "partial", lines[0].Text)
}

func TestLineSourceAllEnginesFailYieldsZeroLines(t *testing.T) {
	cloud := &fakeEngine{name: "paddleocr", err: errors.New("down")}
	local := &fakeEngine{name: "tesseract", err: errors.New("also down")}
	ls := NewLineSource([]OCREngine{cloud, local}, &fakePDFProcessor{}, time.Second)

	lines, _, err := ls.Extract(context.Background(), tinyPNG(t), "receipt.png")

	// total acquisition failure is "no data", not an error
	assert.NoError(t, err)
	assert.Empty(t, lines)
}

func TestLineSourceRejectsUnsupportedInput(t *testing.T) {
	ls := NewLineSource(nil, &fakePDFProcessor{}, time.Second)

	_, _, err := ls.Extract(context.Background(), []byte("not a document at all"), "notes.txt")

	assert.ErrorIs(t, err, dto.ErrUnsupportedInput)
}

func TestLineSourcePDFTextLayerShortCircuitsOCR(t *testing.T) {
	engine := &fakeEngine{name: "paddleocr", lines: []string{"should not be used"}}
	pdfText := "Item Description Qty Rate Amount\nGurjan Plywood 18mm 10 2400 24000\n"
	ls := NewLineSource([]OCREngine{engine}, &fakePDFProcessor{text: pdfText}, time.Second)

	lines, img, err := ls.Extract(context.Background(), []byte("%PDF-1.7 fake"), "boq.pdf")

	assert.NoError(t, err)
	assert.Nil(t, img)
	assert.Len(t, lines, 2)
	assert.Equal(t, "pdf-text", lines[0].Engine)
	assert.Equal(t, 0, engine.calls, "text-layer PDFs must not reach OCR engines")
}

func TestLineSourceScannedPDFWithoutImages(t *testing.T) {
	ls := NewLineSource(nil, &fakePDFProcessor{text: "", imgErr: fmt.Errorf("no images")}, time.Second)

	_, _, err := ls.Extract(context.Background(), []byte("%PDF-1.7 fake"), "scan.pdf")

	assert.ErrorIs(t, err, dto.ErrScannedPDF)
}

func TestLineSourceScannedPDFFallsThroughToOCR(t *testing.T) {
	engine := &fakeEngine{name: "tesseract", lines: []string{"₹672", "FURNILI"}}
	pdf := &fakePDFProcessor{images: []image.Image{image.NewRGBA(image.Rect(0, 0, 4, 4))}}
	ls := NewLineSource([]OCREngine{engine}, pdf, time.Second)

	lines, _, err := ls.Extract(context.Background(), []byte("%PDF-1.7 fake"), "scan.pdf")

	assert.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.Equal(t, 1, engine.calls)
}
