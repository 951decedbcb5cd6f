package client

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractClient runs local Tesseract OCR. It is the universal fallback
// engine: always available, lower fidelity than the cloud engine.
type TesseractClient struct {
	dataPath string
}

func NewTesseractClient(dataPath string) *TesseractClient {
	return &TesseractClient{
		dataPath: dataPath,
	}
}

func (tc *TesseractClient) Name() string { return "tesseract" }

// ExtractLines runs OCR over an image and returns trimmed non-empty lines in
// document order. A fresh gosseract client is created per call; there is no
// shared session state between extractions.
func (tc *TesseractClient) ExtractLines(ctx context.Context, img image.Image) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tempFile, err := saveTempPNG(img)
	if err != nil {
		return nil, fmt.Errorf("failed to save temp image: %w", err)
	}
	defer os.Remove(tempFile)

	text, err := tc.extractText(tempFile)
	if err != nil {
		return nil, fmt.Errorf("OCR extraction failed: %w", err)
	}

	return splitLines(text), nil
}

func (tc *TesseractClient) extractText(filePath string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	client.SetTessdataPrefix(tc.dataPath)

	if err := client.SetLanguage("eng"); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImage(filePath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	return text, nil
}

// saveTempPNG saves an image.Image to a temporary PNG file.
func saveTempPNG(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "ocr-img-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to encode image to PNG: %w", err)
	}

	return tempFile.Name(), nil
}

// splitLines trims raw OCR output into non-empty lines, preserving order.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
