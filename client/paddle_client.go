package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"time"
)

// PaddleClient calls a PaddleOCR serving endpoint over HTTP. It is the
// preferred engine in the fallback chain: more accurate than local Tesseract
// but optional and rate-limited, so every failure just falls through.
type PaddleClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPaddleClient creates a PaddleOCR client. An empty URL means the engine
// is not deployed; the caller should leave it out of the chain.
func NewPaddleClient(baseURL string) (*PaddleClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("PADDLE_OCR_URL not configured")
	}
	return &PaddleClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

func (p *PaddleClient) Name() string { return "paddleocr" }

type paddleRequest struct {
	Image string `json:"image"` // base64 PNG
}

type paddleResponse struct {
	Results []struct {
		Text       string  `json:"text"`
		Confidence float64 `json:"confidence"`
	} `json:"results"`
}

// ExtractLines sends the image to the PaddleOCR service and returns the
// recognized lines in reading order.
func (p *PaddleClient) ExtractLines(ctx context.Context, img image.Image) ([]string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image for PaddleOCR: %w", err)
	}

	payload, err := json.Marshal(paddleRequest{
		Image: base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/ocr", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("PaddleOCR request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("PaddleOCR returned status %d", resp.StatusCode)
	}

	var parsed paddleResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode PaddleOCR response: %w", err)
	}

	var lines []string
	for _, r := range parsed.Results {
		for _, line := range splitLines(r.Text) {
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("PaddleOCR extracted no text from image")
	}

	return lines, nil
}
