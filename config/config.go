package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort        string
	TesseractDataPath string
	PaddleOCRURL      string
	MaxFileSize       int64

	// Per-engine timeout for OCR calls that may leave the process.
	OCREngineTimeout time.Duration

	// A BOQ item is linked to its best catalog match without review only
	// when the match confidence reaches this value.
	AutoMatchThreshold float64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	tesseractDataPath := os.Getenv("TESSDATA_PREFIX")
	if tesseractDataPath == "" {
		tesseractDataPath = "/usr/share/tesseract-ocr/5/tessdata"
	}

	paddleURL := os.Getenv("PADDLE_OCR_URL")

	timeout := 15 * time.Second
	if v := os.Getenv("OCR_ENGINE_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	autoMatch := 70.0
	if v := os.Getenv("AUTO_MATCH_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			autoMatch = f
		}
	}

	maxFileSize := int64(10 * 1024 * 1024) // 10 MB
	if v := os.Getenv("MAX_FILE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxFileSize = n
		}
	}

	return &Config{
		ServerPort:         serverPort,
		TesseractDataPath:  tesseractDataPath,
		PaddleOCRURL:       paddleURL,
		MaxFileSize:        maxFileSize,
		OCREngineTimeout:   timeout,
		AutoMatchThreshold: autoMatch,
	}
}
