package handler

import (
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/simplykool123/furnili-sub002/dto"
	"github.com/simplykool123/furnili-sub002/service"
)

type ExtractionHandler struct {
	extractionService *service.ExtractionService
	maxFileSize       int64
}

func NewExtractionHandler(extractionService *service.ExtractionService, maxFileSize int64) *ExtractionHandler {
	return &ExtractionHandler{
		extractionService: extractionService,
		maxFileSize:       maxFileSize,
	}
}

// ExtractDocument handles POST /documents/extract
func (h *ExtractionHandler) ExtractDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", err)
		return
	}

	if fileHeader.Size > h.maxFileSize {
		h.sendError(c, http.StatusBadRequest, "File exceeds maximum allowed size", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to open uploaded file", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to read uploaded file", err)
		return
	}

	log.Printf("Processing document %s (%d bytes)", fileHeader.Filename, len(data))

	result, err := h.extractionService.ExtractFromDocument(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		switch {
		case errors.Is(err, dto.ErrUnsupportedInput):
			h.sendError(c, http.StatusUnsupportedMediaType, err.Error(), err)
		case errors.Is(err, dto.ErrScannedPDF):
			h.sendError(c, http.StatusUnprocessableEntity, err.Error(), err)
		default:
			h.sendError(c, http.StatusInternalServerError, "Failed to extract document", err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.ExtractionResponse{
		Result:      result,
		ProcessedAt: time.Now().Format(time.RFC3339),
	})
}

func (h *ExtractionHandler) sendError(c *gin.Context, code int, message string, err error) {
	if err != nil {
		log.Printf("extraction error: %s: %v", message, err)
	}
	c.JSON(code, dto.ErrorResponse{
		Error:   http.StatusText(code),
		Message: message,
		Code:    code,
	})
}
