package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/simplykool123/furnili-sub002/client"
	"github.com/simplykool123/furnili-sub002/config"
	"github.com/simplykool123/furnili-sub002/handler"
	"github.com/simplykool123/furnili-sub002/service"
	"github.com/simplykool123/furnili-sub002/utils"
)

func main() {
	cfg := config.LoadConfig()

	// Engine priority order: PaddleOCR service first (accurate, optional),
	// local Tesseract last (universal fallback).
	var engines []service.OCREngine
	if paddle, err := client.NewPaddleClient(cfg.PaddleOCRURL); err != nil {
		log.Printf("Warning: PaddleOCR client unavailable: %v. Will use Tesseract only.", err)
	} else {
		engines = append(engines, paddle)
	}
	engines = append(engines, client.NewTesseractClient(cfg.TesseractDataPath))

	pdfProcessor := service.NewPDFProcessor()
	lineSource := service.NewLineSource(engines, pdfProcessor, cfg.OCREngineTimeout)

	extractionService := service.NewExtractionService(lineSource, client.NewQRClient())
	matcher := utils.NewProductMatcher(utils.DefaultMatcherConfig())
	reconcileService := service.NewReconcileService(matcher, cfg.AutoMatchThreshold)

	extractionHandler := handler.NewExtractionHandler(extractionService, cfg.MaxFileSize)
	reconcileHandler := handler.NewReconcileHandler(reconcileService)

	router := gin.Default()
	router.MaxMultipartMemory = 32 << 20

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Furnili OCR & BOQ Reconciliation",
		})
	})

	api := router.Group("/api/v1")
	{
		documents := api.Group("/documents")
		{
			documents.POST("/extract", extractionHandler.ExtractDocument)
		}
		boq := api.Group("/boq")
		{
			boq.POST("/reconcile", reconcileHandler.ReconcileBOQ)
		}
	}

	log.Printf("Starting Furnili OCR Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
