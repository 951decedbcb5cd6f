package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simplykool123/furnili-sub002/dto"
	"github.com/simplykool123/furnili-sub002/service"
)

type ReconcileHandler struct {
	reconcileService *service.ReconcileService
}

func NewReconcileHandler(reconcileService *service.ReconcileService) *ReconcileHandler {
	return &ReconcileHandler{
		reconcileService: reconcileService,
	}
}

// ReconcileBOQ handles POST /boq/reconcile
func (h *ReconcileHandler) ReconcileBOQ(c *gin.Context) {
	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("invalid reconcile request: %v", err)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   http.StatusText(http.StatusBadRequest),
			Message: "items and products are required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	log.Printf("Reconciling %d BOQ items against %d catalog products", len(req.Items), len(req.Products))

	response := h.reconcileService.Reconcile(req.Items, req.Products)
	c.JSON(http.StatusOK, response)
}
