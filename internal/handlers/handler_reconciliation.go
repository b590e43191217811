package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bankcore/bankledger/internal/core/ports/services"
	"github.com/bankcore/bankledger/internal/dto"
	"github.com/bankcore/bankledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reconciliationHandler exposes the ledger audit.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newReconciliationHandler(rs portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{reconciliationService: rs}
}

// registerReconciliationRoutes registers routes related to reconciliation.
func registerReconciliationRoutes(rg *gin.RouterGroup, rs portssvc.ReconciliationSvcFacade) {
	h := newReconciliationHandler(rs)
	rg.GET("/reconciliation", h.reconcile)
}

// reconcile godoc
// @Summary Audit the posted ledger
// @Description Reports whether posted debits equal posted credits within tolerance and whether any debit is unpaired. Read-only and idempotent.
// @Tags reconciliation
// @Produce  json
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 500 {object} map[string]string "Failed to reconcile"
// @Router /reconciliation [get]
func (h *reconciliationHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reconciliationService.Reconcile(c.Request.Context())
	if err != nil {
		logger.Error("Failed to reconcile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reconcile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReconciliationResponse(report))
}
