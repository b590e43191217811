package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bankcore/bankledger/internal/apperrors"
	portssvc "github.com/bankcore/bankledger/internal/core/ports/services"
	"github.com/bankcore/bankledger/internal/dto"
	"github.com/bankcore/bankledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles the transaction gate's admin actions.
type transactionHandler struct {
	gateService           portssvc.GateSvcFacade
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newTransactionHandler(gs portssvc.GateSvcFacade, rs portssvc.ReconciliationSvcFacade) *transactionHandler {
	return &transactionHandler{gateService: gs, reconciliationService: rs}
}

// registerTransactionRoutes registers routes related to transaction records.
func registerTransactionRoutes(rg *gin.RouterGroup, gs portssvc.GateSvcFacade, rs portssvc.ReconciliationSvcFacade) {
	h := newTransactionHandler(gs, rs)

	txns := rg.Group("/transactions")
	{
		txns.GET("/:id", h.getTransaction)
		txns.GET("/:id/verify", h.verifyTransaction)
		txns.POST("/:id/block", h.blockTransaction)
		txns.POST("/:id/reject", h.rejectTransaction)
		txns.POST("/:id/unblock", h.unblockTransaction)
	}
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	txn, err := h.gateService.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// verifyTransaction godoc
// @Summary Verify the pairing invariant of a transaction's entries
// @Description Checks that the transaction has exactly two posted entries, one debit and one credit of equal amount, referencing each other
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string "Verification failed"
// @Router /transactions/{id}/verify [get]
func (h *transactionHandler) verifyTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	ok, err := h.reconciliationService.VerifyTransactionEntries(c.Request.Context(), transactionID)
	if err != nil {
		logger.Error("Failed to verify transaction entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactionID": transactionID, "valid": ok})
}

// blockTransaction godoc
// @Summary Block a pending transaction for review
// @Description No ledger entries are written; the transaction can later be unblocked or rejected
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   action body dto.TransactionActionRequest true "Reason"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid state transition"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{id}/block [post]
func (h *transactionHandler) blockTransaction(c *gin.Context) {
	h.runAction(c, "block", h.gateService.Block)
}

// rejectTransaction godoc
// @Summary Terminally reject a transaction
// @Description A rejected transaction never produces ledger entries and never affects any balance
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   action body dto.TransactionActionRequest true "Reason"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid state transition"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{id}/reject [post]
func (h *transactionHandler) rejectTransaction(c *gin.Context) {
	h.runAction(c, "reject", h.gateService.Reject)
}

// unblockTransaction godoc
// @Summary Unblock and complete a blocked transaction
// @Description Runs the full completion unit of work: status flip, pair creation, balance sync and the reconciliation guard
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid state transition"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Posting failure"
// @Router /transactions/{id}/unblock [post]
func (h *transactionHandler) unblockTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	if err := h.gateService.Unblock(c.Request.Context(), transactionID, nil); err != nil {
		writeGateError(c, logger, err, "Failed to unblock transaction")
		return
	}

	logger.Info("Transaction unblocked", slog.String("transaction_id", transactionID))
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}

// runAction executes a reasoned gate action (block/reject) for the path param id.
func (h *transactionHandler) runAction(c *gin.Context, name string, action func(ctx context.Context, transactionID, reason string) error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	var req dto.TransactionActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for transaction action", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := action(c.Request.Context(), transactionID, req.Reason); err != nil {
		writeGateError(c, logger, err, "Failed to "+name+" transaction")
		return
	}

	logger.Info("Transaction action applied",
		slog.String("transaction_id", transactionID),
		slog.String("action", name))
	c.JSON(http.StatusOK, gin.H{"status": name + "ed"})
}
