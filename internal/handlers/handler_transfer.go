package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bankcore/bankledger/internal/apperrors"
	"github.com/bankcore/bankledger/internal/core/domain"
	portssvc "github.com/bankcore/bankledger/internal/core/ports/services"
	"github.com/bankcore/bankledger/internal/core/services"
	"github.com/bankcore/bankledger/internal/dto"
	"github.com/bankcore/bankledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// transferHandler handles peer-to-peer transfer submissions.
type transferHandler struct {
	ownerService portssvc.OwnerSvcFacade
	gateService  portssvc.GateSvcFacade
}

func newTransferHandler(os portssvc.OwnerSvcFacade, gs portssvc.GateSvcFacade) *transferHandler {
	return &transferHandler{ownerService: os, gateService: gs}
}

// registerTransferRoutes registers routes related to transfers.
func registerTransferRoutes(rg *gin.RouterGroup, os portssvc.OwnerSvcFacade, gs portssvc.GateSvcFacade) {
	h := newTransferHandler(os, gs)
	rg.POST("/transfers", h.createTransfer)
}

// createTransfer godoc
// @Summary Transfer between two owners
// @Description Validates the transfer, records the transaction, and posts the balanced debit/credit pair atomically
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 404 {object} map[string]string "Owner not found"
// @Failure 500 {object} map[string]string "Posting failure"
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ctx := c.Request.Context()

	ok, reason, err := h.gateService.ValidateTransfer(ctx, req.FromOwnerID, req.ToOwnerID, req.Amount)
	if err != nil {
		logger.Error("Transfer validation errored", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate transfer"})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": reason})
		return
	}

	account, err := h.ownerService.EnsureAccount(ctx, req.FromOwnerID, domain.Savings)
	if err != nil {
		logger.Error("Failed to resolve sender account", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve sender account"})
		return
	}

	reference := req.ReferenceNumber
	if reference == "" {
		reference = "TRF-" + uuid.NewString()
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		OwnerID:         req.FromOwnerID,
		AccountID:       account.AccountID,
		CounterpartyID:  req.ToOwnerID,
		Amount:          req.Amount,
		TransactionType: domain.Transfer,
		Direction:       domain.DirectionDebit,
		ReferenceNumber: reference,
		Description:     req.Description,
	}

	created, err := h.gateService.CreateTransaction(ctx, txn)
	if err != nil {
		writeGateError(c, logger, err, "Failed to create transfer")
		return
	}

	strategy := services.PeerTransferStrategy(req.FromOwnerID, req.ToOwnerID)
	if err := h.gateService.Complete(ctx, created.TransactionID, strategy); err != nil {
		writeGateError(c, logger, err, "Failed to post transfer")
		return
	}

	completed, err := h.gateService.GetTransaction(ctx, created.TransactionID)
	if err != nil {
		logger.Error("Failed to reload completed transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transfer posted but could not be reloaded"})
		return
	}

	logger.Info("Transfer completed", slog.String("transaction_id", completed.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(completed))
}

// writeGateError maps gate/posting errors onto HTTP statuses: validation and
// linkage problems are the caller's fault, reconciliation and concurrency
// failures are ours.
func writeGateError(c *gin.Context, logger *slog.Logger, err error, internalMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrLinkage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConcurrency):
		logger.Warn("Concurrent posting conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": "Conflicting concurrent operation, please retry"})
	default:
		logger.Error(internalMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}
