package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bankcore/bankledger/internal/core/domain"
	portssvc "github.com/bankcore/bankledger/internal/core/ports/services"
	"github.com/bankcore/bankledger/internal/dto"
	"github.com/bankcore/bankledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fundingHandler handles admin funding from the system reserve.
type fundingHandler struct {
	ownerService portssvc.OwnerSvcFacade
	gateService  portssvc.GateSvcFacade
}

func newFundingHandler(os portssvc.OwnerSvcFacade, gs portssvc.GateSvcFacade) *fundingHandler {
	return &fundingHandler{ownerService: os, gateService: gs}
}

// registerFundingRoutes registers routes related to system funding.
func registerFundingRoutes(rg *gin.RouterGroup, os portssvc.OwnerSvcFacade, gs portssvc.GateSvcFacade) {
	h := newFundingHandler(os, gs)

	funding := rg.Group("/funding")
	{
		funding.POST("", h.fundOwner)
		funding.POST("/bulk", h.bulkFund)
	}
}

// fundOne records and completes one admin_fund transaction debiting the
// system owner. Used by both the single and bulk paths.
func (h *fundingHandler) fundOne(c *gin.Context, req dto.FundOwnerRequest, txnType domain.TransactionType) (*domain.Transaction, error) {
	ctx := c.Request.Context()

	account, err := h.ownerService.EnsureAccount(ctx, req.OwnerID, domain.Savings)
	if err != nil {
		return nil, err
	}

	reference := req.ReferenceNumber
	if reference == "" {
		reference = "FUND-" + uuid.NewString()
	}
	description := req.Description
	if description == "" {
		description = "System funding"
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		OwnerID:         req.OwnerID,
		AccountID:       account.AccountID,
		CounterpartyID:  domain.SystemOwnerID,
		Amount:          req.Amount,
		TransactionType: txnType,
		Direction:       domain.DirectionCredit,
		ReferenceNumber: reference,
		Description:     description,
	}

	created, err := h.gateService.CreateTransaction(ctx, txn)
	if err != nil {
		return nil, err
	}

	// nil strategy means system funding to the transaction's owner.
	if err := h.gateService.Complete(ctx, created.TransactionID, nil); err != nil {
		return nil, err
	}
	return h.gateService.GetTransaction(ctx, created.TransactionID)
}

// fundOwner godoc
// @Summary Fund an owner from the system reserve
// @Description Creates and completes an admin_fund transaction; the system owner is debited, the target owner credited
// @Tags funding
// @Accept  json
// @Produce  json
// @Param   funding body dto.FundOwnerRequest true "Funding details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 404 {object} map[string]string "Owner not found"
// @Failure 500 {object} map[string]string "Posting failure"
// @Router /funding [post]
func (h *fundingHandler) fundOwner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FundOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FundOwner", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.fundOne(c, req, domain.AdminFund)
	if err != nil {
		writeGateError(c, logger, err, "Failed to fund owner")
		return
	}

	logger.Info("Owner funded",
		slog.String("owner_id", req.OwnerID),
		slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// bulkFund godoc
// @Summary Fund several owners from the system reserve
// @Description Runs one admin funding per item; failures do not abort the remaining items
// @Tags funding
// @Accept  json
// @Produce  json
// @Param   funding body dto.BulkFundRequest true "Bulk funding details"
// @Success 200 {array} dto.BulkFundResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /funding/bulk [post]
func (h *fundingHandler) bulkFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BulkFund", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	results := make([]dto.BulkFundResult, 0, len(req.Items))
	for _, item := range req.Items {
		result := dto.BulkFundResult{OwnerID: item.OwnerID}
		txn, err := h.fundOne(c, item, domain.BulkFund)
		if err != nil {
			result.Error = err.Error()
			logger.Warn("Bulk funding item failed",
				slog.String("owner_id", item.OwnerID),
				slog.String("error", err.Error()))
		} else {
			result.Success = true
			result.TransactionID = txn.TransactionID
		}
		results = append(results, result)
	}

	logger.Info("Bulk funding finished", slog.Int("items", len(results)))
	c.JSON(http.StatusOK, results)
}
