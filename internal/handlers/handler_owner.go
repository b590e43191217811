package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bankcore/bankledger/internal/apperrors"
	portssvc "github.com/bankcore/bankledger/internal/core/ports/services"
	"github.com/bankcore/bankledger/internal/dto"
	"github.com/bankcore/bankledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ownerHandler handles HTTP requests related to owners and their views.
type ownerHandler struct {
	ownerService   portssvc.OwnerSvcFacade
	balanceService portssvc.BalanceSvcFacade
	gateService    portssvc.GateSvcFacade
}

func newOwnerHandler(os portssvc.OwnerSvcFacade, bs portssvc.BalanceSvcFacade, gs portssvc.GateSvcFacade) *ownerHandler {
	return &ownerHandler{ownerService: os, balanceService: bs, gateService: gs}
}

// registerOwnerRoutes registers routes related to owners.
func registerOwnerRoutes(rg *gin.RouterGroup, os portssvc.OwnerSvcFacade, bs portssvc.BalanceSvcFacade, gs portssvc.GateSvcFacade) {
	h := newOwnerHandler(os, bs, gs)

	owners := rg.Group("/owners")
	{
		owners.POST("", h.createOwner)
		owners.GET("/:id", h.getOwner)
		owners.GET("/:id/balance", h.getOwnerBalance)
		owners.GET("/:id/breakdown", h.getOwnerBreakdown)
		owners.GET("/:id/history", h.getOwnerHistory)
		owners.GET("/:id/transactions", h.listOwnerTransactions)
	}
}

// createOwner godoc
// @Summary Register a new owner
// @Description Registers an owner and opens its default account
// @Tags owners
// @Accept  json
// @Produce  json
// @Param   owner body dto.CreateOwnerRequest true "Owner details"
// @Success 201 {object} dto.OwnerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Owner already exists"
// @Failure 500 {object} map[string]string "Failed to create owner"
// @Router /owners [post]
func (h *ownerHandler) createOwner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOwner", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	owner, err := h.ownerService.CreateOwner(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Owner already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create owner", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create owner"})
		}
		return
	}

	logger.Info("Owner created", slog.String("owner_id", owner.OwnerID))
	c.JSON(http.StatusCreated, dto.ToOwnerResponse(owner))
}

// getOwner godoc
// @Summary Get an owner by ID
// @Tags owners
// @Produce  json
// @Param   id path string true "Owner ID"
// @Success 200 {object} dto.OwnerResponse
// @Failure 404 {object} map[string]string "Owner not found"
// @Failure 500 {object} map[string]string "Failed to retrieve owner"
// @Router /owners/{id} [get]
func (h *ownerHandler) getOwner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("id")

	owner, err := h.ownerService.GetOwnerByID(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Owner not found"})
		} else {
			logger.Error("Failed to get owner", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve owner"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOwnerResponse(owner))
}

// getOwnerBalance godoc
// @Summary Get an owner's ledger-derived balance
// @Description Balance is computed from posted ledger entries, never the cached column
// @Tags owners
// @Produce  json
// @Param   id path string true "Owner ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 500 {object} map[string]string "Failed to resolve balance"
// @Router /owners/{id}/balance [get]
func (h *ownerHandler) getOwnerBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("id")

	balance, err := h.balanceService.GetBalance(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to resolve balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve balance"})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{OwnerID: ownerID, Balance: balance})
}

// getOwnerBreakdown godoc
// @Summary Get an owner's money-movement breakdown
// @Tags owners
// @Produce  json
// @Param   id path string true "Owner ID"
// @Success 200 {object} dto.BreakdownResponse
// @Failure 500 {object} map[string]string "Failed to resolve breakdown"
// @Router /owners/{id}/breakdown [get]
func (h *ownerHandler) getOwnerBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("id")

	breakdown, err := h.balanceService.GetOwnerBreakdown(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to resolve breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve breakdown"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBreakdownResponse(breakdown))
}

// getOwnerHistory godoc
// @Summary List an owner's recent ledger entries
// @Tags owners
// @Produce  json
// @Param   id path string true "Owner ID"
// @Param   limit query int false "Max entries to return" default(50)
// @Success 200 {array} dto.LedgerEntryResponse
// @Failure 500 {object} map[string]string "Failed to list history"
// @Router /owners/{id}/history [get]
func (h *ownerHandler) getOwnerHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := h.balanceService.GetOwnerHistory(c.Request.Context(), ownerID, limit)
	if err != nil {
		logger.Error("Failed to list history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponses(entries))
}

// listOwnerTransactions godoc
// @Summary List an owner's recent transactions
// @Description Blocked transactions are hidden from the owner view unless configured otherwise; pass admin=true for the full view
// @Tags owners
// @Produce  json
// @Param   id path string true "Owner ID"
// @Param   limit query int false "Max transactions to return" default(50)
// @Param   admin query bool false "Admin view includes blocked transactions"
// @Success 200 {array} dto.TransactionResponse
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /owners/{id}/transactions [get]
func (h *ownerHandler) listOwnerTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	adminView := c.Query("admin") == "true"

	txns, err := h.gateService.ListOwnerTransactions(c.Request.Context(), ownerID, limit, adminView)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}
