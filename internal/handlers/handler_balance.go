package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bankcore/bankledger/internal/apperrors"
	portssvc "github.com/bankcore/bankledger/internal/core/ports/services"
	"github.com/bankcore/bankledger/internal/dto"
	"github.com/bankcore/bankledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// balanceHandler exposes ledger-derived balance views.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func newBalanceHandler(bs portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{balanceService: bs}
}

// registerBalanceRoutes registers routes related to balances.
func registerBalanceRoutes(rg *gin.RouterGroup, bs portssvc.BalanceSvcFacade) {
	h := newBalanceHandler(bs)

	balances := rg.Group("/balances")
	{
		balances.GET("", h.getAllBalances)
		balances.GET("/total", h.getTotalSystemBalance)
	}

	accounts := rg.Group("/accounts")
	{
		accounts.GET("/:id/check", h.checkAccountBalance)
	}

	rg.POST("/owners/:id/sync", h.syncOwnerBalance)
}

// getAllBalances godoc
// @Summary Get every owner's balance
// @Description One grouped aggregation over posted entries; owners without entries report zero
// @Tags balances
// @Produce  json
// @Success 200 {array} dto.BalanceResponse
// @Failure 500 {object} map[string]string "Failed to resolve balances"
// @Router /balances [get]
func (h *balanceHandler) getAllBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balances, err := h.balanceService.GetAllBalances(c.Request.Context())
	if err != nil {
		logger.Error("Failed to resolve balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve balances"})
		return
	}

	responses := make([]dto.BalanceResponse, 0, len(balances))
	for ownerID, balance := range balances {
		responses = append(responses, dto.BalanceResponse{OwnerID: ownerID, Balance: balance})
	}
	c.JSON(http.StatusOK, responses)
}

// getTotalSystemBalance godoc
// @Summary Get the sum of all balances
// @Description Zero in a balanced double-entry ledger; any other figure signals a malformed pair
// @Tags balances
// @Produce  json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string "Failed to resolve system balance"
// @Router /balances/total [get]
func (h *balanceHandler) getTotalSystemBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	total, err := h.balanceService.GetTotalSystemBalance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to resolve system balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve system balance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": total, "balanced": total.IsZero()})
}

// checkAccountBalance godoc
// @Summary Verify an account's cached balance against the ledger
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to check balance"
// @Router /accounts/{id}/check [get]
func (h *balanceHandler) checkAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	ok, err := h.balanceService.CheckAccountBalance(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to check balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check balance"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"accountID": accountID, "consistent": ok})
}

// syncOwnerBalance godoc
// @Summary Re-derive an owner's cached account balances from the ledger
// @Tags balances
// @Produce  json
// @Param   id path string true "Owner ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 404 {object} map[string]string "Owner has no accounts"
// @Failure 500 {object} map[string]string "Failed to sync balance"
// @Router /owners/{id}/sync [post]
func (h *balanceHandler) syncOwnerBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("id")

	balance, err := h.balanceService.SyncBalanceFromLedger(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Owner has no accounts"})
		} else {
			logger.Error("Failed to sync balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{OwnerID: ownerID, Balance: balance})
}
