package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kuberai/gold-service/internal/domain/entity"
	domainerr "github.com/kuberai/gold-service/internal/domain/error"
	coreport "github.com/kuberai/gold-service/internal/domain/port/core"
	"github.com/kuberai/gold-service/internal/domain/port/usecase"
	"github.com/kuberai/gold-service/internal/infrastructure/adapter/api/dto"
)

// PurchaseHandler handles purchase-related HTTP requests
type PurchaseHandler struct {
	purchaseUseCase usecase.PurchaseUseCase
	logger          coreport.Logger
}

// NewPurchaseHandler creates a new purchase handler instance
func NewPurchaseHandler(purchaseUseCase usecase.PurchaseUseCase, logger coreport.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUseCase: purchaseUseCase,
		logger:          logger,
	}
}

// PurchaseGold handles the POST /purchase-gold endpoint
func (h *PurchaseHandler) PurchaseGold(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	amountPaise, err := entity.PaiseFromINR(req.AmountINR)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidAmount,
			Message: "Amount must be greater than 0",
		})
		return
	}

	result, err := h.purchaseUseCase.PurchaseGold(c.Request.Context(), req.UserID, amountPaise)
	if err != nil {
		h.respondPurchaseError(c, req.UserID, err)
		return
	}

	message := fmt.Sprintf(
		"Successfully purchased gold worth ₹%s (%s g) for user_id: %d",
		entity.FormatINR(result.Purchase.AmountPaise),
		entity.FormatGrams(result.Purchase.Micrograms),
		req.UserID,
	)

	c.JSON(http.StatusOK, dto.PurchaseResultResponse{
		Status:  "success",
		Message: message,
		Purchase: dto.PurchaseLeg{
			Reference: result.Purchase.Reference,
			AmountINR: result.Purchase.AmountINR(),
			Grams:     result.Purchase.Grams(),
		},
		UpdatedProfile: dto.NewUserResponse(result.User),
		Purchases:      dto.NewPurchaseResponses(result.Purchases),
	})
}

// respondPurchaseError maps purchase engine failures to HTTP responses
func (h *PurchaseHandler) respondPurchaseError(c *gin.Context, userID uint64, err error) {
	switch {
	case errors.Is(err, domainerr.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Amount must be greater than 0",
		})
	case errors.Is(err, domainerr.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "User not found",
		})
	case errors.Is(err, domainerr.ErrInsufficientBalance):
		// The error message carries the available balance
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
	default:
		h.logger.Error("Error processing purchase", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
	}
}
