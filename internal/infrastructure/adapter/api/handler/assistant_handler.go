package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/kuberai/gold-service/internal/domain/error"
	coreport "github.com/kuberai/gold-service/internal/domain/port/core"
	"github.com/kuberai/gold-service/internal/domain/port/usecase"
	"github.com/kuberai/gold-service/internal/infrastructure/adapter/api/dto"
)

// AssistantHandler handles gold assistant HTTP requests
type AssistantHandler struct {
	assistantUseCase usecase.AssistantUseCase
	logger           coreport.Logger
}

// NewAssistantHandler creates a new assistant handler instance
func NewAssistantHandler(assistantUseCase usecase.AssistantUseCase, logger coreport.Logger) *AssistantHandler {
	return &AssistantHandler{
		assistantUseCase: assistantUseCase,
		logger:           logger,
	}
}

// Ask handles the POST /gold-assistant endpoint
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req dto.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	reply, err := h.assistantUseCase.Ask(c.Request.Context(), req.UserID, req.Query)
	if err != nil {
		if errors.Is(err, domainerr.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "User not found",
			})
			return
		}

		h.logger.Error("Error composing assistant reply", map[string]any{
			"userId": req.UserID,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.AssistantResponse{
		Response:    reply.Response,
		Nudge:       reply.Nudge,
		NextStep:    reply.NextStep,
		IsGoldQuery: reply.IsGoldQuery,
	})
}
