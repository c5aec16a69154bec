package handler

import (
	"net/http"

	entity "tradepost/internal/domain"
	service "tradepost/internal/service/postgresql"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExchangeHandler struct {
	exchangeService *service.ExchangeService
}

func NewExchangeHandler(exchangeService *service.ExchangeService) *ExchangeHandler {
	return &ExchangeHandler{exchangeService: exchangeService}
}

// CreateExchange proposes a barter (POST /exchanges)
func (h *ExchangeHandler) CreateExchange(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var input entity.CreateExchangeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	exchange, err := h.exchangeService.CreateExchange(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Exchange offer created. Waiting for owner response.",
		"exchange": exchange,
	})
}

// AcceptExchange accepts a pending offer (POST /exchanges/:id/accept)
func (h *ExchangeHandler) AcceptExchange(c *gin.Context) {
	exchangeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exchange id"})
		return
	}

	exchange, err := h.exchangeService.AcceptExchange(exchangeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Exchange accepted. Both listings are now reserved.",
		"exchange": exchange,
	})
}

// RejectExchange rejects a pending offer (POST /exchanges/:id/reject)
func (h *ExchangeHandler) RejectExchange(c *gin.Context) {
	exchangeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exchange id"})
		return
	}

	exchange, err := h.exchangeService.RejectExchange(exchangeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Exchange rejected.",
		"exchange": exchange,
	})
}

// ConfirmExchange records the caller's confirmation (POST /exchanges/:id/confirm)
func (h *ExchangeHandler) ConfirmExchange(c *gin.Context) {
	exchangeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exchange id"})
		return
	}
	userID := c.MustGet("user_id").(uuid.UUID)

	exchange, err := h.exchangeService.ConfirmExchange(exchangeID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Confirmation recorded. Waiting for the other party."
	if exchange.FullyConfirmed() {
		message = "Exchange completed."
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  message,
		"exchange": exchange,
	})
}

// RevertExchange backs out of an accepted trade (POST /exchanges/:id/revert)
func (h *ExchangeHandler) RevertExchange(c *gin.Context) {
	exchangeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exchange id"})
		return
	}
	userID := c.MustGet("user_id").(uuid.UUID)

	exchange, err := h.exchangeService.RevertExchange(exchangeID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Exchange cancelled. Both listings are published again.",
		"exchange": exchange,
	})
}

// GetReceivedExchanges lists open offers on the caller's listings (GET /exchanges/received)
func (h *ExchangeHandler) GetReceivedExchanges(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	exchanges, err := h.exchangeService.GetReceivedExchanges(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exchanges": exchanges})
}

// GetSentExchanges lists the caller's open offers (GET /exchanges/sent)
func (h *ExchangeHandler) GetSentExchanges(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	exchanges, err := h.exchangeService.GetSentExchanges(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exchanges": exchanges})
}
