package handler

import (
	"net/http"
	"strconv"

	repo "tradepost/internal/repository/postgresql"

	"github.com/gin-gonic/gin"
)

// StateHandler exposes the read-only availability-state catalog.
type StateHandler struct {
	stateRepo repo.StateRepository
}

func NewStateHandler(stateRepo repo.StateRepository) *StateHandler {
	return &StateHandler{stateRepo: stateRepo}
}

// GetAllStates (GET /states)
func (h *StateHandler) GetAllStates(c *gin.Context) {
	states, err := h.stateRepo.GetAllStates()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"states": states})
}

// GetStateByID (GET /states/:id)
func (h *StateHandler) GetStateByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid state id"})
		return
	}

	state, err := h.stateRepo.GetStateByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if state == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "state not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}
