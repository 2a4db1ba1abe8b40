package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAllMessages handles POST /getAllMessage. It returns the full history
// between the two users, both directions merged, ascending by creation time.
func (h *Handler) GetAllMessages(c *gin.Context) {
	var req struct {
		Sender   string `json:"sender" binding:"required"`
		Receiver string `json:"receiver" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sender and receiver are required"})
		return
	}

	messages, err := h.Storage.MessagesBetween(req.Sender, req.Receiver)
	if err != nil {
		log.Printf("getAllMessage: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, try again"})
		return
	}

	c.JSON(http.StatusOK, messages)
}
