package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAllUsers handles GET /getAllUser.
func (h *Handler) GetAllUsers(c *gin.Context) {
	users, err := h.Storage.ListUsers()
	if err != nil {
		log.Printf("getAllUser: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, try again"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// OnlineUsers handles GET /online, listing usernames currently announced
// as online via the presence set.
func (h *Handler) OnlineUsers(c *gin.Context) {
	users, err := h.Storage.OnlineUsers()
	if err != nil {
		log.Printf("online: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"online": users})
}
