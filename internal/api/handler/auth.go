package handler

import (
	"errors"
	"log"
	"net/http"

	"gomessenger/backend/internal/models"
	"gomessenger/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Register handles POST /register. Expects a multipart form with username,
// phone, password, and an optional profile image.
func (h *Handler) Register(c *gin.Context) {
	username := c.PostForm("username")
	phone := c.PostForm("phone")
	password := c.PostForm("password")
	if username == "" || phone == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, phone and password are required"})
		return
	}

	var imageFilename string
	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
			return
		}
		imageFilename, err = h.Uploads.Save(file.Filename, src)
		src.Close()
		if err != nil {
			log.Printf("register: failed to store image for %s: %v", phone, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
			return
		}
	}

	user := &models.User{
		Username:      username,
		Phone:         phone,
		Password:      password,
		ImageFilename: imageFilename,
	}
	if err := h.Storage.CreateUser(user); err != nil {
		if errors.Is(err, storage.ErrPhoneTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phone number already registered"})
			return
		}
		log.Printf("register: failed to create user %s: %v", phone, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": "user registered"})
}

// Login handles POST /login. Wrong phone and wrong password answer the same
// way, so the endpoint does not leak which part was incorrect.
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Phone    string `json:"phone" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone and password are required"})
		return
	}

	user, err := h.Storage.Authenticate(req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) || errors.Is(err, storage.ErrBadCredentials) {
			c.JSON(http.StatusNotFound, gin.H{"error": "incorrect phone or password"})
			return
		}
		log.Printf("login: failed for %s: %v", req.Phone, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": "logged in", "info": user})
}
