package handlers

import (
	"errors"
	"net/http"
	netmail "net/mail"

	"taskboard/internal/domain"
	"taskboard/internal/logger"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GetSession returns the verified caller's identity plus a derived session
// object. Runs behind the JWT middleware.
func (h *Handler) GetSession(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		return
	}

	user, err := h.Users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			return
		}
		logger.Error("get session failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
		"session": gin.H{
			"id":     "session_" + user.ID,
			"userId": user.ID,
		},
	})
}

// SignUp registers a user. The endpoint always answers 200 with a
// status/message envelope; failures carry status "error".
func (h *Handler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": err.Error()})
		return
	}

	if _, err := netmail.ParseAddress(req.Email); err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "invalid email address"})
		return
	}
	if len(req.Password) < 8 {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "password must be at least 8 characters"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": err.Error()})
		return
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
	}

	if err := h.Users.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			c.JSON(http.StatusOK, gin.H{"status": "error", "message": "email already registered"})
			return
		}
		logger.Error("sign up failed", "error", err)
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "User registered successfully"})
}

// SignIn checks the credentials against the stored hash. No token is
// issued here; tokens come from the auth frontend sharing the secret.
func (h *Handler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": err.Error()})
		return
	}

	user, err := h.Users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "invalid email or password"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful"})
}
