package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avinash6982/TripMakerWeb-BE/internal/common"
	"github.com/avinash6982/TripMakerWeb-BE/internal/server/accounts"
)

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone"`
	Country      *string `json:"country"`
	Language     *string `json:"language" binding:"omitempty,oneof=en es fr de hi"`
	CurrencyType *string `json:"currencyType" binding:"omitempty,oneof=USD EUR GBP INR"`
}

type profileResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Country      string    `json:"country"`
	Language     string    `json:"language"`
	CurrencyType string    `json:"currencyType"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toProfileResponse(v *accounts.ProfileView) profileResponse {
	return profileResponse{
		ID:           v.ID,
		Email:        v.Email,
		Phone:        v.Phone,
		Country:      v.Country,
		Language:     v.Language,
		CurrencyType: v.CurrencyType,
		CreatedAt:    v.CreatedAt,
	}
}

// writeError maps business failures to transport status codes. Store-level
// failures are logged and surface as a plain 500; their details stay out of
// responses.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
	case errors.Is(err, common.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "email or password is incorrect"})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	default:
		s.logger.Error(c.Request.Context(), "request failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (s *Server) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	acc, err := s.accounts.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        acc.ID,
		"email":     acc.Email,
		"token":     acc.Token,
		"createdAt": acc.CreatedAt,
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, err := s.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    sess.ID,
		"email": sess.Email,
		"token": sess.Token,
	})
}

func (s *Server) handleGetProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	view, err := s.accounts.GetProfile(c.Request.Context(), userID)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(view))
}

func (s *Server) handleUpdateProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := s.accounts.UpdateProfile(c.Request.Context(), userID, accounts.ProfileUpdate{
		Email:        req.Email,
		Phone:        req.Phone,
		Country:      req.Country,
		Language:     req.Language,
		CurrencyType: req.CurrencyType,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(view))
}
