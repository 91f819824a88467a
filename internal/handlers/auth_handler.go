package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/HennaArtStudio/henna-booking-api/internal/config"
	"github.com/HennaArtStudio/henna-booking-api/internal/logger"
	"github.com/HennaArtStudio/henna-booking-api/internal/mailer"
	"github.com/HennaArtStudio/henna-booking-api/internal/middleware"
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
	"github.com/HennaArtStudio/henna-booking-api/internal/tokens"
	"github.com/HennaArtStudio/henna-booking-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	tokens *tokens.Store
	mailer *mailer.Mailer
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, ts *tokens.Store, m *mailer.Mailer) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, tokens: ts, mailer: m}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ConfirmVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type ResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ConfirmResetRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "The email domain does not look valid.",
		})
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Provider:     "password",
	}

	if err := h.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	h.sendVerificationCode(c, email)

	token, err := h.generateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  userPayload(&user),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userPayload(&user),
		"token": token,
	})
}

// RequestVerification re-sends a verification code to the signed-in
// account.
func (h *AuthHandler) RequestVerification(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
		return
	}

	if user.IsVerified() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "already_verified"})
		return
	}

	h.sendVerificationCode(c, email)
	c.JSON(http.StatusOK, gin.H{"status": "verification_sent"})
}

func (h *AuthHandler) ConfirmVerification(c *gin.Context) {
	var req ConfirmVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := h.tokens.ConsumeVerification(c.Request.Context(), email, req.Code); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_or_expired_code"})
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("email = ?", email).
		Update("email_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_verify_user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "verified"})
}

// RequestPasswordReset always answers 200 so the endpoint does not leak
// which addresses have accounts.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err == nil {
		token, err := h.tokens.CreateReset(c.Request.Context(), email)
		if err == nil {
			if err := h.mailer.Send(
				email,
				"Password reset",
				"Use this token to reset your password: "+token,
			); err != nil {
				logger.Log.Error("failed to send reset mail", zap.String("email", email), zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "reset_requested"})
}

func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req ConfirmResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	email, err := h.tokens.ConsumeReset(c.Request.Context(), req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_or_expired_token"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("email = ?", email).
		Update("password_hash", string(hashed)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "password_updated"})
}

// --------- Helpers ---------

func (h *AuthHandler) sendVerificationCode(c *gin.Context, email string) {
	otp, err := h.tokens.CreateVerification(c.Request.Context(), email)
	if err != nil {
		logger.Log.Error("failed to create verification code", zap.String("email", email), zap.Error(err))
		return
	}

	if err := h.mailer.Send(
		email,
		"Verify your email",
		"Your verification code is: "+otp,
	); err != nil {
		logger.Log.Error("failed to send verification mail", zap.String("email", email), zap.Error(err))
	}
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":             user.ID,
		"name":           user.Name,
		"email":          user.Email,
		"phone":          user.Phone,
		"provider":       user.Provider,
		"email_verified": user.EmailVerified,
	}
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"email":    user.Email,
		"verified": user.IsVerified(),
		"provider": user.Provider,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
