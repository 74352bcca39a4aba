package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ventixe/accountsvc/domain"
)

// AccountHandlers translates HTTP requests into account service calls
type AccountHandlers struct {
	accountSvc domain.AccountService
}

// NewAccountHandlers creates new account handlers
func NewAccountHandlers(accountSvc domain.AccountService) *AccountHandlers {
	return &AccountHandlers{accountSvc: accountSvc}
}

// RegisterRequest represents a registration request. Required-field checks
// here are a fast reject; the service enforces its own rules regardless.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ValidateCredentialsRequest represents a credential validation request
type ValidateCredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdatePhoneNumberRequest represents a phone number update request
type UpdatePhoneNumberRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// ConfirmAccountRequest represents an email confirmation request
type ConfirmAccountRequest struct {
	Token string `json:"token" binding:"required"`
}

// EmailChangeRequest represents an email change token request
type EmailChangeRequest struct {
	NewEmail string `json:"new_email" binding:"required,email"`
}

// ConfirmEmailChangeRequest represents an email change confirmation
type ConfirmEmailChangeRequest struct {
	NewEmail string `json:"new_email" binding:"required,email"`
	Token    string `json:"token" binding:"required"`
}

// ResetPasswordRequest represents a password reset request
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// statusFor maps a failure kind to an HTTP status
func statusFor(kind domain.FailureKind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindDuplicateEmail:
		return http.StatusConflict
	case domain.KindInvalidCredentials:
		return http.StatusUnauthorized
	case domain.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

// reply writes the result payload with the status derived from its outcome
func reply(c *gin.Context, result domain.Result, successStatus int, payload any) {
	if !result.Succeeded {
		c.JSON(statusFor(result.Kind), payload)
		return
	}
	c.JSON(successStatus, payload)
}

// Register handles account registration
func (h *AccountHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.accountSvc.Register(c.Request.Context(), req.Email, req.Password)
	reply(c, result.Result, http.StatusCreated, result)
}

// ValidateCredentials handles credential validation
func (h *AccountHandlers) ValidateCredentials(c *gin.Context) {
	var req ValidateCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required."})
		return
	}

	result := h.accountSvc.ValidateCredentials(c.Request.Context(), req.Email, req.Password)
	reply(c, result.Result, http.StatusOK, result)
}

// GetAccounts handles listing all accounts
func (h *AccountHandlers) GetAccounts(c *gin.Context) {
	result := h.accountSvc.GetAccounts(c.Request.Context())
	reply(c, result.Result, http.StatusOK, result)
}

// GetAccountByID handles account lookup by id
func (h *AccountHandlers) GetAccountByID(c *gin.Context) {
	result := h.accountSvc.GetAccountByID(c.Request.Context(), c.Param("id"))
	reply(c, result.Result, http.StatusOK, result)
}

// UpdatePhoneNumber handles phone number updates
func (h *AccountHandlers) UpdatePhoneNumber(c *gin.Context) {
	var req UpdatePhoneNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.accountSvc.UpdatePhoneNumber(c.Request.Context(), c.Param("id"), req.PhoneNumber)
	reply(c, *result, http.StatusOK, result)
}

// DeleteAccountByID handles account deletion
func (h *AccountHandlers) DeleteAccountByID(c *gin.Context) {
	result := h.accountSvc.DeleteAccountByID(c.Request.Context(), c.Param("id"))
	reply(c, *result, http.StatusOK, result)
}

// ConfirmAccount handles email confirmation token redemption
func (h *AccountHandlers) ConfirmAccount(c *gin.Context) {
	var req ConfirmAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.accountSvc.ConfirmAccount(c.Request.Context(), c.Param("id"), req.Token)
	reply(c, *result, http.StatusOK, result)
}

// RequestEmailChange handles email change token issuance
func (h *AccountHandlers) RequestEmailChange(c *gin.Context) {
	var req EmailChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.accountSvc.RequestEmailChange(c.Request.Context(), c.Param("id"), req.NewEmail)
	reply(c, result.Result, http.StatusOK, result)
}

// ConfirmEmailChange handles email change token redemption
func (h *AccountHandlers) ConfirmEmailChange(c *gin.Context) {
	var req ConfirmEmailChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.accountSvc.ConfirmEmailChange(c.Request.Context(), c.Param("id"), req.NewEmail, req.Token)
	reply(c, *result, http.StatusOK, result)
}

// RequestEmailConfirmationToken handles email confirmation token issuance
func (h *AccountHandlers) RequestEmailConfirmationToken(c *gin.Context) {
	result := h.accountSvc.RequestEmailConfirmationToken(c.Request.Context(), c.Param("id"))
	reply(c, result.Result, http.StatusOK, result)
}

// RequestPasswordResetToken handles password reset token issuance
func (h *AccountHandlers) RequestPasswordResetToken(c *gin.Context) {
	result := h.accountSvc.RequestPasswordResetToken(c.Request.Context(), c.Param("id"))
	reply(c, result.Result, http.StatusOK, result)
}

// ResetPassword handles password reset token redemption
func (h *AccountHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.accountSvc.ResetPassword(c.Request.Context(), c.Param("id"), req.Token, req.NewPassword)
	reply(c, *result, http.StatusOK, result)
}
