package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/ventixe/accountsvc/internal/http/handlers"
)

func BuildRouter(ah *handlers.AccountHandlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	accounts := r.Group("/accounts")
	accounts.POST("/register", ah.Register)
	accounts.POST("/validate", ah.ValidateCredentials)
	accounts.GET("", ah.GetAccounts)
	accounts.GET("/:id", ah.GetAccountByID)
	accounts.PUT("/:id/phone", ah.UpdatePhoneNumber)
	accounts.DELETE("/:id", ah.DeleteAccountByID)
	accounts.POST("/:id/confirm", ah.ConfirmAccount)
	accounts.POST("/:id/email/change-request", ah.RequestEmailChange)
	accounts.POST("/:id/email/confirm", ah.ConfirmEmailChange)
	accounts.POST("/:id/tokens/email-confirmation", ah.RequestEmailConfirmationToken)
	accounts.POST("/:id/tokens/password-reset", ah.RequestPasswordResetToken)
	accounts.POST("/:id/password/reset", ah.ResetPassword)

	return r
}
