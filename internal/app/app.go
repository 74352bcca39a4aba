package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ventixe/accountsvc/internal/config"
	httpx "github.com/ventixe/accountsvc/internal/http"
	"github.com/ventixe/accountsvc/internal/http/handlers"
	"github.com/ventixe/accountsvc/internal/infrastructure/auth"
	"github.com/ventixe/accountsvc/internal/infrastructure/database"
	"github.com/ventixe/accountsvc/internal/infrastructure/notifications"
	"github.com/ventixe/accountsvc/internal/infrastructure/repositories"
	"github.com/ventixe/accountsvc/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewTokenService(cfg.TokenSecret, cfg.TokenIssuer, cfg.TokenTTL, rdb)
	publisher := notifications.NewRedisPublisher(rdb, cfg.EventStream)

	// Repositories
	accountRepo := repositories.NewAccountRepository(gdb)

	// Account service
	policy := services.PasswordPolicy{
		MinLength:    cfg.PasswordMinLength,
		RequireDigit: cfg.PasswordRequireDigit,
	}
	accountSvc := services.NewAccountService(accountRepo, passwordSvc, tokenSvc, publisher, policy)

	// Handlers and router
	accountH := handlers.NewAccountHandlers(accountSvc)
	r := httpx.BuildRouter(accountH)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
