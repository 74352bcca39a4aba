package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ventixe/accountsvc/domain"
	"github.com/ventixe/accountsvc/internal/config"
	"github.com/ventixe/accountsvc/internal/infrastructure/auth"
	"github.com/ventixe/accountsvc/internal/infrastructure/database"
	"github.com/ventixe/accountsvc/internal/infrastructure/notifications"
	"github.com/ventixe/accountsvc/internal/infrastructure/repositories"
	"github.com/ventixe/accountsvc/internal/services"
)

// Container holds all dependencies for embedding the service in other
// processes and for integration tests.
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	AccountRepo domain.AccountRepository

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	Publisher   domain.EventPublisher
	AccountSvc  domain.AccountService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = redis.NewClient(&redis.Options{
		Addr:     c.Config.RedisAddr,
		Password: c.Config.RedisPassword,
		DB:       c.Config.RedisDB,
	})
}

func (c *Container) initServices() {
	c.AccountRepo = repositories.NewAccountRepository(c.DB)
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewTokenService(
		c.Config.TokenSecret,
		c.Config.TokenIssuer,
		c.Config.TokenTTL,
		c.RedisClient,
	)
	c.Publisher = notifications.NewRedisPublisher(c.RedisClient, c.Config.EventStream)

	policy := services.PasswordPolicy{
		MinLength:    c.Config.PasswordMinLength,
		RequireDigit: c.Config.PasswordRequireDigit,
	}
	c.AccountSvc = services.NewAccountService(
		c.AccountRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.Publisher,
		policy,
	)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
