package app

import (
	"context"

	"github.com/casbin/casbin/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/siddrai7/communebackend-sub001/domain"
	"github.com/siddrai7/communebackend-sub001/internal/config"
	"github.com/siddrai7/communebackend-sub001/internal/infrastructure/auth"
	"github.com/siddrai7/communebackend-sub001/internal/infrastructure/database"
	"github.com/siddrai7/communebackend-sub001/internal/infrastructure/notifications"
	"github.com/siddrai7/communebackend-sub001/internal/infrastructure/repositories"
	"github.com/siddrai7/communebackend-sub001/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Enforcer    *casbin.Enforcer

	// Repositories
	PrincipalRepo    domain.PrincipalRepository
	OTPStore         domain.OTPStore
	BuildingRepo     domain.BuildingRepository
	TenancyRepo      domain.TenancyRepository
	ComplaintRepo    domain.ComplaintRepository
	MaintenanceRepo  domain.MaintenanceRepository
	PaymentRepo      domain.PaymentRepository
	AnnouncementRepo domain.AnnouncementRepository

	// Services
	TokenSvc    domain.TokenService
	DeliverySvc domain.DeliveryService
	OTPSvc      domain.OTPService
	AuthSvc     domain.AuthService
	AccessSvc   domain.AccessService
	PolicySvc   domain.PolicyService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	// Initialize infrastructure
	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(); err != nil {
		return nil, err
	}

	// Initialize repositories
	container.initRepositories()

	// Initialize services
	if err := container.initServices(); err != nil {
		return nil, err
	}

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

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(
		c.Config.RedisAddr,
		c.Config.RedisPassword,
		c.Config.RedisDB,
	).Client
	return c.RedisClient.Ping(context.Background()).Err()
}

func (c *Container) initRepositories() {
	c.PrincipalRepo = repositories.NewPrincipalRepository(c.DB)
	c.OTPStore = repositories.NewOTPStore(c.RedisClient, c.Config.OTP_TTL)
	c.BuildingRepo = repositories.NewBuildingRepository(c.DB)
	c.TenancyRepo = repositories.NewTenancyRepository(c.DB)
	c.ComplaintRepo = repositories.NewComplaintRepository(c.DB)
	c.MaintenanceRepo = repositories.NewMaintenanceRepository(c.DB)
	c.PaymentRepo = repositories.NewPaymentRepository(c.DB)
	c.AnnouncementRepo = repositories.NewAnnouncementRepository(c.DB)
}

func (c *Container) initServices() error {
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTSecret,
		c.Config.JWTIssuer,
		c.Config.AccessTTL,
	)
	c.DeliverySvc = notifications.NewTwilioService(
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
	)

	otpConfig := services.OTPConfig{
		Length:       c.Config.OTP_Length,
		TTL:          c.Config.OTP_TTL,
		MaxAttempts:  c.Config.OTP_MaxAttempts,
		ResendWindow: c.Config.OTP_ResendWindow,
	}
	c.OTPSvc = services.NewOTPService(c.DeliverySvc, c.PrincipalRepo, c.OTPStore, otpConfig)

	c.AuthSvc = services.NewAuthService(c.PrincipalRepo, c.TokenSvc, c.OTPSvc, c.Config.AccessTTL)
	c.AccessSvc = services.NewAccessService(c.BuildingRepo, c.TenancyRepo, c.ComplaintRepo, c.MaintenanceRepo, c.PaymentRepo)

	cas, err := auth.NewCasbinService(c.DB, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}
	c.Enforcer = cas.E
	c.PolicySvc = services.NewPolicyService(cas.E)

	return nil
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
