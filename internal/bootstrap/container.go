package bootstrap

import (
	"context"
	"log"

	"featurevote-be/internal/config"
	"featurevote-be/internal/controller"
	"featurevote-be/internal/pkg/logger"
	"featurevote-be/internal/pkg/mailer"
	"featurevote-be/internal/pkg/serverutils"
	"featurevote-be/internal/repository/memory"
	"featurevote-be/internal/repository/unitofwork"
	"featurevote-be/internal/service"
	"featurevote-be/internal/websocket"
	"featurevote-be/pkg/admin/dashboard"
	pktNats "featurevote-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	FeatureController      controller.IFeatureController
	AdminController        controller.IAdminController
	NotificationController controller.INotificationController

	// Middleware shared across route groups
	AuthMiddleware *serverutils.AuthMiddleware

	// DB handle kept for the health check ping
	DB *gorm.DB

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	wsHub := websocket.NewHub(rdb, sysLogger)
	go wsHub.Run()

	// In-process event bus for status-change fan-out
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	principalCache := memory.NewPrincipalCache()
	authMiddleware := serverutils.NewAuthMiddleware(cfg.JWT.Secret, uowFactory, principalCache)

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Bus.StatusChangedTopic, pubSub)

	authService := service.NewAuthService(uowFactory, emailService, natsPub, sysLogger, cfg.JWT.Secret)
	featureService := service.NewFeatureService(uowFactory, natsPub, publisherService, sysLogger)

	dashboardAggregator := dashboard.NewAggregator(sysLogger)
	adminService := service.NewAdminService(uowFactory, dashboardAggregator, sysLogger)

	notificationService := service.NewNotificationService(uowFactory, wsHub, emailService, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Bus.StatusChangedTopic,
		notificationService,
		sysLogger,
	)

	// 4. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		FeatureController:      controller.NewFeatureController(featureService),
		AdminController:        controller.NewAdminController(adminService, featureService),
		NotificationController: controller.NewNotificationController(notificationService, wsHub, authMiddleware),

		AuthMiddleware:  authMiddleware,
		DB:              db,
		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
		Logger:          sysLogger,
	}
}
