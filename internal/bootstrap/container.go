package bootstrap

import (
	"log"
	"time"

	"agroshop-bot-be/internal/config"
	"agroshop-bot-be/internal/constant"
	"agroshop-bot-be/internal/controller"
	"agroshop-bot-be/internal/pkg/logger"
	"agroshop-bot-be/internal/repository/contract"
	"agroshop-bot-be/internal/repository/memory"
	"agroshop-bot-be/internal/repository/redisstore"
	"agroshop-bot-be/internal/repository/unitofwork"
	"agroshop-bot-be/internal/service"
	"agroshop-bot-be/pkg/advisor/factory"
	"agroshop-bot-be/pkg/catalogfeed"
	"agroshop-bot-be/pkg/chat/access"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	BotController   controller.IBotController
	AdminController controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	FeedService     service.IFeedService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Advisory completion provider
	var baseURL string
	if cfg.Ai.Provider == "ollama" {
		baseURL = cfg.Ai.OllamaBaseURL
	} else {
		baseURL = cfg.Ai.OpenAIBaseURL
	}
	provider, err := factory.NewProvider(cfg.Ai.Provider, cfg.Ai.Model, cfg.Ai.OpenAIAPIKey, baseURL)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize advisor provider: %v", err)
	}
	log.Printf("[INFO] Using advisor provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 4. Advisory session store
	sessionTTL := time.Duration(cfg.Bot.AdvisorySessionTTLMinutes) * time.Minute
	var sessionRepo contract.AdvisorySessionRepository
	if cfg.Bot.SessionStore == "redis" {
		opts, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Fatalf("[FATAL] Invalid REDIS_URL: %v", err)
		}
		sessionRepo = redisstore.NewAdvisorySessionRepository(redis.NewClient(opts), sessionTTL)
		log.Printf("[INFO] Using advisory session store: REDIS")
	} else {
		sessionRepo = memory.NewAdvisorySessionRepository(sessionTTL)
		log.Printf("[INFO] Using advisory session store: MEMORY")
	}

	// 5. Services
	userService := service.NewUserService(uowFactory, sysLogger)
	catalogService := service.NewCatalogService(uowFactory, cfg.Bot.CatalogPageSize, sysLogger)
	cartService := service.NewCartService(uowFactory, sysLogger)
	advisoryService := service.NewAdvisoryService(
		uowFactory,
		sessionRepo,
		provider,
		cfg.Bot.AdvisoryHistory,
		cfg.Bot.AdvisoryContext,
		cfg.Ai.Temperature,
		cfg.Ai.MaxTokens,
		sysLogger,
	)
	publisherService := service.NewPublisherService(pubSub, constant.ProductViewedTopic, sysLogger)
	consumerService := service.NewConsumerService(pubSub, constant.ProductViewedTopic, uowFactory, sysLogger)
	adminService := service.NewAdminService(uowFactory)

	feedClient := catalogfeed.NewClient(
		cfg.Feed.BaseURL,
		cfg.Feed.Token,
		time.Duration(cfg.Feed.RequestTimeoutS)*time.Second,
	)
	feedService := service.NewFeedService(feedClient, uowFactory, sysLogger)

	guard := access.NewGuard(
		userService,
		constant.PhonePrompt,
		[]string{constant.ActionStart, constant.ActionShareContact},
		sysLogger,
	)

	botService := service.NewBotService(
		userService,
		catalogService,
		cartService,
		advisoryService,
		publisherService,
		guard,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		BotController:   controller.NewBotController(botService),
		AdminController: controller.NewAdminController(adminService, cfg.App.JwtSecret),
		ConsumerService: consumerService,
		FeedService:     feedService,
		Logger:          sysLogger,
	}
}
