package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"rebook-backend/internal/config"
	infraCache "rebook-backend/internal/infrastructure/cache"
	"rebook-backend/internal/infrastructure/database"
	"rebook-backend/pkg/cache"
	"rebook-backend/pkg/jwt"

	bookHandler "rebook-backend/internal/domains/book/handler"
	bookRepo "rebook-backend/internal/domains/book/repository"
	bookService "rebook-backend/internal/domains/book/service"
	memberHandler "rebook-backend/internal/domains/member/handler"
	memberRepo "rebook-backend/internal/domains/member/repository"
	memberService "rebook-backend/internal/domains/member/service"
	reviewHandler "rebook-backend/internal/domains/review/handler"
	reviewRepo "rebook-backend/internal/domains/review/repository"
	reviewService "rebook-backend/internal/domains/review/service"
)

// Container holds the whole dependency graph of the application.
// Everything in it is a singleton living for the process lifetime.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories
	ReviewRepo reviewRepo.ReviewRepository
	MemberRepo memberRepo.MemberRepository
	BookRepo   bookRepo.BookRepository

	// Services
	ReviewService reviewService.ServiceInterface
	MemberService memberService.ServiceInterface
	BookService   bookService.ServiceInterface

	// Handlers
	ReviewHandler *reviewHandler.ReviewHandler
	MemberHandler *memberHandler.MemberHandler
	BookHandler   *bookHandler.BookHandler
}

// NewContainer initializes the dependency graph in order:
// config -> infrastructure -> repositories -> services -> handlers.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// Step 1: Configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// Step 2: Database
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// Step 3: Cache. Redis failure is non-critical - the service runs
	// uncached and every read falls through to the database.
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}
	c.Cache = redisCache

	// Step 4: Token manager
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// Step 5: Repositories
	c.ReviewRepo = reviewRepo.NewPostgresReviewRepository(db.Pool)
	c.MemberRepo = memberRepo.NewPostgresMemberRepository(db.Pool, c.Cache)
	c.BookRepo = bookRepo.NewPostgresBookRepository(db.Pool)

	// Step 6: Services
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.Cache)
	c.MemberService = memberService.NewMemberService(c.MemberRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.Cache)

	// Step 7: Handlers
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService, c.JWTManager)
	c.MemberHandler = memberHandler.NewMemberHandler(c.MemberService, c.JWTManager)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// Cleanup releases resources on shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
