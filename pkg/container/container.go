package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"compliance-backend/internal/config"
	infraCache "compliance-backend/internal/infrastructure/cache"
	"compliance-backend/internal/infrastructure/database"
	"compliance-backend/internal/infrastructure/email"
	"compliance-backend/internal/infrastructure/queue"
	"compliance-backend/internal/infrastructure/storage"
	"compliance-backend/pkg/cache"

	companyHandler "compliance-backend/internal/domains/company/handler"
	companyRepo "compliance-backend/internal/domains/company/repository"
	companyService "compliance-backend/internal/domains/company/service"
	leadHandler "compliance-backend/internal/domains/lead/handler"
	leadRepo "compliance-backend/internal/domains/lead/repository"
	leadService "compliance-backend/internal/domains/lead/service"
	postHandler "compliance-backend/internal/domains/post/handler"
	postRepo "compliance-backend/internal/domains/post/repository"
	postService "compliance-backend/internal/domains/post/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Pattern: Constructor Injection, build theo thứ tự layer
type Container struct {
	// Infrastructure - shared across all domains, singleton
	Config       *config.Config
	DB           *database.PostgresDB
	Redis        *infraCache.RedisClient
	Cache        cache.Cache
	Storage      *storage.MinIOStorage
	EmailService email.EmailService
	QueueClient  *queue.Client

	// Repositories
	PostRepo    postRepo.PostRepository
	LeadRepo    leadRepo.LeadRepository
	CompanyRepo companyRepo.CompanyRepository

	// Services
	PostService    postService.ServiceInterface
	LeadService    leadService.ServiceInterface
	CompanyService companyService.ServiceInterface

	// Handlers
	PostHandler    *postHandler.PostHandler
	LeadHandler    *leadHandler.LeadHandler
	CompanyHandler *companyHandler.CompanyHandler
}

// NewContainer khởi tạo toàn bộ dependency graph
//
// Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Infrastructure (DB, Redis, MinIO, Queue) - phụ thuộc Config
// 3. Repositories - phụ thuộc Infrastructure
// 4. Services - phụ thuộc Repositories
// 5. Handlers - phụ thuộc Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	db := database.NewPostgresDB(&database.DBConfig{
		Host:              cfg.Database.Host,
		Port:              cfg.Database.Port,
		Username:          cfg.Database.User,
		Password:          cfg.Database.Password,
		DBName:            cfg.Database.Database,
		SSLMode:           cfg.Database.SSLMode,
		MaxConns:          int32(cfg.Database.MaxConns),
		MinConns:          int32(cfg.Database.MinConns),
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   30 * time.Minute,
		HealthCheckPeriod: time.Minute,
		MaxRetries:        5,
		RetryDelay:        time.Second,
		ConnectTimeout:    10 * time.Second,
	})

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

	// ========================================
	// STEP 3: INITIALIZE REDIS
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisClient := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(context.Background()); err != nil {
		// Redis failure không critical - cache và queue bị tắt,
		// core API vẫn chạy được
		log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
	} else {
		c.Redis = redisClient
		c.Cache = redisClient
		c.QueueClient = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		log.Println("✅ Redis connected")
	}

	// ========================================
	// STEP 4: INITIALIZE STORAGE + EMAIL
	// ========================================
	log.Println("🪣 Connecting to MinIO...")

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init MinIO storage: %w", err)
	}
	c.Storage = minioStorage
	log.Println("✅ MinIO ready")

	c.EmailService = email.NewSMTPEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From)

	// ========================================
	// STEP 5: REPOSITORIES
	// ========================================
	c.PostRepo = postRepo.NewPostgresPostRepository(c.DB.Pool)
	c.LeadRepo = leadRepo.NewPostgresLeadRepository(c.DB.Pool)
	c.CompanyRepo = companyRepo.NewPostgresCompanyRepository(c.DB.Pool)
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 6: SERVICES
	// ========================================
	c.PostService = postService.NewPostService(c.PostRepo, c.Storage)

	var enqueuer leadService.Enqueuer
	if c.QueueClient != nil {
		enqueuer = c.QueueClient
	}
	c.LeadService = leadService.NewLeadService(c.LeadRepo, enqueuer)

	c.CompanyService = companyService.NewCompanyService(c.CompanyRepo, c.Cache)
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 7: HANDLERS
	// ========================================
	c.PostHandler = postHandler.NewPostHandler(c.PostService, cfg.Admin.Secret)
	c.LeadHandler = leadHandler.NewLeadHandler(c.LeadService)
	c.CompanyHandler = companyHandler.NewCompanyHandler(c.CompanyService)
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// Cleanup dọn dẹp resources khi shutdown
// Gọi trong graceful shutdown của server
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			log.Printf("⚠️  Failed to close queue client: %v", err)
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		} else {
			log.Println("✅ Redis connections closed")
		}
	}

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	log.Println("✅ Container cleanup completed")
}
