package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/config"
	"github.com/cloudpower/site-backend/internal/database"
	"github.com/cloudpower/site-backend/internal/handler"
	"github.com/cloudpower/site-backend/internal/middleware"
	"github.com/cloudpower/site-backend/internal/migration"
	"github.com/cloudpower/site-backend/internal/routes"
	"github.com/cloudpower/site-backend/internal/service"
	"github.com/cloudpower/site-backend/pkg/jwt"
	pkglogger "github.com/cloudpower/site-backend/pkg/logger"
	"github.com/cloudpower/site-backend/pkg/mailer"
	pkgredis "github.com/cloudpower/site-backend/pkg/redis"
	pkgstorage "github.com/cloudpower/site-backend/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Site Backend API
// @version         1.0
// @description     Bilingual (zh/en) corporate website content API
//
// @host            localhost:3000
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

const shutdownTimeout = 30 * time.Second

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	log := pkglogger.GetLogger()
	log.Info().Str("app_env", env).Strs("env_files", dotenvFiles).Msg("starting")

	// 設定
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("failed to load config")
	}
	pkglogger.SetLevel(cfg.Server.LogLevel)
	config.LogResolved(cfg)

	common.SetDisplayLocation(cfg.Location())
	common.UseJSONFieldNames()
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 資料庫
	db, err := database.Open(cfg.Database, cfg.IsDevelopment())
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to connect to database")
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("connected to database")

	if cfg.Database.AutoMigrate {
		if err := migration.Run(db); err != nil {
			log.Fatal().Err(err).Msg("migration failed")
		}
		log.Info().Msg("migration complete")
	}

	// Redis (optional, rate limiting only)
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient, err = pkgredis.NewClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, rate limiting disabled")
			redisClient = nil
		} else {
			log.Info().Msg("connected to redis")
		}
	}

	// S3 compatible storage
	var uploader service.Uploader
	if cfg.Storage.Enabled {
		s3Client, s3Err := pkgstorage.NewS3Client(pkgstorage.S3Config{
			Endpoint:        cfg.Storage.Endpoint,
			Region:          cfg.Storage.Region,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			Bucket:          cfg.Storage.Bucket,
			CDNURL:          cfg.Storage.CDNURL,
			BasePath:        cfg.Storage.BasePath,
			ForcePathStyle:  cfg.Storage.ForcePathStyle,
		})
		if s3Err != nil {
			log.Warn().Err(s3Err).Msg("storage init failed, uploads disabled")
		} else {
			uploader = s3Client
			log.Info().Str("bucket", cfg.Storage.Bucket).Msg("connected to storage")
		}
	}

	// SMTP
	var notifier service.Notifier
	if cfg.Mail.Host != "" {
		notifier = mailer.New(mailer.Config{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
			FromName: cfg.Mail.FromName,
		})
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	handlers, contactService := routes.NewHandlers(routes.Dependencies{
		DB:          db,
		JWT:         jwtManager,
		Uploader:    uploader,
		Notifier:    notifier,
		NotifyTo:    cfg.Mail.NotifyTo,
		MaxUploadMB: cfg.Storage.MaxUploadMB,
		Location:    cfg.Location(),
	})

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins(),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining", "Content-Language"},
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.I18n())
	router.Use(middleware.RateLimit(redisClient, middleware.DefaultRateLimitConfig(cfg.RateLimit.RequestsPerMinute)))

	// Prometheus metrics
	if sqlDB, err := db.DB(); err == nil {
		prometheus.MustRegister(collectors.NewDBStatsCollector(sqlDB, cfg.Database.DBName))
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/health", handler.NewHealthHandler(db).Check)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.Setup(router, handlers, jwtManager, redisClient, cfg)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	// contact notifications still in flight
	contactService.Wait()

	if redisClient != nil {
		_ = redisClient.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("shutdown complete")
}
