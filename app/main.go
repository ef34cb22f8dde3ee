package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/blog-comment-thread/domain"
	"github.com/Guyuepp/blog-comment-thread/internal/config"
	"github.com/Guyuepp/blog-comment-thread/internal/repository"
	mysqlRepo "github.com/Guyuepp/blog-comment-thread/internal/repository/mysql"
	"github.com/Guyuepp/blog-comment-thread/internal/repository/mysql/model"
	myRedisCache "github.com/Guyuepp/blog-comment-thread/internal/repository/redis"
	"github.com/Guyuepp/blog-comment-thread/internal/rest"
	"github.com/Guyuepp/blog-comment-thread/internal/rest/middleware"
	"github.com/Guyuepp/blog-comment-thread/internal/usecase/blog"
	"github.com/Guyuepp/blog-comment-thread/internal/usecase/comment"
	"github.com/Guyuepp/blog-comment-thread/internal/usecase/notification"
	"github.com/Guyuepp/blog-comment-thread/internal/workers"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
	shutdownTimeout    = 5 * time.Second
)

func openDB(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				err = dbErr
				logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			if err = sqlDB.Ping(); err == nil {
				return db, nil
			}
			logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	return nil, err
}

func main() {
	cfg := config.Load()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}

	// prepare database
	db, err := openDB(cfg.DatabaseDSN)
	if err != nil {
		logrus.Fatalf("could not connect to database after retries: %v", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Errorf("got error when getting sql.DB from gorm.DB: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Errorf("got error when closing the DB connection: %v", err)
		}
	}()
	// blog and user tables belong to the content and account services
	if err := db.AutoMigrate(&model.Comment{}, &model.CommentChild{}, &model.Notification{}); err != nil {
		logrus.Fatalf("failed to migrate comment tables: %v", err)
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.CacheAddr,
		Password: cfg.CachePass,
		DB:       cfg.CacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Errorf("got error when closing the cache connection: %v", err)
		}
	}()
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to open connection to cache: %v", err)
	}

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	blogRepo := mysqlRepo.NewBlogRepository(db)
	notificationRepo := mysqlRepo.NewNotificationRepository(db)
	transactor := mysqlRepo.NewTransactor(db)

	// Comment相关的三层架构
	// 1. DB层
	commentDBRepo := mysqlRepo.NewCommentRepository(db, notificationRepo)
	// 2. Cache层
	commentCache := myRedisCache.NewCommentCache(client)
	// 3. Repository协调层
	commentRepo := repository.NewCommentRepository(commentDBRepo, commentCache, domain.DefaultCommentPageSize)

	bloomRepo := myRedisCache.NewRedisBloomRepo(client, cfg.BloomBitSize)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// the worker outlives the signal: requests still finishing during
	// shutdown may queue recounts
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	repairWorker := workers.NewCounterRepairWorker(blogRepo)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		repairWorker.Start(workerCtx)
	}()

	// Build service Layer
	blogSvc := blog.NewService(blogRepo, bloomRepo)
	commentSvc := comment.NewService(commentRepo, blogRepo, notificationRepo, userRepo, bloomRepo, transactor, repairWorker)
	notificationSvc := notification.NewService(notificationRepo)

	blogHandler := rest.NewBlogHandler(blogSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	notificationHandler := rest.NewNotificationHandler(notificationSvc)

	// Prepare bloom filter
	if err := blogSvc.InitBloomFilter(ctx); err != nil {
		logrus.Errorf("failed to init bloom filter: %v", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(middleware.NewMetrics(prometheus.DefaultRegisterer).Handler())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	if cfg.JWTSecret == "" {
		logrus.Warn("JWT_SECRET is empty, every authenticated request will be rejected")
	}
	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)

	// Register routes
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))

	route.GET("/blogs/:id/comments", commentHandler.ListRoots)
	route.GET("/blogs/:id/activity", blogHandler.GetActivity)
	route.GET("/comments/:id/replies", commentHandler.ListReplies)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/blogs/:id/comments", commentHandler.AddComment)
		authorized.DELETE("/comments/:id", commentHandler.DeleteComment)

		authorized.GET("/notifications", notificationHandler.List)
		authorized.GET("/notifications/count", notificationHandler.Count)
		authorized.GET("/notifications/new", notificationHandler.HasNew)
	}

	// Start Server
	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdown(srv, stopWorker, workerDone, shutdownTimeout)

	logrus.Info("Server exiting")
}

// shutdown drains in-flight requests first, then stops the worker so the
// recounts those requests queued are flushed.
func shutdown(srv *http.Server, stopWorker context.CancelFunc, workerDone <-chan struct{}, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Waiting for worker to cleanup...")
	stopWorker()
	select {
	case <-workerDone:
	case <-ctx.Done():
		logrus.Warn("worker did not finish before shutdown timeout")
	}
}
