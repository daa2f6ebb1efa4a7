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

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-job-board/internal/core/auth"
	"go-job-board/internal/core/cache"
	"go-job-board/internal/core/config"
	"go-job-board/internal/core/database"
	"go-job-board/internal/core/logger"
	"go-job-board/internal/core/server"
	"go-job-board/internal/domain"
	"go-job-board/internal/repo"
	"go-job-board/internal/service"
	"go-job-board/internal/storage"
	"go-job-board/internal/transport/http/handler"
	"go-job-board/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	// 数据库（失败会直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Job{}, &domain.Application{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// Redis：注销黑名单 + 职位详情缓存共用一个客户端
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	blocklist := auth.NewRedisBlocklist(rdb)
	jobCache := cache.New(rdb)

	// JWT
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	// 依赖装配
	users := repo.NewUserRepo(db)
	jobs := repo.NewJobRepo(db)
	applications := repo.NewApplicationRepo(db)
	uploader := storage.NewLocal(cfg.Upload.Dir, cfg.Upload.BaseURL)

	authSvc := service.NewAuthService(users, jwter, blocklist, log)
	jobSvc := service.NewJobService(jobs, users, jobCache, log)
	appSvc := service.NewApplicationService(applications, jobs, users, uploader, log)

	r := router.NewAPIEngine(log, router.Deps{
		Auth:        handler.NewAuthHandler(authSvc),
		Job:         handler.NewJobHandler(jobSvc),
		Application: handler.NewApplicationHandler(appSvc),
		JWTer:       jwter,
		Blocklist:   blocklist,
		UploadDir:   cfg.Upload.Dir,
	})

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("job board api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("jobs", baseURL+"/jobs"),
	)

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("job board api start FAILED", zap.Error(err))
		}
	}()
	log.Info("job board api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	_ = rdb.Close()
	log.Info("job board api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
