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

	"github.com/getsentry/sentry-go"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/d60-Lab/orkud/config"
	"github.com/d60-Lab/orkud/internal/api"
	"github.com/d60-Lab/orkud/internal/api/handler"
	"github.com/d60-Lab/orkud/internal/repository"
	"github.com/d60-Lab/orkud/internal/service"
	"github.com/d60-Lab/orkud/internal/store"
	"github.com/d60-Lab/orkud/pkg/logger"
	"github.com/d60-Lab/orkud/pkg/tracing"
)

// @title Orkud API
// @version 1.0
// @description 社交图谱后端：帖子、点赞、评论、关注与支持工单
// @BasePath /
func main() {
	configPath := pflag.StringP("config", "c", "", "path to config file (default: ./config.yaml or ./config/config.yaml)")
	pflag.Parse()

	// 1. 配置与日志
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()

	// 2. 链路追踪与错误上报
	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	}
	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.Sentry.Environment,
			AttachStacktrace: true,
		}); err != nil {
			logger.Warn("sentry disabled", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// 3. 持久化与数据集
	sink, closeSink, err := repository.OpenSink(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open persistence sink", zap.String("driver", cfg.Persistence.Driver), zap.Error(err))
	}
	defer func() {
		if err := closeSink(); err != nil {
			logger.Warn("close sink", zap.Error(err))
		}
	}()

	st, err := store.Open(ctx, sink)
	if err != nil {
		// the store is still usable in memory; the next successful write persists it
		logger.Error("initial snapshot save failed", zap.Error(err))
	}
	logger.Info("store ready", zap.String("driver", cfg.Persistence.Driver))

	// 4. 服务与路由
	h := handler.NewHandler(
		service.NewPostService(st),
		service.NewUserService(st),
		service.NewRelationshipService(st),
		service.NewTicketService(st),
	)
	r := api.NewRouter(cfg, h)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("orkud server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// 5. 优雅退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server forced to shutdown", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("tracing shutdown", zap.Error(err))
	}
	logger.Info("orkud server stopped")
}
