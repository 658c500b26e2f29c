package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/SerikaYuzuki/WordApp/internal/api"
	"github.com/SerikaYuzuki/WordApp/internal/bot"
	"github.com/SerikaYuzuki/WordApp/internal/client"
	"github.com/SerikaYuzuki/WordApp/internal/config"
	"github.com/SerikaYuzuki/WordApp/internal/inflection"
	"github.com/SerikaYuzuki/WordApp/internal/repository"
	"github.com/SerikaYuzuki/WordApp/internal/service"
	"github.com/SerikaYuzuki/WordApp/internal/storage/cache"
	"github.com/SerikaYuzuki/WordApp/internal/storage/db"
	"github.com/SerikaYuzuki/WordApp/internal/storage/redis"
	"github.com/jmoiron/sqlx"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

// openStore returns the blob backend selected by cfg.Driver and a closer for it.
func openStore(cfg config.StorageConfig) (repository.BlobStore, io.Closer, error) {
	switch cfg.Driver {
	case config.DriverPostgres, config.DriverSQLite:
		conn, err := db.InitDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewSQLBlobRepository(conn, sqlx.BindType(conn.DriverName())), conn, nil
	case config.DriverRedis:
		rdb, err := redis.InitRedis(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisBlobRepository(rdb, cfg.Redis.Prefix), rdb, nil
	default:
		return repository.NewMemoryBlobRepository(), closerFunc(func() error { return nil }), nil
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	store, closer, err := openStore(cfg.Storage)
	if err != nil {
		logger.Fatal("failed init storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer closer.Close()

	repos := repository.NewRepository(store)
	clients := client.InitClients(cfg.Dictionary.BaseURL, cfg.Dictionary.Timeout)
	generator := inflection.NewGenerator(inflection.LoadTableFile(cfg.Data.IrregularVerbs, logger))
	cache := cache.NewCache()

	services := service.InitServices(clients, repos, generator, cache, service.Options{
		WordsKey:         cfg.Storage.Key,
		DefaultWordsPath: cfg.Data.DefaultWords,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loadCtx, cancel := context.WithTimeout(ctx, cfg.App.Timeout)
	words := services.Load(loadCtx)
	cancel()
	logger.Info("word list loaded", zap.Int("words", len(words)))

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.NewHandler(services, logger).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server started", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", zap.Error(err))
			stop()
		}
	}()

	if cfg.Telegram.Enabled {
		handler, err := bot.NewTelegramAPI(cfg.Telegram.BotToken, cfg.Env, services, cache, cfg.Quiz.AutoAdvance, logger)
		if err != nil {
			logger.Fatal("failed init telegram bot", zap.Error(err))
		}
		go handler.Start(ctx)
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.Timeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", zap.Error(err))
	}
}
