package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"tumorvision/config"
	"tumorvision/internal/container"
	"tumorvision/internal/domain/port"
	"tumorvision/internal/infrastructure/onnx"
	"tumorvision/internal/infrastructure/storage"
	applog "tumorvision/internal/log"
)

// environment holds everything a command needs, built from the config.
type environment struct {
	cfg     *config.Config
	logger  *slog.Logger
	app     *container.Container
	closers []func()
}

// loadModel is swapped out in tests.
var loadModel = func(cfg *config.Config, logger *slog.Logger) (port.Model, func()) {
	m, err := onnx.Load(onnx.Options{
		ModelPath:    cfg.ModelPath,
		MetadataPath: cfg.ModelMetadataPath,
		LibraryPath:  cfg.ONNXLibraryPath,
	}, logger)
	if err != nil {
		// Keep running; every diagnosis reports the failure.
		logger.Error("model unavailable", "path", cfg.ModelPath, "error", err)
		return onnx.Unavailable{Err: err}, func() {}
	}
	return m, m.Close
}

func newEnvironment(ctx context.Context) (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := applog.New(os.Stderr, applog.ParseLevel(cfg.LogLevel))
	env := &environment{cfg: cfg, logger: logger}

	chatRepo, closeChat, err := openChatRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	env.closers = append(env.closers, closeChat)

	model, closeModel := loadModel(cfg, logger)
	env.closers = append(env.closers, closeModel)

	env.app = container.New(storage.NewMemoryUserRepository(), chatRepo, model, container.Options{
		MaxImagePixels: cfg.MaxImagePixels,
	}, logger)
	return env, nil
}

func (e *environment) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
}

func openChatRepository(ctx context.Context, cfg *config.Config) (port.ChatRepository, func(), error) {
	switch cfg.ChatStore {
	case config.StoreSQLite:
		repo, err := storage.OpenSQLiteChatRepository(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open chat store: %w", err)
		}
		return repo, func() { _ = repo.Close() }, nil

	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		return storage.NewRedisChatRepository(client, cfg.ChatHistoryTTL), func() { _ = client.Close() }, nil

	default:
		return storage.NewMemoryChatRepository(), func() {}, nil
	}
}
