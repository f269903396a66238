package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/d60-Lab/orkud/config"
	"github.com/d60-Lab/orkud/internal/store"
	"github.com/d60-Lab/orkud/pkg/database"
)

// OpenSink builds the sink selected by cfg.Persistence.Driver. The returned
// close releases any connection the sink holds.
func OpenSink(ctx context.Context, cfg *config.Config) (store.Sink, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Persistence.Driver {
	case config.SinkFile:
		return NewFileSink(cfg.Persistence.FilePath), noop, nil

	case config.SinkMemory:
		return NewMemorySink(), noop, nil

	case config.SinkDatabase:
		db, err := database.InitDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("get sql.DB: %w", err)
		}
		sink, err := NewGormSink(db)
		if err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
		return sink, sqlDB.Close, nil

	case config.SinkRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
		}
		return NewRedisSink(client, cfg.Persistence.RedisKey), client.Close, nil

	case config.SinkS3:
		client, err := NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, nil, err
		}
		return NewS3Sink(client, cfg.S3.Bucket, cfg.Persistence.S3Key), noop, nil
	}
	return nil, nil, fmt.Errorf("unknown persistence driver %q", cfg.Persistence.Driver)
}
