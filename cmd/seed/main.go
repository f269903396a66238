package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/d60-Lab/orkud/config"
	"github.com/d60-Lab/orkud/internal/repository"
	"github.com/d60-Lab/orkud/internal/seed"
	"github.com/d60-Lab/orkud/internal/store"
	"github.com/d60-Lab/orkud/pkg/logger"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to config file")
	fixturePath := pflag.StringP("fixture", "f", "", "YAML fixture to load (default: built-in demo data)")
	pflag.Parse()

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

	var fx *seed.Fixture
	if *fixturePath != "" {
		fx, err = seed.LoadFile(*fixturePath)
	} else {
		fx, err = seed.Demo()
	}
	if err != nil {
		logger.Fatal("failed to load fixture", zap.Error(err))
	}

	ctx := context.Background()
	sink, closeSink, err := repository.OpenSink(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open persistence sink", zap.Error(err))
	}
	defer closeSink()

	st, err := store.Open(ctx, sink)
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err))
	}
	res, err := seed.NewSeeder(st).Apply(ctx, fx)
	if err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
	fmt.Printf("seeded users=%d posts=%d comments=%d likes=%d follows=%d tickets=%d\n",
		res.Users, res.Posts, res.Comments, res.Likes, res.Follows, res.Tickets)
}
