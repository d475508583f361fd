package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/congestion-router/pkg/engine"
	"github.com/lintang-b-s/congestion-router/pkg/http"
	"github.com/lintang-b-s/congestion-router/pkg/http/usecases"
	"github.com/lintang-b-s/congestion-router/pkg/ledger"
	"github.com/lintang-b-s/congestion-router/pkg/logger"
	"github.com/lintang-b-s/congestion-router/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config_path", "./data/", "directory containing config.yaml")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(*configPath); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	src, err := ledger.NewSource(viper.GetString("LEDGER_SOURCE"), viper.GetString("LEDGER_PATH"),
		viper.GetString("POSTGRES_DSN"), viper.GetString("POSTGRES_TABLE"), viper.GetString("POSTGRES_ORDER_COLUMN"))
	if err != nil {
		logger.Fatal("invalid ledger source", zap.Error(err))
	}

	routingEngine, err := engine.NewEngineFromSource(ctx, src, logger)
	if err != nil {
		logger.Fatal("traffic ledger could not be loaded, refusing to start", zap.Error(err))
	}

	routingService := usecases.NewRoutingService(logger, routingEngine, viper.GetInt("BATCH_WORKERS"))

	api := http.NewServer(logger)
	if _, err := api.Use(ctx, logger, viper.GetBool("USE_RATE_LIMIT"), routingService); err != nil {
		logger.Fatal("failed to start API", zap.Error(err))
	}

	go func() {
		signal := http.GracefulShutdown()
		logger.Info("Congestion Router Server Stopping", zap.String("signal", signal.String()))
		cleanup()
	}()

	if err := api.Wait(); err != nil {
		logger.Error("API stopped with error", zap.Error(err))
	}
	cleanup()
	logger.Info("Congestion Router Server Stopped")
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
