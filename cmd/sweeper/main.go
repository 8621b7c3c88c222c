package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/flashmart/checkout-service/internal/app/background"
	"github.com/flashmart/checkout-service/internal/app/setup"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Standalone expiry sweeper. The checkout service runs the same task in-process;
// this binary exists for ops runs against a live database and for deployments
// that want sweeping isolated from request traffic.
func main() {
	once := flag.Bool("once", false, "run a single sweep and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading config from environment")
	}

	deps, err := setup.InitializeDependencies("checkout-sweeper")
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}
	defer deps.Logger.Sync()

	usecases := setup.InitializeUseCases(deps)
	sweeper := background.NewSweeperTask(
		usecases.HoldUsecase, deps.Metrics, deps.Config.Checkout.SweepInterval)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *once {
		released, err := sweeper.RunOnce(ctx)
		if err != nil {
			zap.L().Fatal("sweep failed", zap.Error(err))
		}
		zap.L().Info("sweep finished", zap.Int("released", released))
		return
	}

	sweeper.Start(ctx)
}
