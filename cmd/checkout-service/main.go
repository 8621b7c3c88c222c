package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/flashmart/checkout-service/internal/app/background"
	"github.com/flashmart/checkout-service/internal/app/setup"
	"github.com/flashmart/checkout-service/internal/delivery/http/handlers"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const serviceName = "checkout-service"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading config from environment")
	}

	deps, err := setup.InitializeDependencies(serviceName)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}
	defer deps.Logger.Sync()

	usecases := setup.InitializeUseCases(deps)

	router := handlers.NewRouter(
		handlers.NewProductHandler(usecases.ProductUsecase),
		handlers.NewHoldHandler(usecases.HoldUsecase, usecases.ProductUsecase),
		handlers.NewOrderHandler(usecases.OrderUsecase, usecases.HoldUsecase),
		handlers.NewWebhookHandler(usecases.WebhookUsecase),
		handlers.NewHealthHandler(deps.DB),
		deps.Metrics,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper := background.NewSweeperTask(
		usecases.HoldUsecase, deps.Metrics, deps.Config.Checkout.SweepInterval)
	go sweeper.Start(ctx)

	server := &http.Server{
		Addr:         net.JoinHostPort(deps.Config.HTTPServer.Host, deps.Config.HTTPServer.Port),
		Handler:      router,
		ReadTimeout:  deps.Config.HTTPServer.ReadTimeout,
		WriteTimeout: deps.Config.HTTPServer.WriteTimeout,
	}

	srvErr := make(chan error, 1)
	go func() {
		zap.L().Info("http server started", zap.String("addr", server.Addr))
		srvErr <- server.ListenAndServe()
	}()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("http server failed", zap.Error(err))
		}
	case <-ctx.Done():
		zap.L().Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("http server shutdown failed", zap.Error(err))
	}
	zap.L().Info("checkout service stopped")
}
