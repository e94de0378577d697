package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/points-bridge/internal/client"
	"github.com/denmor86/points-bridge/internal/config"
	"github.com/denmor86/points-bridge/internal/logger"
	"github.com/denmor86/points-bridge/internal/network/router"
	"github.com/denmor86/points-bridge/internal/services"
	"github.com/denmor86/points-bridge/internal/storage"
	"github.com/denmor86/points-bridge/internal/worker"
)

func Run(config config.Config) {

	database, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		logger.Panic("can't create database:", err.Error())
	}
	if err := database.Initialize(); err != nil {
		logger.Panic("can't initialize database:", err.Error())
	}
	defer database.Close()

	store := storage.NewStorage(database)

	pointsClient := client.NewPointsClient(config.Points.APIAddr, config.Points.APIToken, config.Points.CustodyAccount, &http.Client{})
	chainClient, err := client.NewChainClient(config.Chain, &http.Client{})
	if err != nil {
		logger.Panic("can't create chain client:", err.Error())
	}

	identity := services.NewIdentity(config, store.Users)
	signer := services.NewSigner(store.Withdrawals, chainClient)
	withdrawals := services.NewWithdrawals(store.Users, store.Withdrawals, store.Audit,
		pointsClient, chainClient, signer, config.Reconcile.Asset)
	deliveries := services.NewDeliveries(store.Deliveries, store.Settings, store.Queue,
		pointsClient, chainClient, withdrawals, config.Chain, config.Reconcile.Asset)
	reconcile := services.NewReconcile(store.Reconcile, pointsClient, config.Reconcile.Asset)

	router := router.NewRouter(config, identity, withdrawals)

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}

	// Создание и запуск фоновых воркеров
	dispatcher := worker.NewDispatcher(store.Queue, chainClient, config.Dispatch, config.Chain.DefaultGasPrice)
	monitor := worker.NewDeliveryMonitor(deliveries, store.Settings, pointsClient, config.Deliveries)
	reconciler := worker.NewReconciler(reconcile, config.Reconcile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	dispatcher.Start(ctx)
	monitor.Start(ctx)
	reconciler.Start(ctx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(
			"Starting server config:", config.Server,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	dispatcher.Stop()
	monitor.Stop()
	reconciler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
}
