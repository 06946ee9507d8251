package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yuvasree15/healthpuls/internal/chat"
	"github.com/yuvasree15/healthpuls/internal/commerce"
	"github.com/yuvasree15/healthpuls/internal/directory"
	"github.com/yuvasree15/healthpuls/internal/facilities"
	"github.com/yuvasree15/healthpuls/internal/gateway"
	"github.com/yuvasree15/healthpuls/internal/labs"
	"github.com/yuvasree15/healthpuls/internal/notification"
	"github.com/yuvasree15/healthpuls/internal/records"
	"github.com/yuvasree15/healthpuls/internal/scheduling"
	"github.com/yuvasree15/healthpuls/internal/session"
	"github.com/yuvasree15/healthpuls/pkg/config"
	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/monitoring"
	"github.com/yuvasree15/healthpuls/pkg/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg.LogLevel)
	metrics := monitoring.NewMetricsCollector("healthpuls-portal")

	st, err := store.OpenBolt(cfg.Store.Path)
	if err != nil {
		appLogger.WithError(err).Error("Failed to open state store")
		os.Exit(1)
	}
	defer st.Close()

	tokens := session.NewTokenIssuer(cfg.JWT)

	sessions, err := session.New(st, tokens, appLogger, metrics)
	if err != nil {
		appLogger.WithError(err).Error("Failed to initialize session service")
		os.Exit(1)
	}

	notifications, err := notification.New(st, appLogger)
	if err != nil {
		appLogger.WithError(err).Error("Failed to initialize notification service")
		os.Exit(1)
	}

	chats, err := chat.New(st, appLogger)
	if err != nil {
		appLogger.WithError(err).Error("Failed to initialize chat service")
		os.Exit(1)
	}

	appointmentRepo, err := scheduling.NewRepository(st)
	if err != nil {
		appLogger.WithError(err).Error("Failed to initialize appointment repository")
		os.Exit(1)
	}
	appointments := scheduling.New(appointmentRepo, notifications, appLogger, metrics, cfg.Scheduling.DoctorInbox)

	payments := commerce.NewSimulatedProcessor(cfg.Payment.DelayMS, appLogger)

	cart, err := commerce.New(st, payments, appLogger, metrics)
	if err != nil {
		appLogger.WithError(err).Error("Failed to initialize commerce service")
		os.Exit(1)
	}

	recordStore, err := records.New(st, appLogger)
	if err != nil {
		appLogger.WithError(err).Error("Failed to initialize record service")
		os.Exit(1)
	}

	labService, err := labs.New(st, payments, appLogger)
	if err != nil {
		appLogger.WithError(err).Error("Failed to initialize lab service")
		os.Exit(1)
	}

	doctors := directory.NewClient(cfg.Directory, appLogger, metrics)

	server := gateway.NewServer(cfg, &gateway.Services{
		Session:      sessions,
		Notification: notifications,
		Chat:         chats,
		Scheduling:   appointments,
		Commerce:     cart,
		Records:      recordStore,
		Labs:         labService,
		Directory:    doctors,
		Facilities:   facilities.New(),
	}, appLogger, metrics)

	go func() {
		if err := server.Start(); err != nil {
			appLogger.WithError(err).Error("Server stopped unexpectedly")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		appLogger.WithError(err).Error("Failed to shut down gracefully")
		os.Exit(1)
	}

	appLogger.Info("Portal server stopped")
}
