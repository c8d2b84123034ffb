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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"

	"github.com/basilogast/portfolio-server/internal/config"
	"github.com/basilogast/portfolio-server/internal/db"
	"github.com/basilogast/portfolio-server/internal/handler"
	applog "github.com/basilogast/portfolio-server/internal/log"
	"github.com/basilogast/portfolio-server/internal/mail"
	"github.com/basilogast/portfolio-server/internal/router"
	"github.com/basilogast/portfolio-server/internal/service"
	"github.com/basilogast/portfolio-server/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	_ = godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	logger, err := applog.NewLogger(cfg.LogLevel)
	if err != nil {
		return eris.Wrap(err, "initialising logger")
	}

	flush, err := applog.InitSentry(logger, applog.SentrySettings{
		DSN:         cfg.SentryDSN,
		Environment: cfg.Environment,
	})
	if err != nil {
		return eris.Wrap(err, "initialising sentry")
	}
	defer flush()

	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		return eris.Wrap(err, "opening database")
	}
	defer func() {
		if closeErr := db.Close(gdb); closeErr != nil {
			logger.WithError(closeErr).Error("closing database")
		}
	}()

	if err := db.Migrate(gdb); err != nil {
		return eris.Wrap(err, "running migrations")
	}

	bucket, err := storage.NewBucket(ctx, cfg.StorageBucket, cfg.StorageCredentialsFile)
	if err != nil {
		return eris.Wrap(err, "connecting to object store")
	}

	sender := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	records := service.NewRecordService(gdb, bucket, logger)
	contact := service.NewContactService(sender, cfg.SMTPUsername, cfg.ContactRecipient, logger)

	api := handler.NewAPI(records, contact, bucket, logger)
	engine := router.SetupRouter(router.Options{
		API:            api,
		SessionSecret:  cfg.SessionSecret,
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         logger,
	})

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: engine,
	}

	logger.WithField("addr", httpServer.Addr).Info("starting http server")

	serverErrCh := make(chan error, 1)
	go func() {
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		} else {
			serverErrCh <- nil
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErrCh:
		if err != nil {
			return eris.Wrap(err, "http server error")
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return eris.Wrap(err, "shutting down http server")
	}

	logger.Info("http server shut down cleanly")
	return nil
}
