package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fooddelivery/cmd"
	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/pgnotify"
	"fooddelivery/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

//	@title			Food Delivery API
//	@version		1.0
//	@description	Seller availability, order lifecycle, notifications and saved addresses.
//	@host			localhost:8080
//	@BasePath		/
func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	eventsDB, err := sql.Open("postgres", config.DSN())
	if err != nil {
		log.Fatalf("Error opening events connection: %v", err)
	}
	defer eventsDB.Close()

	publisher := pgnotify.NewAsyncPublisher(
		pgnotify.NewPublisher(eventsDB, config.EventsChannel), config.PublishTimeout, logger)

	app := cmd.NewCompositionRoot(config, gormDB, publisher, logger)
	app.Registry().Initialize(ctx)

	hub := pgnotify.NewHub(logger)
	listener, err := pgnotify.NewListener(config.DSN(), config.EventsChannel, logger)
	if err != nil {
		log.Fatalf("Error listening on %s: %v", config.EventsChannel, err)
	}
	defer listener.Close()
	relayDone := make(chan struct{})
	go func() {
		defer close(relayDone)
		pgnotify.NewRelay(listener, hub, logger).Run(ctx)
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	e, err := httpadapter.NewRouter(httpadapter.NewServer(app.Registry(), hub, app.HTTPHandlers(), logger), logger)
	if err != nil {
		log.Fatalf("Error building HTTP router: %v", err)
	}
	// open event streams would otherwise hold Shutdown until the timeout
	e.Server.RegisterOnShutdown(hub.Close)

	go func() {
		logger.Info("http server starting", "port", config.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error running HTTP server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}

	jobManager.StopAll()
	<-relayDone
	publisher.Wait()
}
