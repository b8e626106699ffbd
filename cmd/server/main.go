package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"envmonitor/internal/handlers"
	"envmonitor/internal/logger"
	"envmonitor/internal/repository"
	"envmonitor/internal/server"
	"envmonitor/internal/service"

	"github.com/spf13/viper"

	_ "envmonitor/docs"
)

const defaultSimTick = 10 * time.Second

// @title        Environment Monitor API
// @version      1.0
// @description  Sensor reading ingestion, windowed statistics, and live distribution.
// @BasePath     /
func main() {
	// load config.yml first so the log level is configurable
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	// open DB
	conn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, statsLocation(log))
	apiHandler := handlers.NewHandler(services, log)
	if d := viper.GetDuration("stream.interval"); d > 0 {
		apiHandler.SetStreamInterval(d)
	}

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// optional synthetic sensor source
	if viper.GetBool("simulator.enabled") {
		tick := viper.GetDuration("simulator.tick")
		if tick <= 0 {
			tick = defaultSimTick
		}
		log.Infow("starting sensor simulator", "tick", tick)
		go services.Simulator.Run(ctx, tick)
	}

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "envmonitor.db")
		dbPath = "envmonitor.db"
	}
	return repository.InitDB(dbPath)
}

// statsLocation resolves the fixed timezone used for calendar-date windows.
func statsLocation(log *logger.Logger) *time.Location {
	name := viper.GetString("stats.timezone")
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warnw("invalid stats.timezone; falling back to UTC", "timezone", name, "err", err)
		return time.UTC
	}
	return loc
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
