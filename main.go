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

	"github.com/koheiarai-crypto/ai-proxy/backend"
	"github.com/koheiarai-crypto/ai-proxy/config"
	"github.com/koheiarai-crypto/ai-proxy/logging"
	"github.com/koheiarai-crypto/ai-proxy/metrics"
	"github.com/koheiarai-crypto/ai-proxy/server"
	"github.com/sirupsen/logrus"
)

var version = "dev"

func main() {
	config.ParseArgs()
	if config.CliArgs.Version {
		fmt.Println(version)
		return
	}

	cfg, err := config.LoadConfig(config.CliArgs.ConfigFile)
	if err != nil {
		logging.GetLogger().Fatalf("Failed to load configuration: %v", err)
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if config.CliArgs.Debug {
		level = logrus.DebugLevel
	}
	logging.InitLogger(level, cfg.LogFormat)
	log := logging.GetLogger()

	router := server.NewRouter(cfg, backend.NewBackendClient(), metrics.NewRecorder(nil), server.Routes)

	srv := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on %s", cfg.ListenAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infoln("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
