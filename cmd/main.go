package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskrank/internal/config"
	router "taskrank/internal/http"
	"taskrank/internal/http/handlers"
	"taskrank/internal/report"
	"taskrank/internal/service"
)

func main() {
	configPath := flag.String("config", "", "optional TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	svc, err := service.New(time.Now)
	if err != nil {
		log.Fatalf("service initiation failed: %v", err)
	}

	handler := handlers.New(svc, report.NewExporter(), handlers.Options{
		DefaultStrategy: cfg.DefaultStrategy,
		SuggestLimit:    cfg.SuggestLimit,
	})

	router := router.New(handler)

	server := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("listening on %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %s\n", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	<-stop
	log.Printf("shut down signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}

	log.Printf("shut down gracefully")
}
