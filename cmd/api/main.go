package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/niteshnanu12/vybe/internal/config"
	"github.com/niteshnanu12/vybe/internal/platform/clock"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Critical: invalid configuration: %v", err)
	}
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := newApp(ctx, cfg, clock.SystemClock{}, clock.TickerScheduler{})
	if err != nil {
		log.Fatalf("Critical: %v", err)
	}
	defer a.Close()

	// No WriteTimeout: workout event streams stay open.
	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     a.router,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 120 * time.Second,
	}
	srv.RegisterOnShutdown(a.workouts.Close)

	go func() {
		log.Printf("Vybe API running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown error: %v", err)
	}
	cancel()

	log.Println("Server stopped gracefully.")
}
