package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel-inventory/config"
	"hotel-inventory/controllers"
	"hotel-inventory/routes"
	"hotel-inventory/services"
	"hotel-inventory/store"
	"hotel-inventory/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	newID, err := utils.NewIDGenerator(cfg.IDScheme)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	st, err := store.Open(cfg)
	if err != nil {
		log.Fatalf("❌ Store open failed: %v", err)
	}
	log.Printf("✅ Using %s store", cfg.StoreDriver)

	// Initialize services
	roomTypeService := services.NewRoomTypeService(st, newID, cfg.StrictPayloads)
	roomService := services.NewRoomService(st, newID, cfg.StrictPayloads, cfg.MinPriceAlone)

	if cfg.SeedRoomTypes {
		services.SeedRoomTypes(roomTypeService)
	}

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService)
	roomTypeController := controllers.NewRoomTypeController(roomTypeService)

	router := routes.SetupRouter(cfg, roomController, roomTypeController)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server is running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
