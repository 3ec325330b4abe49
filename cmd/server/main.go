package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andrealuzzi/tradingweb/internal/api"
	"github.com/andrealuzzi/tradingweb/internal/config"
	"github.com/andrealuzzi/tradingweb/internal/model"
	"github.com/andrealuzzi/tradingweb/internal/prefs"
	"github.com/andrealuzzi/tradingweb/internal/refresh"
	"github.com/andrealuzzi/tradingweb/internal/service"
	"github.com/andrealuzzi/tradingweb/internal/session"
	"github.com/andrealuzzi/tradingweb/internal/stats"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the settings store
	store, err := prefs.Open(cfg.Settings.Path)
	if err != nil {
		log.Fatalf("Failed to open settings store: %v", err)
	}
	defer store.Close()

	log.Printf("Settings store ready: %s", cfg.Settings.Path)

	// Session manager for the login gate
	sessions, err := session.NewManager(cfg.Session.Key, cfg.Session.TTL)
	if err != nil {
		log.Fatalf("Failed to create session manager: %v", err)
	}
	if cfg.Session.Key == "" && cfg.Session.Required {
		log.Println("SESSION_KEY not set; sessions will not survive a restart")
	}

	// Trading backend client
	client := tradeapi.NewClient(cfg.Backend.URL, cfg.Backend.Timeout)
	log.Printf("Using trading backend: %s", cfg.Backend.URL)

	// Create services
	engine := stats.NewEngine(cfg.Stats.TradingDays)
	systemService := service.NewSystemService(store, cfg.Backend.URL)
	accountService := service.NewAccountService(client)
	assetService := service.NewAssetService(client)
	positionService := service.NewPositionService(client)
	tradeService := service.NewTradeService(client)
	orderService := service.NewOrderService(client)
	priceService := service.NewPriceService(client)
	historyService := service.NewHistoryService(client, engine)
	authService := service.NewAuthService(client, sessions)
	settingsService := service.NewSettingsService(store)

	// Auto-refresh poller for positions and history snapshots
	poller := refresh.New(cfg.Refresh.Interval, cfg.Refresh.MaxIdle)
	poller.Register(refresh.KindPositions, func(ctx context.Context, accountID string) (interface{}, error) {
		groups, err := positionService.GetPositionsGrouped(ctx, accountID)
		if err != nil {
			return nil, err
		}
		return groups, nil
	})
	poller.Register(refresh.KindHistory, func(ctx context.Context, accountID string) (interface{}, error) {
		rows, err := historyService.GetHistory(ctx, accountID)
		if err != nil {
			return nil, err
		}
		if rows == nil {
			rows = []model.HistoryRow{}
		}
		return rows, nil
	})
	if err := poller.Start(); err != nil {
		log.Fatalf("Failed to start refresh poller: %v", err)
	}
	defer poller.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:   systemService,
		Account:  accountService,
		Asset:    assetService,
		Position: positionService,
		Trade:    tradeService,
		Order:    orderService,
		Price:    priceService,
		History:  historyService,
		Auth:     authService,
		Settings: settingsService,
		Sessions: sessions,
		Poller:   poller,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
