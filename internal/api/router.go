package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/andrealuzzi/tradingweb/internal/api/handlers"
	custommiddleware "github.com/andrealuzzi/tradingweb/internal/api/middleware"
	"github.com/andrealuzzi/tradingweb/internal/config"
	"github.com/andrealuzzi/tradingweb/internal/refresh"
	"github.com/andrealuzzi/tradingweb/internal/service"
	"github.com/andrealuzzi/tradingweb/internal/session"
)

// Services bundles everything the router wires into handlers.
type Services struct {
	System   *service.SystemService
	Account  *service.AccountService
	Asset    *service.AssetService
	Position *service.PositionService
	Trade    *service.TradeService
	Order    *service.OrderService
	Price    *service.PriceService
	History  *service.HistoryService
	Auth     *service.AuthService
	Settings *service.SettingsService
	Sessions *session.Manager
	Poller   *refresh.Poller
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Open endpoints: health, version, and the login gate itself.
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		authHandler := handlers.NewAuthHandler(svc.Auth)
		r.Post("/users/check_credentials", authHandler.CheckCredentials)

		// Everything else sits behind the session gate when one is
		// configured.
		r.Group(func(r chi.Router) {
			if cfg.Session.Required {
				r.Use(custommiddleware.RequireSession(svc.Sessions))
			}

			accountHandler := handlers.NewAccountHandler(svc.Account)
			historyHandler := handlers.NewHistoryHandler(svc.History, svc.Poller)
			r.Route("/accounts", func(r chi.Router) {
				r.Get("/", accountHandler.GetAccounts)
				r.Post("/", accountHandler.CreateAccount)
				r.Put("/{id}", accountHandler.UpdateAccount)
				r.Delete("/{id}", accountHandler.DeleteAccount)
				r.Get("/{id}/overview", historyHandler.GetOverview)
			})
			r.Get("/owners", accountHandler.GetOwners)

			assetHandler := handlers.NewAssetHandler(svc.Asset)
			r.Route("/assets", func(r chi.Router) {
				r.Get("/", assetHandler.GetAssets)
				r.Post("/", assetHandler.CreateAsset)
				r.Put("/{symbol}", assetHandler.UpdateAsset)
				r.Delete("/{symbol}", assetHandler.DeleteAsset)
			})

			r.Route("/accounthist", func(r chi.Router) {
				r.Get("/{accountId}", historyHandler.GetHistory)
				r.Get("/{accountId}/statistics", historyHandler.GetStatistics)
			})

			positionHandler := handlers.NewPositionHandler(svc.Position, svc.Poller)
			r.Route("/positions", func(r chi.Router) {
				// The path parameter is an account ID on GET and a
				// position ID on DELETE; chi requires one wildcard name
				// per segment.
				r.Get("/{id}", positionHandler.GetPositions)
				r.Post("/", positionHandler.CreatePosition)
				r.Delete("/{id}", positionHandler.DeletePosition)
			})

			tradeHandler := handlers.NewTradeHandler(svc.Trade)
			r.Route("/trades", func(r chi.Router) {
				r.Get("/{accountId}", tradeHandler.GetTrades)
				r.Get("/{accountId}/{symbol}", tradeHandler.GetTradesBySymbol)
				r.Post("/", tradeHandler.CreateTrade)
			})

			orderHandler := handlers.NewOrderHandler(svc.Order)
			r.Route("/orders", func(r chi.Router) {
				r.Get("/{accountId}", orderHandler.GetOrders)
				r.Post("/", orderHandler.CreateOrder)
			})

			priceHandler := handlers.NewPriceHandler(svc.Price)
			r.Get("/prices/{symbol}", priceHandler.GetPrices)

			settingsHandler := handlers.NewSettingsHandler(svc.Settings)
			r.Route("/settings", func(r chi.Router) {
				r.Get("/theme", settingsHandler.GetTheme)
				r.Put("/theme", settingsHandler.SetTheme)
			})

			refreshHandler := handlers.NewRefreshHandler(svc.Poller)
			r.Post("/refresh/{kind}/{accountId}", refreshHandler.Refresh)
		})
	})

	return r
}
