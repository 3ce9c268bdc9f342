package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/Balogunsamuel/grocery-shop-web/internal/checkout"
	"github.com/Balogunsamuel/grocery-shop-web/internal/config"
	"github.com/Balogunsamuel/grocery-shop-web/internal/handlers"
	"github.com/Balogunsamuel/grocery-shop-web/internal/store"
)

func main() {
	handlerOpts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := store.NewStore(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		slog.Error("Failed to initialize schema", "error", err)
		os.Exit(1)
	}
	if cfg.Seed {
		if err := db.Seed(); err != nil {
			slog.Error("Failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.CookieSecure
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"
	if cfg.CookieDomain != "" {
		sessionStore.Options.Domain = cfg.CookieDomain
	}

	gateway := checkout.NewSimulatedGateway(cfg.PaymentDelay)

	catalogHandler := &handlers.CatalogHandler{Store: db}
	cartHandler := &handlers.CartHandler{Store: db, Sessions: sessionStore}
	orderHandler := &handlers.OrderHandler{
		Store:       db,
		Sessions:    sessionStore,
		Gateway:     gateway,
		FlowTimeout: cfg.CheckoutTimeout,
	}
	paymentHandler := &handlers.PaymentHandler{Gateway: gateway}
	adminHandler := &handlers.AdminHandler{
		Store:     db,
		Sessions:  sessionStore,
		UploadDir: cfg.UploadDir,
	}

	mux := http.NewServeMux()

	// Static Files (uploaded product images)
	fileServer := http.FileServer(http.Dir("./static"))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	// Rate Limiter for order submission
	rateLimiter := handlers.NewRateLimiter(10 * time.Second)

	// Storefront
	mux.HandleFunc("GET /api/products", catalogHandler.ListProducts)
	mux.HandleFunc("GET /api/products/{id}", catalogHandler.GetProduct)
	mux.HandleFunc("GET /api/categories", catalogHandler.ListCategories)

	mux.HandleFunc("GET /api/cart", cartHandler.GetCart)
	mux.HandleFunc("POST /api/cart/items", cartHandler.AddItem)
	mux.HandleFunc("PUT /api/cart/items/{id}", cartHandler.UpdateItem)
	mux.HandleFunc("DELETE /api/cart/items/{id}", cartHandler.RemoveItem)
	mux.HandleFunc("DELETE /api/cart", cartHandler.ClearCart)

	mux.HandleFunc("POST /api/payment/create-intent", paymentHandler.CreateIntent)
	mux.HandleFunc("POST /api/payment/confirm", paymentHandler.ConfirmPayment)

	mux.HandleFunc("POST /api/orders", rateLimiter.Middleware(orderHandler.PlaceOrder))
	mux.HandleFunc("GET /api/orders/{id}", orderHandler.GetOrder)

	// Admin. CSRF protection wraps this sub-router only; the
	// storefront API stays token-free for plain JSON clients.
	adminMux := http.NewServeMux()
	adminMux.HandleFunc("GET /api/admin/csrf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CSRF-Token", csrf.Token(r))
		w.WriteHeader(http.StatusNoContent)
	})
	adminMux.HandleFunc("POST /api/admin/login", adminHandler.Login)
	adminMux.HandleFunc("POST /api/admin/logout", adminHandler.Logout)

	adminMux.HandleFunc("GET /api/admin/dashboard", adminHandler.AuthMiddleware(adminHandler.Dashboard))

	adminMux.HandleFunc("GET /api/admin/products", adminHandler.AuthMiddleware(adminHandler.ListProducts))
	adminMux.HandleFunc("POST /api/admin/products", adminHandler.AuthMiddleware(adminHandler.CreateProduct))
	adminMux.HandleFunc("PUT /api/admin/products/{id}", adminHandler.AuthMiddleware(adminHandler.UpdateProduct))
	adminMux.HandleFunc("DELETE /api/admin/products/{id}", adminHandler.AuthMiddleware(adminHandler.DeleteProduct))
	adminMux.HandleFunc("POST /api/admin/products/{id}/image", adminHandler.AuthMiddleware(adminHandler.UploadProductImage))

	adminMux.HandleFunc("GET /api/admin/categories", adminHandler.AuthMiddleware(adminHandler.ListCategories))
	adminMux.HandleFunc("POST /api/admin/categories", adminHandler.AuthMiddleware(adminHandler.CreateCategory))
	adminMux.HandleFunc("PUT /api/admin/categories/{id}", adminHandler.AuthMiddleware(adminHandler.UpdateCategory))
	adminMux.HandleFunc("DELETE /api/admin/categories/{id}", adminHandler.AuthMiddleware(adminHandler.DeleteCategory))

	adminMux.HandleFunc("GET /api/admin/orders", adminHandler.AuthMiddleware(adminHandler.ListOrders))
	adminMux.HandleFunc("PUT /api/admin/orders/{id}", adminHandler.AuthMiddleware(adminHandler.UpdateOrderStatus))

	adminMux.HandleFunc("GET /api/admin/customers", adminHandler.AuthMiddleware(adminHandler.ListCustomers))
	adminMux.HandleFunc("GET /api/admin/payments", adminHandler.AuthMiddleware(adminHandler.ListPayments))

	CSRF := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure),
		csrf.TrustedOrigins([]string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port, "localhost", "127.0.0.1"}),
	)
	mux.Handle("/api/admin/", CSRF(adminMux))

	// Chain: Logger -> Security Headers -> Mux
	handler := handlers.LoggingMiddleware(
		handlers.SecurityHeadersMiddleware(mux),
	)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}
