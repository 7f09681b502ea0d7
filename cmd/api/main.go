package main

import (
	"context"
	"log"
	"time"

	"uniform-storefront/internal/core/backend"
	"uniform-storefront/internal/core/cache"
	"uniform-storefront/internal/core/config"
	"uniform-storefront/internal/core/logger"
	"uniform-storefront/internal/core/server"
	cartadapter "uniform-storefront/internal/features/cart/adapters"
	carthandler "uniform-storefront/internal/features/cart/handler"
	cartservice "uniform-storefront/internal/features/cart/service"
	catalogadapter "uniform-storefront/internal/features/catalog/adapters"
	cataloghandler "uniform-storefront/internal/features/catalog/handler"
	catalogservice "uniform-storefront/internal/features/catalog/service"
	checkoutadapter "uniform-storefront/internal/features/checkout/adapters"
	checkouthandler "uniform-storefront/internal/features/checkout/handler"
	checkoutservice "uniform-storefront/internal/features/checkout/service"
	customeradapter "uniform-storefront/internal/features/customers/adapters"
	customerhandler "uniform-storefront/internal/features/customers/handler"
	customerservice "uniform-storefront/internal/features/customers/service"
	notifadapter "uniform-storefront/internal/features/notifications/adapters"
	notifhandler "uniform-storefront/internal/features/notifications/handler"
	notifservice "uniform-storefront/internal/features/notifications/service"
	orderadapter "uniform-storefront/internal/features/orders/adapters"
	orderhandler "uniform-storefront/internal/features/orders/handler"
	orderservice "uniform-storefront/internal/features/orders/service"

	"go.uber.org/zap"
)

// @title Uniform Storefront API
// @version 1.0
// @description Session-scoped storefront service for school uniforms: catalog, cart, checkout with Webpay payment, orders and customer accounts.
// @contact.name API Support
// @contact.email support@uniformstorefront.cl
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize Redis and run Health Check
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create redis adapter", zap.Error(err))
	}
	defer redisCache.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Shared backend API client
	backendClient := backend.New(cfg.Backend.URL, time.Duration(cfg.Backend.TimeoutSeconds)*time.Second)

	// Notifications
	toastRepo := notifadapter.NewRedisToastRepository(redisCache)
	notifSvc := notifservice.NewNotificationService(toastRepo)
	notifHdl := notifhandler.NewNotificationHandler(notifSvc)

	// Catalog
	catalogAdapter := catalogadapter.NewBackendAdapter(backendClient)
	catalogSvc := catalogservice.NewCatalogService(catalogAdapter, redisCache)
	catalogHdl := cataloghandler.NewCatalogHandler(catalogSvc)

	// Cart
	cartRepo := cartadapter.NewRedisCartRepository(redisCache, time.Duration(cfg.Session.CartTTLHours)*time.Hour)
	cartSvc := cartservice.NewCartService(cartRepo, catalogSvc, notifSvc)
	cartHdl := carthandler.NewCartHandler(cartSvc)

	// Customers
	customerGateway := customeradapter.NewBackendAdapter(backendClient)
	sessionRepo := customeradapter.NewRedisSessionRepository(redisCache, time.Duration(cfg.Session.CustomerTTLHours)*time.Hour)
	customerSvc := customerservice.NewCustomerService(customerGateway, sessionRepo)
	customerHdl := customerhandler.NewCustomerHandler(customerSvc, notifSvc)

	// Orders
	orderProvider := orderadapter.NewBackendAdapter(backendClient)
	orderSvc := orderservice.NewOrderService(orderProvider, customerSvc)
	orderHdl := orderhandler.NewOrderHandler(orderSvc)

	// Checkout
	checkoutGateway := checkoutadapter.NewBackendAdapter(backendClient)
	checkoutSvc := checkoutservice.NewCheckoutService(checkoutGateway, cartSvc, customerSvc, notifSvc)
	checkoutHdl := checkouthandler.NewCheckoutHandler(checkoutSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/products", catalogHdl.ListProducts)
	srv.App.Get("/products/featured", catalogHdl.FeaturedProducts)
	srv.App.Get("/products/slug/:slug", catalogHdl.GetProductBySlug)
	srv.App.Get("/products/:id", catalogHdl.GetProduct)
	srv.App.Get("/categories", catalogHdl.ListCategories)
	srv.App.Get("/categories/slug/:slug", catalogHdl.GetCategoryBySlug)
	srv.App.Get("/categories/:id", catalogHdl.GetCategory)

	srv.App.Get("/cart", cartHdl.Get)
	srv.App.Post("/cart/items", cartHdl.AddItem)
	srv.App.Put("/cart/items/:productId", cartHdl.UpdateItem)
	srv.App.Delete("/cart/items/:productId", cartHdl.RemoveItem)
	srv.App.Delete("/cart", cartHdl.Clear)

	srv.App.Get("/checkout", checkoutHdl.Prefill)
	srv.App.Post("/checkout", checkoutHdl.Submit)
	srv.App.Get("/checkout/confirm", checkoutHdl.Confirm)
	srv.App.Get("/checkout/simulate", checkoutHdl.Simulate)
	srv.App.Post("/checkout/simulate", checkoutHdl.ResolveSimulation)

	srv.App.Get("/orders/my-orders", orderHdl.MyOrders)
	srv.App.Get("/orders/:id", orderHdl.GetOrder)

	srv.App.Post("/customers/register", customerHdl.Register)
	srv.App.Post("/customers/login", customerHdl.Login)
	srv.App.Post("/customers/logout", customerHdl.Logout)
	srv.App.Get("/customers/me", customerHdl.Profile)

	srv.App.Get("/notifications", notifHdl.Drain)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
