package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"shopstock/internal/config"
	"shopstock/internal/ledger"
	"shopstock/internal/metrics"
	custommiddleware "shopstock/internal/middleware"
	"shopstock/internal/service"
	"shopstock/internal/storage"
	"shopstock/internal/store"
	"shopstock/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *sql.DB
}

// NewServer constructs the whole application: storage, entity stores,
// ledger, metrics engine, services and handlers, wired in dependency
// order. The product store must exist before the order and sale paths
// since both route stock movement through it.
func NewServer(cfg *config.Config, logger *zap.Logger, db *sql.DB) (*Server, error) {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(cfg.Server.AllowedOrigins, cfg.Server.Env == "development"))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	ctx := context.Background()
	durable := storage.NewPostgresStore(db)

	// Initialize entity stores (load-on-init, seed fallback)
	products, err := store.NewProductStore(ctx, durable, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize product store: %w", err)
	}
	providers, err := store.NewProviderStore(ctx, durable, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize provider store: %w", err)
	}
	users, err := store.NewUserStore(ctx, durable, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize user store: %w", err)
	}
	orders, err := store.NewOrderStore(ctx, durable, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize order store: %w", err)
	}
	sales, err := store.NewSaleStore(ctx, durable, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sale store: %w", err)
	}

	// Initialize ledger, metrics and services
	stockLedger := ledger.New(products, logger)
	engine := metrics.NewEngine(products, providers, orders, sales)
	authService := service.NewAuthService(users, cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	orderService := service.NewOrderService(orders, products, providers, stockLedger)
	saleService := service.NewSaleService(sales, products, stockLedger)

	authMiddleware := custommiddleware.AuthMiddleware(authService, logger)

	// Register routes
	transport.NewAuthHandler(authService, logger).RegisterRoutes(router)
	transport.NewProductHandler(products, logger).RegisterRoutes(router, authMiddleware)
	transport.NewProviderHandler(providers, logger).RegisterRoutes(router, authMiddleware)
	transport.NewUserHandler(users, logger).RegisterRoutes(router, authMiddleware)
	transport.NewOrderHandler(orders, orderService, logger).RegisterRoutes(router, authMiddleware)
	transport.NewSaleHandler(sales, saleService, logger).RegisterRoutes(router, authMiddleware)
	transport.NewDashboardHandler(engine, logger).RegisterRoutes(router, authMiddleware)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
	}

	return server, nil
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
