package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	confirmSelectionHandler "github.com/m04kA/SMC-TourBooking/internal/api/handlers/confirm_selection"
	getCountriesHandler "github.com/m04kA/SMC-TourBooking/internal/api/handlers/get_countries"
	getSessionHandler "github.com/m04kA/SMC-TourBooking/internal/api/handlers/get_session"
	goBackHandler "github.com/m04kA/SMC-TourBooking/internal/api/handlers/go_back"
	loadPaymentMethodsHandler "github.com/m04kA/SMC-TourBooking/internal/api/handlers/load_payment_methods"
	placeOrderHandler "github.com/m04kA/SMC-TourBooking/internal/api/handlers/place_order"
	requestEnquiryHandler "github.com/m04kA/SMC-TourBooking/internal/api/handlers/request_enquiry"
	selectPaymentMethodHandler "github.com/m04kA/SMC-TourBooking/internal/api/handlers/select_payment_method"
	setOptionHandler "github.com/m04kA/SMC-TourBooking/internal/api/handlers/set_option"
	setQuantityHandler "github.com/m04kA/SMC-TourBooking/internal/api/handlers/set_quantity"
	startSessionHandler "github.com/m04kA/SMC-TourBooking/internal/api/handlers/start_session"
	submitCheckoutHandler "github.com/m04kA/SMC-TourBooking/internal/api/handlers/submit_checkout"
	"github.com/m04kA/SMC-TourBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TourBooking/internal/config"
	"github.com/m04kA/SMC-TourBooking/internal/infra/storage/cartid"
	ordersRepo "github.com/m04kA/SMC-TourBooking/internal/infra/storage/orders"
	"github.com/m04kA/SMC-TourBooking/internal/integrations/events"
	magentoClient "github.com/m04kA/SMC-TourBooking/internal/integrations/magento"
	sessionsService "github.com/m04kA/SMC-TourBooking/internal/service/sessions"
	"github.com/m04kA/SMC-TourBooking/internal/usecase/booking_flow"
	"github.com/m04kA/SMC-TourBooking/internal/usecase/resolve_availability"
	"github.com/m04kA/SMC-TourBooking/internal/usecase/resolve_options"
	"github.com/m04kA/SMC-TourBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourBooking/pkg/logger"
	"github.com/m04kA/SMC-TourBooking/pkg/metrics"
)

// evictionInterval период очистки неактивных сессий и лимитеров
const evictionInterval = time.Minute

func main() {
	// Загружаем конфигурацию
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TourBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}
	recorder := metrics.NewRecorder(metricsCollector, cfg.Metrics.ServiceName)

	// Клиент GraphQL бэкенда магазина
	magento := magentoClient.NewClient(
		cfg.Magento.Endpoint(),
		cfg.Magento.StoreCode,
		time.Duration(cfg.Magento.Timeout)*time.Second,
		log,
	)
	log.Info("Magento client initialized (endpoint=%s, store=%s, timeout=%ds)",
		cfg.Magento.Endpoint(), cfg.Magento.StoreCode, cfg.Magento.Timeout)

	// Хранилище идентификаторов корзин
	var cartIDs sessionsService.CartIDBackend
	if cfg.Redis.Enabled {
		redisClient, err := cartid.NewRedisClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()

		cartIDs = cartid.NewRedisStore(redisClient, cfg.Redis.KeyPrefix, time.Duration(cfg.Redis.TTLHours)*time.Hour)
		log.Info("Cart ids stored in redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	} else {
		cartIDs = cartid.NewMemoryStore()
		log.Warn("Redis disabled, cart ids are kept in memory")
	}

	// Журнал заказов (если включена база данных)
	var journal sessionsService.OrderJournal
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			journal = ordersRepo.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopCh))
			log.Info("Database metrics collection started")
		} else {
			journal = ordersRepo.NewRepository(db)
		}
	}

	// Публикация событий о заказах (если включен RabbitMQ)
	var publisher sessionsService.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := events.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, log)
		if err != nil {
			log.Fatal("Failed to connect to rabbitmq: %v", err)
		}
		defer p.Close()

		publisher = p
		log.Info("Order events published to queue %s", cfg.RabbitMQ.Queue)
	}

	// Резолверы доступности и зависимых опций
	rules := resolve_options.DefaultRules()
	if len(cfg.Booking.DependencyRules) > 0 {
		rules = make([]resolve_options.DependencyRule, 0, len(cfg.Booking.DependencyRules))
		for _, rule := range cfg.Booking.DependencyRules {
			rules = append(rules, resolve_options.DependencyRule{
				ControllerTitle:       rule.ControllerTitle,
				AffirmativeValueTitle: rule.AffirmativeValueTitle,
				DependentTitles:       rule.DependentTitles,
			})
		}
	}
	resolvers := sessionsService.OptionResolvers{
		Availability: resolve_availability.NewResolver(cfg.Booking.DefaultAllowedSeats),
		Options:      resolve_options.NewResolver(rules),
	}

	// Инициализируем сервис сессий
	sessionSvc := sessionsService.NewService(
		magento,
		magento,
		cartIDs,
		resolvers,
		journal,
		publisher,
		sessionsService.Settings{
			Flow: booking_flow.Settings{
				DateOptionTitle:          cfg.Booking.DateOptionTitle,
				LowAvailabilityThreshold: cfg.Booking.LowAvailability,
				ContactPath:              cfg.Booking.ContactPath,
			},
			SessionTTL: time.Duration(cfg.Booking.SessionTTLMinutes) * time.Minute,
		},
		recorder,
		log,
	)
	go sessionSvc.RunEviction(evictionInterval, stopCh)

	// Инициализируем handlers
	startSession := startSessionHandler.NewHandler(sessionSvc, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	getCountries := getCountriesHandler.NewHandler(sessionSvc, log)
	setOption := setOptionHandler.NewHandler(sessionSvc, log)
	setQuantity := setQuantityHandler.NewHandler(sessionSvc, log)
	confirmSelection := confirmSelectionHandler.NewHandler(sessionSvc, log)
	requestEnquiry := requestEnquiryHandler.NewHandler(sessionSvc, log)
	submitCheckout := submitCheckoutHandler.NewHandler(sessionSvc, log)
	loadPaymentMethods := loadPaymentMethodsHandler.NewHandler(sessionSvc, log)
	selectPaymentMethod := selectPaymentMethodHandler.NewHandler(sessionSvc, log)
	placeOrder := placeOrderHandler.NewHandler(sessionSvc, log)
	goBack := goBackHandler.NewHandler(sessionSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1/bookings").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.TrustedProxies, log)
		if err != nil {
			log.Fatal("Failed to configure rate limiter: %v", err)
		}
		api.Use(limiter.Middleware())
		go limiter.RunEviction(evictionInterval, time.Duration(cfg.RateLimit.IdleMinutes)*time.Minute, stopCh)
		log.Info("Rate limit enabled (%d req/min, burst=%d, trusted proxies=%d)",
			cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, len(cfg.RateLimit.TrustedProxies))
	}
	api.Use(middleware.SessionHeader)

	// --- Сессия ---
	api.HandleFunc("/sessions", startSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/back", goBack.Handle).Methods(http.MethodPost)

	api.HandleFunc("/countries", getCountries.Handle).Methods(http.MethodGet)

	// --- Шаг выбора продукта ---
	api.HandleFunc("/sessions/{sessionId}/options/{optionId}", setOption.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/quantity", setQuantity.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/confirm", confirmSelection.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/enquiry", requestEnquiry.Handle).Methods(http.MethodPost)

	// --- Оформление и оплата ---
	api.HandleFunc("/sessions/{sessionId}/checkout", submitCheckout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/payment-methods", loadPaymentMethods.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/payment", selectPaymentMethod.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/order", placeOrder.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые задачи
	close(stopCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
