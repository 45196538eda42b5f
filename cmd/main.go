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

	addCommentHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/add_comment"
	createBookingHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/create_booking"
	createItemHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/create_item"
	createRequestHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/create_request"
	createUserHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/create_user"
	decideBookingHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/decide_booking"
	deleteItemHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/delete_item"
	deleteUserHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/delete_user"
	getAllRequestsHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/get_all_requests"
	getBookingHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/get_booking"
	getItemHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/get_item"
	getOwnRequestsHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/get_own_requests"
	getOwnerBookingsHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/get_owner_bookings"
	getOwnerItemsHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/get_owner_items"
	getRequestHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/get_request"
	getUserHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/get_user"
	getUserBookingsHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/get_user_bookings"
	getUsersHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/get_users"
	healthHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/health"
	searchItemsHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/search_items"
	updateItemHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/update_item"
	updateUserHandler "github.com/mdemidkin1992/shareit/internal/api/handlers/update_user"
	"github.com/mdemidkin1992/shareit/internal/api/middleware"
	"github.com/mdemidkin1992/shareit/internal/config"
	"github.com/mdemidkin1992/shareit/internal/infra/cache"
	bookingRepo "github.com/mdemidkin1992/shareit/internal/infra/storage/booking"
	commentRepo "github.com/mdemidkin1992/shareit/internal/infra/storage/comment"
	itemRepo "github.com/mdemidkin1992/shareit/internal/infra/storage/item"
	requestRepo "github.com/mdemidkin1992/shareit/internal/infra/storage/request"
	userRepo "github.com/mdemidkin1992/shareit/internal/infra/storage/user"
	bookingsService "github.com/mdemidkin1992/shareit/internal/service/bookings"
	itemsService "github.com/mdemidkin1992/shareit/internal/service/items"
	requestsService "github.com/mdemidkin1992/shareit/internal/service/requests"
	usersService "github.com/mdemidkin1992/shareit/internal/service/users"
	createBookingUC "github.com/mdemidkin1992/shareit/internal/usecase/create_booking"
	"github.com/mdemidkin1992/shareit/pkg/dbmetrics"
	"github.com/mdemidkin1992/shareit/pkg/logger"
	"github.com/mdemidkin1992/shareit/pkg/metrics"
	"github.com/mdemidkin1992/shareit/pkg/txmanager"
)

func main() {
	configPath := os.Getenv("SHAREIT_CONFIG")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
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

	log.Info("Starting shareit...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка работает как обычное соединение
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	itemRepository := itemRepo.NewRepository(wrappedDB)
	commentRepository := commentRepo.NewRepository(wrappedDB)
	requestRepository := requestRepo.NewRepository(wrappedDB)

	// Хранилище пользователей: репозиторий или кэш поверх него
	var users usersService.UserRepository = userRepo.NewRepository(wrappedDB)

	// Кэш пользователей в Redis (если включен)
	if cfg.Redis.Enabled {
		redisClient := cache.NewRedisClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize)
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, lookups will fall back to database: %v", cfg.Redis.Address, err)
		} else {
			log.Info("Connected to Redis at %s", cfg.Redis.Address)
		}
		cancel()

		users = cache.NewUsers(users, redisClient, time.Duration(cfg.Redis.TTL)*time.Second, metricsCollector, log)
	}

	// Инициализируем сервисы
	userSvc := usersService.NewService(users, log)
	itemSvc := itemsService.NewService(
		itemRepository,
		bookingRepository,
		commentRepository,
		requestRepository,
		users,
		txMgr,
		log,
	)
	requestSvc := requestsService.NewService(
		requestRepository,
		itemRepository,
		users,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		users,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		itemRepository,
		users,
		txMgr,
		log,
	)

	pageSize := cfg.Pagination.DefaultSize

	// Инициализируем handlers
	health := healthHandler.NewHandler(wrappedDB, log)

	createUser := createUserHandler.NewHandler(userSvc, log)
	getUsers := getUsersHandler.NewHandler(userSvc, log)
	getUser := getUserHandler.NewHandler(userSvc, log)
	updateUser := updateUserHandler.NewHandler(userSvc, log)
	deleteUser := deleteUserHandler.NewHandler(userSvc, log)

	createItem := createItemHandler.NewHandler(itemSvc, log)
	getItem := getItemHandler.NewHandler(itemSvc, log)
	getOwnerItems := getOwnerItemsHandler.NewHandler(itemSvc, pageSize, log)
	searchItems := searchItemsHandler.NewHandler(itemSvc, pageSize, log)
	updateItem := updateItemHandler.NewHandler(itemSvc, log)
	deleteItem := deleteItemHandler.NewHandler(itemSvc, log)
	addComment := addCommentHandler.NewHandler(itemSvc, log)

	createRequest := createRequestHandler.NewHandler(requestSvc, log)
	getOwnRequests := getOwnRequestsHandler.NewHandler(requestSvc, log)
	getAllRequests := getAllRequestsHandler.NewHandler(requestSvc, pageSize, log)
	getRequest := getRequestHandler.NewHandler(requestSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	decideBooking := decideBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, pageSize, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(bookingSvc, pageSize, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Recover самый внутренний: ответ 500 после паники видят логи и метрики
	r.Use(middleware.Recover(log))

	// ============================================================
	// PUBLIC ROUTES (без X-Sharer-User-Id)
	// ============================================================

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// --- Пользователи ---
	r.HandleFunc("/users", createUser.Handle).Methods(http.MethodPost)
	r.HandleFunc("/users", getUsers.Handle).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}", getUser.Handle).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}", updateUser.Handle).Methods(http.MethodPatch)
	r.HandleFunc("/users/{userId}", deleteUser.Handle).Methods(http.MethodDelete)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Sharer-User-Id)
	// ============================================================

	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).
			WithEviction(time.Duration(cfg.RateLimit.IdleTTL)*time.Second, cfg.RateLimit.MaxKeys)
		protected.Use(limiter.Middleware)
		log.Info("Rate limit enabled: rps=%.2f, burst=%d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// --- Вещи ---
	// /items/search регистрируется раньше /items/{itemId}
	protected.HandleFunc("/items", createItem.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/items", getOwnerItems.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/items/search", searchItems.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/items/{itemId}", getItem.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/items/{itemId}", updateItem.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/items/{itemId}", deleteItem.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/items/{itemId}/comment", addComment.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// /bookings/owner регистрируется раньше /bookings/{bookingId}
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/owner", getOwnerBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", decideBooking.Handle).Methods(http.MethodPatch)

	// --- Запросы на вещи ---
	// /requests/all регистрируется раньше /requests/{requestId}
	protected.HandleFunc("/requests", createRequest.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/requests", getOwnRequests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/requests/all", getAllRequests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/requests/{requestId}", getRequest.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
