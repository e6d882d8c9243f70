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

	cancelBookingHandler "github.com/wildpath/WP-BookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/wildpath/WP-BookingService/internal/api/handlers/check_availability"
	confirmBookingHandler "github.com/wildpath/WP-BookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/wildpath/WP-BookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/wildpath/WP-BookingService/internal/api/handlers/get_booking"
	getDisabledDatesHandler "github.com/wildpath/WP-BookingService/internal/api/handlers/get_disabled_dates"
	getUserBookingsHandler "github.com/wildpath/WP-BookingService/internal/api/handlers/get_user_bookings"
	quotePriceHandler "github.com/wildpath/WP-BookingService/internal/api/handlers/quote_price"
	validatePromotionHandler "github.com/wildpath/WP-BookingService/internal/api/handlers/validate_promotion"
	"github.com/wildpath/WP-BookingService/internal/api/middleware"
	"github.com/wildpath/WP-BookingService/internal/config"
	adventureRepo "github.com/wildpath/WP-BookingService/internal/infra/storage/adventure"
	availabilityRepo "github.com/wildpath/WP-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/wildpath/WP-BookingService/internal/infra/storage/booking"
	promotionRepo "github.com/wildpath/WP-BookingService/internal/infra/storage/promotion"
	paymentServiceClient "github.com/wildpath/WP-BookingService/internal/integrations/paymentservice"
	bookingsService "github.com/wildpath/WP-BookingService/internal/service/bookings"
	promotionsService "github.com/wildpath/WP-BookingService/internal/service/promotions"
	checkAvailabilityUC "github.com/wildpath/WP-BookingService/internal/usecase/check_availability"
	createBookingUC "github.com/wildpath/WP-BookingService/internal/usecase/create_booking"
	getDisabledDatesUC "github.com/wildpath/WP-BookingService/internal/usecase/get_disabled_dates"
	quotePriceUC "github.com/wildpath/WP-BookingService/internal/usecase/quote_price"
	"github.com/wildpath/WP-BookingService/pkg/dbmetrics"
	"github.com/wildpath/WP-BookingService/pkg/logger"
	"github.com/wildpath/WP-BookingService/pkg/metrics"
	"github.com/wildpath/WP-BookingService/pkg/simpletxmanager"
	"github.com/wildpath/WP-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting WP-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем клиент PaymentService
	paymentClient := paymentServiceClient.NewClient(
		cfg.PaymentService.URL,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PaymentService=%s timeout=%ds)",
		cfg.PaymentService.URL, cfg.PaymentService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		adventureRepository    *adventureRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		bookingRepository      *bookingRepo.Repository
		promotionRepository    *promotionRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		adventureRepository = adventureRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		promotionRepository = promotionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		adventureRepository = adventureRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		promotionRepository = promotionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		availabilityRepository,
		paymentClient,
		log,
	)
	promotionSvc := promotionsService.NewService(
		promotionRepository,
		log,
	)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		adventureRepository,
		availabilityRepository,
		bookingRepository,
		log,
	)
	getDisabledDatesUseCase := getDisabledDatesUC.NewUseCase(
		availabilityRepository,
		bookingRepository,
		log,
	)
	quotePriceUseCase := quotePriceUC.NewUseCase(
		adventureRepository,
		promotionSvc,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		adventureRepository,
		availabilityRepository,
		bookingRepository,
		promotionSvc,
		txMgr,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getDisabledDates := getDisabledDatesHandler.NewHandler(getDisabledDatesUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	validatePromotion := validatePromotionHandler.NewHandler(promotionSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка доступности даты
	api.HandleFunc("/adventures/{adventureId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)

	// Недоступные даты для календаря
	api.HandleFunc("/adventures/{adventureId}/disabled-dates",
		getDisabledDates.Handle).Methods(http.MethodGet)

	// Расчет стоимости
	api.HandleFunc("/pricing/quote", quotePrice.Handle).Methods(http.MethodPost)

	// Валидация промокода
	api.HandleFunc("/promotions/validate", validatePromotion.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Подтверждение бронирования после оплаты
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
