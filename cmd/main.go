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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/create_booking"
	createNoticeHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/create_notice"
	createPaymentHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/create_payment"
	createReviewHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/create_review"
	createSpaceHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/create_space"
	deleteNoticeHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/delete_notice"
	deleteSpaceHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/delete_space"
	getBookingHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/get_booking"
	getSpaceHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/get_space"
	getUserBookingsHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/get_user_bookings"
	listAreasHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/list_areas"
	listCitiesHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/list_cities"
	listNoticesHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/list_notices"
	listPaymentsHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/list_payments"
	listReviewsHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/list_reviews"
	listSpacesHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/list_spaces"
	listStreetsHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/list_streets"
	quoteBookingHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/quote_booking"
	reportOccupancyHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/report_occupancy"
	updateSpaceHandler "github.com/smartpark/SP-BookingService/internal/api/handlers/update_space"
	"github.com/smartpark/SP-BookingService/internal/api/middleware"
	"github.com/smartpark/SP-BookingService/internal/config"
	"github.com/smartpark/SP-BookingService/internal/infra/cache"
	bookingRepo "github.com/smartpark/SP-BookingService/internal/infra/storage/booking"
	noticeRepo "github.com/smartpark/SP-BookingService/internal/infra/storage/notice"
	paymentRepo "github.com/smartpark/SP-BookingService/internal/infra/storage/payment"
	reviewRepo "github.com/smartpark/SP-BookingService/internal/infra/storage/review"
	spaceRepo "github.com/smartpark/SP-BookingService/internal/infra/storage/space"
	discountClient "github.com/smartpark/SP-BookingService/internal/integrations/discountservice"
	"github.com/smartpark/SP-BookingService/internal/queue"
	bookingsService "github.com/smartpark/SP-BookingService/internal/service/bookings"
	noticesService "github.com/smartpark/SP-BookingService/internal/service/notices"
	paymentsService "github.com/smartpark/SP-BookingService/internal/service/payments"
	reviewsService "github.com/smartpark/SP-BookingService/internal/service/reviews"
	spacesService "github.com/smartpark/SP-BookingService/internal/service/spaces"
	createBookingUC "github.com/smartpark/SP-BookingService/internal/usecase/create_booking"
	quoteBookingUC "github.com/smartpark/SP-BookingService/internal/usecase/quote_booking"
	"github.com/smartpark/SP-BookingService/pkg/dbmetrics"
	"github.com/smartpark/SP-BookingService/pkg/logger"
	"github.com/smartpark/SP-BookingService/pkg/metrics"
	"github.com/smartpark/SP-BookingService/pkg/simpletxmanager"
	"github.com/smartpark/SP-BookingService/pkg/txmanager"
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

	log.Info("Starting SP-BookingService...")
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

	// Клиент сервиса предсказания скидок
	discount := discountClient.NewClient(
		cfg.DiscountService.URL,
		time.Duration(cfg.DiscountService.Timeout)*time.Second,
		log,
	)
	log.Info("Discount service client initialized (url=%s, timeout=%ds)",
		cfg.DiscountService.URL, cfg.DiscountService.Timeout)

	// Публикация доменных событий (если брокер включен)
	var publisher interface {
		Publish(ctx context.Context, queueName string, event queue.BookingEvent) error
	}
	if cfg.Broker.Enabled {
		publisher = queue.NewPublisher(cfg.Broker.URL, log)
		log.Info("Event publisher initialized (broker=%s)", cfg.Broker.URL)
	} else {
		publisher = queue.NoopPublisher{}
		log.Info("Event publisher disabled")
	}

	// Redis-кеш списков парковок (если включен)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		log.Info("Redis cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	}
	spaceCache := cache.New(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second, log)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		spaceRepository   *spaceRepo.Repository
		noticeRepository  *noticeRepo.Repository
		reviewRepository  *reviewRepo.Repository
		paymentRepository *paymentRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		spaceRepository = spaceRepo.NewRepository(wrappedDB)
		noticeRepository = noticeRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		spaceRepository = spaceRepo.NewRepository(db)
		noticeRepository = noticeRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, publisher, log)
	spaceSvc := spacesService.NewService(spaceRepository, spaceCache, log)
	noticeSvc := noticesService.NewService(noticeRepository, log)
	reviewSvc := reviewsService.NewService(reviewRepository, spaceRepository, log)
	paymentSvc := paymentsService.NewService(paymentRepository, bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		spaceRepository,
		discount,
		publisher,
		txMgr,
		log,
	)
	quoteBookingUseCase := quoteBookingUC.NewUseCase(spaceRepository, discount, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	quoteBooking := quoteBookingHandler.NewHandler(quoteBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listSpaces := listSpacesHandler.NewHandler(spaceSvc, log)
	getSpace := getSpaceHandler.NewHandler(spaceSvc, log)
	createSpace := createSpaceHandler.NewHandler(spaceSvc, log)
	updateSpace := updateSpaceHandler.NewHandler(spaceSvc, log)
	deleteSpace := deleteSpaceHandler.NewHandler(spaceSvc, log)
	reportOccupancy := reportOccupancyHandler.NewHandler(spaceSvc, log)
	listNotices := listNoticesHandler.NewHandler(noticeSvc, log)
	createNotice := createNoticeHandler.NewHandler(noticeSvc, log)
	deleteNotice := deleteNoticeHandler.NewHandler(noticeSvc, log)
	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	listReviews := listReviewsHandler.NewHandler(reviewSvc, log)
	createPayment := createPaymentHandler.NewHandler(paymentSvc, log)
	listPayments := listPaymentsHandler.NewHandler(paymentSvc, log)
	listCities := listCitiesHandler.NewHandler(spaceSvc, log)
	listAreas := listAreasHandler.NewHandler(spaceSvc, log)
	listStreets := listStreetsHandler.NewHandler(spaceSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог парковок
	api.HandleFunc("/spaces", listSpaces.Handle).Methods(http.MethodGet)
	api.HandleFunc("/spaces/{spaceId}", getSpace.Handle).Methods(http.MethodGet)

	// Справочники адресов для фильтров поиска
	api.HandleFunc("/addresses/cities", listCities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/addresses/areas", listAreas.Handle).Methods(http.MethodGet)
	api.HandleFunc("/addresses/streets", listStreets.Handle).Methods(http.MethodGet)

	// Предварительный расчет стоимости
	api.HandleFunc("/bookings/quote", quoteBooking.Handle).Methods(http.MethodPost)

	// Отчеты сенсоров о занятости
	api.HandleFunc("/spaces/{spaceId}/occupancy", reportOccupancy.Handle).Methods(http.MethodPost)

	// Объявления и отзывы
	api.HandleFunc("/notices", listNotices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/spaces/{spaceId}/reviews", listReviews.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Платежи по бронированиям ---
	api.HandleFunc("/bookings/{bookingId}/payments", createPayment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/payments", listPayments.Handle).Methods(http.MethodGet)

	// --- Управление инвентарем (для администраторов) ---
	api.HandleFunc("/spaces", createSpace.Handle).Methods(http.MethodPost)
	api.HandleFunc("/spaces/{spaceId}", updateSpace.Handle).Methods(http.MethodPut)
	api.HandleFunc("/spaces/{spaceId}", deleteSpace.Handle).Methods(http.MethodDelete)

	// --- Объявления (для администраторов) ---
	api.HandleFunc("/notices", createNotice.Handle).Methods(http.MethodPost)
	api.HandleFunc("/notices/{noticeId}", deleteNotice.Handle).Methods(http.MethodDelete)

	// --- Отзывы ---
	api.HandleFunc("/spaces/{spaceId}/reviews", createReview.Handle).Methods(http.MethodPost)

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
