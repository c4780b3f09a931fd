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

	addSlotHandler "github.com/fredartois/NBF-BookingService/internal/api/handlers/add_slot"
	clearDateHandler "github.com/fredartois/NBF-BookingService/internal/api/handlers/clear_date"
	createBookingHandler "github.com/fredartois/NBF-BookingService/internal/api/handlers/create_booking"
	getAvailableDatesHandler "github.com/fredartois/NBF-BookingService/internal/api/handlers/get_available_dates"
	getBookingsHandler "github.com/fredartois/NBF-BookingService/internal/api/handlers/get_bookings"
	getCalendarHandler "github.com/fredartois/NBF-BookingService/internal/api/handlers/get_calendar"
	getCatalogHandler "github.com/fredartois/NBF-BookingService/internal/api/handlers/get_catalog"
	getDaySlotsHandler "github.com/fredartois/NBF-BookingService/internal/api/handlers/get_day_slots"
	getOpenSlotsHandler "github.com/fredartois/NBF-BookingService/internal/api/handlers/get_open_slots"
	quoteOrderHandler "github.com/fredartois/NBF-BookingService/internal/api/handlers/quote_order"
	removeSlotHandler "github.com/fredartois/NBF-BookingService/internal/api/handlers/remove_slot"
	"github.com/fredartois/NBF-BookingService/internal/api/middleware"
	"github.com/fredartois/NBF-BookingService/internal/config"
	availabilityRepo "github.com/fredartois/NBF-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/fredartois/NBF-BookingService/internal/infra/storage/booking"
	catalogServiceClient "github.com/fredartois/NBF-BookingService/internal/integrations/catalogservice"
	notifierClient "github.com/fredartois/NBF-BookingService/internal/integrations/notifier"
	availabilityService "github.com/fredartois/NBF-BookingService/internal/service/availability"
	bookingsService "github.com/fredartois/NBF-BookingService/internal/service/bookings"
	getOpenSlotsUC "github.com/fredartois/NBF-BookingService/internal/usecase/get_open_slots"
	quoteOrderUC "github.com/fredartois/NBF-BookingService/internal/usecase/quote_order"
	submitBookingUC "github.com/fredartois/NBF-BookingService/internal/usecase/submit_booking"
	"github.com/fredartois/NBF-BookingService/pkg/dbmetrics"
	"github.com/fredartois/NBF-BookingService/pkg/logger"
	"github.com/fredartois/NBF-BookingService/pkg/metrics"
	"github.com/fredartois/NBF-BookingService/pkg/txmanager"
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

	log.Info("Starting NBF-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем интеграционных клиентов
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CatalogService=%s timeout=%ds, Notifier=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout, cfg.Notifier.URL, cfg.Notifier.Timeout)

	// Инициализируем репозитории и менеджер транзакций (с метриками или без)
	var (
		availabilityRepository *availabilityRepo.Repository
		bookingRepository      *bookingRepo.Repository
		txMgr                  *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.Wrap(db, metricsCollector)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection enabled")
	} else {
		availabilityRepository = availabilityRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	// Хранилище доступности загружает снимок календаря при старте
	store, err := availabilityService.NewStore(context.Background(), availabilityRepository, txMgr, log)
	if err != nil {
		log.Fatal("Failed to load availability record: %v", err)
	}
	bookingsSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	getOpenSlotsUseCase := getOpenSlotsUC.NewUseCase(store, bookingsSvc, log)
	quoteOrderUseCase := quoteOrderUC.NewUseCase(catalogClient, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(
		bookingRepository,
		store,
		catalogClient,
		notifier,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableDates := getAvailableDatesHandler.NewHandler(store, log)
	getCalendar := getCalendarHandler.NewHandler(store, log)
	getOpenSlots := getOpenSlotsHandler.NewHandler(getOpenSlotsUseCase, log)
	getCatalog := getCatalogHandler.NewHandler(catalogClient, log)
	quoteOrder := quoteOrderHandler.NewHandler(quoteOrderUseCase, log)
	createBooking := createBookingHandler.NewHandler(submitBookingUseCase, log)
	addSlot := addSlotHandler.NewHandler(store, log)
	removeSlot := removeSlotHandler.NewHandler(store, log)
	clearDate := clearDateHandler.NewHandler(store, log)
	getDaySlots := getDaySlotsHandler.NewHandler(store, bookingsSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Даты с открытыми слотами
	api.HandleFunc("/availability/dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// Сетка месяца для календаря
	api.HandleFunc("/availability/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	api.HandleFunc("/availability/open-slots", getOpenSlots.Handle).Methods(http.MethodGet)

	// Каталог услуг
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Расчет цены черновика
	api.HandleFunc("/quote", quoteOrder.Handle).Methods(http.MethodPost)

	// Фиксация брони
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Code header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Code))

	// Слоты дня с признаком занятости
	admin.HandleFunc("/availability/{date}/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// Открытие слота (пресет или свободный ввод)
	admin.HandleFunc("/availability/{date}/slots", addSlot.Handle).Methods(http.MethodPost)

	// Закрытие одного слота
	admin.HandleFunc("/availability/{date}/slots/{time}", removeSlot.Handle).Methods(http.MethodDelete)

	// Закрытие всех слотов даты
	admin.HandleFunc("/availability/{date}", clearDate.Handle).Methods(http.MethodDelete)

	// Журнал бронирований
	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

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
