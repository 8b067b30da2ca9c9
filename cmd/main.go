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

	cancelBookingHandler "github.com/m04kA/KDP-AvailabilityService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/KDP-AvailabilityService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/KDP-AvailabilityService/internal/api/handlers/get_booking"
	getDaySlotsHandler "github.com/m04kA/KDP-AvailabilityService/internal/api/handlers/get_day_slots"
	getMonthAvailabilityHandler "github.com/m04kA/KDP-AvailabilityService/internal/api/handlers/get_month_availability"
	getRangeAvailabilityHandler "github.com/m04kA/KDP-AvailabilityService/internal/api/handlers/get_range_availability"
	getScheduleConfigHandler "github.com/m04kA/KDP-AvailabilityService/internal/api/handlers/get_schedule_config"
	getUserBookingsHandler "github.com/m04kA/KDP-AvailabilityService/internal/api/handlers/get_user_bookings"
	updateScheduleConfigHandler "github.com/m04kA/KDP-AvailabilityService/internal/api/handlers/update_schedule_config"
	"github.com/m04kA/KDP-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/KDP-AvailabilityService/internal/config"
	bookingRepo "github.com/m04kA/KDP-AvailabilityService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/KDP-AvailabilityService/internal/infra/storage/schedule"
	bookingsService "github.com/m04kA/KDP-AvailabilityService/internal/service/bookings"
	scheduleService "github.com/m04kA/KDP-AvailabilityService/internal/service/schedule"
	createBookingUC "github.com/m04kA/KDP-AvailabilityService/internal/usecase/create_booking"
	getDaySlotsUC "github.com/m04kA/KDP-AvailabilityService/internal/usecase/get_day_slots"
	getMonthAvailabilityUC "github.com/m04kA/KDP-AvailabilityService/internal/usecase/get_month_availability"
	getRangeAvailabilityUC "github.com/m04kA/KDP-AvailabilityService/internal/usecase/get_range_availability"
	"github.com/m04kA/KDP-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/KDP-AvailabilityService/pkg/logger"
	"github.com/m04kA/KDP-AvailabilityService/pkg/metrics"
	"github.com/m04kA/KDP-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/KDP-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting KDP-AvailabilityService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	// Интерфейс transaction manager, общий для обеих реализаций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, txMgr, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		scheduleRepository,
		bookingRepository,
		txMgr,
		log,
	)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		scheduleRepository,
		bookingRepository,
		log,
	)
	getMonthAvailabilityUseCase := getMonthAvailabilityUC.NewUseCase(
		scheduleRepository,
		bookingRepository,
		log,
	)
	getRangeAvailabilityUseCase := getRangeAvailabilityUC.NewUseCase(
		scheduleRepository,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(getMonthAvailabilityUseCase, log)
	getRangeAvailability := getRangeAvailabilityHandler.NewHandler(getRangeAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(scheduleSvc, log)
	updateScheduleConfig := updateScheduleConfigHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Слоты конкретной даты
	api.HandleFunc("/availability/days/{date}/slots",
		getDaySlots.Handle).Methods(http.MethodGet)

	// Календарь месяца
	api.HandleFunc("/availability/months/{year}/{month}",
		getMonthAvailability.Handle).Methods(http.MethodGet)

	// Классификация диапазона дат
	api.HandleFunc("/availability/range",
		getRangeAvailability.Handle).Methods(http.MethodGet)

	// Активная конфигурация расписания
	api.HandleFunc("/schedule-config",
		getScheduleConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление расписанием (для администратора) ---
	// Замена активной конфигурации
	protected.HandleFunc("/schedule-config", updateScheduleConfig.Handle).Methods(http.MethodPut)

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
