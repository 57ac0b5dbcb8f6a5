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

	getAvailableWorkplacesHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/get_available_workplaces"
	getDailyStatusHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/get_daily_status"
	getMonthlySummaryHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/get_monthly_summary"
	getSettingsHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/get_settings"
	getWeekGridHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/get_week_grid"
	listEmployeesHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/list_employees"
	listFloorsHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/list_floors"
	listInfoHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/list_info"
	submitReservationHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/submit_reservation"
	updateSettingsHandler "github.com/m04kA/SMC-WorkplaceService/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-WorkplaceService/internal/api/middleware"
	"github.com/m04kA/SMC-WorkplaceService/internal/config"
	summaryCache "github.com/m04kA/SMC-WorkplaceService/internal/infra/cache/summary"
	employeeRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/employee"
	infoRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/info"
	reservationRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/reservation"
	settingsRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/settings"
	workplaceRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/workplace"
	"github.com/m04kA/SMC-WorkplaceService/internal/integrations/holidays"
	directoryService "github.com/m04kA/SMC-WorkplaceService/internal/service/directory"
	occupancyService "github.com/m04kA/SMC-WorkplaceService/internal/service/occupancy"
	settingsService "github.com/m04kA/SMC-WorkplaceService/internal/service/settings"
	getAvailableWorkplacesUC "github.com/m04kA/SMC-WorkplaceService/internal/usecase/get_available_workplaces"
	submitReservationUC "github.com/m04kA/SMC-WorkplaceService/internal/usecase/submit_reservation"
	"github.com/m04kA/SMC-WorkplaceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-WorkplaceService/pkg/logger"
	"github.com/m04kA/SMC-WorkplaceService/pkg/metrics"
	"github.com/m04kA/SMC-WorkplaceService/pkg/txmanager"
)

// summaryCacheStore кэш сводок: Redis или no-op
type summaryCacheStore interface {
	Version(ctx context.Context, year int, month time.Month) (string, error)
	Get(ctx context.Context, year int, month time.Month, version string, dst any) (bool, error)
	Set(ctx context.Context, year int, month time.Month, version string, value any) error
	Invalidate(ctx context.Context, year int, month time.Month) error
	InvalidateAll(ctx context.Context) error
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
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

	log.Info("Starting SMC-WorkplaceService...")
	log.Info("Configuration loaded from %s", configPath)

	officeLocation, err := cfg.Reservations.Location()
	if err != nil {
		log.Fatal("Invalid reservations timezone %q: %v", cfg.Reservations.Timezone, err)
	}

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

	// Обертка над БД: метрики пишутся только при включенном сборе
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName)
	}

	txMgr := txmanager.NewTransactionManager(wrappedDB, txmanager.Options{
		MaxRetries:   cfg.Reservations.MaxRetries,
		LockTimeout:  time.Duration(cfg.Reservations.LockTimeoutMs) * time.Millisecond,
		RetryBackoff: time.Duration(cfg.Reservations.RetryBackoffMs) * time.Millisecond,
	})

	// Кэш месячных сводок
	var cache summaryCacheStore = summaryCache.NoopCache{}
	if cfg.Redis.Enabled {
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := summaryCache.NewRedisClient(pingCtx, cfg.Redis.URL)
		cancelPing()
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()

		cache = summaryCache.NewCache(redisClient, time.Duration(cfg.Redis.SummaryTTLSeconds)*time.Second)
		log.Info("Summary cache enabled (ttl=%ds)", cfg.Redis.SummaryTTLSeconds)
	}

	// Календарь праздников
	oracle := holidays.NewOracle()
	log.Info("Holiday calendars loaded for regions: %v", oracle.Regions())

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	employeeRepository := employeeRepo.NewRepository(wrappedDB)
	workplaceRepository := workplaceRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)
	infoRepository := infoRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(settingsRepository, oracle, cache, log)
	directorySvc := directoryService.NewService(employeeRepository, workplaceRepository, infoRepository, log)
	occupancySvc := occupancyService.NewService(
		reservationRepository,
		workplaceRepository,
		settingsSvc,
		oracle,
		cache,
		officeLocation,
		log,
	)

	// Инициализируем use cases
	submitReservationUseCase := submitReservationUC.NewUseCase(
		reservationRepository,
		employeeRepository,
		workplaceRepository,
		settingsSvc,
		oracle,
		cache,
		metricsCollector,
		txMgr,
		log,
		submitReservationUC.Options{
			HorizonDays: cfg.Reservations.HorizonDays,
			Location:    officeLocation,
			Timeout:     time.Duration(cfg.Reservations.AdmissionTimeout) * time.Millisecond,
		},
	)

	getAvailableWorkplacesUseCase := getAvailableWorkplacesUC.NewUseCase(
		reservationRepository,
		workplaceRepository,
		log,
	)

	// Инициализируем handlers
	submitReservation := submitReservationHandler.NewHandler(submitReservationUseCase, cfg.Reservations.HorizonDays, log)
	getAvailableWorkplaces := getAvailableWorkplacesHandler.NewHandler(getAvailableWorkplacesUseCase, log)
	getDailyStatus := getDailyStatusHandler.NewHandler(occupancySvc, log)
	getWeekGrid := getWeekGridHandler.NewHandler(occupancySvc, log)
	getMonthlySummary := getMonthlySummaryHandler.NewHandler(occupancySvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	listEmployees := listEmployeesHandler.NewHandler(directorySvc, log)
	listFloors := listFloorsHandler.NewHandler(directorySvc, log)
	listInfo := listInfoHandler.NewHandler(directorySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/reservations", submitReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/workplaces/available", getAvailableWorkplaces.Handle).Methods(http.MethodGet)

	// --- Отчеты о занятости ---
	api.HandleFunc("/occupancy/daily", getDailyStatus.Handle).Methods(http.MethodGet)
	api.HandleFunc("/occupancy/week", getWeekGrid.Redirect).Methods(http.MethodGet)
	api.HandleFunc("/occupancy/week/{year:[0-9]+}/{week:[0-9]+}", getWeekGrid.Handle).Methods(http.MethodGet)
	api.HandleFunc("/occupancy/summary", getMonthlySummary.Redirect).Methods(http.MethodGet)
	api.HandleFunc("/occupancy/summary/{year:[0-9]+}/{month:[0-9]+}", getMonthlySummary.Handle).Methods(http.MethodGet)

	// --- Справочники ---
	api.HandleFunc("/employees", listEmployees.Handle).Methods(http.MethodGet)
	api.HandleFunc("/floors", listFloors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/info", listInfo.Handle).Methods(http.MethodGet)

	// --- Настройки ---
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.CORS.AllowedOrigins, r),
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
