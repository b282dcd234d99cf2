package main

import (
	"context"
	"database/sql"
	"errors"
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

	createAppointmentHandler "github.com/m04kA/SLN-CalendarService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/SLN-CalendarService/internal/api/handlers/get_appointment"
	getAppointmentsHandler "github.com/m04kA/SLN-CalendarService/internal/api/handlers/get_appointments"
	getFeedHandler "github.com/m04kA/SLN-CalendarService/internal/api/handlers/get_feed"
	getWeekViewHandler "github.com/m04kA/SLN-CalendarService/internal/api/handlers/get_week_view"
	updateStatusHandler "github.com/m04kA/SLN-CalendarService/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/SLN-CalendarService/internal/api/middleware"
	"github.com/m04kA/SLN-CalendarService/internal/config"
	"github.com/m04kA/SLN-CalendarService/internal/domain"
	"github.com/m04kA/SLN-CalendarService/internal/feed"
	"github.com/m04kA/SLN-CalendarService/internal/infra/audit"
	"github.com/m04kA/SLN-CalendarService/internal/infra/cache"
	appointmentRepo "github.com/m04kA/SLN-CalendarService/internal/infra/storage/appointment"
	franchiseClient "github.com/m04kA/SLN-CalendarService/internal/integrations/franchiseservice"
	appointmentsService "github.com/m04kA/SLN-CalendarService/internal/service/appointments"
	serviceModels "github.com/m04kA/SLN-CalendarService/internal/service/appointments/models"
	buildWeekViewUC "github.com/m04kA/SLN-CalendarService/internal/usecase/build_week_view"
	createAppointmentUC "github.com/m04kA/SLN-CalendarService/internal/usecase/create_appointment"
	"github.com/m04kA/SLN-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SLN-CalendarService/pkg/logger"
	"github.com/m04kA/SLN-CalendarService/pkg/metrics"
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

	log.Info("Starting SLN-CalendarService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем репозиторий (с метриками или без)
	var repository *appointmentRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
		repository = appointmentRepo.NewRepository(wrappedDB)
	} else {
		repository = appointmentRepo.NewRepository(db)
	}

	// Инициализируем клиент справочного сервиса
	directoryClient := franchiseClient.NewClient(
		cfg.FranchiseService.URL,
		time.Duration(cfg.FranchiseService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (FranchiseService=%s timeout=%ds)",
		cfg.FranchiseService.URL, cfg.FranchiseService.Timeout)

	// Каталог для usecase создания записи: с кешем или напрямую
	var catalog createAppointmentUC.CatalogClient = directoryClient
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		catalog = cache.NewCachedCatalog(
			directoryClient,
			rdb,
			time.Duration(cfg.Redis.TTLSeconds)*time.Second,
			log,
		)
		log.Info("Catalog cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	}

	// Публикация аудит-событий переходов статусов (опционально)
	var auditPublisher appointmentsService.AuditPublisher
	if cfg.Kafka.Enabled {
		publisher := audit.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		defer publisher.Close()
		auditPublisher = publisher
		log.Info("Status audit publisher enabled (brokers=%s, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// Инициализируем сервис
	appointmentSvc := appointmentsService.NewService(
		repository,
		auditPublisher,
		log,
	)

	// Фоновое обновление ленты записей на сегодня (опционально)
	var feedRefresher *feed.Refresher
	feedCtx, stopFeed := context.WithCancel(context.Background())
	defer stopFeed()

	if cfg.Feed.Enabled {
		feedRefresher = feed.NewRefresher(
			appointmentSvc,
			&appointmentsService.RealTimeProvider{},
			log,
			time.Duration(cfg.Feed.TimeoutSeconds)*time.Second,
			uint(cfg.Feed.MaxTries),
		)
		go runFeedLoop(feedCtx, feedRefresher, time.Duration(cfg.Feed.IntervalSeconds)*time.Second, log)
		log.Info("Feed refresher enabled (interval=%ds, timeout=%ds, max_tries=%d)",
			cfg.Feed.IntervalSeconds, cfg.Feed.TimeoutSeconds, cfg.Feed.MaxTries)
	}

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		repository,
		catalog,
		log,
	)

	buildWeekViewUseCase := buildWeekViewUC.NewUseCase(
		repository,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentSvc, log)
	getWeekView := getWeekViewHandler.NewHandler(buildWeekViewUseCase, log)

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

	// Все маршруты календаря требуют личность оператора
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Список записей с фильтрами и пагинацией
	protected.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Обновление статуса записи
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// --- Календарь ---
	// Недельный вид с раскладкой по сетке
	protected.HandleFunc("/calendar/week", getWeekView.Handle).Methods(http.MethodGet)

	// Снимок ленты записей на сегодня (если фоновое обновление включено)
	if feedRefresher != nil {
		getFeed := getFeedHandler.NewHandler(feedRefresher, log)
		protected.HandleFunc("/calendar/feed", getFeed.Handle).Methods(http.MethodGet)
	}

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

	// Останавливаем фоновое обновление ленты
	if cfg.Feed.Enabled {
		stopFeed()
		log.Info("Feed refresher stopped")
	}

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

// runFeedLoop периодически обновляет снимок записей на сегодня от имени
// сервисной учетной записи. Устаревшие ответы, обогнанные более новым
// обновлением, не считаются ошибкой
func runFeedLoop(ctx context.Context, refresher *feed.Refresher, interval time.Duration, log *logger.Logger) {
	systemViewer := domain.Viewer{Role: domain.RoleSuperAdmin}

	refresh := func() {
		today := time.Now()
		req := &serviceModels.ListAppointmentsRequest{
			Page:  domain.DefaultPage,
			Limit: domain.MaxLimit,
			Date:  &today,
		}
		if _, err := refresher.Refresh(ctx, systemViewer, req); err != nil && !errors.Is(err, feed.ErrStaleResponse) {
			log.Warn("Feed: refresh failed: %v", err)
		}
	}

	refresh()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh()
		}
	}
}
