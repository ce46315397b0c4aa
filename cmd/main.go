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

	createAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_appointment"
	getBusyBarbersHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_busy_barbers"
	getDayScheduleHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_day_schedule"
	getSlotGridHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_slot_grid"
	updateAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_appointment"
	updateStatusHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_status"
	validateAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/validate_appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	crmServiceClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/crmservice"
	appointmentsService "github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	createAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	getBusyBarbersUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_busy_barbers"
	getSlotGridUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_slot_grid"
	updateAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment"
	validateAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/validate_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
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

	log.Info("Starting SMC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Рабочее окно барбершопа
	hours, err := domain.NewBusinessHours(
		cfg.BusinessHours.OpenHour,
		cfg.BusinessHours.CloseHour,
		cfg.BusinessHours.SlotMinutes,
		cfg.BusinessHours.Timezone,
	)
	if err != nil {
		log.Fatal("Failed to build business hours: %v", err)
	}
	log.Info("Business hours: %s-%s, slot=%dm, tz=%s",
		hours.OpenTime(), hours.CloseTime(), hours.SlotMinutes, cfg.BusinessHours.Timezone)

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

	// Инициализируем клиента CRM
	crmClient := crmServiceClient.NewClient(
		cfg.CRMService.URL,
		time.Duration(cfg.CRMService.Timeout)*time.Second,
		log,
	)
	log.Info("CRM client initialized (url=%s timeout=%ds)", cfg.CRMService.URL, cfg.CRMService.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var appointmentRepository *appointmentRepo.Repository
	var txMgr appointmentsService.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис
	appointmentSvc := appointmentsService.NewService(appointmentRepository, hours, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		crmClient,
		txMgr,
		hours,
		log,
	)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		crmClient,
		txMgr,
		hours,
		log,
	)
	validateAppointmentUseCase := validateAppointmentUC.NewUseCase(
		appointmentRepository,
		crmClient,
		hours,
		log,
	)
	getSlotGridUseCase := getSlotGridUC.NewUseCase(
		appointmentRepository,
		crmClient,
		hours,
		log,
	)
	getBusyBarbersUseCase := getBusyBarbersUC.NewUseCase(
		appointmentRepository,
		crmClient,
		hours,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	validateAppointment := validateAppointmentHandler.NewHandler(validateAppointmentUseCase, log)
	getSlotGrid := getSlotGridHandler.NewHandler(getSlotGridUseCase, log)
	getBusyBarbers := getBusyBarbersHandler.NewHandler(getBusyBarbersUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(appointmentSvc, hours, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)

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

	// Занятость мастеров на интервале
	api.HandleFunc("/barbers/busy", getBusyBarbers.Handle).Methods(http.MethodGet)

	// Сетка слотов мастера на день
	api.HandleFunc("/barbers/{barberId}/slot-grid", getSlotGrid.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Проверка черновика без сохранения
	protected.HandleFunc("/appointments/validate", validateAppointment.Handle).Methods(http.MethodPost)

	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Расписание с фильтрацией
	protected.HandleFunc("/appointments", getDaySchedule.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Полное обновление записи
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)

	// Удаление записи
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// Смена статуса (включая отмену)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

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
