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

	createBookingHandler "github.com/agendahub/TenantBookingService/internal/api/handlers/create_booking"
	createTeamMemberHandler "github.com/agendahub/TenantBookingService/internal/api/handlers/create_team_member"
	createTenantHandler "github.com/agendahub/TenantBookingService/internal/api/handlers/create_tenant"
	deleteTeamMemberHandler "github.com/agendahub/TenantBookingService/internal/api/handlers/delete_team_member"
	getAvailableSlotsHandler "github.com/agendahub/TenantBookingService/internal/api/handlers/get_available_slots"
	getTenantBookingsHandler "github.com/agendahub/TenantBookingService/internal/api/handlers/get_tenant_bookings"
	getTenantConfigHandler "github.com/agendahub/TenantBookingService/internal/api/handlers/get_tenant_config"
	getTenantStatsHandler "github.com/agendahub/TenantBookingService/internal/api/handlers/get_tenant_stats"
	listTeamMembersHandler "github.com/agendahub/TenantBookingService/internal/api/handlers/list_team_members"
	listTenantsHandler "github.com/agendahub/TenantBookingService/internal/api/handlers/list_tenants"
	loginHandler "github.com/agendahub/TenantBookingService/internal/api/handlers/login"
	updateBookingStatusHandler "github.com/agendahub/TenantBookingService/internal/api/handlers/update_booking_status"
	updateTenantConfigHandler "github.com/agendahub/TenantBookingService/internal/api/handlers/update_tenant_config"
	"github.com/agendahub/TenantBookingService/internal/api/middleware"
	"github.com/agendahub/TenantBookingService/internal/config"
	bookingRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/booking"
	teamRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/team"
	tenantRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/tenant"
	authService "github.com/agendahub/TenantBookingService/internal/service/auth"
	bookingsService "github.com/agendahub/TenantBookingService/internal/service/bookings"
	teamService "github.com/agendahub/TenantBookingService/internal/service/team"
	tenantsService "github.com/agendahub/TenantBookingService/internal/service/tenants"
	createBookingUC "github.com/agendahub/TenantBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/agendahub/TenantBookingService/internal/usecase/get_available_slots"
	getTenantStatsUC "github.com/agendahub/TenantBookingService/internal/usecase/get_tenant_stats"
	"github.com/agendahub/TenantBookingService/pkg/dbmetrics"
	"github.com/agendahub/TenantBookingService/pkg/logger"
	"github.com/agendahub/TenantBookingService/pkg/metrics"
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

	log.Info("Starting TenantBookingService...")
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

	if cfg.Metrics.Enabled {
		dbmetrics.CollectPoolStats(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	tenantRepository := tenantRepo.NewRepository(db)
	teamRepository := teamRepo.NewRepository(db)

	// Инициализируем сервисы
	authSvc := authService.NewService(
		tenantRepository,
		teamRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		cfg.Auth.BcryptCost,
		log,
	)
	tenantSvc := tenantsService.NewService(tenantRepository, authSvc, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	teamSvc := teamService.NewService(teamRepository, tenantRepository, authSvc, log)

	// Инициализируем use cases
	var bookingMetrics createBookingUC.Metrics
	if cfg.Metrics.Enabled {
		bookingMetrics = metricsCollector
	}

	createBookingUseCase := createBookingUC.NewUseCase(
		tenantRepository,
		bookingRepository,
		bookingMetrics,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		tenantRepository,
		bookingRepository,
		log,
	)
	getTenantStatsUseCase := getTenantStatsUC.NewUseCase(
		tenantRepository,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	createTenant := createTenantHandler.NewHandler(tenantSvc, log)
	listTenants := listTenantsHandler.NewHandler(tenantSvc, log)
	getTenantConfig := getTenantConfigHandler.NewHandler(tenantSvc, log)
	updateTenantConfig := updateTenantConfigHandler.NewHandler(tenantSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getTenantBookings := getTenantBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getTenantStats := getTenantStatsHandler.NewHandler(getTenantStatsUseCase, log)
	createTeamMember := createTeamMemberHandler.NewHandler(teamSvc, log)
	listTeamMembers := listTeamMembersHandler.NewHandler(teamSvc, log)
	deleteTeamMember := deleteTeamMemberHandler.NewHandler(teamSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Аутентификация (с rate limit по IP)
	loginLimiter := middleware.NewLoginRateLimiter(cfg.Auth.LoginRateRPS, cfg.Auth.LoginRateBurst)
	api.Handle("/login", loginLimiter.Middleware(http.HandlerFunc(login.Handle))).Methods(http.MethodPost)

	// Регистрация и публичный каталог тенантов
	api.HandleFunc("/tenants", createTenant.Handle).Methods(http.MethodPost)
	api.HandleFunc("/tenants", listTenants.Handle).Methods(http.MethodGet)

	// Публичная конфигурация и доступность тенанта
	api.HandleFunc("/tenants/{slug}/config", getTenantConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tenants/{slug}/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования клиентом
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	// --- Агенда и статусы бронирований ---
	protected.HandleFunc("/tenants/{slug}/bookings", getTenantBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Статистика ---
	protected.HandleFunc("/tenants/{slug}/stats", getTenantStats.Handle).Methods(http.MethodGet)

	// --- Конфигурация тенанта ---
	protected.HandleFunc("/tenants/{slug}/config", updateTenantConfig.Handle).Methods(http.MethodPut)

	// --- Команда ---
	protected.HandleFunc("/tenants/{slug}/team-members", createTeamMember.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/tenants/{slug}/team-members", listTeamMembers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/tenants/{slug}/team-members/{memberId}", deleteTeamMember.Handle).Methods(http.MethodDelete)

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
