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

	cancelBookingHandler "github.com/logisync/scheduling-service/internal/api/handlers/cancel_booking"
	createBlackoutHandler "github.com/logisync/scheduling-service/internal/api/handlers/create_blackout"
	createBookingHandler "github.com/logisync/scheduling-service/internal/api/handlers/create_booking"
	deleteBlackoutHandler "github.com/logisync/scheduling-service/internal/api/handlers/delete_blackout"
	getAvailableSlotsHandler "github.com/logisync/scheduling-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/logisync/scheduling-service/internal/api/handlers/get_booking"
	getScheduleHandler "github.com/logisync/scheduling-service/internal/api/handlers/get_schedule"
	getUserBookingsHandler "github.com/logisync/scheduling-service/internal/api/handlers/get_user_bookings"
	listBlackoutsHandler "github.com/logisync/scheduling-service/internal/api/handlers/list_blackouts"
	listBookingsHandler "github.com/logisync/scheduling-service/internal/api/handlers/list_bookings"
	updateBookingStatusHandler "github.com/logisync/scheduling-service/internal/api/handlers/update_booking_status"
	updateScheduleHandler "github.com/logisync/scheduling-service/internal/api/handlers/update_schedule"
	"github.com/logisync/scheduling-service/internal/api/middleware"
	"github.com/logisync/scheduling-service/internal/config"
	blackoutRepo "github.com/logisync/scheduling-service/internal/infra/storage/blackout"
	bookingRepo "github.com/logisync/scheduling-service/internal/infra/storage/booking"
	scheduleRepo "github.com/logisync/scheduling-service/internal/infra/storage/schedule"
	blackoutsService "github.com/logisync/scheduling-service/internal/service/blackouts"
	bookingsService "github.com/logisync/scheduling-service/internal/service/bookings"
	scheduleService "github.com/logisync/scheduling-service/internal/service/schedule"
	createBookingUC "github.com/logisync/scheduling-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/logisync/scheduling-service/internal/usecase/get_available_slots"
	"github.com/logisync/scheduling-service/pkg/dbmetrics"
	"github.com/logisync/scheduling-service/pkg/logger"
	"github.com/logisync/scheduling-service/pkg/metrics"
	"github.com/logisync/scheduling-service/pkg/simpletxmanager"
	"github.com/logisync/scheduling-service/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting LogiSync scheduling service...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (when enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configure the connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize repositories, with or without the metrics wrapper
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		blackoutRepository *blackoutRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		blackoutRepository = blackoutRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		blackoutRepository = blackoutRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Initialize services
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)
	blackoutSvc := blackoutsService.NewService(blackoutRepository, log)

	// Initialize use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		blackoutRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		blackoutRepository,
		log,
	)

	// Initialize handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	createBlackout := createBlackoutHandler.NewHandler(blackoutSvc, log)
	listBlackouts := listBlackoutsHandler.NewHandler(blackoutSvc, log)
	deleteBlackout := deleteBlackoutHandler.NewHandler(blackoutSvc, log)

	// Set up the router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes (no authentication)
	api.HandleFunc("/horarios/disponiveis", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/expediente", getSchedule.Handle).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// Bookings
	protected.HandleFunc("/agendamentos", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/agendamentos", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/agendamentos/{agendamentoId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/agendamentos/{agendamentoId}/cancelar", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/agendamentos/{agendamentoId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/usuarios/{usuarioId}/agendamentos", getUserBookings.Handle).Methods(http.MethodGet)

	// Working window administration
	protected.HandleFunc("/expediente", updateSchedule.Handle).Methods(http.MethodPut)

	// Blackouts administration
	protected.HandleFunc("/indisponibilidades", createBlackout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/indisponibilidades", listBlackouts.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/indisponibilidades/{indisponibilidadeId}", deleteBlackout.Handle).Methods(http.MethodDelete)

	// Create the HTTP server
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
