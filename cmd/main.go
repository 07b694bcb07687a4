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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	approveBookingHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/approve_booking"
	cancelBookingHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/create_booking"
	createFieldHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/create_field"
	createReviewHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/create_review"
	deleteFieldHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/delete_field"
	forgotPasswordHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/forgot_password"
	getAvailableSlotsHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/get_booking"
	getFieldHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/get_field"
	getFieldBookingsHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/get_field_bookings"
	getFieldReviewsHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/get_field_reviews"
	getUserBookingsHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/get_user_bookings"
	listFieldsHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/list_fields"
	listUsersHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/list_users"
	loginHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/login"
	registerHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/register"
	rejectBookingHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/reject_booking"
	resetPasswordHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/reset_password"
	updateFieldHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/update_field"
	updateUserRoleHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/update_user_role"
	updateUserStatusHandler "github.com/m04kA/FFP-BookingService/internal/api/handlers/update_user_status"
	"github.com/m04kA/FFP-BookingService/internal/api/middleware"
	"github.com/m04kA/FFP-BookingService/internal/auth"
	"github.com/m04kA/FFP-BookingService/internal/config"
	bookingRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/booking"
	fieldRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/field"
	passwordResetRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/passwordreset"
	reviewRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/review"
	scheduleRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/schedule"
	userRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/user"
	"github.com/m04kA/FFP-BookingService/internal/integrations/mailer"
	"github.com/m04kA/FFP-BookingService/internal/jobs/seeder"
	authService "github.com/m04kA/FFP-BookingService/internal/service/auth"
	bookingsService "github.com/m04kA/FFP-BookingService/internal/service/bookings"
	fieldsService "github.com/m04kA/FFP-BookingService/internal/service/fields"
	reviewsService "github.com/m04kA/FFP-BookingService/internal/service/reviews"
	usersService "github.com/m04kA/FFP-BookingService/internal/service/users"
	createBookingUC "github.com/m04kA/FFP-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/FFP-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/FFP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/FFP-BookingService/pkg/logger"
	"github.com/m04kA/FFP-BookingService/pkg/metrics"
	"github.com/m04kA/FFP-BookingService/pkg/migrate"
	"github.com/m04kA/FFP-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/FFP-BookingService/pkg/txmanager"
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

	log.Info("Starting FFP-BookingService...")
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

	// Применяем миграции
	if err := migrate.Up(cfg.Database.MigrationsPath, cfg.Database.MigrateURL()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		fieldRepository    *fieldRepo.Repository
		userRepository     *userRepo.Repository
		reviewRepository   *reviewRepo.Repository
		resetRepository    *passwordResetRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		fieldRepository = fieldRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		resetRepository = passwordResetRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		fieldRepository = fieldRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		resetRepository = passwordResetRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Менеджер токенов и почтовый клиент
	tokenManager := auth.NewTokenManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)

	mailerAPIKey := ""
	if cfg.Mailer.Enabled {
		mailerAPIKey = cfg.Mailer.APIKey
	}
	mailClient := mailer.NewClient(mailerAPIKey, cfg.Mailer.FromName, cfg.Mailer.FromEmail, log)

	// Инициализируем сервисы
	authSvc := authService.NewService(userRepository, resetRepository, tokenManager, mailClient, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		scheduleRepository,
		fieldRepository,
		userRepository,
		txMgr,
		mailClient,
		log,
	)
	fieldSvc := fieldsService.NewService(fieldRepository, log)
	reviewSvc := reviewsService.NewService(reviewRepository, fieldRepository, log)
	userSvc := usersService.NewService(userRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		fieldRepository,
		scheduleRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		fieldRepository,
		scheduleRepository,
		log,
	)

	// Генератор расписания: прогон при старте и далее по крону
	scheduleSeeder := seeder.NewSeeder(fieldRepository, scheduleRepository, cfg.Jobs.SeedHorizonDays, log)
	if err := scheduleSeeder.SeedUpcoming(context.Background()); err != nil {
		log.Error("Initial schedule seeding failed: %v", err)
	}

	cronRunner := cron.New()
	if _, err := cronRunner.AddFunc(cfg.Jobs.ScheduleSeedCron, func() {
		if err := scheduleSeeder.SeedUpcoming(context.Background()); err != nil {
			log.Error("Scheduled seeding failed: %v", err)
		}
	}); err != nil {
		log.Fatal("Failed to schedule seeding job: %v", err)
	}
	cronRunner.Start()
	defer cronRunner.Stop()
	log.Info("Schedule seeding job registered (cron=%q, horizon=%d days)",
		cfg.Jobs.ScheduleSeedCron, cfg.Jobs.SeedHorizonDays)

	// Инициализируем handlers
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	forgotPassword := forgotPasswordHandler.NewHandler(authSvc, log)
	resetPassword := resetPasswordHandler.NewHandler(authSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getFieldBookings := getFieldBookingsHandler.NewHandler(bookingSvc, log)
	approveBooking := approveBookingHandler.NewHandler(bookingSvc, log)
	rejectBooking := rejectBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	listFields := listFieldsHandler.NewHandler(fieldSvc, log)
	getField := getFieldHandler.NewHandler(fieldSvc, log)
	createField := createFieldHandler.NewHandler(fieldSvc, log)
	updateField := updateFieldHandler.NewHandler(fieldSvc, log)
	deleteField := deleteFieldHandler.NewHandler(fieldSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)

	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	getFieldReviews := getFieldReviewsHandler.NewHandler(reviewSvc, log)

	listUsers := listUsersHandler.NewHandler(userSvc, log)
	updateUserStatus := updateUserStatusHandler.NewHandler(userSvc, log)
	updateUserRole := updateUserRoleHandler.NewHandler(userSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/forgot-password", forgotPassword.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/reset-password", resetPassword.Handle).Methods(http.MethodPost)

	api.HandleFunc("/fields", listFields.Handle).Methods(http.MethodGet)
	api.HandleFunc("/fields/{fieldId}", getField.Handle).Methods(http.MethodGet)
	api.HandleFunc("/fields/{fieldId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/fields/{fieldId}/reviews", getFieldReviews.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Authenticate(tokenManager, log))

	// --- Бронирования ---
	protected.Handle("/bookings",
		middleware.RequireCapability(auth.CapBookingCreate, log)(http.HandlerFunc(createBooking.Handle))).
		Methods(http.MethodPost)
	protected.Handle("/bookings/my",
		middleware.RequireCapability(auth.CapBookingRead, log)(http.HandlerFunc(getUserBookings.Handle))).
		Methods(http.MethodGet)
	protected.Handle("/bookings/{bookingId}",
		middleware.RequireCapability(auth.CapBookingRead, log)(http.HandlerFunc(getBooking.Handle))).
		Methods(http.MethodGet)
	protected.Handle("/bookings/{bookingId}/cancel",
		middleware.RequireCapability(auth.CapBookingCancel, log)(http.HandlerFunc(cancelBooking.Handle))).
		Methods(http.MethodPatch)

	// --- Управление бронированиями (для персонала) ---
	protected.Handle("/bookings/{bookingId}/approve",
		middleware.RequireCapability(auth.CapBookingApprove, log)(http.HandlerFunc(approveBooking.Handle))).
		Methods(http.MethodPatch)
	protected.Handle("/bookings/{bookingId}/reject",
		middleware.RequireCapability(auth.CapBookingReject, log)(http.HandlerFunc(rejectBooking.Handle))).
		Methods(http.MethodPatch)
	protected.Handle("/bookings/{bookingId}/complete",
		middleware.RequireCapability(auth.CapBookingComplete, log)(http.HandlerFunc(completeBooking.Handle))).
		Methods(http.MethodPatch)
	protected.Handle("/fields/{fieldId}/bookings",
		middleware.RequireCapability(auth.CapBookingListAll, log)(http.HandlerFunc(getFieldBookings.Handle))).
		Methods(http.MethodGet)

	// --- Управление полями ---
	protected.Handle("/fields",
		middleware.RequireCapability(auth.CapFieldCreate, log)(http.HandlerFunc(createField.Handle))).
		Methods(http.MethodPost)
	protected.Handle("/fields/{fieldId}",
		middleware.RequireCapability(auth.CapFieldUpdate, log)(http.HandlerFunc(updateField.Handle))).
		Methods(http.MethodPatch)
	protected.Handle("/fields/{fieldId}",
		middleware.RequireCapability(auth.CapFieldDelete, log)(http.HandlerFunc(deleteField.Handle))).
		Methods(http.MethodDelete)

	// --- Отзывы ---
	protected.Handle("/fields/{fieldId}/reviews",
		middleware.RequireCapability(auth.CapReviewCreate, log)(http.HandlerFunc(createReview.Handle))).
		Methods(http.MethodPost)

	// --- Администрирование пользователей ---
	protected.Handle("/users",
		middleware.RequireCapability(auth.CapUserList, log)(http.HandlerFunc(listUsers.Handle))).
		Methods(http.MethodGet)
	protected.Handle("/users/{userId}/status",
		middleware.RequireCapability(auth.CapUserUpdateStatus, log)(http.HandlerFunc(updateUserStatus.Handle))).
		Methods(http.MethodPatch)
	protected.Handle("/users/{userId}/role",
		middleware.RequireCapability(auth.CapUserUpdateRole, log)(http.HandlerFunc(updateUserRole.Handle))).
		Methods(http.MethodPatch)

	// CORS для браузерных клиентов
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Request-Id"}),
	)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
