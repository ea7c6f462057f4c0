package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	_ "go.uber.org/automaxprocs"
	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-FotoStudio/internal/api/handlers"
	blockDateHandler "github.com/m04kA/SMC-FotoStudio/internal/api/handlers/block_date"
	configureReminderHandler "github.com/m04kA/SMC-FotoStudio/internal/api/handlers/configure_reminder"
	getCalendarHandler "github.com/m04kA/SMC-FotoStudio/internal/api/handlers/get_calendar"
	getPageHandler "github.com/m04kA/SMC-FotoStudio/internal/api/handlers/get_page"
	getReminderDraftHandler "github.com/m04kA/SMC-FotoStudio/internal/api/handlers/get_reminder_draft"
	getServicesHandler "github.com/m04kA/SMC-FotoStudio/internal/api/handlers/get_services"
	selectDateHandler "github.com/m04kA/SMC-FotoStudio/internal/api/handlers/select_date"
	submitBookingHandler "github.com/m04kA/SMC-FotoStudio/internal/api/handlers/submit_booking"
	toggleAdminHandler "github.com/m04kA/SMC-FotoStudio/internal/api/handlers/toggle_admin"
	unblockDateHandler "github.com/m04kA/SMC-FotoStudio/internal/api/handlers/unblock_date"
	"github.com/m04kA/SMC-FotoStudio/internal/api/middleware"
	"github.com/m04kA/SMC-FotoStudio/internal/config"
	sessionRepo "github.com/m04kA/SMC-FotoStudio/internal/infra/storage/session"
	"github.com/m04kA/SMC-FotoStudio/internal/integrations/notifier"
	"github.com/m04kA/SMC-FotoStudio/internal/scheduler"
	calendarService "github.com/m04kA/SMC-FotoStudio/internal/service/calendar"
	pageService "github.com/m04kA/SMC-FotoStudio/internal/service/page"
	configureReminderUC "github.com/m04kA/SMC-FotoStudio/internal/usecase/configure_reminder"
	submitBookingUC "github.com/m04kA/SMC-FotoStudio/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-FotoStudio/internal/web"
	"github.com/m04kA/SMC-FotoStudio/pkg/logger"
	"github.com/m04kA/SMC-FotoStudio/pkg/metrics"
)

const msgCSRFFailed = "форма устарела, обновите страницу и попробуйте снова"

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

	log.Info("Starting SMC-FotoStudio...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Location()
	if err != nil {
		log.Fatal("Failed to load studio timezone: %v", err)
	}
	log.Info("Studio timezone: %s", location)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище состояний страниц и шлюз уведомлений
	sessions := sessionRepo.NewRepository()
	gateway := notifier.NewNoop(log)

	// Инициализируем use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(
		sessions,
		metricsCollector,
		location,
		cfg.Studio.PhoneRegion,
		log,
	)
	configureReminderUseCase := configureReminderUC.NewUseCase(
		sessions,
		gateway,
		metricsCollector,
		location,
		log,
	)

	// Инициализируем сервисы
	calendarSvc := calendarService.NewService(sessions, metricsCollector, location, log)
	pageSvc := pageService.NewService(
		sessions,
		cfg.Studio.Contacts(),
		cfg.Admin.ToggleEnabled,
		location,
		log,
	)

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal("Failed to parse page templates: %v", err)
	}

	// Инициализируем handlers
	getPage := getPageHandler.NewHandler(pageSvc, configureReminderUseCase, renderer, log)
	getServices := getServicesHandler.NewHandler(pageSvc)
	getCalendar := getCalendarHandler.NewHandler(calendarSvc, log)
	selectDate := selectDateHandler.NewHandler(calendarSvc, sessions, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, sessions, log)
	toggleAdmin := toggleAdminHandler.NewHandler(pageSvc, sessions, log)
	blockDate := blockDateHandler.NewHandler(calendarSvc, sessions, log)
	unblockDate := unblockDateHandler.NewHandler(calendarSvc, sessions, log)
	getReminderDraft := getReminderDraftHandler.NewHandler(configureReminderUseCase, log)
	configureReminder := configureReminderHandler.NewHandler(configureReminderUseCase, sessions, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все маршруты страницы привязаны к сессии посетителя
	app := r.PathPrefix("").Subrouter()
	app.Use(middleware.Session(sessions, middleware.SessionConfig{
		CookieName: cfg.Session.CookieName,
		MaxAge:     time.Duration(cfg.Session.IdleTimeout) * time.Minute,
		Secure:     cfg.Session.Secure,
		Location:   location,
	}, log))

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		app.Use(limiter.Middleware)
		log.Info("Rate limit enabled: %.1f req/s, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// ============================================================
	// JSON API
	// ============================================================

	api := app.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/page", getPage.HandleJSON).Methods(http.MethodGet)
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/selection", selectDate.HandleJSON).Methods(http.MethodPut)
	api.HandleFunc("/bookings", submitBooking.HandleJSON).Methods(http.MethodPost)

	// --- Режим администратора ---
	api.HandleFunc("/admin/toggle", toggleAdmin.HandleJSON).Methods(http.MethodPost)
	api.HandleFunc("/admin/blocked-dates", blockDate.HandleJSON).Methods(http.MethodPost)
	api.HandleFunc("/admin/blocked-dates/{index}", unblockDate.HandleJSON).Methods(http.MethodDelete)
	api.HandleFunc("/admin/bookings/{bookingId}/reminder", getReminderDraft.Handle).Methods(http.MethodGet)
	api.HandleFunc("/admin/bookings/{bookingId}/reminder", configureReminder.HandleJSON).Methods(http.MethodPut)

	// ============================================================
	// HTML PAGE (формы защищены CSRF токеном)
	// ============================================================

	csrfKey, err := resolveCSRFKey(cfg.CSRF.Key)
	if err != nil {
		log.Fatal("Failed to generate CSRF key: %v", err)
	}
	if cfg.CSRF.Key == "" {
		log.Warn("FOTOSTUDIO_CSRF_KEY is not set, using a random key (forms break after restart)")
	}

	page := app.PathPrefix("").Subrouter()
	page.Use(csrf.Protect(
		csrfKey,
		csrf.Secure(cfg.Session.Secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Warn("%s %s - CSRF validation failed: %v", r.Method, r.URL.Path, csrf.FailureReason(r))
			handlers.RespondForbidden(w, msgCSRFFailed)
		})),
	))

	page.HandleFunc("/", getPage.HandleHTML).Methods(http.MethodGet)
	page.HandleFunc("/calendar/select", selectDate.HandleForm).Methods(http.MethodPost)
	page.HandleFunc("/bookings", submitBooking.HandleForm).Methods(http.MethodPost)
	page.HandleFunc("/admin/toggle", toggleAdmin.HandleForm).Methods(http.MethodPost)
	page.HandleFunc("/admin/blocked-dates", blockDate.HandleForm).Methods(http.MethodPost)
	page.HandleFunc("/admin/blocked-dates/{index}/unblock", unblockDate.HandleForm).Methods(http.MethodPost)
	page.HandleFunc("/admin/bookings/{bookingId}/reminder", configureReminder.HandleForm).Methods(http.MethodPost)

	// Периодическая очистка неактивных сессий
	var limiters scheduler.LimiterStore
	if limiter != nil {
		limiters = limiter
	}
	sweeper, err := scheduler.New(sessions, limiters, metricsCollector, scheduler.Config{
		SweepInterval: time.Duration(cfg.Session.SweepInterval) * time.Minute,
		IdleTimeout:   time.Duration(cfg.Session.IdleTimeout) * time.Minute,
	}, log)
	if err != nil {
		log.Fatal("Failed to create scheduler: %v", err)
	}
	sweeper.Start()

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown по SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()

		if err := sweeper.Stop(); err != nil {
			log.Error("Scheduler stopped with error: %v", err)
		}
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Server stopped with error: %v", err)
		return
	}

	log.Info("Server stopped gracefully")
}

// resolveCSRFKey возвращает ключ из конфигурации или случайный ключ на время жизни процесса
func resolveCSRFKey(configured string) ([]byte, error) {
	if configured != "" {
		return []byte(configured), nil
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}
