package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/careplan/careplan-backend-go/internal/config"
	appHTTP "github.com/careplan/careplan-backend-go/internal/handler/http"
	"github.com/careplan/careplan-backend-go/internal/pkg/calendar"
	"github.com/careplan/careplan-backend-go/internal/pkg/cron"
	"github.com/careplan/careplan-backend-go/internal/pkg/database"
	"github.com/careplan/careplan-backend-go/internal/pkg/jwt"
	"github.com/careplan/careplan-backend-go/internal/pkg/sse"
	"github.com/careplan/careplan-backend-go/internal/repository/postgresql"
	authService "github.com/careplan/careplan-backend-go/internal/service/auth"
	dashboardService "github.com/careplan/careplan-backend-go/internal/service/dashboard"
	employeeService "github.com/careplan/careplan-backend-go/internal/service/employee"
	holidayService "github.com/careplan/careplan-backend-go/internal/service/holiday"
	locationService "github.com/careplan/careplan-backend-go/internal/service/location"
	notificationService "github.com/careplan/careplan-backend-go/internal/service/notification"
	vacationService "github.com/careplan/careplan-backend-go/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "careplan"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Pool.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	vacationRequestRepo := postgresql.NewVacationRequestRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	hub := sse.NewHub()
	notifSvc := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{}, logger)
	vacationNotifier := notificationService.NewVacationNotifier(notifSvc)

	weekend := calendar.Weekend{}
	for _, day := range cfg.Vacation.WeekendDays {
		weekend[day] = true
	}
	policy := vacationService.Policy{
		MinAdvanceNoticeDays: cfg.Vacation.MinAdvanceNoticeDays,
		Weekend:              weekend,
	}

	holidaySvc := holidayService.NewService(holidayRepo)
	vacationSvc := vacationService.NewService(
		txManager,
		vacationRequestRepo,
		employeeRepo,
		locationRepo,
		holidaySvc,
		vacationNotifier,
		policy,
		logger,
	)
	employeeSvc := employeeService.NewService(txManager, employeeRepo, vacationRequestRepo, logger)
	locationSvc := locationService.NewService(locationRepo, employeeRepo)
	authSvc := authService.NewService(employeeRepo, JWTService)
	dashboardSvc := dashboardService.NewService(dashboardRepo)

	scheduler := cron.NewScheduler()
	cron.NewBalanceJobs(employeeSvc).RegisterJobs(scheduler)
	scheduler.Start()

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, JWTService),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Location:     appHTTP.NewLocationHandler(locationSvc),
		Holiday:      appHTTP.NewHolidayHandler(holidaySvc),
		Vacation:     appHTTP.NewVacationHandler(vacationSvc),
		Notification: appHTTP.NewNotificationHandler(notifSvc, JWTService),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
	}, []string{cfg.App.FrontendURL})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}

	scheduler.Stop()
	notifSvc.Stop()
}
