package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/snowpeak/skistation/internal/config"
	"github.com/snowpeak/skistation/internal/db"
	"github.com/snowpeak/skistation/internal/events"
	"github.com/snowpeak/skistation/internal/handlers"
	"github.com/snowpeak/skistation/internal/jobs"
	"github.com/snowpeak/skistation/internal/logger"
	"github.com/snowpeak/skistation/internal/models"
	"github.com/snowpeak/skistation/internal/repository"
	"github.com/snowpeak/skistation/internal/services"
	"github.com/snowpeak/skistation/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("error").Error("config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	// Opens (and migrates) the sqlite file at DB_PATH
	conn, err := db.Open(cfg.DBPath, log)
	if err != nil {
		log.Error("db init", "error", err)
		os.Exit(1)
	}

	skiers := repository.NewSkierRepo(conn)
	subs := repository.NewSubscriptionRepo(conn)
	courses := repository.NewCourseRepo(conn)
	instructors := repository.NewInstructorRepo(conn)
	pistes := repository.NewPisteRepo(conn)
	regs := repository.NewRegistrationRepo(conn)

	registrations := services.NewRegistrationService(regs, skiers, courses, instructors)
	svc := handlers.Services{
		Skiers:        services.NewSkierService(skiers, subs, pistes, courses, registrations),
		Subscriptions: services.NewSubscriptionService(subs, skiers),
		Courses:       services.NewCourseService(courses),
		Instructors:   services.NewInstructorService(instructors, courses),
		Pistes:        services.NewPisteService(pistes),
		Registrations: registrations,
	}

	events.OnRegistrationCreated = func(reg models.Registration) {
		attrs := []any{"registration", reg.ID, "code", reg.Code, "week", reg.NumWeek}
		if reg.SkierID != nil {
			attrs = append(attrs, "skier", *reg.SkierID)
		}
		if reg.CourseID != nil {
			attrs = append(attrs, "course", *reg.CourseID)
		}
		log.Info("registration created", attrs...)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.ExpirySweepEnabled {
		jobs.StartExpiryLoop(ctx, svc.Subscriptions, log, cfg.ExpirySweepInterval)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           web.Router(handlers.New(svc, log, cfg.PublicURL), log, cfg.AdminToken),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("ski station listening", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server", "error", err)
		os.Exit(1)
	}
}
