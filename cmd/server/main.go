package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/online-dot/abroad-application-platform/internal/applicant"
	applicanthandler "github.com/online-dot/abroad-application-platform/internal/applicant/handler"
	"github.com/online-dot/abroad-application-platform/internal/application"
	apphandler "github.com/online-dot/abroad-application-platform/internal/application/handler"
	appmetrics "github.com/online-dot/abroad-application-platform/internal/application/metrics"
	"github.com/online-dot/abroad-application-platform/internal/application/number"
	"github.com/online-dot/abroad-application-platform/internal/audit"
	jwttoken "github.com/online-dot/abroad-application-platform/internal/jwt_token"
	"github.com/online-dot/abroad-application-platform/internal/notification"
	"github.com/online-dot/abroad-application-platform/internal/platform/config"
	"github.com/online-dot/abroad-application-platform/internal/platform/httpserver"
	"github.com/online-dot/abroad-application-platform/internal/platform/logger"
	"github.com/online-dot/abroad-application-platform/internal/platform/postgres"
	platformredis "github.com/online-dot/abroad-application-platform/internal/platform/redis"
	"github.com/online-dot/abroad-application-platform/internal/ratelimit"
	httptransport "github.com/online-dot/abroad-application-platform/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal domain packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	var (
		applicantStore   applicant.Store
		applicationStore application.Store
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		applicantStore = applicant.NewPostgres(db)
		applicationStore = application.NewPostgres(db)
	} else {
		// In-memory stores keep local development working without a database.
		log.Warn("DATABASE_URL not set, using in-memory stores")
		applicantStore = applicant.NewInMemory()
		applicationStore = application.NewInMemory()
	}

	var limiter ratelimit.Limiter = ratelimit.NewInMemory()
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		limiter = ratelimit.NewRedis(redisClient.Client)
	}

	var dispatcher notification.Dispatcher
	if cfg.Notification.Sender != "" {
		dispatcher, err = notification.NewSES(ctx, cfg.Notification.AWSRegion, cfg.Notification.Sender)
		if err != nil {
			log.Error("ses client setup failed", "error", err)
			os.Exit(1)
		}
	} else {
		dispatcher = notification.NewLog(log)
	}

	applicantService := applicant.NewService(applicantStore)
	submissionService := application.NewService(
		applicantService,
		applicationStore,
		number.New(),
		dispatcher,
		audit.NewPublisher(audit.NewInMemory()),
		log,
		appmetrics.New(),
	)

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)
	router := httptransport.NewRouter(
		apphandler.New(submissionService, log),
		applicanthandler.New(applicantService, log),
		jwttoken.NewJWTServiceAdapter(jwtService),
		limiter,
		cfg,
		log,
	)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting abroad application platform", "addr", cfg.Addr)

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server terminated", "error", err)
		os.Exit(1)
	}
}
