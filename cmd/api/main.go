package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/lms-service/internal/api/http"
	"github.com/spec-kit/lms-service/internal/api/http/handlers"
	"github.com/spec-kit/lms-service/internal/auth"
	"github.com/spec-kit/lms-service/internal/config"
	"github.com/spec-kit/lms-service/internal/events"
	"github.com/spec-kit/lms-service/internal/observability"
	"github.com/spec-kit/lms-service/internal/persistence"
	"github.com/spec-kit/lms-service/internal/repository"
	"github.com/spec-kit/lms-service/internal/service"
	"github.com/spec-kit/lms-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)
	universityRepo := repository.NewUniversityRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	contentRepo := repository.NewContentRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)
	catalogRepo := repository.NewCatalogRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService, err := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:          userRepo,
		PasswordResetRepo: resetRepo,
		Dispatcher:        dispatcher,
	})
	if err != nil {
		logger.Fatal("failed to init auth service", zap.Error(err))
	}
	authenticator := auth.NewAuthenticator(authService.TokenManager())

	universityService := service.NewUniversityService(universityRepo)
	courseService := service.NewCourseService(service.CourseDependencies{
		CourseRepo:     courseRepo,
		ContentRepo:    contentRepo,
		EnrollmentRepo: enrollmentRepo,
		UniversityRepo: universityRepo,
		UserRepo:       userRepo,
		Dispatcher:     dispatcher,
	})
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, courseRepo, dispatcher)
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(catalogRepo)

	dashboardCache := persistence.NewCache(redis.Client, cfg.App.Name, 5*time.Minute)
	dashboardService := service.NewDashboardService(statsRepo, enrollmentRepo, courseRepo, dashboardCache)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Pages:         handlers.NewPagesHandler(cfg.App.Name),
		Auth:          handlers.NewAuthHandler(authService, cfg.App.Production()),
		Users:         handlers.NewUsersHandler(userService),
		Universities:  handlers.NewUniversitiesHandler(universityService),
		Courses:       handlers.NewCoursesHandler(courseService),
		Catalog:       handlers.NewCatalogHandler(catalogService),
		Enrollments:   handlers.NewEnrollmentsHandler(enrollmentService),
		Dashboard:     handlers.NewDashboardHandler(dashboardService),
		Admin:         handlers.NewAdminHandler(pg, logger, cfg.App.Production()),
		Authenticator: authenticator,
		RedirectGuard: auth.NewRedirectGuard(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
