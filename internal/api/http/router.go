package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lms-service/internal/api/http/handlers"
	"github.com/spec-kit/lms-service/internal/auth"
	"github.com/spec-kit/lms-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Pages         *handlers.PagesHandler
	Auth          *handlers.AuthHandler
	Users         *handlers.UsersHandler
	Universities  *handlers.UniversitiesHandler
	Courses       *handlers.CoursesHandler
	Catalog       *handlers.CatalogHandler
	Enrollments   *handlers.EnrollmentsHandler
	Dashboard     *handlers.DashboardHandler
	Admin         *handlers.AdminHandler
	Authenticator *auth.Authenticator
	RedirectGuard *auth.RedirectGuard
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	requireAuth := cfg.Authenticator.RequireAuth()
	staff := cfg.Authenticator.RequireRole(domain.RoleInstructor, domain.RoleAdmin)
	adminOnly := cfg.Authenticator.RequireRole(domain.RoleAdmin)
	studentOnly := cfg.Authenticator.RequireRole(domain.RoleStudent)

	// Browser navigation. The redirect guard runs before routing so it also
	// covers paths with no registered page.
	app.Use(cfg.RedirectGuard.Handle)
	app.Get("/", cfg.Pages.Home)
	app.Get("/login", cfg.Pages.Login)
	app.Get("/register", cfg.Pages.Register)
	app.Get("/dashboard", cfg.Authenticator.Attach(), cfg.Pages.Dashboard)

	api := app.Group("/api")
	api.Get("/health/live", cfg.Health.Live)
	api.Get("/health/ready", cfg.Health.Ready)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/me", requireAuth, cfg.Auth.Me)
	authGroup.Post("/password/change", cfg.Auth.ChangePassword)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)

	universities := api.Group("/universities")
	universities.Get("", cfg.Universities.List)
	universities.Get("/:id", cfg.Universities.Get)
	universities.Post("", adminOnly, cfg.Universities.Create)
	universities.Put("/:id", adminOnly, cfg.Universities.Update)
	universities.Delete("/:id", adminOnly, cfg.Universities.Delete)

	api.Get("/textbooks", cfg.Catalog.ListTextbooks)
	api.Get("/topics", cfg.Catalog.ListTopics)

	courses := api.Group("/courses")
	courses.Get("", cfg.Courses.List)
	courses.Get("/:id", cfg.Courses.Get)
	courses.Post("", staff, cfg.Courses.Create)
	courses.Put("/:id", staff, cfg.Courses.Update)
	courses.Delete("/:id", staff, cfg.Courses.Delete)
	courses.Post("/:id/instructors", adminOnly, cfg.Courses.AssignInstructor)
	courses.Delete("/:id/instructors/:instructorId", adminOnly, cfg.Courses.RemoveInstructor)
	courses.Get("/:id/contents", requireAuth, cfg.Courses.ListContents)
	courses.Post("/:id/contents", staff, cfg.Courses.AddContent)
	courses.Delete("/:id/contents/:contentId", staff, cfg.Courses.DeleteContent)
	courses.Post("/:id/enroll", studentOnly, cfg.Enrollments.Enroll)
	courses.Delete("/:id/enroll", studentOnly, cfg.Enrollments.Drop)
	courses.Get("/:id/students", staff, cfg.Enrollments.Roster)

	api.Get("/enrollments", studentOnly, cfg.Enrollments.MyEnrollments)
	api.Get("/dashboard", requireAuth, cfg.Dashboard.Get)

	api.Post("/admin/reseed", adminOnly, cfg.Admin.Reseed)

	users := api.Group("/users", adminOnly)
	users.Get("", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Delete("/:id", cfg.Users.Delete)
	users.Put("/:id/role", cfg.Users.ChangeRole)
}
