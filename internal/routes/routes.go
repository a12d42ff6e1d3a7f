package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"jobboard/internal/config"
	"jobboard/internal/handlers"
	"jobboard/internal/middleware"
	"jobboard/internal/models"
	"jobboard/internal/repository"
)

// route declares one endpoint: its method, path, the roles allowed to call
// it, and the handler. Authentication and the role check run before dispatch;
// handlers never branch on role themselves.
type route struct {
	method  string
	path    string
	roles   []models.Role // nil with authed=false means public
	authed  bool
	handler fiber.Handler
}

func Setup(
	app *fiber.App,
	cfg *config.Config,
	users repository.UserStore,
	userHandler *handlers.UserHandler,
	jobHandler *handlers.JobHandler,
	applicationHandler *handlers.ApplicationHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api/v1")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Credential endpoints get a stricter limit: 10 req/min per IP
	credLimit := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/user/register", credLimit, userHandler.Register)
	api.Post("/user/login", credLimit, userHandler.Login)

	employer := []models.Role{models.RoleEmployer}
	seeker := []models.Role{models.RoleJobSeeker}

	table := []route{
		{fiber.MethodGet, "/user/logout", nil, true, userHandler.Logout},
		{fiber.MethodGet, "/user/getuser", nil, true, userHandler.GetUser},

		{fiber.MethodGet, "/job/getall", nil, false, jobHandler.GetAll},
		{fiber.MethodPost, "/job/post", employer, true, jobHandler.Post},
		{fiber.MethodGet, "/job/getmyjobs", employer, true, jobHandler.GetMyJobs},
		{fiber.MethodPut, "/job/update/:id", employer, true, jobHandler.Update},
		{fiber.MethodDelete, "/job/delete/:id", employer, true, jobHandler.Delete},
		{fiber.MethodGet, "/job/:id", nil, false, jobHandler.GetSingle},

		{fiber.MethodPost, "/application/post", seeker, true, applicationHandler.Post},
		{fiber.MethodGet, "/application/employer/getall", employer, true, applicationHandler.EmployerGetAll},
		{fiber.MethodGet, "/application/jobseeker/getall", seeker, true, applicationHandler.JobseekerGetAll},
		{fiber.MethodDelete, "/application/delete/:id", seeker, true, applicationHandler.Delete},
	}

	authn := []fiber.Handler{
		middleware.JWTProtected(cfg),
		middleware.AttachIdentity(users),
	}

	for _, r := range table {
		chain := make([]fiber.Handler, 0, 4)
		if r.authed {
			chain = append(chain, authn...)
		}
		if len(r.roles) > 0 {
			chain = append(chain, middleware.RequireRole(r.roles...))
		}
		chain = append(chain, r.handler)
		api.Add(r.method, r.path, chain...)
	}
}
