package handler

import (
	"log/slog"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lms-api/internal/handler/api"
	"lms-api/internal/handler/middleware"
	"lms-api/internal/pkg/config"
)

type route struct {
	Method      string
	Path        string
	Handler     gin.HandlerFunc
	Mw          []gin.HandlerFunc
	Idempotency middleware.IdempotencyPolicy
}

type handlers struct {
	students    *api.StudentHandler
	courses     *api.CourseHandler
	enrollments *api.EnrollmentHandler
}

type router struct {
	policies middleware.RoutePolicies
}

// NewRouter registers middleware and routes on engine. The policies map is
// filled while routes are added, before the engine serves any request.
func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	gate *middleware.IdempotencyGate,
	studentHandler *api.StudentHandler,
	courseHandler *api.CourseHandler,
	enrollmentHandler *api.EnrollmentHandler,
) {
	r := &router{policies: middleware.RoutePolicies{}}
	setupMiddleware(engine, cfg, logger, gate, r.policies)
	r.setupRoutes(engine, handlers{
		students:    studentHandler,
		courses:     courseHandler,
		enrollments: enrollmentHandler,
	})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, gate *middleware.IdempotencyGate, policies middleware.RoutePolicies) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	// Gate must be last so c.Next() inside it runs only the route handler
	engine.Use(gate.Middleware(policies))
}

func (r *router) setupRoutes(engine *gin.Engine, h handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		students := apiGroup.Group("/students")
		{
			r.addRoutes(students, []route{
				{Method: http.MethodGet, Path: "", Handler: h.students.List},
				{Method: http.MethodPost, Path: "", Handler: h.students.Create, Idempotency: middleware.IdempotencyRequired},
				{Method: http.MethodGet, Path: "/:id", Handler: h.students.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.students.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.students.Delete},
			})
		}

		courses := apiGroup.Group("/courses")
		{
			r.addRoutes(courses, []route{
				{Method: http.MethodGet, Path: "", Handler: h.courses.List},
				{Method: http.MethodPost, Path: "", Handler: h.courses.Create, Idempotency: middleware.IdempotencyRequired},
				{Method: http.MethodGet, Path: "/:id", Handler: h.courses.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.courses.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.courses.Delete},
			})
		}

		enrollments := apiGroup.Group("/enrollments")
		{
			r.addRoutes(enrollments, []route{
				{Method: http.MethodGet, Path: "", Handler: h.enrollments.List},
				{Method: http.MethodPost, Path: "", Handler: h.enrollments.Create, Idempotency: middleware.IdempotencyOptional},
				{Method: http.MethodGet, Path: "/:id", Handler: h.enrollments.Get},
				{Method: http.MethodPut, Path: "/:id/grade", Handler: h.enrollments.UpdateGrade},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.enrollments.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func (r *router) addRoutes(g *gin.RouterGroup, rs []route) {
	for _, rt := range rs {
		h := rt.Handler
		if len(rt.Mw) > 0 {
			h = chainHandlers(append(rt.Mw, rt.Handler)...)
		}
		if rt.Idempotency != middleware.IdempotencyNone {
			r.policies[middleware.RouteKey(rt.Method, fullPath(g, rt.Path))] = rt.Idempotency
		}
		switch rt.Method {
		case http.MethodGet:
			g.GET(rt.Path, h)
		case http.MethodPost:
			g.POST(rt.Path, h)
		case http.MethodPut:
			g.PUT(rt.Path, h)
		case http.MethodPatch:
			g.PATCH(rt.Path, h)
		case http.MethodDelete:
			g.DELETE(rt.Path, h)
		default:
			g.Any(rt.Path, h)
		}
	}
}

// fullPath mirrors how gin joins group and relative paths, so the key
// matches c.FullPath() at request time.
func fullPath(g *gin.RouterGroup, relative string) string {
	if relative == "" {
		return g.BasePath()
	}
	joined := path.Join(g.BasePath(), relative)
	if relative[len(relative)-1] == '/' && joined[len(joined)-1] != '/' {
		return joined + "/"
	}
	return joined
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
