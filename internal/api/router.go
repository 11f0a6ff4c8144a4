package api

import (
	"net/http"
	"time"

	"code_tutor/internal/api/handler"
	"code_tutor/internal/api/middleware"
	"code_tutor/internal/app/service"
	"code_tutor/internal/common/security"
	"code_tutor/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	answerService *service.AnswerService,
	submissionService *service.SubmissionService,
	userService *service.UserService,
	allowedOrigins []string,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(metrics.InstrumentHandler)

	// Puts the bearer token, if any, in the request context.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	answerHandler := handler.NewAnswerHandler(answerService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	userHandler := handler.NewUserHandler(userService)

	r.Route("/api", func(api chi.Router) {
		answerHandler.RegisterRoutes(api)
		api.Route("/submit-code", submissionHandler.RegisterRoutes)
		api.Route("/users", userHandler.RegisterRoutes)
		api.Post("/login", userHandler.Login)
	})

	return r
}
