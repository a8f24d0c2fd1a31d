package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workpulse-hq/attendance-board-go/internal/config"
	"github.com/workpulse-hq/attendance-board-go/internal/handler/http/middleware"
)

type RouterConfig struct {
	Config             *config.Config
	TokenAuth          *jwtauth.JWTAuth
	LiveHandler        LiveHandler
	ReportHandler      ReportHandler
	EditRequestHandler EditRequestHandler
}

func NewRouter(rc RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(rc.Config.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
		Level:       logLevel(rc.Config.App.LogLevel),
	})).With(
		slog.String("app", "attendance-board"),
		slog.String("version", "v1.0.0"),
		slog.String("env", rc.Config.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{rc.Config.App.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	r.Route("/api/v1", func(r chi.Router) {
		// The stream authenticates with a short-lived query token because
		// EventSource cannot set an Authorization header.
		r.Get("/live/stream", rc.LiveHandler.Stream)

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(rc.TokenAuth))
			r.Use(middleware.AuthRequired(rc.TokenAuth))

			r.Route("/live", func(r chi.Router) {
				r.Get("/statuses", rc.LiveHandler.Statuses)
				r.Get("/feed", rc.LiveHandler.Feed)
				r.Get("/sse-token", rc.LiveHandler.SSEToken)
				r.Post("/events", rc.LiveHandler.IngestEvent)
			})

			r.Get("/reports/monthly", rc.ReportHandler.Monthly)

			r.Route("/edit-requests", func(r chi.Router) {
				r.Get("/", rc.EditRequestHandler.List)
				r.Post("/{requestID}/approve", rc.EditRequestHandler.Approve)
				r.Post("/{requestID}/reject", rc.EditRequestHandler.Reject)
			})
		})
	})

	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
