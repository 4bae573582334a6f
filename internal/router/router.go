package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "purrlog/docs"
	"purrlog/internal/adapters/storage/memory"
	"purrlog/internal/app"
	"purrlog/internal/middleware"
	"purrlog/internal/platform/logger"
	"purrlog/internal/ports/auth"
	"purrlog/internal/ports/capabilities"
)

type Options struct {
	// Opcional: si no viene, workspaces in-memory y asistente offline (modo dev).
	Workspaces *app.Workspaces

	AuthVerifier auth.AuthVerifier     // puede ser nil (modo dev)
	Capabilities capabilities.Resolver // nil = todo permitido
	Logger       logger.Logger
	DefaultUser  string // modo dev: usuario cuando no viene X-Debug-User-ID
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	ws := opts.Workspaces
	if ws == nil {
		ws = app.NewWorkspaces(app.WorkspacesConfig{
			Store:  memory.NewBlobStore(),
			Logger: log,
		})
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier, opts.DefaultUser))
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	app.RegisterRoutes(r, ws, opts.Capabilities)

	return r
}
