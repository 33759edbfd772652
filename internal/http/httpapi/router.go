package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"contentmaker/internal/http/handlers"
	"contentmaker/internal/middleware"
)

// NewRouter builds the full HTTP surface: generation API, derived views and
// the static tree holding published videos and audios.
func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Log),
		middleware.CORS(app.Cfg.CORSOrigins),
	)
	if app.Cfg.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(app.Cfg.RateLimitPerMin, time.Minute))
	}

	r.Get("/v1/healthz", app.Health)

	r.Post("/generate", app.Generate)
	r.Get("/status/{job_id}", app.Status)
	r.Get("/download/{job_id}", app.Download)

	r.Get("/videos", app.ListVideos)
	r.Route("/video/{job_id}", func(r chi.Router) {
		r.Get("/stream", app.StreamVideo)
		r.Get("/embed", app.EmbedVideo)
		r.Get("/info", app.VideoInfo)
	})

	r.Get("/podcast/{job_id}/info", app.PodcastInfo)
	r.Get("/artifacts/{job_id}/archive", app.Archive)

	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(app.Cfg.StaticDir)))
	r.Get("/static/*", func(w http.ResponseWriter, req *http.Request) {
		fileServer.ServeHTTP(w, req)
	})

	return r
}
