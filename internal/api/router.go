package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(app *App, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/ping", PingHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", RootHandler)
		r.Post("/analyze-image", app.AnalyzeImageHandler)
		r.Get("/analysis-history", app.AnalysisHistoryHandler)
		r.Get("/analysis/{id}", app.GetAnalysisHandler)
		r.Delete("/analysis/{id}", app.DeleteAnalysisHandler)
	})

	return r
}
