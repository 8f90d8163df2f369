package api

import (
	"io/fs"
	"net/http"

	"fxconvert/internal/conversion/handler"
	_ "fxconvert/internal/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(conversionHandler *handler.Handler, metricsHandler http.Handler, static fs.FS, log logrus.FieldLogger) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestLogger(&requestLogFormatter{log: log}))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))
	router.Method(http.MethodGet, "/metrics", metricsHandler)

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Get("/", conversionHandler.Home)
	router.Post("/convert", conversionHandler.Convert)
	router.Get("/api/v1/convert/{from:[A-Za-z]{3}}/{to:[A-Za-z]{3}}", conversionHandler.GetConversion)
	return router
}
