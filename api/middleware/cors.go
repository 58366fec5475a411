package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/yourarttoy/arttoy-backend/pkg/config"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000", // local dev
}

// CORS returns middleware that applies the API's allowed origin policy.
func CORS(cfg config.AppConfig) func(http.Handler) http.Handler {
	origins := defaultCORSOrigins
	if cfg.FrontendURL != "" {
		origins = append(origins, cfg.FrontendURL)
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
