package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/RubachokBoss/textinspect/internal/config"
)

// NewCORS builds the CORS handler from the cors config section. Without
// allowed origins every origin is accepted.
func NewCORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   cfg.ExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
