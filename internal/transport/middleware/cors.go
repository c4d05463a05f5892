package middleware

import (
	"github.com/go-chi/cors"

	"github.com/heartmarshall/vidstream-backend/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing and
// answers preflight requests.
func CORS(cfg config.CORSConfig) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
