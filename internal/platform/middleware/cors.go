package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns permissive CORS handling for the local invoke server. Browser
// tooling may call both the hello route and the invocation endpoint.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-Id",
			"X-Amzn-Trace-Id",
		},
		ExposedHeaders: []string{"Link", "X-Request-Id", "Lambda-Runtime-Function-Error-Type"},
		MaxAge:         300,
	})
}
