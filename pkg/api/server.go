// Package api exposes the tagpack codec over HTTP: JSON documents in,
// tagpack payloads out, and back again. The JSON surface is a policy
// layer over the codec — it requires text map keys and renders bytes
// as base64 — while the codec underneath is reached through whichever
// backend was selected at startup.
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tagpack/tagpack/pkg/backend"
	"github.com/tagpack/tagpack/pkg/cache"
	"github.com/tagpack/tagpack/pkg/compress"
)

// Router builds the HTTP routes for a server.
func Router(server *Server, metrics *Metrics) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{digestHeader, compressionHeader, "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping).
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(server.config.APIKey))

		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))
		r.Post("/encode", metrics.InstrumentHandler("POST", "/api/v1/encode", server.handleEncode))
		r.Post("/decode", metrics.InstrumentHandler("POST", "/api/v1/decode", server.handleDecode))
		r.Get("/payload/{digest}", metrics.InstrumentHandler("GET", "/api/v1/payload/{digest}", server.handleGetPayload))
		r.Get("/stats", metrics.InstrumentHandler("GET", "/api/v1/stats", server.handleStats))
	})

	return r
}

// StartServer starts the HTTP server with all routes configured. It
// blocks until the listener fails.
func StartServer(b backend.Backend, config ServerConfig) error {
	metrics := NewMetrics()

	comp, err := compress.ForAlgorithm(config.Compression)
	if err != nil {
		return err
	}

	var payloadCache *cache.Cache
	if config.CacheDir != "" {
		payloadCache, err = cache.Open(config.CacheDir)
		if err != nil {
			return err
		}
		defer payloadCache.Close()
	}

	server := NewServer(backend.Instrument(b), payloadCache, comp, config, metrics)
	r := Router(server, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	log.Printf("tagpack API listening on %s (backend=%s, compression=%s)", addr, b.Name(), comp.Name())
	return http.ListenAndServe(addr, r)
}
