package api

import (
	"encoding/hex"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tagpack/tagpack/pkg/backend"
	"github.com/tagpack/tagpack/pkg/cache"
	"github.com/tagpack/tagpack/pkg/compress"
	"github.com/tagpack/tagpack/pkg/value"
)

// maxBodyBytes caps request bodies; the codec has no size limit of its
// own, so the surface imposes one.
const maxBodyBytes = 32 << 20

const (
	compressionHeader = "X-Tagpack-Compression"
	digestHeader      = "X-Tagpack-Digest"
)

// Server holds the API server state.
type Server struct {
	backend backend.Backend
	cache   *cache.Cache
	comp    compress.Compressor
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server. The cache may be nil, in which
// case payloads are not retained.
func NewServer(b backend.Backend, c *cache.Cache, comp compress.Compressor, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		backend: b,
		cache:   c,
		comp:    comp,
		config:  config,
		metrics: metrics,
	}
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy", "backend": s.backend.Name()})
}

// handleEncode turns a JSON document into a tagpack payload. The
// response is the raw payload with its digest in X-Tagpack-Digest;
// ?envelope=json returns a JSON summary instead of the bytes.
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	v, err := value.FromJSON(body)
	if err != nil {
		sendError(w, fmt.Sprintf("Invalid JSON document: %v", err), http.StatusBadRequest)
		return
	}

	encoded, err := s.backend.Encode(v)
	if err != nil {
		sendError(w, fmt.Sprintf("Encode failed: %v", err), http.StatusUnprocessableEntity)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordPayload("encode", len(encoded))
	}

	var digest cache.Digest
	cached := false
	if s.cache != nil {
		digest, err = s.cache.Put(encoded)
		if err != nil {
			sendError(w, fmt.Sprintf("Cache write failed: %v", err), http.StatusInternalServerError)
			return
		}
		cached = true
	} else {
		digest = cache.Key(encoded)
	}

	if r.URL.Query().Get("envelope") == "json" {
		sendSuccess(w, EncodeResponse{Digest: digest.String(), Size: len(encoded), Cached: cached})
		return
	}

	out, err := s.comp.Compress(encoded)
	if err != nil {
		sendError(w, fmt.Sprintf("Compression failed: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set(digestHeader, digest.String())
	if s.comp.Name() != "none" {
		w.Header().Set(compressionHeader, s.comp.Name())
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// handleDecode turns a tagpack payload back into JSON. A payload
// compressed by this service carries X-Tagpack-Compression; the same
// header on the request selects decompression.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	if alg := r.Header.Get(compressionHeader); alg != "" {
		comp, err := compress.ForAlgorithm(alg)
		if err != nil {
			sendError(w, fmt.Sprintf("Unknown compression %q", alg), http.StatusBadRequest)
			return
		}
		body, err = comp.Decompress(body)
		if err != nil {
			sendError(w, fmt.Sprintf("Decompression failed: %v", err), http.StatusBadRequest)
			return
		}
	}

	v, err := s.backend.Decode(body)
	if err != nil {
		sendError(w, fmt.Sprintf("Decode failed: %v", err), http.StatusUnprocessableEntity)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordPayload("decode", len(body))
	}

	out, err := value.ToJSON(v)
	if err != nil {
		sendError(w, fmt.Sprintf("Value has no JSON form: %v", err), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// handleGetPayload fetches a previously encoded payload by digest.
func (s *Server) handleGetPayload(w http.ResponseWriter, r *http.Request) {
	if s.cache == nil {
		sendError(w, "Payload cache is disabled", http.StatusNotFound)
		return
	}

	raw, err := hex.DecodeString(chi.URLParam(r, "digest"))
	if err != nil || len(raw) != len(cache.Digest{}) {
		sendError(w, "Invalid digest", http.StatusBadRequest)
		return
	}
	var digest cache.Digest
	copy(digest[:], raw)

	encoded, ok, err := s.cache.Get(digest)
	if err != nil {
		sendError(w, fmt.Sprintf("Cache read failed: %v", err), http.StatusInternalServerError)
		return
	}
	if !ok {
		sendError(w, "Unknown digest", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set(digestHeader, digest.String())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(encoded)
}

// handleStats reports service counters.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := StatsResponse{
		Backend:     s.backend.Name(),
		Compression: s.comp.Name(),
	}
	if s.cache != nil {
		stats.CacheHits, stats.CacheMisses = s.cache.Stats()
	}
	sendSuccess(w, stats)
}
