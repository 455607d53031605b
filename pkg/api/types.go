package api

// APIResponse represents a standard API response envelope for JSON
// endpoints. Binary endpoints return the payload directly.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// EncodeResponse describes an encode result when the client asks for
// the JSON envelope instead of the raw payload.
type EncodeResponse struct {
	Digest string `json:"digest"`
	Size   int    `json:"size"`
	Cached bool   `json:"cached"`
}

// StatsResponse reports service counters.
type StatsResponse struct {
	Backend     string `json:"backend"`
	CacheHits   int64  `json:"cache_hits"`
	CacheMisses int64  `json:"cache_misses"`
	Compression string `json:"compression"`
}

// ServerConfig holds configuration for the API server.
type ServerConfig struct {
	Bind        string
	Port        int
	APIKey      string
	CacheDir    string
	Compression string
}
