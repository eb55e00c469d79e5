package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the request body size in megabytes; workbook-sized
	// JSON payloads need more headroom than fiber's 4MB default.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"64"`
	// CacheTTLSeconds is how long tables parsed from storage objects stay
	// cached. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// BodyLimitBytes returns the request body cap in bytes, falling back to the
// default when the configured value is not positive.
func (c Config) BodyLimitBytes() int {
	limit := c.BodyLimitMB
	if limit <= 0 {
		limit = 64
	}
	return limit * 1024 * 1024
}
