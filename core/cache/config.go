package cache

// Config holds configuration for the search result cache.
type Config struct {
	// Enabled turns the Redis cache on. When false searches always hit the ledger.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Addr is the Redis host:port.
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password is the optional Redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis database number.
	DB int `mapstructure:"db" default:"0"`
	// TTLSeconds is how long a cached search result lives.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"60"`
	// Prefix namespaces every key written by this service.
	Prefix string `mapstructure:"prefix" default:"room-finder"`
}
