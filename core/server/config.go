package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// Source is where rooms are loaded from at startup (memory, database, storage).
	Source string `mapstructure:"source" default:"memory"`
}

const (
	SourceMemory   = "memory"
	SourceDatabase = "database"
	SourceStorage  = "storage"
)

// IsValidSource checks if the configured room source is valid.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceMemory, SourceDatabase, SourceStorage:
		return true
	default:
		return false
	}
}
