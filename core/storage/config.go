package storage

// Config describes the S3-compatible endpoint that holds room snapshots.
type Config struct {
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	Region    string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, the TLS handshake and waiting for response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`

	Bucket string `mapstructure:"bucket" default:"hotels"`
	// RoomsObject is the key of the JSON room snapshot inside Bucket.
	RoomsObject string `mapstructure:"rooms_object" default:"rooms/rooms.json"`
}
