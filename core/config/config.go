package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"room-finder/core/cache"
	"room-finder/core/database"
	"room-finder/core/logger"
	"room-finder/core/server"
	"room-finder/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full room-finder configuration, one section per core package.
type Config struct {
	Server   server.Config   `mapstructure:"server"`
	Storage  storage.Config  `mapstructure:"storage"`
	Log      logger.Config   `mapstructure:"log"`
	Database database.Config `mapstructure:"database"`
	Cache    cache.Config    `mapstructure:"cache"`
}

// LoadConfig reads dir/.env (when present) into the environment and builds the
// configuration from environment variables over tag defaults.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	bindValues(v, Config{}, "")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return &cfg, nil
}

// bindValues registers a default for every tagged leaf field. Keys need a default,
// even an empty one, before AutomaticEnv will resolve them in Unmarshal.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
