// Package config loads room-finder settings with viper.
//
// Values come from, in order of precedence, environment variables, a .env file
// in the given directory and the `default` tag on each field. The environment
// name of a key is its upper-cased path with dots replaced by underscores, so
// cache.ttl_seconds is read from CACHE_TTL_SECONDS.
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
package config
