// Package logger builds the zap logger shared by the CLI and the HTTP server.
//
// Level is one of debug, info, warn or error; debug switches to the development
// config. Format picks the console or json encoder. Every entry carries
// service=room-finder.
//
// Inside handlers use WithRayID so entries of one request share its ray_id:
//
//	l := logger.WithRayID(log, c)
//	l.Error("Search failed", zap.Error(err))
package logger
