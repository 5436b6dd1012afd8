// Package server holds the HTTP server settings: listen port, API key and the
// source the room ledger is filled from at startup.
package server
