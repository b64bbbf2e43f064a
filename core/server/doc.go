// Package server holds the HTTP server configuration.
//
// The Config struct defines the listen address, the API key protecting the
// favorites routes, and whether the metrics endpoint is public. It is embedded
// by core/config and read by the start command.
package server
