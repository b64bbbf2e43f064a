// Package config loads the crawler configuration.
//
// A .env file is overloaded into the environment first, then Viper maps
// environment variables onto nested keys (REMOTE_AUTH -> remote.auth).
// Defaults come from the `default` struct tags of each section.
//
// Sections:
//   - Server: listen address, API key, metrics exposure
//   - Database: sqlite (default) or mysql connection
//   - Storage: object storage for the response archive
//   - Log: level and format
//   - Remote: listing API credentials, tags and paging
//   - Schedule: cron expression for periodic cycles
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
package config
