package scheduler

// Config holds configuration for periodic crawl cycles.
type Config struct {
	// Enabled starts the scheduler together with the HTTP server.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Cron is the cycle schedule in cron syntax.
	Cron string `mapstructure:"cron" default:"0 * * * *"`
	// RunOnStart runs one cycle immediately after startup.
	RunOnStart bool `mapstructure:"run_on_start" default:"false"`
}
