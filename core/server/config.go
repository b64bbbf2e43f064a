package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// Host is the interface to bind; empty binds all interfaces.
	Host string `mapstructure:"host" default:""`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// PublicMetrics serves /metrics without the API key.
	PublicMetrics bool `mapstructure:"public_metrics" default:"true"`
}

// Address returns the listen address.
func (c Config) Address() string {
	return c.Host + ":" + c.Port
}

// AuthEnabled reports whether requests must carry the API key.
func (c Config) AuthEnabled() bool {
	return c.ApiKey != ""
}
