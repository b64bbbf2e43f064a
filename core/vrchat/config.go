package vrchat

// Config holds configuration for the favorites listing API.
type Config struct {
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://vrchat.com/api/1"`
	// APIKey is sent as the "apiKey" cookie.
	APIKey string `mapstructure:"api_key" default:""`
	// Auth is the session token sent as the "auth" cookie.
	Auth string `mapstructure:"auth" default:""`
	// TwoFactorAuth is sent as the "twoFactorAuth" cookie.
	TwoFactorAuth string `mapstructure:"two_factor_auth" default:""`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0"`
	// Tags are the favorite groups to fetch, in order.
	Tags []string `mapstructure:"tags" default:"worlds1,worlds2,worlds3,worlds4,vrcPlusWorlds1,vrcPlusWorlds2,vrcPlusWorlds3,vrcPlusWorlds4"`
	// PageSize is the "n" query parameter.
	PageSize int `mapstructure:"page_size" default:"50"`
	// MaxOffset is the last offset requested per tag.
	MaxOffset int `mapstructure:"max_offset" default:"300"`
	// Retries is the number of extra attempts on transport errors.
	Retries int `mapstructure:"retries" default:"3"`
	// TimeoutSeconds bounds a single request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
