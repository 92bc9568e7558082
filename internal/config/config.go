package config

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - DatabasePath: filename/DSN of the local SQLite database.
//   - WishlistDedup: when true, adding an already-saved product to the
//     wishlist is a no-op instead of appending a duplicate.
//   - PointsPerOrder: loyalty points granted per submitted inquiry.
//   - Verbose: enables debug logging.
type Config struct {
	DatabasePath   string
	WishlistDedup  bool
	PointsPerOrder int
	Verbose        bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "storefront.db"
	c.WishlistDedup = false
	c.PointsPerOrder = 25
	c.Verbose = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including an optional .env file), a JSON file (if given)
// and command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
