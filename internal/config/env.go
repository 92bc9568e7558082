package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first, if present; real environment
// variables win over the file (godotenv does not override existing vars).
//
// Recognized variables:
//
//	STOREFRONT_DB               - local database path
//	STOREFRONT_WISHLIST_DEDUP   - "true"/"false"
//	STOREFRONT_POINTS_PER_ORDER - integer
//	STOREFRONT_VERBOSE          - "true"/"false"
//
// Unparseable values are ignored and the previous value kept.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("STOREFRONT_DB"); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv("STOREFRONT_WISHLIST_DEDUP"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.WishlistDedup = b
		}
	}
	if v, ok := os.LookupEnv("STOREFRONT_POINTS_PER_ORDER"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PointsPerOrder = n
		}
	}
	if v, ok := os.LookupEnv("STOREFRONT_VERBOSE"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
}
