// Package config loads runtime configuration for the storefront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
//	{
//	  "database_path": "storefront.db",
//	  "wishlist_dedup": false,
//	  "points_per_order": 25,
//	  "verbose": false
//	}
//
// Primary API
//
//   - type Config                     - runtime settings
//   - func LoadConfig() *Config       - builds Config by applying all sources
//   - func (*Config) LoadDefaults()   - sets sensible defaults
package config
