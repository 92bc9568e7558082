package config

import (
	"encoding/json"
	"os"

	"github.com/mohteeflair/storefront/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// distinguish "absent" from zero values so the file only overrides what it
// actually sets.
type JsonConfig struct {
	DatabasePath   *string `json:"database_path"`
	WishlistDedup  *bool   `json:"wishlist_dedup"`
	PointsPerOrder *int    `json:"points_per_order"`
	Verbose        *bool   `json:"verbose"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. When no file is given, nothing happens. Read or
// unmarshal errors panic; configuration is resolved before any state exists,
// so there is nothing to unwind.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.WishlistDedup != nil {
		cfg.WishlistDedup = *jc.WishlistDedup
	}
	if jc.PointsPerOrder != nil {
		cfg.PointsPerOrder = *jc.PointsPerOrder
	}
	if jc.Verbose != nil {
		cfg.Verbose = *jc.Verbose
	}
}
