package config

import (
	"flag"
	"os"

	"github.com/mohteeflair/storefront/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the local database file
//	-w          dedup wishlist adds (use -w=true / -w=false)
//	-p int      loyalty points granted per order
//	-v          verbose (debug) logging
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with the -c/-config flags.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-w", "-p", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	fs.BoolVar(&cfg.WishlistDedup, "w", cfg.WishlistDedup, "skip duplicate wishlist adds")
	fs.IntVar(&cfg.PointsPerOrder, "p", cfg.PointsPerOrder, "loyalty points granted per order")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
