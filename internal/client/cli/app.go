package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/mohteeflair/storefront/internal/account"
	"github.com/mohteeflair/storefront/internal/cart"
	"github.com/mohteeflair/storefront/internal/checkout"
	"github.com/mohteeflair/storefront/internal/config"
	"github.com/mohteeflair/storefront/internal/inquiry"
	"github.com/mohteeflair/storefront/internal/kv"
	"github.com/mohteeflair/storefront/internal/logging"
	"github.com/mohteeflair/storefront/internal/session"
	"github.com/mohteeflair/storefront/internal/wishlist"

	_ "modernc.org/sqlite"
)

// App wires the storefront stores and services behind the interactive REPL.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	sessions *session.Store
	cart     *cart.Cart
	wishlist *wishlist.List
	checkout *checkout.Service
	reader   *bufio.Reader
}

// NewApp opens the local database, restores any persisted session, and
// returns a ready-to-run App.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := kv.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := kv.NewSQLiteStore(db)
	registry := account.NewRegistry(store, log)

	sessions := session.NewStore(store, registry, log)
	sessions.Load(ctx)

	var opts []wishlist.Option
	if cfg.WishlistDedup {
		opts = append(opts, wishlist.WithDedup())
	}

	basket := cart.New()
	co := checkout.NewService(inquiry.NewSQLiteRepository(db), basket, sessions, log, cfg.PointsPerOrder)

	return &App{
		config:   cfg,
		log:      log,
		db:       db,
		sessions: sessions,
		cart:     basket,
		wishlist: wishlist.NewList(store, log, opts...),
		checkout: co,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL over stdin and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	printlnFn("Welcome to the Moh Tee Flair storefront (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.sessions.Current()
	return ok
}

// status renders the prompt suffix: the signed-in name, with a guest marker.
func (a *App) status() string {
	p, ok := a.sessions.Current()
	if !ok {
		return ""
	}
	if p.IsGuest {
		return fmt.Sprintf("(%s, guest)", p.Name)
	}
	return fmt.Sprintf("(%s)", p.Name)
}
