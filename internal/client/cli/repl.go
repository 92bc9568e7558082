package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Guest(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Categories(ctx context.Context) error
	List(ctx context.Context, category string) error
	Show(ctx context.Context, id string) error
	Add(ctx context.Context, id, variant string) error
	ShowCart(ctx context.Context) error
	Qty(ctx context.Context, id string, delta int) error
	RemoveLine(ctx context.Context, id string) error
	ClearCart(ctx context.Context) error
	Wish(ctx context.Context, id string) error
	Unwish(ctx context.Context, id string) error
	ShowWishlist(ctx context.Context) error
	Checkout(ctx context.Context) error
	Orders(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the storefront CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Browsing, cart and wishlist commands are available in every state; the
// account commands switch with the login state. Any errors returned by
// command handlers are ignored here; handlers print their own messages.
// This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mtf %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Account: profile, logout, exit")
			} else {
				printlnFn("Account: register, login, guest, exit")
			}
			printlnFn("Shop: categories, (l)ist [category], show <id>")
			printlnFn("Cart: add <id> [variant], cart, qty <id> <delta>, remove <id>, clearcart, checkout, orders")
			printlnFn("Wishlist: wish <id>, unwish <id>, wishlist")

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "guest":
			_ = a.Guest(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "l", "list":
			category := "All"
			if len(args) > 0 {
				category = strings.Join(args, " ")
			}
			_ = a.List(ctx, category)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <id> [variant]")
				continue
			}
			variant := ""
			if len(args) > 1 {
				variant = strings.Join(args[1:], " ")
			}
			_ = a.Add(ctx, args[0], variant)

		case "cart":
			_ = a.ShowCart(ctx)

		case "qty":
			if len(args) < 2 {
				printlnFn("Usage: qty <id> <delta>")
				continue
			}
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				printlnFn("Usage: qty <id> <delta>")
				continue
			}
			_ = a.Qty(ctx, args[0], delta)

		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <id>")
				continue
			}
			_ = a.RemoveLine(ctx, args[0])

		case "clearcart":
			_ = a.ClearCart(ctx)

		case "wish":
			if len(args) == 0 {
				printlnFn("Usage: wish <id>")
				continue
			}
			_ = a.Wish(ctx, args[0])

		case "unwish":
			if len(args) == 0 {
				printlnFn("Usage: unwish <id>")
				continue
			}
			_ = a.Unwish(ctx, args[0])

		case "wishlist":
			_ = a.ShowWishlist(ctx)

		case "checkout":
			_ = a.Checkout(ctx)

		case "orders":
			_ = a.Orders(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
