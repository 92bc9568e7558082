// Package cli implements the interactive storefront client.
//
// # Overview
//
// The App type wires the local stores (session, account registry, cart,
// wishlist, checkout) behind a read-eval-print loop. All state lives on the
// device: accounts and the session in the kv table, inquiries in their own
// tables, the cart in memory only.
//
// # Commands
//
//	Account:  register, login, guest, logout, profile
//	Shop:     categories, list [category], show <id>
//	Cart:     add <id> [variant], cart, qty <id> <delta>, remove <id>,
//	          clearcart, checkout, orders
//	Wishlist: wish <id>, unwish <id>, wishlist
//
// Command handlers print their own user-facing messages, including the exact
// validation strings from the session store; the REPL loop itself only
// handles parsing and dispatch.
package cli
