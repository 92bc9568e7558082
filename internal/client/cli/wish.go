package cli

import (
	"context"
	"fmt"

	"github.com/mohteeflair/storefront/internal/catalog"
)

// Wish saves a product to the wishlist. The container itself does not dedup
// unless configured to; checking first keeps the list tidy either way.
func (a *App) Wish(ctx context.Context, id string) error {
	p, ok := catalog.ByID(id)
	if !ok {
		printlnFn("No such product:", id)
		return nil
	}

	saved, err := a.wishlist.Contains(ctx, id)
	if err != nil {
		return err
	}
	if saved {
		printlnFn("Already on your wishlist.")
		return nil
	}

	if err := a.wishlist.Add(ctx, p); err != nil {
		printlnFn("Could not save to wishlist:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Saved %s to your wishlist.", p.Name))
	return nil
}

// Unwish removes a product from the wishlist.
func (a *App) Unwish(ctx context.Context, id string) error {
	if err := a.wishlist.Remove(ctx, id); err != nil {
		printlnFn("Could not update wishlist:", err.Error())
		return err
	}
	printlnFn("Removed from wishlist.")
	return nil
}

// ShowWishlist prints the saved products.
func (a *App) ShowWishlist(ctx context.Context) error {
	items, err := a.wishlist.Items(ctx)
	if err != nil {
		printlnFn("Could not load wishlist:", err.Error())
		return err
	}
	if len(items) == 0 {
		printlnFn("Your wishlist is empty.")
		return nil
	}
	for _, e := range items {
		printlnFn(fmt.Sprintf("%-8s %-34s %-12s %s  ★%.1f", e.ProductID, e.Name, e.Category, e.Price, e.Rating))
	}
	return nil
}
