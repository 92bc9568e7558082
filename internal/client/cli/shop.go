package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mohteeflair/storefront/internal/catalog"
)

// Categories prints the browseable categories.
func (a *App) Categories(ctx context.Context) error {
	printlnFn("Categories:", strings.Join(catalog.Categories, ", "))
	return nil
}

// List prints the products in a category ("All" for the whole gallery).
func (a *App) List(ctx context.Context, category string) error {
	products := catalog.ByCategory(category)
	if len(products) == 0 {
		printlnFn("No products in category:", category)
		return nil
	}
	for _, p := range products {
		printlnFn(fmt.Sprintf("%-8s %-34s %-12s %s  ★%.1f", p.ID, p.Name, p.Category, p.Price, p.Rating))
	}
	return nil
}

// Show prints one product with its description and wishlist state.
func (a *App) Show(ctx context.Context, id string) error {
	p, ok := catalog.ByID(id)
	if !ok {
		printlnFn("No such product:", id)
		return nil
	}

	printlnFn(fmt.Sprintf("%s | %s (%s)  ★%.1f", p.Name, p.Price, p.Category, p.Rating))
	printlnFn(p.Description)

	saved, err := a.wishlist.Contains(ctx, id)
	if err != nil {
		return err
	}
	if saved {
		printlnFn("♥ on your wishlist")
	}
	return nil
}
