package cli

import (
	"context"
	"fmt"

	"github.com/mohteeflair/storefront/internal/catalog"
)

// Add puts one unit of the product into the cart.
func (a *App) Add(ctx context.Context, id, variant string) error {
	p, ok := catalog.ByID(id)
	if !ok {
		printlnFn("No such product:", id)
		return nil
	}
	a.cart.Add(p, variant)
	if variant != "" {
		printlnFn(fmt.Sprintf("Added %s (%s) to cart.", p.Name, variant))
	} else {
		printlnFn(fmt.Sprintf("Added %s to cart.", p.Name))
	}
	return nil
}

// ShowCart prints the cart lines and the running total.
func (a *App) ShowCart(ctx context.Context) error {
	items := a.cart.Items()
	if len(items) == 0 {
		printlnFn("Your cart is empty.")
		return nil
	}
	for _, l := range items {
		name := l.Name
		if l.Variant != "" {
			name = fmt.Sprintf("%s (%s)", l.Name, l.Variant)
		}
		printlnFn(fmt.Sprintf("%-8s %-40s x%d  %s", l.ProductID, name, l.Quantity, l.Price))
	}
	printlnFn(fmt.Sprintf("Total: $%.2f", a.cart.Total()))
	return nil
}

// Qty adjusts the quantity of the product's cart lines by delta.
func (a *App) Qty(ctx context.Context, id string, delta int) error {
	a.cart.UpdateQuantity(id, delta)
	return a.ShowCart(ctx)
}

// RemoveLine drops the product from the cart.
func (a *App) RemoveLine(ctx context.Context, id string) error {
	a.cart.Remove(id)
	printlnFn("Removed.")
	return nil
}

// ClearCart empties the cart.
func (a *App) ClearCart(ctx context.Context) error {
	a.cart.Clear()
	printlnFn("Cart cleared.")
	return nil
}
