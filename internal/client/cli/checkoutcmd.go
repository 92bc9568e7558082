package cli

import (
	"context"
	"fmt"
	"os"
)

// Checkout collects a delivery address and submits the cart as an inquiry.
// There is no payment step; the team follows up on recorded inquiries.
func (a *App) Checkout(ctx context.Context) error {
	if len(a.cart.Items()) == 0 {
		printlnFn("Your cart is empty.")
		return nil
	}

	address, err := getSimpleText(a.reader, "Enter full delivery address", os.Stdout)
	if err != nil {
		return err
	}

	inq, err := a.checkout.Submit(ctx, address)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Inquiry received! We will contact you to confirm your order.")
	printlnFn(fmt.Sprintf("Reference: %s", inq.ID))
	return nil
}

// Orders lists previously submitted inquiries, newest first.
func (a *App) Orders(ctx context.Context) error {
	history, err := a.checkout.History(ctx)
	if err != nil {
		printlnFn("Could not load order history:", err.Error())
		return err
	}
	if len(history) == 0 {
		printlnFn("No orders yet.")
		return nil
	}
	for _, inq := range history {
		printlnFn(fmt.Sprintf("%s  %s  %d item(s)  $%.2f", inq.CreatedAt.Format("2006-01-02 15:04"), inq.ID, len(inq.Lines), inq.Total))
	}
	return nil
}
