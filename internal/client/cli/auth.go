package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mohteeflair/storefront/internal/common"
	"github.com/mohteeflair/storefront/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the signup form and attempts to create an account.
// Validation failures are shown inline; the user stays in the REPL either way.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone number", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.sessions.Register(ctx, session.Registration{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: string(password),
	})
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	p, _ := a.sessions.Current()
	printlnFn(fmt.Sprintf("Welcome, %s!", p.Name))
	return nil
}

// Login prompts for credentials and tries to authenticate against the local
// account registry.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.sessions.Login(ctx, email, string(password)); err != nil {
		printlnFn(err.Error())
		return err
	}

	p, _ := a.sessions.Current()
	printlnFn(fmt.Sprintf("Welcome back, %s!", p.Name))
	return nil
}

// Guest starts a guest session. Guests can browse and order but accrue no
// loyalty stats.
func (a *App) Guest(ctx context.Context) error {
	if err := a.sessions.LoginAsGuest(ctx); err != nil {
		printlnFn("Could not start a guest session:", err.Error())
		return err
	}
	printlnFn("Browsing as guest.")
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// Profile prints the active profile and its loyalty stats.
func (a *App) Profile(ctx context.Context) error {
	p, ok := a.sessions.Current()
	if !ok {
		printlnFn("Not signed in.")
		return nil
	}
	if p.IsGuest {
		printlnFn(fmt.Sprintf("%s (guest session)", p.Name))
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> %s", p.Name, p.Email, p.Phone))
	printlnFn(fmt.Sprintf("Points: %d  Orders: %d  Reviews: %d", p.Points, p.OrdersCount, p.ReviewsCount))
	return nil
}
