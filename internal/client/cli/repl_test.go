package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Guest(ctx context.Context) error {
	f.calls = append(f.calls, "guest")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) Categories(ctx context.Context) error {
	f.calls = append(f.calls, "categories")
	return nil
}
func (f *fakeExec) List(ctx context.Context, category string) error {
	f.calls = append(f.calls, "list "+category)
	return nil
}
func (f *fakeExec) Show(ctx context.Context, id string) error {
	f.calls = append(f.calls, "show "+id)
	return nil
}
func (f *fakeExec) Add(ctx context.Context, id, variant string) error {
	f.calls = append(f.calls, "add "+id+"|"+variant)
	return nil
}
func (f *fakeExec) ShowCart(ctx context.Context) error {
	f.calls = append(f.calls, "cart")
	return nil
}
func (f *fakeExec) Qty(ctx context.Context, id string, delta int) error {
	f.calls = append(f.calls, "qty")
	return nil
}
func (f *fakeExec) RemoveLine(ctx context.Context, id string) error {
	f.calls = append(f.calls, "remove")
	return nil
}
func (f *fakeExec) ClearCart(ctx context.Context) error {
	f.calls = append(f.calls, "clearcart")
	return nil
}
func (f *fakeExec) Wish(ctx context.Context, id string) error {
	f.calls = append(f.calls, "wish "+id)
	return nil
}
func (f *fakeExec) Unwish(ctx context.Context, id string) error {
	f.calls = append(f.calls, "unwish")
	return nil
}
func (f *fakeExec) ShowWishlist(ctx context.Context) error {
	f.calls = append(f.calls, "wishlist")
	return nil
}
func (f *fakeExec) Checkout(ctx context.Context) error {
	f.calls = append(f.calls, "checkout")
	return nil
}
func (f *fakeExec) Orders(ctx context.Context) error {
	f.calls = append(f.calls, "orders")
	return nil
}

func TestRunREPL_BrowseAndOrderFlow(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"categories",
		"list Lips",
		"show p1",
		"add p1 Nude Rose",
		"cart",
		"wish p7",
		"checkout",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "categories", "list Lips", "show p1", "add p1|Nude Rose", "cart", "wish p7", "checkout"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ListDefaultsToAll(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("l\nlist Skin Care\nexit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	want := []string{"list All", "list Skin Care"}
	if len(exec.calls) != len(want) || exec.calls[0] != want[0] || exec.calls[1] != want[1] {
		t.Fatalf("got %v, want %v", exec.calls, want)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("show\nadd\nqty p1 x\nwish\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
