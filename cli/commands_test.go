package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"belshop/domain"
	"belshop/store"
)

// capture stdout during cobra execution
func captureOutput(f func() error) (string, error) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String(), err
}

// reset cobra + global state between tests
func resetCLI() {
	rootCmd.SetArgs(nil)
	catalogStore = nil
	profileStore = nil
}

func injectStores() {
	kv := store.NewMemoryKV()
	catalogStore = store.NewCatalogStore(kv, nil)
	profileStore = store.NewProfileStore(kv, nil)
}

func run(args ...string) (string, error) {
	return captureOutput(func() error {
		rootCmd.SetArgs(args)
		return rootCmd.Execute()
	})
}

func TestAddGetListDelete(t *testing.T) {
	defer resetCLI()
	injectStores()

	out, err := run(
		"add",
		"--name", "Test Kettle",
		"--description", "boils water",
		"--category", "home",
		"--retailer", "TestShop",
		"--price", "49.90",
		"--shipping", "5",
	)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	var created domain.Product
	if err := json.Unmarshal([]byte(out), &created); err != nil {
		t.Fatalf("add output is not a product: %v\n%s", err, out)
	}
	if created.ID == "" || created.Name != "Test Kettle" {
		t.Fatalf("unexpected product: %+v", created)
	}

	out, err = run("get", created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(out, "Test Kettle") {
		t.Fatalf("get output missing product:\n%s", out)
	}

	out, err = run("list", "--category", "home")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, created.ID) {
		t.Fatalf("list output missing product:\n%s", out)
	}

	if _, err := run("delete", created.ID, "--force"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	out, err = run("get", created.ID)
	if err != nil {
		t.Fatalf("get after delete should not error: %v", err)
	}
	if strings.Contains(out, "Test Kettle") {
		t.Fatal("deleted product still returned")
	}
}

func TestGetUnknownIDIsNotAnError(t *testing.T) {
	defer resetCLI()
	injectStores()

	if _, err := run("get", "no-such-id"); err != nil {
		t.Fatalf("missing product must not fail the command: %v", err)
	}
}

func TestSearchCommand(t *testing.T) {
	defer resetCLI()
	injectStores()

	out, err := run("search", "iphone")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "iPhone 14 Pro") {
		t.Fatalf("seeded iPhone not found:\n%s", out)
	}
}

func TestWishlistCommands(t *testing.T) {
	defer resetCLI()
	injectStores()

	products := catalogStore.ListProducts()
	target := products[0]

	if _, err := run("wishlist", "add", target.ID, "--notes", "gift", "--priority", "high"); err != nil {
		t.Fatalf("wishlist add: %v", err)
	}
	if !catalogStore.IsInWishlist(target.ID) {
		t.Fatal("product not on wishlist after add")
	}

	out, err := run("wishlist", "--sort", "priority")
	if err != nil {
		t.Fatalf("wishlist list: %v", err)
	}
	if !strings.Contains(out, target.ID) || !strings.Contains(out, "gift") {
		t.Fatalf("wishlist output missing entry:\n%s", out)
	}

	if _, err := run("wishlist", "update", target.ID, "--priority", "low"); err != nil {
		t.Fatalf("wishlist update: %v", err)
	}
	it, _ := catalogStore.WishlistItemFor(target.ID)
	if it.Priority != domain.PriorityLow {
		t.Fatalf("priority not updated: %+v", it)
	}

	if _, err := run("wishlist", "remove", target.ID); err != nil {
		t.Fatalf("wishlist remove: %v", err)
	}
	if catalogStore.IsInWishlist(target.ID) {
		t.Fatal("product still on wishlist after remove")
	}
}

func TestDealsCommand(t *testing.T) {
	defer resetCLI()
	injectStores()

	out, err := run("deals")
	if err != nil {
		t.Fatalf("deals: %v", err)
	}
	if !strings.Contains(out, "%") {
		t.Fatalf("expected discount column in deals output:\n%s", out)
	}

	if _, err := run("deals", "expiring"); err != nil {
		t.Fatalf("deals expiring: %v", err)
	}
}

func TestCompareCommand(t *testing.T) {
	defer resetCLI()
	injectStores()

	products := catalogStore.ListProducts()
	out, err := run("compare", products[0].ID)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if !strings.Contains(out, "selected:") {
		t.Fatalf("compare output missing selection:\n%s", out)
	}
	if !strings.Contains(out, "* ") {
		t.Fatalf("compare output missing best-price marker:\n%s", out)
	}
}

func TestUserCommands(t *testing.T) {
	defer resetCLI()
	injectStores()

	out, err := run("user", "create", "--username", "ann", "--email", "ann@example.com",
		"--favorites", "books,toys")
	if err != nil {
		t.Fatalf("user create: %v", err)
	}
	var u domain.User
	if err := json.Unmarshal([]byte(out), &u); err != nil {
		t.Fatalf("user create output is not a user: %v\n%s", err, out)
	}
	if len(u.FavoriteCategories) != 2 {
		t.Fatalf("favorites not applied: %+v", u)
	}

	if _, err := run("user", "fav", "add", "books"); err != nil {
		t.Fatalf("fav add: %v", err)
	}
	got, _ := profileStore.CurrentUser()
	if len(got.FavoriteCategories) != 2 {
		t.Fatalf("duplicate favorite accumulated: %+v", got.FavoriteCategories)
	}

	if _, err := run("user", "logout"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if profileStore.IsAuthenticated() {
		t.Fatal("still authenticated after logout")
	}
}

func TestResetCommand(t *testing.T) {
	defer resetCLI()
	injectStores()

	products := catalogStore.ListProducts()
	catalogStore.AddToWishlist(products[0].ID, "", domain.PriorityMedium)

	if _, err := run("reset", "--force"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if len(catalogStore.ListProducts()) == 0 {
		t.Fatal("reset must reseed the catalog")
	}
	if len(catalogStore.WishlistItems()) != 0 {
		t.Fatal("reset must clear the wishlist")
	}
}
