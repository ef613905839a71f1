package cart

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/safar/go-storefront/internal/auth"
	"github.com/safar/go-storefront/internal/storage"
	"github.com/safar/go-storefront/internal/store"
)

func newTestCart(t *testing.T) (*store.Store, *auth.Session, *Cart) {
	t.Helper()

	s := store.New(storage.NewMemory())
	session, err := auth.NewSession(s)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	authz, err := auth.NewAuthorizer()
	if err != nil {
		t.Fatalf("NewAuthorizer: %v", err)
	}
	return s, session, New(s, session, authz)
}

func login(t *testing.T, session *auth.Session, email, password string) {
	t.Helper()
	if _, err := session.Login(email, password); err != nil {
		t.Fatalf("Login %s: %v", email, err)
	}
}

func TestEmptyCart(t *testing.T) {
	_, session, c := newTestCart(t)
	login(t, session, "customer@demo.com", "customer123")

	summary, err := c.Summarize()
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(summary.Lines) != 0 {
		t.Errorf("Expected no lines, got %d", len(summary.Lines))
	}
	if !summary.Total.IsZero() {
		t.Errorf("Expected zero total, got %s", summary.Total)
	}
	if summary.ItemCount != 0 {
		t.Errorf("Expected zero item count, got %d", summary.ItemCount)
	}
}

func TestAddAccumulates(t *testing.T) {
	_, session, c := newTestCart(t)
	login(t, session, "customer@demo.com", "customer123")

	if err := c.Add("prod-1", 2); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := c.Add("prod-1", 3); err != nil {
		t.Fatalf("Add: %v", err)
	}

	items, err := c.Items()
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected one line, got %d", len(items))
	}
	if items[0].Qty != 5 {
		t.Errorf("Expected qty 5, got %d", items[0].Qty)
	}
}

func TestAddCoercesQtyBelowOne(t *testing.T) {
	_, session, c := newTestCart(t)
	login(t, session, "customer@demo.com", "customer123")

	if err := c.Add("prod-1", 0); err != nil {
		t.Fatalf("Add: %v", err)
	}
	items, err := c.Items()
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 1 || items[0].Qty != 1 {
		t.Errorf("Add with qty 0 should insert one unit, got %v", items)
	}
}

func TestSetQtyRemovesAtZeroOrBelow(t *testing.T) {
	_, session, c := newTestCart(t)
	login(t, session, "customer@demo.com", "customer123")

	for _, qty := range []int{0, -1} {
		if err := c.Add("prod-1", 2); err != nil {
			t.Fatalf("Add: %v", err)
		}
		if err := c.SetQty("prod-1", qty); err != nil {
			t.Fatalf("SetQty(%d): %v", qty, err)
		}
		items, err := c.Items()
		if err != nil {
			t.Fatalf("Items: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("SetQty(%d) should remove the line, got %v", qty, items)
		}
	}
}

func TestSetQtyReplaces(t *testing.T) {
	_, session, c := newTestCart(t)
	login(t, session, "customer@demo.com", "customer123")

	if err := c.Add("prod-1", 2); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := c.SetQty("prod-1", 7); err != nil {
		t.Fatalf("SetQty: %v", err)
	}

	items, err := c.Items()
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 1 || items[0].Qty != 7 {
		t.Errorf("Expected single line with qty 7, got %v", items)
	}
}

func TestSummaryScenario(t *testing.T) {
	// Jane adds prod-1 (price 1199) with qty 2.
	_, session, c := newTestCart(t)
	login(t, session, "customer@demo.com", "customer123")

	if err := c.Add("prod-1", 2); err != nil {
		t.Fatalf("Add: %v", err)
	}

	summary, err := c.Summarize()
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(summary.Lines) != 1 {
		t.Fatalf("Expected one line, got %d", len(summary.Lines))
	}
	if summary.Lines[0].Qty != 2 {
		t.Errorf("Expected qty 2, got %d", summary.Lines[0].Qty)
	}
	if !summary.Total.Equal(decimal.NewFromInt(2398)) {
		t.Errorf("Expected total 2398, got %s", summary.Total)
	}
	if summary.ItemCount != 2 {
		t.Errorf("Expected item count 2, got %d", summary.ItemCount)
	}
}

func TestDanglingProductDroppedFromViewButKeptInStorage(t *testing.T) {
	s, session, c := newTestCart(t)
	login(t, session, "customer@demo.com", "customer123")

	if err := c.Add("prod-1", 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := c.Add("prod-gone", 3); err != nil {
		t.Fatalf("Add: %v", err)
	}

	summary, err := c.Summarize()
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(summary.Lines) != 1 || summary.Lines[0].ProductID != "prod-1" {
		t.Errorf("Dangling line should be dropped from the view, got %v", summary.Lines)
	}
	if !summary.Total.Equal(decimal.NewFromInt(1199)) {
		t.Errorf("Total should only count resolvable lines, got %s", summary.Total)
	}
	// Raw count still includes the dangling line.
	if summary.ItemCount != 4 {
		t.Errorf("Expected raw item count 4, got %d", summary.ItemCount)
	}

	raw, err := s.Cart("customer-1")
	if err != nil {
		t.Fatalf("Cart: %v", err)
	}
	if len(raw) != 2 {
		t.Errorf("Dangling line must stay in storage, got %v", raw)
	}
}

func TestNonCustomerCartIsInert(t *testing.T) {
	_, session, c := newTestCart(t)
	login(t, session, "seller@demo.com", "seller123")

	if err := c.Add("prod-1", 1); !errors.Is(err, auth.ErrPermissionDenied) {
		t.Errorf("Seller Add: expected ErrPermissionDenied, got %v", err)
	}

	items, err := c.Items()
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Seller should see an empty cart, got %v", items)
	}
}

func TestSwitchingUserRescopesWithoutDestroying(t *testing.T) {
	s, session, c := newTestCart(t)
	login(t, session, "customer@demo.com", "customer123")

	if err := c.Add("prod-1", 2); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// Switch to the seller: the view empties, the stored cart survives.
	login(t, session, "seller@demo.com", "seller123")
	summary, err := c.Summarize()
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.ItemCount != 0 {
		t.Errorf("Seller session should see an empty cart")
	}

	stored, err := s.Cart("customer-1")
	if err != nil {
		t.Fatalf("Cart: %v", err)
	}
	if len(stored) != 1 || stored[0].Qty != 2 {
		t.Errorf("Customer's stored cart must survive the switch, got %v", stored)
	}

	// Switch back: the cart is whole again.
	login(t, session, "customer@demo.com", "customer123")
	count, err := c.ItemCount()
	if err != nil {
		t.Fatalf("ItemCount: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected item count 2 after switching back, got %d", count)
	}
}

func TestCartAnonymousAfterLogout(t *testing.T) {
	_, session, c := newTestCart(t)
	login(t, session, "customer@demo.com", "customer123")

	if err := c.Add("prod-1", 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := session.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if err := c.Add("prod-1", 1); !errors.Is(err, auth.ErrPermissionDenied) {
		t.Errorf("Anonymous Add: expected ErrPermissionDenied, got %v", err)
	}
	total, err := c.Total()
	if err != nil {
		t.Fatalf("Total: %v", err)
	}
	if !total.IsZero() {
		t.Errorf("Anonymous total should be zero, got %s", total)
	}
}

func TestClear(t *testing.T) {
	_, session, c := newTestCart(t)
	login(t, session, "customer@demo.com", "customer123")

	if err := c.Add("prod-1", 2); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := c.Add("prod-2", 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	items, err := c.Items()
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected empty cart after Clear, got %v", items)
	}
}
