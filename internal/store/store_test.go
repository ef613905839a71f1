package store

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/safar/go-storefront/internal/models"
	"github.com/safar/go-storefront/internal/storage"
)

func TestInitSeedsOnce(t *testing.T) {
	s := New(storage.NewMemory())

	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	users, err := s.Users()
	if err != nil {
		t.Fatalf("Users: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("Expected 3 seeded users, got %d", len(users))
	}

	products, err := s.Products()
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 6 {
		t.Fatalf("Expected 6 seeded products, got %d", len(products))
	}

	categories, err := s.Categories()
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(categories) != 14 {
		t.Fatalf("Expected 14 seeded categories, got %d", len(categories))
	}

	// Mutate, then Init again: seeded data must not come back.
	if err := s.SetUsers(users[:1]); err != nil {
		t.Fatalf("SetUsers: %v", err)
	}
	if err := s.Init(); err != nil {
		t.Fatalf("second Init: %v", err)
	}
	users, err = s.Users()
	if err != nil {
		t.Fatalf("Users after second Init: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("second Init re-seeded: expected 1 user, got %d", len(users))
	}
}

func TestMissingCollectionsReadEmpty(t *testing.T) {
	s := New(storage.NewMemory())

	orders, err := s.Orders()
	if err != nil {
		t.Fatalf("Orders: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("Expected empty orders, got %d", len(orders))
	}

	cart, err := s.Cart("customer-1")
	if err != nil {
		t.Fatalf("Cart: %v", err)
	}
	if len(cart) != 0 {
		t.Errorf("Expected empty cart, got %d", len(cart))
	}
}

func TestFullCollectionReplace(t *testing.T) {
	s := New(storage.NewMemory())
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	products, err := s.Products()
	if err != nil {
		t.Fatalf("Products: %v", err)
	}

	products[0].Price = decimal.NewFromInt(999)
	if err := s.SetProducts(products); err != nil {
		t.Fatalf("SetProducts: %v", err)
	}

	reloaded, err := s.ProductByID(products[0].ID)
	if err != nil {
		t.Fatalf("ProductByID: %v", err)
	}
	if !reloaded.Price.Equal(decimal.NewFromInt(999)) {
		t.Errorf("Expected price 999 after replace, got %s", reloaded.Price)
	}
}

func TestLookupSentinels(t *testing.T) {
	s := New(storage.NewMemory())
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if _, err := s.UserByID("nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("UserByID: expected ErrUserNotFound, got %v", err)
	}
	if _, err := s.ProductByID("prod-404"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("ProductByID: expected ErrProductNotFound, got %v", err)
	}
	if _, err := s.CategoryByID("cat-404"); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("CategoryByID: expected ErrCategoryNotFound, got %v", err)
	}
	if _, err := s.OrderByID("order-404"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("OrderByID: expected ErrOrderNotFound, got %v", err)
	}

	if _, err := s.ProductByID("prod-1"); err != nil {
		t.Errorf("ProductByID prod-1: %v", err)
	}
}

func TestCurrentUserLifecycle(t *testing.T) {
	s := New(storage.NewMemory())

	current, err := s.CurrentUser()
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if current != nil {
		t.Fatalf("Expected nil current user, got %v", current)
	}

	user := models.User{ID: "customer-1", Role: models.RoleCustomer, Name: "Jane"}
	if err := s.SetCurrentUser(&user); err != nil {
		t.Fatalf("SetCurrentUser: %v", err)
	}

	current, err = s.CurrentUser()
	if err != nil {
		t.Fatalf("CurrentUser after set: %v", err)
	}
	if current == nil || current.ID != "customer-1" {
		t.Fatalf("Expected customer-1, got %v", current)
	}

	if err := s.ClearCurrentUser(); err != nil {
		t.Fatalf("ClearCurrentUser: %v", err)
	}
	current, err = s.CurrentUser()
	if err != nil {
		t.Fatalf("CurrentUser after clear: %v", err)
	}
	if current != nil {
		t.Errorf("Expected nil after clear, got %v", current)
	}
}

func TestCartKeysAreScopedPerCustomer(t *testing.T) {
	s := New(storage.NewMemory())

	if err := s.SetCart("customer-1", []models.CartItem{{ProductID: "prod-1", Qty: 2}}); err != nil {
		t.Fatalf("SetCart: %v", err)
	}

	other, err := s.Cart("customer-2")
	if err != nil {
		t.Fatalf("Cart customer-2: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("customer-2 sees customer-1's cart: %v", other)
	}
}
