// Package cart implements the per-customer cart: a list of product id plus
// quantity lines, persisted on every mutation, with derived views resolved
// against the product collection at read time.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/safar/go-storefront/internal/auth"
	"github.com/safar/go-storefront/internal/models"
	"github.com/safar/go-storefront/internal/store"
)

// Cart is scoped by the live session: only an authenticated customer has a
// cart. Any other session reads empty and cannot write, but another
// customer's stored cart is never touched.
type Cart struct {
	store   *store.Store
	session *auth.Session
	authz   *auth.Authorizer
}

func New(s *store.Store, session *auth.Session, authz *auth.Authorizer) *Cart {
	return &Cart{store: s, session: session, authz: authz}
}

// Line is a cart item joined with its product.
type Line struct {
	models.CartItem
	Product models.Product
}

// Summary is the resolved cart view, computed in a single pass over the
// stored items.
type Summary struct {
	Lines []Line
	// Total sums price times qty over lines whose product still resolves.
	Total decimal.Decimal
	// ItemCount sums quantities over the raw items, resolvable or not.
	ItemCount int
}

func (c *Cart) customer() (*models.User, bool) {
	user := c.session.Current()
	if user == nil || user.Role != models.RoleCustomer {
		return nil, false
	}
	return user, true
}

// Items returns the raw stored lines. Non-customer sessions see an empty
// cart.
func (c *Cart) Items() ([]models.CartItem, error) {
	user, ok := c.customer()
	if !ok {
		return nil, nil
	}
	return c.store.Cart(user.ID)
}

// Add upserts a line: an existing line for the product accumulates the
// quantity, otherwise a new line is appended. Quantities below one count as
// one.
func (c *Cart) Add(productID string, qty int) error {
	user, ok := c.customer()
	if !ok || !c.authz.Can(user, auth.ActionWrite, auth.ResourceCart) {
		return auth.ErrPermissionDenied
	}
	if qty < 1 {
		qty = 1
	}

	items, err := c.store.Cart(user.ID)
	if err != nil {
		return err
	}

	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Qty += qty
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{ProductID: productID, Qty: qty})
	}

	return c.store.SetCart(user.ID, items)
}

// SetQty replaces a line's quantity. Zero or negative removes the line.
func (c *Cart) SetQty(productID string, qty int) error {
	user, ok := c.customer()
	if !ok || !c.authz.Can(user, auth.ActionWrite, auth.ResourceCart) {
		return auth.ErrPermissionDenied
	}

	items, err := c.store.Cart(user.ID)
	if err != nil {
		return err
	}

	if qty <= 0 {
		return c.store.SetCart(user.ID, removeLine(items, productID))
	}

	for i := range items {
		if items[i].ProductID == productID {
			items[i].Qty = qty
			break
		}
	}
	return c.store.SetCart(user.ID, items)
}

func (c *Cart) Remove(productID string) error {
	user, ok := c.customer()
	if !ok || !c.authz.Can(user, auth.ActionWrite, auth.ResourceCart) {
		return auth.ErrPermissionDenied
	}

	items, err := c.store.Cart(user.ID)
	if err != nil {
		return err
	}
	return c.store.SetCart(user.ID, removeLine(items, productID))
}

func (c *Cart) Clear() error {
	user, ok := c.customer()
	if !ok || !c.authz.Can(user, auth.ActionWrite, auth.ResourceCart) {
		return auth.ErrPermissionDenied
	}
	return c.store.SetCart(user.ID, nil)
}

// Summarize resolves the product join once and derives the line list, total
// and item count from that single pass. Lines whose product no longer exists
// are dropped from the view but stay in storage until removed explicitly.
func (c *Cart) Summarize() (*Summary, error) {
	summary := &Summary{Total: decimal.Zero}

	user, ok := c.customer()
	if !ok {
		return summary, nil
	}

	items, err := c.store.Cart(user.ID)
	if err != nil {
		return nil, err
	}

	products, err := c.store.Products()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, item := range items {
		summary.ItemCount += item.Qty
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		summary.Lines = append(summary.Lines, Line{CartItem: item, Product: product})
		summary.Total = summary.Total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}

	return summary, nil
}

func (c *Cart) Total() (decimal.Decimal, error) {
	summary, err := c.Summarize()
	if err != nil {
		return decimal.Zero, err
	}
	return summary.Total, nil
}

func (c *Cart) ItemCount() (int, error) {
	summary, err := c.Summarize()
	if err != nil {
		return 0, err
	}
	return summary.ItemCount, nil
}

func removeLine(items []models.CartItem, productID string) []models.CartItem {
	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	return kept
}
