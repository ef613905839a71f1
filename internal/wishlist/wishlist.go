// Package wishlist keeps a per-customer set of saved products, toggled from
// product cards.
package wishlist

import (
	"time"

	"github.com/safar/go-storefront/internal/auth"
	"github.com/safar/go-storefront/internal/models"
	"github.com/safar/go-storefront/internal/store"
)

type Service struct {
	store   *store.Store
	session *auth.Session
	authz   *auth.Authorizer
}

func NewService(s *store.Store, session *auth.Session, authz *auth.Authorizer) *Service {
	return &Service{store: s, session: session, authz: authz}
}

// Toggle adds the product to the current customer's wishlist, or removes it
// if already present. Returns whether the product is on the list afterwards.
func (s *Service) Toggle(productID string) (bool, error) {
	user := s.session.Current()
	if user == nil || user.Role != models.RoleCustomer ||
		!s.authz.Can(user, auth.ActionWrite, auth.ResourceWishlist) {
		return false, auth.ErrPermissionDenied
	}

	items, err := s.store.Wishlist(user.ID)
	if err != nil {
		return false, err
	}

	for i, item := range items {
		if item.ProductID == productID {
			items = append(items[:i], items[i+1:]...)
			return false, s.store.SetWishlist(user.ID, items)
		}
	}

	items = append(items, models.WishlistItem{
		ProductID:  productID,
		CustomerID: user.ID,
		CreatedAt:  time.Now().UTC(),
	})
	return true, s.store.SetWishlist(user.ID, items)
}

// List returns the current customer's wishlist; other sessions see nothing.
func (s *Service) List() ([]models.WishlistItem, error) {
	user := s.session.Current()
	if user == nil || user.Role != models.RoleCustomer {
		return nil, nil
	}
	return s.store.Wishlist(user.ID)
}

func (s *Service) Contains(productID string) (bool, error) {
	items, err := s.List()
	if err != nil {
		return false, err
	}
	for _, item := range items {
		if item.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}
