// Package store is the entity store: typed full-collection reads and writes
// over a storage backend. Every mutation elsewhere in the system is
// read-collection, transform, write-collection; there is no atomicity across
// collections.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/safar/go-storefront/internal/models"
	"github.com/safar/go-storefront/internal/storage"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrOrderNotFound    = errors.New("order not found")
)

const (
	keyUsers       = "users"
	keyCategories  = "categories"
	keyProducts    = "products"
	keyOrders      = "orders"
	keyReviews     = "reviews"
	keyCurrentUser = "currentUser"
)

func cartKey(customerID string) string     { return "cart_" + customerID }
func wishlistKey(customerID string) string { return "wishlist_" + customerID }

type Store struct {
	backend storage.Backend
}

func New(backend storage.Backend) *Store {
	return &Store{backend: backend}
}

// Init seeds the demo users, categories and products, but only for keys that
// have never been written. Calling it again is a no-op.
func (s *Store) Init() error {
	if _, err := s.backend.Get(keyUsers); errors.Is(err, storage.ErrKeyNotFound) {
		if err := s.SetUsers(DemoUsers()); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	} else if err != nil {
		return err
	}

	if _, err := s.backend.Get(keyCategories); errors.Is(err, storage.ErrKeyNotFound) {
		if err := s.SetCategories(DemoCategories()); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
	} else if err != nil {
		return err
	}

	if _, err := s.backend.Get(keyProducts); errors.Is(err, storage.ErrKeyNotFound) {
		if err := s.SetProducts(DemoProducts()); err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
	} else if err != nil {
		return err
	}

	return nil
}

// readCollection unmarshals the collection under key, treating a missing key
// as the empty collection.
func readCollection[T any](s *Store, key string) ([]T, error) {
	data, err := s.backend.Get(key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return items, nil
}

func writeCollection[T any](s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.backend.Set(key, data)
}

func (s *Store) Users() ([]models.User, error) {
	return readCollection[models.User](s, keyUsers)
}

func (s *Store) SetUsers(users []models.User) error {
	return writeCollection(s, keyUsers, users)
}

func (s *Store) Categories() ([]models.Category, error) {
	return readCollection[models.Category](s, keyCategories)
}

func (s *Store) SetCategories(categories []models.Category) error {
	return writeCollection(s, keyCategories, categories)
}

func (s *Store) Products() ([]models.Product, error) {
	return readCollection[models.Product](s, keyProducts)
}

func (s *Store) SetProducts(products []models.Product) error {
	return writeCollection(s, keyProducts, products)
}

func (s *Store) Orders() ([]models.Order, error) {
	return readCollection[models.Order](s, keyOrders)
}

func (s *Store) SetOrders(orders []models.Order) error {
	return writeCollection(s, keyOrders, orders)
}

func (s *Store) Reviews() ([]models.Review, error) {
	return readCollection[models.Review](s, keyReviews)
}

func (s *Store) SetReviews(reviews []models.Review) error {
	return writeCollection(s, keyReviews, reviews)
}

func (s *Store) Cart(customerID string) ([]models.CartItem, error) {
	return readCollection[models.CartItem](s, cartKey(customerID))
}

func (s *Store) SetCart(customerID string, items []models.CartItem) error {
	return writeCollection(s, cartKey(customerID), items)
}

func (s *Store) Wishlist(customerID string) ([]models.WishlistItem, error) {
	return readCollection[models.WishlistItem](s, wishlistKey(customerID))
}

func (s *Store) SetWishlist(customerID string, items []models.WishlistItem) error {
	return writeCollection(s, wishlistKey(customerID), items)
}

// CurrentUser returns the persisted session snapshot, or nil when no user is
// logged in.
func (s *Store) CurrentUser() (*models.User, error) {
	data, err := s.backend.Get(keyCurrentUser)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decode %s: %w", keyCurrentUser, err)
	}
	return &user, nil
}

func (s *Store) SetCurrentUser(user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode %s: %w", keyCurrentUser, err)
	}
	return s.backend.Set(keyCurrentUser, data)
}

func (s *Store) ClearCurrentUser() error {
	return s.backend.Delete(keyCurrentUser)
}

func (s *Store) UserByID(id string) (*models.User, error) {
	users, err := s.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *Store) ProductByID(id string) (*models.Product, error) {
	products, err := s.Products()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrProductNotFound
}

func (s *Store) CategoryByID(id string) (*models.Category, error) {
	categories, err := s.Categories()
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], nil
		}
	}
	return nil, ErrCategoryNotFound
}

func (s *Store) OrderByID(id string) (*models.Order, error) {
	orders, err := s.Orders()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}
