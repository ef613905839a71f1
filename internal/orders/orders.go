// Package orders derives orders from carts at checkout and tracks their
// status afterwards. An order freezes prices and quantities at creation time
// and its items never change again.
package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/safar/go-storefront/internal/auth"
	"github.com/safar/go-storefront/internal/cart"
	"github.com/safar/go-storefront/internal/config"
	"github.com/safar/go-storefront/internal/models"
	"github.com/safar/go-storefront/internal/store"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrIncompleteAddress = errors.New("address is missing required fields")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

type DeliveryOption string

const (
	DeliveryStandard DeliveryOption = "standard"
	DeliveryExpress  DeliveryOption = "express"
)

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

// expressFee is the flat surcharge for next-day delivery; standard is free.
var expressFee = decimal.NewFromInt(15)

type Service struct {
	store        *store.Store
	session      *auth.Session
	cart         *cart.Cart
	authz        *auth.Authorizer
	paymentDelay time.Duration
}

func NewService(s *store.Store, session *auth.Session, c *cart.Cart, authz *auth.Authorizer, cfg config.CheckoutConfig) *Service {
	return &Service{
		store:        s,
		session:      session,
		cart:         c,
		authz:        authz,
		paymentDelay: cfg.PaymentDelay,
	}
}

type CheckoutRequest struct {
	Delivery DeliveryOption
	Payment  PaymentMethod
	Address  models.Address
}

// Checkout turns the current customer's cart into an order. Prices come from
// the resolved cart as-is; there is no re-validation of price or stock at
// commit time. On success the order is appended and the cart cleared.
func (s *Service) Checkout(ctx context.Context, req CheckoutRequest) (*models.Order, error) {
	user := s.session.Current()
	if !s.authz.Can(user, auth.ActionCreate, auth.ResourceOrder) {
		return nil, auth.ErrPermissionDenied
	}

	fee, err := deliveryFee(req.Delivery)
	if err != nil {
		return nil, err
	}
	if req.Payment != PaymentCard && req.Payment != PaymentCash {
		return nil, fmt.Errorf("unknown payment method %q", req.Payment)
	}
	if req.Address.FullName == "" || req.Address.Phone == "" ||
		req.Address.Street == "" || req.Address.City == "" {
		return nil, ErrIncompleteAddress
	}

	summary, err := s.cart.Summarize()
	if err != nil {
		return nil, err
	}
	if len(summary.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	// Simulated payment provider round trip. It cannot fail, only take time.
	if s.paymentDelay > 0 {
		select {
		case <-time.After(s.paymentDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	status := models.OrderStatusPending
	if req.Payment == PaymentCard {
		status = models.OrderStatusPaid
	}

	items := make([]models.OrderItem, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Qty:       line.Qty,
			UnitPrice: line.Product.Price,
			Subtotal:  line.Product.Price.Mul(decimal.NewFromInt(int64(line.Qty))),
		})
	}

	order := models.Order{
		ID:              "order-" + uuid.NewString(),
		CustomerID:      user.ID,
		Items:           items,
		Total:           summary.Total.Add(fee),
		Status:          status,
		Address:         req.Address,
		SellerBreakdown: breakdownBySeller(summary.Lines, items),
		CreatedAt:       time.Now().UTC(),
	}

	all, err := s.store.Orders()
	if err != nil {
		return nil, err
	}
	if err := s.store.SetOrders(append(all, order)); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	// Independent write; a crash here leaves the cart intact next to the
	// already persisted order.
	if err := s.cart.Clear(); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	return &order, nil
}

func deliveryFee(option DeliveryOption) (decimal.Decimal, error) {
	switch option {
	case DeliveryStandard:
		return decimal.Zero, nil
	case DeliveryExpress:
		return expressFee, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown delivery option %q", option)
	}
}

// breakdownBySeller partitions order lines by the selling user, keeping
// sellers in first-seen order. Each share's subtotal excludes delivery fees.
func breakdownBySeller(lines []cart.Line, items []models.OrderItem) []models.SellerShare {
	index := map[string]int{}
	var shares []models.SellerShare

	for i, line := range lines {
		sellerID := line.Product.SellerID
		at, ok := index[sellerID]
		if !ok {
			at = len(shares)
			index[sellerID] = at
			shares = append(shares, models.SellerShare{
				SellerID: sellerID,
				Subtotal: decimal.Zero,
			})
		}
		shares[at].Items = append(shares[at].Items, items[i])
		shares[at].Subtotal = shares[at].Subtotal.Add(items[i].Subtotal)
	}

	return shares
}

// ForCustomer lists the current customer's own orders.
func (s *Service) ForCustomer() ([]models.Order, error) {
	user := s.session.Current()
	if user == nil || user.Role != models.RoleCustomer {
		return nil, auth.ErrPermissionDenied
	}

	all, err := s.store.Orders()
	if err != nil {
		return nil, err
	}

	var mine []models.Order
	for _, order := range all {
		if order.CustomerID == user.ID {
			mine = append(mine, order)
		}
	}
	return mine, nil
}

// ForSeller lists orders that contain at least one of the current seller's
// products.
func (s *Service) ForSeller() ([]models.Order, error) {
	user := s.session.Current()
	if user == nil || user.Role != models.RoleSeller {
		return nil, auth.ErrPermissionDenied
	}

	all, err := s.store.Orders()
	if err != nil {
		return nil, err
	}

	var involved []models.Order
	for _, order := range all {
		for _, share := range order.SellerBreakdown {
			if share.SellerID == user.ID {
				involved = append(involved, order)
				break
			}
		}
	}
	return involved, nil
}

// All lists every order. Admin only.
func (s *Service) All() ([]models.Order, error) {
	user := s.session.Current()
	if user == nil || user.Role != models.RoleAdmin {
		return nil, auth.ErrPermissionDenied
	}
	return s.store.Orders()
}

// Get returns a single order to its customer, an involved seller, or an
// admin.
func (s *Service) Get(orderID string) (*models.Order, error) {
	user := s.session.Current()
	if user == nil {
		return nil, auth.ErrPermissionDenied
	}

	order, err := s.store.OrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if user.Role == models.RoleAdmin || order.CustomerID == user.ID {
		return order, nil
	}
	for _, share := range order.SellerBreakdown {
		if share.SellerID == user.ID {
			return order, nil
		}
	}
	return nil, auth.ErrPermissionDenied
}

// AdvanceStatus moves an order one step along
// PENDING -> PAID -> SHIPPED -> DELIVERED, or to CANCELLED from any
// non-terminal state. Sellers and admins advance; the owning customer or an
// admin cancels.
func (s *Service) AdvanceStatus(orderID string, next models.OrderStatus) error {
	user := s.session.Current()

	all, err := s.store.Orders()
	if err != nil {
		return err
	}

	for i := range all {
		if all[i].ID != orderID {
			continue
		}

		if next == models.OrderStatusCancelled {
			if !s.authz.Can(user, auth.ActionCancel, auth.ResourceOrder) {
				return auth.ErrPermissionDenied
			}
			if user.Role == models.RoleCustomer && all[i].CustomerID != user.ID {
				return auth.ErrPermissionDenied
			}
		} else if !s.authz.Can(user, auth.ActionAdvance, auth.ResourceOrder) {
			return auth.ErrPermissionDenied
		}

		if !validTransition(all[i].Status, next) {
			return ErrInvalidTransition
		}

		all[i].Status = next
		return s.store.SetOrders(all)
	}

	return store.ErrOrderNotFound
}

func validTransition(from, to models.OrderStatus) bool {
	if to == models.OrderStatusCancelled {
		return from != models.OrderStatusDelivered && from != models.OrderStatusCancelled
	}

	switch from {
	case models.OrderStatusPending:
		return to == models.OrderStatusPaid
	case models.OrderStatusPaid:
		return to == models.OrderStatusShipped
	case models.OrderStatusShipped:
		return to == models.OrderStatusDelivered
	default:
		return false
	}
}
