package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/safar/go-storefront/internal/auth"
	"github.com/safar/go-storefront/internal/models"
	"github.com/safar/go-storefront/internal/store"
)

var ErrInvalidProduct = errors.New("invalid product")

// Products manages the product collection on behalf of sellers and admins.
type Products struct {
	store   *store.Store
	session *auth.Session
	authz   *auth.Authorizer
}

func NewProducts(s *store.Store, session *auth.Session, authz *auth.Authorizer) *Products {
	return &Products{store: s, session: session, authz: authz}
}

type CreateProductRequest struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Images      []string
	Brand       string
	Stock       int
	CategoryID  string
}

// Create adds a product owned by the current seller. Unapproved sellers
// cannot list products; admins may create on their own behalf.
func (p *Products) Create(req CreateProductRequest) (*models.Product, error) {
	user := p.session.Current()
	if !p.authz.Can(user, auth.ActionCreate, auth.ResourceProduct) {
		return nil, auth.ErrPermissionDenied
	}
	if user.Role == models.RoleSeller && !user.IsApproved {
		return nil, auth.ErrPermissionDenied
	}
	if req.Title == "" || req.Price.IsNegative() || req.Stock < 0 {
		return nil, ErrInvalidProduct
	}

	product := models.Product{
		ID:          "prod-" + uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Brand:       req.Brand,
		SellerID:    user.ID,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		CreatedAt:   time.Now().UTC(),
		IsActive:    true,
	}

	products, err := p.store.Products()
	if err != nil {
		return nil, err
	}
	if err := p.store.SetProducts(append(products, product)); err != nil {
		return nil, err
	}

	return &product, nil
}

type UpdateProductRequest struct {
	ProductID   string
	Title       string
	Description string
	Price       decimal.Decimal
	Images      []string
	Brand       string
	Stock       int
	CategoryID  string
}

// Update rewrites a product's editable fields. Only the owning seller or an
// admin may touch it; rating fields are never written through this path.
func (p *Products) Update(req UpdateProductRequest) (*models.Product, error) {
	user := p.session.Current()
	if !p.authz.Can(user, auth.ActionManage, auth.ResourceProduct) {
		return nil, auth.ErrPermissionDenied
	}
	if req.Title == "" || req.Price.IsNegative() || req.Stock < 0 {
		return nil, ErrInvalidProduct
	}

	products, err := p.store.Products()
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID != req.ProductID {
			continue
		}
		if user.Role != models.RoleAdmin && products[i].SellerID != user.ID {
			return nil, auth.ErrPermissionDenied
		}

		products[i].Title = req.Title
		products[i].Description = req.Description
		products[i].Price = req.Price
		products[i].Images = req.Images
		products[i].Brand = req.Brand
		products[i].Stock = req.Stock
		products[i].CategoryID = req.CategoryID

		updated := products[i]
		if err := p.store.SetProducts(products); err != nil {
			return nil, err
		}
		return &updated, nil
	}

	return nil, store.ErrProductNotFound
}

// SetActive toggles the soft-delete flag. Inactive products drop out of every
// catalog query but keep their reviews and order history.
func (p *Products) SetActive(productID string, active bool) error {
	user := p.session.Current()
	if !p.authz.Can(user, auth.ActionManage, auth.ResourceProduct) {
		return auth.ErrPermissionDenied
	}

	products, err := p.store.Products()
	if err != nil {
		return err
	}

	for i := range products {
		if products[i].ID != productID {
			continue
		}
		if user.Role != models.RoleAdmin && products[i].SellerID != user.ID {
			return auth.ErrPermissionDenied
		}
		products[i].IsActive = active
		return p.store.SetProducts(products)
	}

	return store.ErrProductNotFound
}

// Delete removes a product outright. Admin only; sellers deactivate instead.
// Cart lines pointing at it become dangling and drop out of resolved views.
func (p *Products) Delete(productID string) error {
	user := p.session.Current()
	if user == nil || user.Role != models.RoleAdmin {
		return auth.ErrPermissionDenied
	}

	products, err := p.store.Products()
	if err != nil {
		return err
	}

	kept := products[:0]
	found := false
	for _, product := range products {
		if product.ID == productID {
			found = true
			continue
		}
		kept = append(kept, product)
	}
	if !found {
		return store.ErrProductNotFound
	}

	return p.store.SetProducts(kept)
}

// BySeller lists a seller's products, active or not, for the dashboard.
func (p *Products) BySeller(sellerID string) ([]models.Product, error) {
	products, err := p.store.Products()
	if err != nil {
		return nil, err
	}

	var mine []models.Product
	for _, product := range products {
		if product.SellerID == sellerID {
			mine = append(mine, product)
		}
	}
	return mine, nil
}
