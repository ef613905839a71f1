// Package reviews appends customer reviews and maintains the running rating
// average on the reviewed product.
package reviews

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/safar/go-storefront/internal/auth"
	"github.com/safar/go-storefront/internal/models"
	"github.com/safar/go-storefront/internal/store"
)

var (
	ErrAlreadyReviewed = errors.New("product already reviewed by this customer")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

type Service struct {
	store   *store.Store
	session *auth.Session
	authz   *auth.Authorizer
}

func NewService(s *store.Store, session *auth.Session, authz *auth.Authorizer) *Service {
	return &Service{store: s, session: session, authz: authz}
}

// Submit records one review per (product, customer) and folds the new rating
// into the product's running mean: (avg*n + r) / (n+1).
//
// The review append and the product update are two independent writes; a
// crash between them leaves the aggregate one rating behind.
func (s *Service) Submit(productID string, rating int, comment string) (*models.Review, error) {
	user := s.session.Current()
	if !s.authz.Can(user, auth.ActionCreate, auth.ResourceReview) {
		return nil, auth.ErrPermissionDenied
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.store.ProductByID(productID); err != nil {
		return nil, err
	}

	all, err := s.store.Reviews()
	if err != nil {
		return nil, err
	}
	for _, r := range all {
		if r.ProductID == productID && r.CustomerID == user.ID {
			return nil, ErrAlreadyReviewed
		}
	}

	review := models.Review{
		ID:         "review-" + uuid.NewString(),
		ProductID:  productID,
		CustomerID: user.ID,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.store.SetReviews(append(all, review)); err != nil {
		return nil, fmt.Errorf("persist review: %w", err)
	}

	products, err := s.store.Products()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID != productID {
			continue
		}
		oldCount := products[i].RatingCount
		products[i].RatingAvg = (products[i].RatingAvg*float64(oldCount) + float64(rating)) / float64(oldCount+1)
		products[i].RatingCount = oldCount + 1
		break
	}
	if err := s.store.SetProducts(products); err != nil {
		return nil, fmt.Errorf("update product rating: %w", err)
	}

	return &review, nil
}

// ByProduct lists a product's reviews in submission order.
func (s *Service) ByProduct(productID string) ([]models.Review, error) {
	all, err := s.store.Reviews()
	if err != nil {
		return nil, err
	}

	var matched []models.Review
	for _, r := range all {
		if r.ProductID == productID {
			matched = append(matched, r)
		}
	}
	return matched, nil
}
