// Package admin covers the admin dashboard mutations: seller approval, user
// blocking and category management.
package admin

import (
	"errors"

	"github.com/google/uuid"

	"github.com/safar/go-storefront/internal/auth"
	"github.com/safar/go-storefront/internal/models"
	"github.com/safar/go-storefront/internal/store"
)

var ErrInvalidCategory = errors.New("invalid category")

type Service struct {
	store   *store.Store
	session *auth.Session
	authz   *auth.Authorizer
}

func NewService(s *store.Store, session *auth.Session, authz *auth.Authorizer) *Service {
	return &Service{store: s, session: session, authz: authz}
}

func (s *Service) requireUserManage() error {
	if !s.authz.Can(s.session.Current(), auth.ActionManage, auth.ResourceUser) {
		return auth.ErrPermissionDenied
	}
	return nil
}

// ApproveSeller marks a seller account as approved so it can list products.
func (s *Service) ApproveSeller(userID string) error {
	if err := s.requireUserManage(); err != nil {
		return err
	}

	users, err := s.store.Users()
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].ID == userID {
			if users[i].Role != models.RoleSeller {
				return store.ErrUserNotFound
			}
			users[i].IsApproved = true
			return s.store.SetUsers(users)
		}
	}
	return store.ErrUserNotFound
}

// SetUserBlocked blocks or unblocks an account. Blocked users keep their data
// but cannot log in again; users are never hard-deleted.
func (s *Service) SetUserBlocked(userID string, blocked bool) error {
	if err := s.requireUserManage(); err != nil {
		return err
	}

	users, err := s.store.Users()
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].ID == userID {
			users[i].IsBlocked = blocked
			return s.store.SetUsers(users)
		}
	}
	return store.ErrUserNotFound
}

func (s *Service) requireCategoryManage() error {
	if !s.authz.Can(s.session.Current(), auth.ActionManage, auth.ResourceCategory) {
		return auth.ErrPermissionDenied
	}
	return nil
}

type CategoryRequest struct {
	Name     string
	Icon     string
	ParentID string
	ImageURL string
}

// CreateCategory adds a category. A parent, if given, must be an existing
// top-level category; nesting stops at one level.
func (s *Service) CreateCategory(req CategoryRequest) (*models.Category, error) {
	if err := s.requireCategoryManage(); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, ErrInvalidCategory
	}

	categories, err := s.store.Categories()
	if err != nil {
		return nil, err
	}

	if req.ParentID != "" {
		parent, ok := findCategory(categories, req.ParentID)
		if !ok || parent.ParentID != "" {
			return nil, ErrInvalidCategory
		}
	}

	category := models.Category{
		ID:       "cat-" + uuid.NewString(),
		Name:     req.Name,
		Icon:     req.Icon,
		ParentID: req.ParentID,
		ImageURL: req.ImageURL,
	}

	if err := s.store.SetCategories(append(categories, category)); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *Service) UpdateCategory(categoryID string, req CategoryRequest) (*models.Category, error) {
	if err := s.requireCategoryManage(); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, ErrInvalidCategory
	}

	categories, err := s.store.Categories()
	if err != nil {
		return nil, err
	}

	if req.ParentID != "" {
		parent, ok := findCategory(categories, req.ParentID)
		if !ok || parent.ParentID != "" || parent.ID == categoryID {
			return nil, ErrInvalidCategory
		}
	}

	for i := range categories {
		if categories[i].ID != categoryID {
			continue
		}
		categories[i].Name = req.Name
		categories[i].Icon = req.Icon
		categories[i].ParentID = req.ParentID
		categories[i].ImageURL = req.ImageURL

		updated := categories[i]
		if err := s.store.SetCategories(categories); err != nil {
			return nil, err
		}
		return &updated, nil
	}

	return nil, store.ErrCategoryNotFound
}

// DeleteCategory removes a category and, in the same write, any categories
// whose parent it was. Products keep their now-dangling category id.
func (s *Service) DeleteCategory(categoryID string) error {
	if err := s.requireCategoryManage(); err != nil {
		return err
	}

	categories, err := s.store.Categories()
	if err != nil {
		return err
	}

	kept := categories[:0]
	found := false
	for _, c := range categories {
		if c.ID == categoryID {
			found = true
			continue
		}
		if c.ParentID == categoryID {
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return store.ErrCategoryNotFound
	}

	return s.store.SetCategories(kept)
}

func findCategory(categories []models.Category, id string) (models.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}
