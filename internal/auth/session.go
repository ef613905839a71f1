// Package auth holds the session state machine and the role capability
// matrix. A session is either anonymous or authenticated with exactly one
// user; the authenticated record is persisted so the session survives
// restarts.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/safar/go-storefront/internal/models"
	"github.com/safar/go-storefront/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrPermissionDenied   = errors.New("permission denied")
)

type Session struct {
	store   *store.Store
	current *models.User
}

// NewSession seeds the store if needed and restores a persisted login.
//
// The restored record is a snapshot taken at login time: an admin blocking or
// approving the user afterwards is not visible until the next login.
func NewSession(s *store.Store) (*Session, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	current, err := s.CurrentUser()
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	return &Session{store: s, current: current}, nil
}

// Current returns the authenticated user, or nil for an anonymous session.
func (s *Session) Current() *models.User {
	return s.current
}

// Login matches email and password against the user collection. Blocked users
// and bad credentials fail the same way; callers surface no detail.
func (s *Session) Login(email, password string) (*models.User, error) {
	users, err := s.store.Users()
	if err != nil {
		return nil, err
	}

	for i := range users {
		u := &users[i]
		if u.Email == email && u.Password == password {
			if u.IsBlocked {
				return nil, ErrInvalidCredentials
			}
			if err := s.store.SetCurrentUser(u); err != nil {
				return nil, fmt.Errorf("persist session: %w", err)
			}
			s.current = u
			return u, nil
		}
	}

	return nil, ErrInvalidCredentials
}

func (s *Session) Logout() error {
	if err := s.store.ClearCurrentUser(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.current = nil
	return nil
}

type RegisterRequest struct {
	Role     models.Role
	Name     string
	Email    string
	Password string
	Phone    string
}

// Register creates the user and logs them in. Sellers start unapproved and
// wait for an admin; everyone else is approved immediately.
func (s *Session) Register(req RegisterRequest) (*models.User, error) {
	users, err := s.store.Users()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == req.Email {
			return nil, ErrDuplicateEmail
		}
	}

	user := models.User{
		ID:         "user-" + uuid.NewString(),
		Role:       req.Role,
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		IsApproved: req.Role != models.RoleSeller,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.store.SetUsers(append(users, user)); err != nil {
		return nil, fmt.Errorf("persist user: %w", err)
	}

	if err := s.store.SetCurrentUser(&user); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	s.current = &user

	return &user, nil
}
