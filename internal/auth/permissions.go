package auth

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"

	"github.com/safar/go-storefront/internal/models"
)

// Actions and resources the permission matrix covers. Ownership checks (a
// seller editing somebody else's product) stay with the owning service; this
// matrix answers only the role question.
const (
	ActionWrite   = "write"
	ActionCreate  = "create"
	ActionManage  = "manage"
	ActionAdvance = "advance"
	ActionCancel  = "cancel"

	ResourceCart     = "cart"
	ResourceWishlist = "wishlist"
	ResourceReview   = "review"
	ResourceOrder    = "order"
	ResourceProduct  = "product"
	ResourceCategory = "category"
	ResourceUser     = "user"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

var policies = [][]string{
	{string(models.RoleCustomer), ResourceCart, ActionWrite},
	{string(models.RoleCustomer), ResourceWishlist, ActionWrite},
	{string(models.RoleCustomer), ResourceReview, ActionCreate},
	{string(models.RoleCustomer), ResourceOrder, ActionCreate},
	{string(models.RoleCustomer), ResourceOrder, ActionCancel},

	{string(models.RoleSeller), ResourceProduct, ActionCreate},
	{string(models.RoleSeller), ResourceProduct, ActionManage},
	{string(models.RoleSeller), ResourceOrder, ActionAdvance},

	{string(models.RoleAdmin), ResourceUser, ActionManage},
	{string(models.RoleAdmin), ResourceCategory, ActionManage},
	{string(models.RoleAdmin), ResourceProduct, ActionCreate},
	{string(models.RoleAdmin), ResourceProduct, ActionManage},
	{string(models.RoleAdmin), ResourceOrder, ActionAdvance},
	{string(models.RoleAdmin), ResourceOrder, ActionCancel},
}

// Authorizer centralizes the role/action/resource matrix behind a single
// Can call, instead of comparing role strings at every call site.
type Authorizer struct {
	enforcer *casbin.Enforcer
}

func NewAuthorizer() (*Authorizer, error) {
	m, err := casbinmodel.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("parse rbac model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("initialize enforcer: %w", err)
	}

	if _, err := enforcer.AddPolicies(policies); err != nil {
		return nil, fmt.Errorf("load policies: %w", err)
	}

	return &Authorizer{enforcer: enforcer}, nil
}

// Can reports whether the user's role allows the action on the resource.
// Anonymous sessions can do nothing.
func (a *Authorizer) Can(user *models.User, action, resource string) bool {
	if user == nil {
		return false
	}

	allowed, err := a.enforcer.Enforce(string(user.Role), resource, action)
	if err != nil {
		return false
	}
	return allowed
}
