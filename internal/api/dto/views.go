package dto

import "product-catalog-backend/internal/database/models"

// Views embed a model for its scalar fields (navigation fields are hidden on
// the models) and add the related rows loaded for that depth. Related rows are
// serialized as their own scalars, so no view can reach back to its origin.

// ProductView is a product as returned by list and filtered queries
type ProductView struct {
	models.Product
	Team *models.Team `json:"team"`
}

// ProductDetail is a product with its full two-hop context
type ProductDetail struct {
	models.Product
	Team                *models.Team             `json:"team"`
	Components          []models.Component       `json:"components"`
	ProductEnvironments []ProductEnvironmentView `json:"productEnvironments"`
	TenantProducts      []TenantProductView      `json:"tenantProducts"`
}

// ProductEnvironmentView is a deployment record seen from its product
type ProductEnvironmentView struct {
	models.ProductEnvironment
	Environment *models.Environment `json:"environment"`
	AwsAccount  *models.AwsAccount  `json:"awsAccount"`
}

// TenantProductView is a subscription seen from its product
type TenantProductView struct {
	models.TenantProduct
	Tenant *models.Tenant `json:"tenant"`
}

// SubscriptionView is a subscription seen from its tenant
type SubscriptionView struct {
	models.TenantProduct
	Product *models.Product `json:"product"`
}

// ActivationView is a component activation seen from its tenant
type ActivationView struct {
	models.TenantComponent
	Component *models.Component `json:"component"`
}

// TenantComponentView is a component activation seen from its component
type TenantComponentView struct {
	models.TenantComponent
	Tenant *models.Tenant `json:"tenant"`
}

// TenantView is a tenant as returned by list and filtered queries
type TenantView struct {
	models.Tenant
	TenantProducts []SubscriptionView `json:"tenantProducts"`
}

// TenantDetail is a tenant with its subscriptions and activations
type TenantDetail struct {
	models.Tenant
	TenantProducts   []SubscriptionView `json:"tenantProducts"`
	TenantComponents []ActivationView   `json:"tenantComponents"`
}

// ComponentView is a component as returned by list and filtered queries
type ComponentView struct {
	models.Component
	Product *models.Product `json:"product"`
}

// ComponentDetail is a component with its product and activations
type ComponentDetail struct {
	models.Component
	Product          *models.Product       `json:"product"`
	TenantComponents []TenantComponentView `json:"tenantComponents"`
}

func NewProductView(p *models.Product) ProductView {
	return ProductView{Product: *p, Team: p.Team}
}

func NewProductDetail(p *models.Product) ProductDetail {
	d := ProductDetail{
		Product:             *p,
		Team:                p.Team,
		Components:          nonNil(p.Components),
		ProductEnvironments: make([]ProductEnvironmentView, len(p.ProductEnvironments)),
		TenantProducts:      make([]TenantProductView, len(p.TenantProducts)),
	}
	for i, pe := range p.ProductEnvironments {
		d.ProductEnvironments[i] = ProductEnvironmentView{
			ProductEnvironment: pe,
			Environment:        pe.Environment,
			AwsAccount:         pe.AwsAccount,
		}
	}
	for i, tp := range p.TenantProducts {
		d.TenantProducts[i] = TenantProductView{TenantProduct: tp, Tenant: tp.Tenant}
	}
	return d
}

func subscriptions(rows []models.TenantProduct) []SubscriptionView {
	views := make([]SubscriptionView, len(rows))
	for i, tp := range rows {
		views[i] = SubscriptionView{TenantProduct: tp, Product: tp.Product}
	}
	return views
}

func NewTenantView(t *models.Tenant) TenantView {
	return TenantView{Tenant: *t, TenantProducts: subscriptions(t.TenantProducts)}
}

func NewTenantDetail(t *models.Tenant) TenantDetail {
	d := TenantDetail{
		Tenant:           *t,
		TenantProducts:   subscriptions(t.TenantProducts),
		TenantComponents: make([]ActivationView, len(t.TenantComponents)),
	}
	for i, tc := range t.TenantComponents {
		d.TenantComponents[i] = ActivationView{TenantComponent: tc, Component: tc.Component}
	}
	return d
}

func NewComponentView(c *models.Component) ComponentView {
	return ComponentView{Component: *c, Product: c.Product}
}

func NewComponentDetail(c *models.Component) ComponentDetail {
	d := ComponentDetail{
		Component:        *c,
		Product:          c.Product,
		TenantComponents: make([]TenantComponentView, len(c.TenantComponents)),
	}
	for i, tc := range c.TenantComponents {
		d.TenantComponents[i] = TenantComponentView{TenantComponent: tc, Tenant: tc.Tenant}
	}
	return d
}

// Map converts every element of rows with view
func Map[T any, V any](rows []T, view func(*T) V) []V {
	out := make([]V, len(rows))
	for i := range rows {
		out[i] = view(&rows[i])
	}
	return out
}

// Identity serializes an entity as-is. Entities without navigation fields use it.
func Identity[T any](row *T) *T {
	return row
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}

// MembershipView is a team membership seen from its user
type MembershipView struct {
	models.UserTeam
	Team *models.Team `json:"team"`
}

// UserDetail is a user with its roles and team memberships. The password is
// never serialized.
type UserDetail struct {
	models.User
	Roles []models.Role    `json:"roles"`
	Teams []MembershipView `json:"teams"`
}

func NewUserDetail(u *models.User) UserDetail {
	d := UserDetail{
		User:  *u,
		Roles: make([]models.Role, 0, len(u.UserRoles)),
		Teams: make([]MembershipView, len(u.UserTeams)),
	}
	for _, ur := range u.UserRoles {
		if ur.Role != nil {
			d.Roles = append(d.Roles, *ur.Role)
		}
	}
	for i, ut := range u.UserTeams {
		d.Teams[i] = MembershipView{UserTeam: ut, Team: ut.Team}
	}
	return d
}
