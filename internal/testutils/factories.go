package testutils

import (
	"strings"
	"testing"
	"time"

	"product-catalog-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueCode returns a short code that will not collide across a test run
func uniqueCode(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}

func auditFields() models.AuditFields {
	a := models.AuditFields{CreatedBy: "tester"}
	a.StampCreated(time.Now().UTC())
	return a
}

func base(prefix, name string) models.BaseEntity {
	return models.BaseEntity{
		Code:        uniqueCode(prefix),
		Name:        name,
		AuditFields: auditFields(),
	}
}

// Insert persists entities directly, bypassing repositories. Associations are
// not written, so parents must be inserted first.
func Insert(t testing.TB, db *gorm.DB, entities ...models.Entity) {
	t.Helper()
	for _, e := range entities {
		require.NoError(t, db.Omit(clause.Associations).Create(e).Error)
	}
}

// FactorySet bundles one factory per entity
type FactorySet struct {
	Product     *ProductFactory
	Component   *ComponentFactory
	Tenant      *TenantFactory
	Environment *EnvironmentFactory
	AwsAccount  *AwsAccountFactory
	Team        *TeamFactory
	User        *UserFactory
	Role        *RoleFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Product:     NewProductFactory(),
		Component:   NewComponentFactory(),
		Tenant:      NewTenantFactory(),
		Environment: NewEnvironmentFactory(),
		AwsAccount:  NewAwsAccountFactory(),
		Team:        NewTeamFactory(),
		User:        NewUserFactory(),
		Role:        NewRoleFactory(),
	}
}

// ProductFactory provides methods to create test Product data
type ProductFactory struct{}

// NewProductFactory creates a new ProductFactory
func NewProductFactory() *ProductFactory {
	return &ProductFactory{}
}

// Create creates a test Product with default values
func (f *ProductFactory) Create() *models.Product {
	return &models.Product{
		BaseEntity:  base("PRD", "Test Product"),
		Description: "A test product",
		Version:     "1.0.0",
	}
}

// WithTeam creates a product owned by the given team
func (f *ProductFactory) WithTeam(teamID uint) *models.Product {
	p := f.Create()
	p.TeamID = &teamID
	return p
}

// MultiTenant creates a product shared between tenants
func (f *ProductFactory) MultiTenant() *models.Product {
	p := f.Create()
	p.IsMultiTenant = true
	return p
}

// ComponentFactory provides methods to create test Component data
type ComponentFactory struct{}

// NewComponentFactory creates a new ComponentFactory
func NewComponentFactory() *ComponentFactory {
	return &ComponentFactory{}
}

// Create creates a test Component belonging to productID
func (f *ComponentFactory) Create(productID uint) *models.Component {
	return &models.Component{
		BaseEntity:    base("CMP", "Test Component"),
		Description:   "A test component",
		ProductID:     productID,
		ComponentType: "service",
	}
}

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates an active test Tenant
func (f *TenantFactory) Create() *models.Tenant {
	return &models.Tenant{
		BaseEntity:  base("TEN", "Test Tenant"),
		Description: "A test tenant",
		IsActive:    true,
	}
}

// Inactive creates a deactivated tenant
func (f *TenantFactory) Inactive() *models.Tenant {
	t := f.Create()
	t.IsActive = false
	return t
}

// EnvironmentFactory provides methods to create test Environment data
type EnvironmentFactory struct{}

// NewEnvironmentFactory creates a new EnvironmentFactory
func NewEnvironmentFactory() *EnvironmentFactory {
	return &EnvironmentFactory{}
}

// Create creates a test Environment
func (f *EnvironmentFactory) Create() *models.Environment {
	return &models.Environment{
		BaseEntity:  base("ENV", "Test Environment"),
		Description: "A test environment",
	}
}

// AwsAccountFactory provides methods to create test AwsAccount data
type AwsAccountFactory struct{}

// NewAwsAccountFactory creates a new AwsAccountFactory
func NewAwsAccountFactory() *AwsAccountFactory {
	return &AwsAccountFactory{}
}

// Create creates a test AwsAccount
func (f *AwsAccountFactory) Create() *models.AwsAccount {
	return &models.AwsAccount{
		BaseEntity: base("AWS", "Test Account"),
		AccountID:  "123456789012",
		VpcID:      "vpc-0abc",
		Region:     "eu-west-1",
	}
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseEntity:  base("TEAM", "Test Team"),
		Description: "A test team",
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates an active test User with a unique email
func (f *UserFactory) Create() *models.User {
	b := base("USR", "Test User")
	return &models.User{
		BaseEntity: b,
		Email:      strings.ToLower(b.Code) + "@test.com",
		Password:   "secret",
		IsActive:   true,
	}
}

// RoleFactory provides methods to create test Role data
type RoleFactory struct{}

// NewRoleFactory creates a new RoleFactory
func NewRoleFactory() *RoleFactory {
	return &RoleFactory{}
}

// Create creates a test Role
func (f *RoleFactory) Create() *models.Role {
	return &models.Role{
		BaseEntity:  base("ROLE", "Test Role"),
		Description: "A test role",
	}
}

// Subscription builds an active tenant-product row
func Subscription(tenantID, productID uint, active bool) *models.TenantProduct {
	return &models.TenantProduct{
		JoinEntity: models.JoinEntity{AuditFields: auditFields()},
		TenantID:   tenantID,
		ProductID:  productID,
		IsActive:   active,
	}
}

// Activation builds a tenant-component row
func Activation(tenantID, componentID uint, active bool) *models.TenantComponent {
	return &models.TenantComponent{
		JoinEntity:    models.JoinEntity{AuditFields: auditFields()},
		TenantID:      tenantID,
		ComponentID:   componentID,
		IsActive:      active,
		ActivatedDate: time.Now().UTC(),
	}
}

// Deployment builds a product-environment row
func Deployment(productID, environmentID uint, awsAccountID *uint) *models.ProductEnvironment {
	return &models.ProductEnvironment{
		JoinEntity:    models.JoinEntity{AuditFields: auditFields()},
		ProductID:     productID,
		EnvironmentID: environmentID,
		AwsAccountID:  awsAccountID,
		Status:        models.DeploymentStatusNotDeployed,
	}
}

// Membership builds a user-team row
func Membership(userID, teamID uint, lead bool) *models.UserTeam {
	return &models.UserTeam{
		JoinEntity: models.JoinEntity{AuditFields: auditFields()},
		UserID:     userID,
		TeamID:     teamID,
		IsTeamLead: lead,
	}
}

// RoleAssignment builds a user-role row
func RoleAssignment(userID, roleID uint) *models.UserRole {
	return &models.UserRole{
		JoinEntity: models.JoinEntity{AuditFields: auditFields()},
		UserID:     userID,
		RoleID:     roleID,
	}
}
