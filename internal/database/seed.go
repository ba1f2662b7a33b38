package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"product-catalog-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Catalog is the YAML document accepted by the seed command
type Catalog struct {
	Environments []EnvironmentData `yaml:"environments"`
	Teams        []TeamData        `yaml:"teams"`
	AwsAccounts  []AwsAccountData  `yaml:"aws_accounts"`
	Products     []ProductData     `yaml:"products"`
	Tenants      []TenantData      `yaml:"tenants"`
}

type EnvironmentData struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type TeamData struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type AwsAccountData struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	AccountID   string `yaml:"account_id"`
	VpcID       string `yaml:"vpc_id"`
	Region      string `yaml:"region"`
	Description string `yaml:"description"`
}

type ProductData struct {
	Code          string           `yaml:"code"`
	Name          string           `yaml:"name"`
	Description   string           `yaml:"description"`
	Version       string           `yaml:"version"`
	IsMultiTenant bool             `yaml:"is_multi_tenant"`
	Team          string           `yaml:"team,omitempty"`
	Components    []ComponentData  `yaml:"components"`
	Deployments   []DeploymentData `yaml:"deployments"`
}

type ComponentData struct {
	Code          string `yaml:"code"`
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	ComponentType string `yaml:"component_type"`
}

type DeploymentData struct {
	Environment   string `yaml:"environment"`
	AwsAccount    string `yaml:"aws_account,omitempty"`
	DeploymentURL string `yaml:"deployment_url"`
	Status        string `yaml:"status"`
}

type TenantData struct {
	Code        string   `yaml:"code"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	IsActive    *bool    `yaml:"is_active,omitempty"`
	Products    []string `yaml:"products"`
	Components  []string `yaml:"components"`
}

// SeedSummary counts rows created by a seed run
type SeedSummary struct {
	Environments  int
	Teams         int
	AwsAccounts   int
	Products      int
	Components    int
	Deployments   int
	Tenants       int
	Subscriptions int
	Activations   int
}

var defaultEnvironments = []EnvironmentData{
	{Code: "DEV", Name: "Development", Description: "Development Environment"},
	{Code: "TEST", Name: "Test", Description: "Test Environment"},
	{Code: "PREPROD", Name: "Pre-Production", Description: "Pre-Production Environment"},
	{Code: "PROD", Name: "Production", Description: "Production Environment"},
}

// LoadCatalog reads a seed catalog from a YAML file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &catalog, nil
}

func audit(now time.Time) models.AuditFields {
	a := models.AuditFields{CreatedBy: models.SystemActor}
	a.StampCreated(now)
	return a
}

// firstOrCreate looks a row up by its lookup conditions and inserts it when absent
func firstOrCreate(tx *gorm.DB, dest interface{}, conds ...interface{}) (bool, error) {
	res := tx.Where(conds[0], conds[1:]...).Limit(1).Find(dest)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}
	if err := tx.Create(dest).Error; err != nil {
		return false, err
	}
	return true, nil
}

// SeedDefaults inserts the reference environments and the administrator account.
// Existing rows are left untouched, so it is safe to run on every start.
func SeedDefaults(ctx context.Context, db *gorm.DB) error {
	now := time.Now().UTC()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created := 0
		for _, e := range defaultEnvironments {
			env := models.Environment{
				BaseEntity:  models.BaseEntity{Code: e.Code, Name: e.Name, AuditFields: audit(now)},
				Description: e.Description,
			}
			ok, err := firstOrCreate(tx, &env, "code = ?", e.Code)
			if err != nil {
				return fmt.Errorf("seed environment %s: %w", e.Code, err)
			}
			if ok {
				created++
			}
		}

		role := models.Role{
			BaseEntity:  models.BaseEntity{Code: "ADMIN", Name: "Administrator", AuditFields: audit(now)},
			Description: "Full system access",
		}
		if _, err := firstOrCreate(tx, &role, "code = ?", role.Code); err != nil {
			return fmt.Errorf("seed admin role: %w", err)
		}

		// login is out of scope, so the seeded password is a random placeholder
		user := models.User{
			BaseEntity: models.BaseEntity{Code: "ADMIN", Name: "System Administrator", AuditFields: audit(now)},
			Email:      "admin@example.com",
			Password:   uuid.NewString(),
			IsActive:   true,
		}
		if _, err := firstOrCreate(tx, &user, "email = ?", user.Email); err != nil {
			return fmt.Errorf("seed admin user: %w", err)
		}

		userRole := models.UserRole{
			JoinEntity: models.JoinEntity{AuditFields: audit(now)},
			UserID:     user.ID,
			RoleID:     role.ID,
		}
		if _, err := firstOrCreate(tx, &userRole, "user_id = ? AND role_id = ?", user.ID, role.ID); err != nil {
			return fmt.Errorf("seed admin user role: %w", err)
		}

		logrus.WithField("environments_created", created).Info("Default data seeded")
		return nil
	})
}

// ApplyCatalog inserts every catalog entry not already present, matching rows by code.
// References between entries (team, environment, aws account, product and component
// codes) must resolve to rows in the catalog or the database.
func ApplyCatalog(ctx context.Context, db *gorm.DB, catalog *Catalog) (*SeedSummary, error) {
	summary := &SeedSummary{}
	now := time.Now().UTC()

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		envs := map[string]uint{}
		for _, e := range catalog.Environments {
			env := models.Environment{
				BaseEntity:  models.BaseEntity{Code: e.Code, Name: e.Name, AuditFields: audit(now)},
				Description: e.Description,
			}
			created, err := firstOrCreate(tx, &env, "code = ?", e.Code)
			if err != nil {
				return fmt.Errorf("environment %s: %w", e.Code, err)
			}
			envs[e.Code] = env.ID
			if created {
				summary.Environments++
			}
		}

		teams := map[string]uint{}
		for _, t := range catalog.Teams {
			team := models.Team{
				BaseEntity:  models.BaseEntity{Code: t.Code, Name: t.Name, AuditFields: audit(now)},
				Description: t.Description,
			}
			created, err := firstOrCreate(tx, &team, "code = ?", t.Code)
			if err != nil {
				return fmt.Errorf("team %s: %w", t.Code, err)
			}
			teams[t.Code] = team.ID
			if created {
				summary.Teams++
			}
		}

		accounts := map[string]uint{}
		for _, a := range catalog.AwsAccounts {
			account := models.AwsAccount{
				BaseEntity:  models.BaseEntity{Code: a.Code, Name: a.Name, AuditFields: audit(now)},
				AccountID:   a.AccountID,
				VpcID:       a.VpcID,
				Region:      a.Region,
				Description: a.Description,
			}
			created, err := firstOrCreate(tx, &account, "code = ?", a.Code)
			if err != nil {
				return fmt.Errorf("aws account %s: %w", a.Code, err)
			}
			accounts[a.Code] = account.ID
			if created {
				summary.AwsAccounts++
			}
		}

		products := map[string]uint{}
		components := map[string]uint{}
		for _, p := range catalog.Products {
			product := models.Product{
				BaseEntity:    models.BaseEntity{Code: p.Code, Name: p.Name, AuditFields: audit(now)},
				Description:   p.Description,
				Version:       p.Version,
				IsMultiTenant: p.IsMultiTenant,
			}
			if p.Team != "" {
				id, err := lookup(tx, teams, &models.Team{}, p.Team)
				if err != nil {
					return fmt.Errorf("product %s: %w", p.Code, err)
				}
				product.TeamID = &id
			}
			created, err := firstOrCreate(tx, &product, "code = ?", p.Code)
			if err != nil {
				return fmt.Errorf("product %s: %w", p.Code, err)
			}
			products[p.Code] = product.ID
			if created {
				summary.Products++
			}

			for _, c := range p.Components {
				component := models.Component{
					BaseEntity:    models.BaseEntity{Code: c.Code, Name: c.Name, AuditFields: audit(now)},
					Description:   c.Description,
					ProductID:     product.ID,
					ComponentType: c.ComponentType,
				}
				created, err := firstOrCreate(tx, &component, "code = ? AND product_id = ?", c.Code, product.ID)
				if err != nil {
					return fmt.Errorf("component %s: %w", c.Code, err)
				}
				components[c.Code] = component.ID
				if created {
					summary.Components++
				}
			}

			for _, d := range p.Deployments {
				envID, err := lookup(tx, envs, &models.Environment{}, d.Environment)
				if err != nil {
					return fmt.Errorf("product %s deployment: %w", p.Code, err)
				}
				status := d.Status
				if status == "" {
					status = models.DeploymentStatusNotDeployed
				}
				deployment := models.ProductEnvironment{
					JoinEntity:    models.JoinEntity{AuditFields: audit(now)},
					ProductID:     product.ID,
					EnvironmentID: envID,
					DeploymentURL: d.DeploymentURL,
					Status:        status,
				}
				if d.AwsAccount != "" {
					accountID, err := lookup(tx, accounts, &models.AwsAccount{}, d.AwsAccount)
					if err != nil {
						return fmt.Errorf("product %s deployment: %w", p.Code, err)
					}
					deployment.AwsAccountID = &accountID
				}
				created, err := firstOrCreate(tx, &deployment, "product_id = ? AND environment_id = ?", product.ID, envID)
				if err != nil {
					return fmt.Errorf("product %s deployment: %w", p.Code, err)
				}
				if created {
					summary.Deployments++
				}
			}
		}

		for _, t := range catalog.Tenants {
			tenant := models.Tenant{
				BaseEntity:  models.BaseEntity{Code: t.Code, Name: t.Name, AuditFields: audit(now)},
				Description: t.Description,
				IsActive:    t.IsActive == nil || *t.IsActive,
			}
			created, err := firstOrCreate(tx, &tenant, "code = ?", t.Code)
			if err != nil {
				return fmt.Errorf("tenant %s: %w", t.Code, err)
			}
			if created {
				summary.Tenants++
			}

			for _, code := range t.Products {
				productID, err := lookup(tx, products, &models.Product{}, code)
				if err != nil {
					return fmt.Errorf("tenant %s: %w", t.Code, err)
				}
				subscription := models.TenantProduct{
					JoinEntity: models.JoinEntity{AuditFields: audit(now)},
					TenantID:   tenant.ID,
					ProductID:  productID,
					IsActive:   true,
				}
				created, err := firstOrCreate(tx, &subscription, "tenant_id = ? AND product_id = ?", tenant.ID, productID)
				if err != nil {
					return fmt.Errorf("tenant %s subscription: %w", t.Code, err)
				}
				if created {
					summary.Subscriptions++
				}
			}

			for _, code := range t.Components {
				componentID, err := lookup(tx, components, &models.Component{}, code)
				if err != nil {
					return fmt.Errorf("tenant %s: %w", t.Code, err)
				}
				activation := models.TenantComponent{
					JoinEntity:    models.JoinEntity{AuditFields: audit(now)},
					TenantID:      tenant.ID,
					ComponentID:   componentID,
					IsActive:      true,
					ActivatedDate: now,
				}
				created, err := firstOrCreate(tx, &activation, "tenant_id = ? AND component_id = ?", tenant.ID, componentID)
				if err != nil {
					return fmt.Errorf("tenant %s activation: %w", t.Code, err)
				}
				if created {
					summary.Activations++
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"environments":  summary.Environments,
		"teams":         summary.Teams,
		"aws_accounts":  summary.AwsAccounts,
		"products":      summary.Products,
		"components":    summary.Components,
		"deployments":   summary.Deployments,
		"tenants":       summary.Tenants,
		"subscriptions": summary.Subscriptions,
		"activations":   summary.Activations,
	}).Info("Seed catalog applied")

	return summary, nil
}

// lookup resolves a code from rows created in this run, falling back to the database
func lookup(tx *gorm.DB, known map[string]uint, model models.Entity, code string) (uint, error) {
	if id, ok := known[code]; ok {
		return id, nil
	}
	res := tx.Where("code = ?", code).Limit(1).Find(model)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, fmt.Errorf("unknown reference %q", code)
	}
	known[code] = model.GetID()
	return model.GetID(), nil
}
