package models

import "time"

// DeploymentStatusNotDeployed is the status of a fresh deployment record
const DeploymentStatusNotDeployed = "Not Deployed"

// ProductEnvironment records a product deployed into an environment
type ProductEnvironment struct {
	JoinEntity
	ProductID     uint       `json:"productId" gorm:"not null;uniqueIndex:idx_product_environment" validate:"required"`
	EnvironmentID uint       `json:"environmentId" gorm:"not null;uniqueIndex:idx_product_environment;index" validate:"required"`
	AwsAccountID  *uint      `json:"awsAccountId" gorm:"index"`
	DeploymentURL string     `json:"deploymentUrl" gorm:"size:255" validate:"max=255"`
	Status        string     `json:"status" gorm:"size:50;not null" validate:"required,max=50"`
	DeployedOn    *time.Time `json:"deployedOn"`

	// Relationships
	Product     *Product     `json:"-" gorm:"foreignKey:ProductID"`
	Environment *Environment `json:"-" gorm:"foreignKey:EnvironmentID"`
	AwsAccount  *AwsAccount  `json:"-" gorm:"foreignKey:AwsAccountID"`
}

// TableName returns the table name for ProductEnvironment
func (ProductEnvironment) TableName() string {
	return "product_environments"
}
