package models

// AwsAccount describes the cloud account a product environment is deployed into
type AwsAccount struct {
	BaseEntity
	AccountID   string `json:"accountId" gorm:"size:20;not null" validate:"required,max=20"`
	VpcID       string `json:"vpcId" gorm:"size:50" validate:"max=50"`
	Region      string `json:"region" gorm:"size:50" validate:"max=50"`
	Description string `json:"description" gorm:"size:255" validate:"max=255"`

	// Relationships
	ProductEnvironments []ProductEnvironment `json:"-" gorm:"foreignKey:AwsAccountID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for AwsAccount
func (AwsAccount) TableName() string {
	return "aws_accounts"
}
