package repository

import (
	"context"

	"product-catalog-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// repositorySuite gives every test a fresh in-memory database
type repositorySuite struct {
	suite.Suite
	db        *gorm.DB
	ctx       context.Context
	factories *testutils.FactorySet
}

func (s *repositorySuite) SetupSuite() {
	s.factories = testutils.NewFactorySet()
	s.ctx = context.Background()
}

func (s *repositorySuite) SetupTest() {
	s.db = testutils.NewSQLiteDB(s.T())
}

func (s *repositorySuite) count(model interface{}) int64 {
	var n int64
	s.Require().NoError(s.db.Model(model).Count(&n).Error)
	return n
}
