package addressrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/addressrepo"
	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type AddressRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *addressrepo.GormAddressRepository
}

func (suite *AddressRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *AddressRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = addressrepo.NewGormAddressRepository(suite.database.DB)
}

func (suite *AddressRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *AddressRepositoryIntegrationTestSuite) TestAdd_ThenGet() {
	ctx := context.Background()
	a := suite.newAddress(kernel.NewUUID(), "Home", false, time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, a))

	loaded, err := suite.repository.Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal("Home", loaded.Label())
	suite.Equal("Bengaluru", loaded.City())
	suite.False(loaded.IsDefault())
}

func (suite *AddressRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AddressRepositoryIntegrationTestSuite) TestSecondDefault_RejectedByIndex() {
	ctx := context.Background()
	user := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newAddress(user, "Home", true, time.Now())))

	err := suite.repository.Add(ctx, suite.newAddress(user, "Work", true, time.Now()))
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrPersistenceFailure)
}

func (suite *AddressRepositoryIntegrationTestSuite) TestClearDefaults_ThenSetDefault() {
	ctx := context.Background()
	user := kernel.NewUUID()
	now := time.Now()
	home := suite.newAddress(user, "Home", true, now.Add(-time.Hour))
	work := suite.newAddress(user, "Work", false, now)
	suite.Require().NoError(suite.repository.Add(ctx, home))
	suite.Require().NoError(suite.repository.Add(ctx, work))

	suite.Require().NoError(suite.repository.ClearDefaults(ctx, user))
	suite.Require().NoError(suite.repository.SetDefault(ctx, work.ID()))

	list, err := suite.repository.ListByUser(ctx, user)
	suite.Require().NoError(err)
	suite.Require().Len(list, 2)
	suite.Equal(work.ID(), list[0].ID())
	suite.True(list[0].IsDefault())
	suite.False(list[1].IsDefault())
}

func (suite *AddressRepositoryIntegrationTestSuite) TestSetDefault_Missing_NotFound() {
	err := suite.repository.SetDefault(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AddressRepositoryIntegrationTestSuite) newAddress(
	userID kernel.UUID, label string, isDefault bool, at time.Time,
) *address.Address {
	a, err := address.NewAddress(kernel.NewUUID(), userID, label, "12 MG Road", "Bengaluru", "560001", isDefault, at)
	suite.Require().NoError(err)
	return a
}

func TestAddressRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(AddressRepositoryIntegrationTestSuite))
}
