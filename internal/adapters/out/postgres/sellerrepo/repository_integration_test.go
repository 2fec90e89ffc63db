package sellerrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/adapters/out/postgres/sellerrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/seller"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type AvailabilityRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *sellerrepo.GormAvailabilityRepository
}

func (suite *AvailabilityRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *AvailabilityRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = sellerrepo.NewGormAvailabilityRepository(suite.database.DB)
}

func (suite *AvailabilityRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *AvailabilityRepositoryIntegrationTestSuite) TestGet_Unknown_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AvailabilityRepositoryIntegrationTestSuite) TestSave_Upserts() {
	ctx := context.Background()
	id := kernel.NewUUID()
	now := time.Now()

	online := seller.Offline(id).Connected("conn-1", now)
	suite.Require().NoError(suite.repository.Save(ctx, online))

	loaded, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.True(loaded.IsOnline())
	suite.Equal(seller.DashboardOnline, loaded.DashboardStatus())
	suite.Require().NotNil(loaded.ConnectionID())
	suite.Equal("conn-1", *loaded.ConnectionID())

	offline := loaded.Disconnected(now.Add(time.Minute))
	suite.Require().NoError(suite.repository.Save(ctx, offline))

	loaded, err = suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.False(loaded.IsOnline())
	suite.Nil(loaded.ConnectionID())

	var count int64
	suite.Require().NoError(suite.database.DB.Model(&sellerrepo.AvailabilityDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *AvailabilityRepositoryIntegrationTestSuite) TestListOnline() {
	ctx := context.Background()
	now := time.Now()
	onlineID := kernel.NewUUID()
	offlineID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Save(ctx, seller.Offline(onlineID).Connected("c", now)))
	suite.Require().NoError(suite.repository.Save(ctx, seller.Offline(offlineID).Connected("c", now).Disconnected(now)))

	online, err := suite.repository.ListOnline(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(online, 1)
	suite.Equal(onlineID, online[0].SellerID())
}

func TestAvailabilityRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(AvailabilityRepositoryIntegrationTestSuite))
}
