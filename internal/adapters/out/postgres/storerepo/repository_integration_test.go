package storerepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/storerepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// StoreRepositoryIntegrationTestSuite verifies store and policy persistence
// against a real PostgreSQL instance.
type StoreRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *storerepo.GormStoreRepository
}

func (suite *StoreRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&storerepo.StoreDTO{}))
}

func (suite *StoreRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE stores").Error)
	suite.repository = storerepo.NewGormStoreRepository(suite.db)
}

func (suite *StoreRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StoreRepositoryIntegrationTestSuite) TestAdd_Get_FlatFeePolicy() {
	ctx := context.Background()
	testStore := suite.createStore(suite.flatFeePolicy())

	suite.Require().NoError(suite.repository.Add(ctx, testStore))

	restored, err := suite.repository.GetStore(ctx, testStore.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(testStore.ID()))
	suite.True(restored.IsOwnedBy(testStore.OwnerID()))
	suite.Equal("Luigi's", restored.Name())

	policy := restored.Policy()
	suite.True(policy.IsFlatFee())
	flat, ok := policy.FlatFee()
	suite.True(ok)
	suite.Equal("3.50", flat.String())
	suite.Equal("10.00", policy.MinimumOrder().String())
	freeOver, ok := policy.FreeOver()
	suite.True(ok)
	suite.Equal("40.00", freeOver.String())
	suite.True(policy.Accepts(kernel.FulfillmentTypePickup))
	suite.True(policy.Accepts(kernel.FulfillmentTypeDelivery))
}

func (suite *StoreRepositoryIntegrationTestSuite) TestAdd_Get_DistanceFeePolicy() {
	ctx := context.Background()
	testStore := suite.createStore(suite.distanceFeePolicy())

	suite.Require().NoError(suite.repository.Add(ctx, testStore))

	restored, err := suite.repository.GetStore(ctx, testStore.ID())
	suite.Require().NoError(err)

	policy := restored.Policy()
	suite.False(policy.IsFlatFee())
	suite.Equal("2.00", policy.BaseFee().String())
	suite.Equal("0.50", policy.PerKmFee().String())
	_, hasFreeOver := policy.FreeOver()
	suite.False(hasFreeOver)
	suite.False(policy.Accepts(kernel.FulfillmentTypePickup))
}

func (suite *StoreRepositoryIntegrationTestSuite) TestUpdate_ChangesPolicy() {
	ctx := context.Background()
	testStore := suite.createStore(suite.flatFeePolicy())
	suite.Require().NoError(suite.repository.Add(ctx, testStore))

	updated, err := store.RestoreStore(
		testStore.ID(), testStore.OwnerID(), "Luigi's Trattoria",
		testStore.Location(), suite.distanceFeePolicy())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, updated))

	restored, err := suite.repository.GetStore(ctx, testStore.ID())
	suite.Require().NoError(err)
	suite.Equal("Luigi's Trattoria", restored.Name())
}

func (suite *StoreRepositoryIntegrationTestSuite) TestGetStore_NonExistent_ReturnsNotFound() {
	_, err := suite.repository.GetStore(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StoreRepositoryIntegrationTestSuite) createStore(policy store.DeliveryPolicy) *store.Store {
	location, err := kernel.NewGeoPoint(52.52, 13.40)
	suite.Require().NoError(err)

	testStore, err := store.NewStore(kernel.NewUUID(), "Luigi's", location, policy)
	suite.Require().NoError(err)
	return testStore
}

func (suite *StoreRepositoryIntegrationTestSuite) flatFeePolicy() store.DeliveryPolicy {
	minOrder, err := kernel.MoneyFromString("10.00")
	suite.Require().NoError(err)
	flatFee, err := kernel.MoneyFromString("3.50")
	suite.Require().NoError(err)
	freeOver, err := kernel.MoneyFromString("40.00")
	suite.Require().NoError(err)

	policy, err := store.NewFlatFeePolicy(minOrder, flatFee, &freeOver,
		[]kernel.FulfillmentType{kernel.FulfillmentTypePickup, kernel.FulfillmentTypeDelivery})
	suite.Require().NoError(err)
	return policy
}

func (suite *StoreRepositoryIntegrationTestSuite) distanceFeePolicy() store.DeliveryPolicy {
	minOrder, err := kernel.MoneyFromString("15.00")
	suite.Require().NoError(err)
	baseFee, err := kernel.MoneyFromString("2.00")
	suite.Require().NoError(err)
	perKm, err := kernel.MoneyFromString("0.50")
	suite.Require().NoError(err)

	policy, err := store.NewDistanceFeePolicy(minOrder, baseFee, perKm, nil,
		[]kernel.FulfillmentType{kernel.FulfillmentTypeDelivery})
	suite.Require().NoError(err)
	return policy
}

func TestStoreRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StoreRepositoryIntegrationTestSuite))
}
