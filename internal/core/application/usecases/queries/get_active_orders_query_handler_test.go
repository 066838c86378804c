package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandlerTestSuite verifies the store queue projection
// against a real PostgreSQL instance.
type GetActiveOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{}))

	suite.handler = queries.NewGetActiveOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyStore_ReturnsEmptySlice() {
	query, err := queries.NewGetActiveOrdersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_ExcludesClosedOrdersAndOtherStores() {
	ctx := context.Background()
	storeID := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	open := suite.seedOrder(storeID, ownerID, time.Now().UTC())

	rejected := suite.seedOrder(storeID, ownerID, time.Now().UTC().Add(time.Minute))
	owner, err := order.NewActor(ownerID, order.RoleStoreOwner)
	suite.Require().NoError(err)
	suite.Require().NoError(rejected.Reject(owner, "out of dough", time.Now().UTC()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, rejected))

	suite.seedOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())

	query, err := queries.NewGetActiveOrdersQuery(storeID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(open.ID()))
	suite.Equal(order.Placed, result[0].Status)
	suite.True(result[0].CustomerID.IsEqual(open.CustomerID()))
	suite.Equal("22.50", result[0].Total.String())
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_OrdersSortedByPlacementTime() {
	ctx := context.Background()
	storeID := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	base := time.Now().UTC()
	second := suite.seedOrder(storeID, ownerID, base.Add(time.Hour))
	first := suite.seedOrder(storeID, ownerID, base)

	query, err := queries.NewGetActiveOrdersQuery(storeID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(first.ID()))
	suite.True(result[1].ID.IsEqual(second.ID()))
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetActiveOrdersQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) seedOrder(
	storeID, ownerID kernel.UUID,
	placedAt time.Time,
) *order.Order {
	price, err := kernel.MoneyFromString("9.50")
	suite.Require().NoError(err)
	fee, err := kernel.MoneyFromString("3.50")
	suite.Require().NoError(err)

	line, err := order.NewLineItem(kernel.NewUUID(), "Margherita", price, 2, nil, nil, "")
	suite.Require().NoError(err)
	quote, err := delivery.NewQuote(4.2, 18, fee)
	suite.Require().NoError(err)
	address, err := kernel.NewGeoPoint(52.50, 13.45)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), storeID, ownerID,
		kernel.FulfillmentTypeDelivery, &address,
		[]order.LineItem{line}, quote, "", placedAt,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), testOrder))
	return testOrder
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}
