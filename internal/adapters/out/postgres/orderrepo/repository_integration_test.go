package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bitebox/internal/adapters/out/postgres/orderrepo"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/order"
	"bitebox/internal/core/ports"
	"bitebox/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(original.ID()))
	suite.True(retrieved.CustomerID().IsEqual(original.CustomerID()))
	suite.Nil(retrieved.Courier())
	suite.Equal(original.RestaurantName(), retrieved.RestaurantName())
	suite.Equal(order.Created, retrieved.Status())
	suite.Equal(original.Total(), retrieved.Total())
	suite.Require().Len(retrieved.LineItems(), 2)
	suite.Equal("Margherita", retrieved.LineItems()[0].ProductName())
	suite.Equal(2, retrieved.LineItems()[0].Quantity())
	suite.WithinDuration(original.CreatedAt(), retrieved.CreatedAt(), time.Millisecond)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_DeletedOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.MarkDeleted())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	_, err := suite.repository.Get(ctx, testOrder.ID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateWithStatus_MatchingStatus_Persists() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Send())

	err := suite.repository.UpdateWithStatus(ctx, testOrder, order.Created)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Sent, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateWithStatus_StaleStatus_ReturnsConflict() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Send())
	suite.Require().NoError(suite.repository.UpdateWithStatus(ctx, testOrder, order.Created))

	// A second writer that still believes the order is Created loses the race.
	courierID := kernel.NewUUID()
	stale, err := order.RestoreOrder(
		testOrder.ID(),
		testOrder.CustomerID(),
		&courierID,
		testOrder.RestaurantName(),
		order.Accepted,
		testOrder.LineItems(),
		testOrder.CreatedAt(),
		false,
	)
	suite.Require().NoError(err)

	err = suite.repository.UpdateWithStatus(ctx, stale, order.Created)
	suite.Require().ErrorIs(err, ports.ErrOrderStateConflict)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Sent, retrieved.Status())
	suite.Nil(retrieved.Courier())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateWithStatus_PersistsCourier() {
	ctx := context.Background()

	courierID := kernel.NewUUID()
	testOrder := suite.createTestOrderWithStatus(order.Sent, nil)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Accept(courierID))
	suite.Require().NoError(suite.repository.UpdateWithStatus(ctx, testOrder, order.Sent))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, retrieved.Status())
	suite.Require().NotNil(retrieved.Courier())
	suite.True(retrieved.Courier().IsEqual(courierID))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createTestOrder())
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a basic two-line order in Created status.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	margherita, err := order.NewLineItem("Margherita", 2, 18)
	suite.Require().NoError(err)
	cola, err := order.NewLineItem("Cola", 1, 3)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Pasta Place",
		[]order.LineItem{margherita, cola},
	)
	suite.Require().NoError(err)
	return testOrder
}

// createTestOrderWithStatus creates a test order with specified status and optional courier.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithStatus(
	status order.Status, courierID *kernel.UUID,
) *order.Order {
	margherita, err := order.NewLineItem("Margherita", 2, 18)
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		courierID,
		"Pasta Place",
		status,
		[]order.LineItem{margherita},
		time.Now().UTC().Truncate(time.Microsecond),
		false,
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
