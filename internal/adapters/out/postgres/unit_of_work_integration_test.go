package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/core/domain/model/deliveryman"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work against a real
// PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(pg.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Reset())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Stop(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactoryCreatesIndependentUnits() {
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.NotSame(first, second)
	suite.Require().NoError(first.Begin(suite.T().Context()))
	suite.ErrorIs(second.Commit(suite.T().Context()), gorm.ErrInvalidTransaction)
	suite.Require().NoError(first.Rollback(suite.T().Context()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitAndRollbackWithoutTransaction() {
	uow := suite.factory.Create()

	suite.ErrorIs(uow.Commit(suite.T().Context()), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.Rollback(suite.T().Context()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBeginTwiceKeepsTransaction() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitPersistsAcrossRepositories() {
	ctx := suite.T().Context()
	customer, dm := suite.seedDeliveryMan(ctx)
	o := suite.newOrder(customer.ID())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	suite.Require().NoError(dm.TakeOrder(o.ID(), "Lahore", deliveryman.StandardPolicy()))
	suite.Require().NoError(o.Assign(dm.ID(), dm.ID(), time.Now()))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.DeliveryManRepository().Update(ctx, dm))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(3, uow.(*postgres_adapter.GormUnitOfWork).TrackedCount())

	reader := suite.factory.Create()
	stored, err := reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, stored.DeliveryStatus())
	suite.Require().NotNil(stored.DeliveryManID())
	suite.True(stored.DeliveryManID().IsEqual(dm.ID()))
	suite.Equal(1, stored.Version())

	storedDM, err := reader.DeliveryManRepository().Get(ctx, dm.ID())
	suite.Require().NoError(err)
	suite.True(storedDM.Holds(o.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsWrites() {
	ctx := suite.T().Context()
	customer, err := suite.pg.SeedUser(ctx, "Ayesha", "ayesha@example.com", user.Customer)
	suite.Require().NoError(err)
	o := suite.newOrder(customer.ID())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Zero(uow.(*postgres_adapter.GormUnitOfWork).TrackedCount())

	_, err = suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesWorkWithoutTransaction() {
	ctx := suite.T().Context()
	customer, err := suite.pg.SeedUser(ctx, "Ayesha", "ayesha@example.com", user.Customer)
	suite.Require().NoError(err)
	o := suite.newOrder(customer.ID())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsEqual(o))
}

func (suite *UnitOfWorkIntegrationTestSuite) seedDeliveryMan(ctx context.Context) (*user.User, *deliveryman.DeliveryMan) {
	customer, err := suite.pg.SeedUser(ctx, "Ayesha", "ayesha@example.com", user.Customer)
	suite.Require().NoError(err)
	rider, err := suite.pg.SeedUser(ctx, "Bilal", "bilal@example.com", user.DeliveryMan)
	suite.Require().NoError(err)

	area, err := kernel.NewArea("Lahore")
	suite.Require().NoError(err)
	dm, err := deliveryman.NewDeliveryMan(rider.ID(), rider.Name(), rider.Email(), area)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().DeliveryManRepository().Add(ctx, dm))
	return customer, dm
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(owner kernel.UUID) *order.Order {
	o, err := pgtest.NewOrder(owner, "Lahore", time.Now())
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
