package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/deliveryman"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByIdempotencyKey(ctx context.Context, userID kernel.UUID, key string) (*order.Order, error) {
	args := m.Called(ctx, userID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOldestUnassigned(ctx context.Context, exclude []kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, exclude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDeliveryManRepository struct{ mock.Mock }

func (m *MockDeliveryManRepository) Add(ctx context.Context, d *deliveryman.DeliveryMan) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryManRepository) Update(ctx context.Context, d *deliveryman.DeliveryMan) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryManRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryman.DeliveryMan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliveryman.DeliveryMan), args.Error(1)
}

func (m *MockDeliveryManRepository) GetByEmail(ctx context.Context, email string) (*deliveryman.DeliveryMan, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliveryman.DeliveryMan), args.Error(1)
}

func (m *MockDeliveryManRepository) ListAvailable(ctx context.Context) ([]*deliveryman.DeliveryMan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*deliveryman.DeliveryMan), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *MockProductRepository) IncrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

type MockCouponRepository struct{ mock.Mock }

func (m *MockCouponRepository) Add(ctx context.Context, c *coupon.Coupon) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCouponRepository) Update(ctx context.Context, c *coupon.Coupon) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCouponRepository) Get(ctx context.Context, id kernel.UUID) (*coupon.Coupon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coupon.Coupon), args.Error(1)
}

func (m *MockCouponRepository) GetByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coupon.Coupon), args.Error(1)
}

func (m *MockCouponRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCouponRepository) Redeem(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCouponRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Clear(ctx context.Context, userID kernel.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

type MockSellerOrderRepository struct{ mock.Mock }

func (m *MockSellerOrderRepository) Append(ctx context.Context, sellerID, orderID kernel.UUID) error {
	return m.Called(ctx, sellerID, orderID).Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, event ports.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DeliveryManRepository() ports.DeliveryManRepository {
	return m.Called().Get(0).(ports.DeliveryManRepository)
}

func (m *MockUoW) CouponRepository() ports.CouponRepository {
	return m.Called().Get(0).(ports.CouponRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockUoW) CartRepository() ports.CartRepository {
	return m.Called().Get(0).(ports.CartRepository)
}

func (m *MockUoW) SellerOrderRepository() ports.SellerOrderRepository {
	return m.Called().Get(0).(ports.SellerOrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockCouponUoWFactory struct{ mock.Mock }

func (m *MockCouponUoWFactory) Create() commands.CouponUoW {
	return m.Called().Get(0).(commands.CouponUoW)
}

type MockDeliveryManUoWFactory struct{ mock.Mock }

func (m *MockDeliveryManUoWFactory) Create() commands.DeliveryManUoW {
	return m.Called().Get(0).(commands.DeliveryManUoW)
}

// env wires one MockUoW to a full set of repository mocks. Repository
// accessors may be called any number of times; transaction calls and
// repository methods are asserted by each test.
type env struct {
	uow          *MockUoW
	factory      *MockUoWFactory
	orders       *MockOrderRepository
	deliveryMen  *MockDeliveryManRepository
	products     *MockProductRepository
	coupons      *MockCouponRepository
	users        *MockUserRepository
	carts        *MockCartRepository
	sellerOrders *MockSellerOrderRepository
	notifier     *MockNotifier
}

func newEnv() *env {
	e := &env{
		uow:          new(MockUoW),
		factory:      new(MockUoWFactory),
		orders:       new(MockOrderRepository),
		deliveryMen:  new(MockDeliveryManRepository),
		products:     new(MockProductRepository),
		coupons:      new(MockCouponRepository),
		users:        new(MockUserRepository),
		carts:        new(MockCartRepository),
		sellerOrders: new(MockSellerOrderRepository),
		notifier:     new(MockNotifier),
	}

	e.factory.On("Create").Return(e.uow)
	e.uow.On("OrderRepository").Return(e.orders).Maybe()
	e.uow.On("DeliveryManRepository").Return(e.deliveryMen).Maybe()
	e.uow.On("ProductRepository").Return(e.products).Maybe()
	e.uow.On("CouponRepository").Return(e.coupons).Maybe()
	e.uow.On("UserRepository").Return(e.users).Maybe()
	e.uow.On("CartRepository").Return(e.carts).Maybe()
	e.uow.On("SellerOrderRepository").Return(e.sellerOrders).Maybe()
	return e
}

// expectTx registers Begin and the deferred Rollback; commit controls
// whether a Commit is expected too.
func (e *env) expectTx(ctx context.Context, commit bool) {
	e.uow.On("Begin", ctx).Return(nil).Once()
	if commit {
		e.uow.On("Commit", ctx).Return(nil).Once()
	}
	e.uow.On("Rollback", ctx).Return(nil)
}

func (e *env) assertAll(t *testing.T) {
	t.Helper()
	mock.AssertExpectationsForObjects(t,
		e.uow, e.orders, e.deliveryMen, e.products, e.coupons,
		e.users, e.carts, e.sellerOrders, e.notifier,
	)
}

func (e *env) couponFactory() *MockCouponUoWFactory {
	f := new(MockCouponUoWFactory)
	f.On("Create").Return(e.uow)
	return f
}

func (e *env) deliveryManFactory() *MockDeliveryManUoWFactory {
	f := new(MockDeliveryManUoWFactory)
	f.On("Create").Return(e.uow)
	return f
}
