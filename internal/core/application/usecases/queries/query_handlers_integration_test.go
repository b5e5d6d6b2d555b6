package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/couponrepo"
	"storefront/internal/adapters/out/postgres/deliverymanrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/deliveryman"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	pg          *pgtest.Database
	tracker     *pgtest.MockTracker
	orders      *orderrepo.GormOrderRepository
	deliveryMen *deliverymanrepo.GormDeliveryManRepository
	coupons     *couponrepo.GormCouponRepository
	now         time.Time
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	suite.tracker = new(pgtest.MockTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.orders = orderrepo.NewGormOrderRepository(pg.DB, suite.tracker)
	suite.deliveryMen = deliverymanrepo.NewGormDeliveryManRepository(pg.DB, suite.tracker)
	suite.coupons = couponrepo.NewGormCouponRepository(pg.DB, suite.tracker)
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Reset())
	suite.now = time.Now().UTC().Truncate(time.Microsecond)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Stop(context.Background()))
	}
}

func (suite *QueryHandlersTestSuite) TestListOrders_VisibilityByRole() {
	ctx := suite.T().Context()
	alice, bob := kernel.NewUUID(), kernel.NewUUID()
	older := suite.addOrder(alice, suite.now.Add(-time.Hour))
	newer := suite.addOrder(alice, suite.now)
	suite.addOrder(bob, suite.now)

	handler := queries.NewListOrdersQueryHandler(suite.pg.DB)

	own, err := handler.Handle(ctx, suite.listQuery(alice, user.Customer, nil))
	suite.Require().NoError(err)
	suite.Require().Len(own, 2)
	suite.Equal(newer.ID(), own[0].ID)
	suite.Equal(older.ID(), own[1].ID)
	suite.Require().Len(own[0].Items, 1)
	suite.Equal("Linen shirt", own[0].Items[0].Name)
	suite.Equal("Lahore", own[0].ShippingAddress.City)
	suite.Equal("unassigned", own[0].DeliveryStatus)
	suite.Equal("none", own[0].ReturnStatus)
	suite.True(own[0].TotalPrice.Equal(decimal.RequireFromString("56")))

	all, err := handler.Handle(ctx, suite.listQuery(kernel.NewUUID(), user.Admin, nil))
	suite.Require().NoError(err)
	suite.Len(all, 3)

	filtered, err := handler.Handle(ctx, suite.listQuery(kernel.NewUUID(), user.Admin, &bob))
	suite.Require().NoError(err)
	suite.Require().Len(filtered, 1)
	suite.Equal(bob, filtered[0].UserID)

	none, err := handler.Handle(ctx, suite.listQuery(kernel.NewUUID(), user.Customer, &alice))
	suite.Require().NoError(err)
	suite.NotNil(none)
	suite.Empty(none)
}

func (suite *QueryHandlersTestSuite) TestListOrders_NotConstructed() {
	result, err := queries.NewListOrdersQueryHandler(suite.pg.DB).Handle(suite.T().Context(), queries.ListOrdersQuery{})
	suite.ErrorIs(err, queries.ErrListOrdersQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *QueryHandlersTestSuite) TestListEligibleDeliveryMen_FiltersAndSortsByLoad() {
	ctx := suite.T().Context()
	busy := suite.addDeliveryMan("Asad", "asad@example.com", "Lahore Cantt", 2, true)
	idle := suite.addDeliveryMan("Bilal", "bilal@example.com", "lahore", 0, true)
	suite.addDeliveryMan("Danish", "danish@example.com", "Lahore", deliveryman.MaxAssignedOrders, true)
	suite.addDeliveryMan("Ehsan", "ehsan@example.com", "Lahore", 0, false)
	suite.addDeliveryMan("Faraz", "faraz@example.com", "Karachi", 0, true)
	demoted := suite.addDeliveryMan("Ghazi", "ghazi@example.com", "Lahore", 0, true)
	suite.Require().NoError(suite.pg.DB.Exec(
		"UPDATE users SET role = ? WHERE id = ?", user.Customer.String(), demoted.ID().Bytes(),
	).Error)

	q, err := queries.NewListEligibleDeliveryMenQuery(" LAHORE ")
	suite.Require().NoError(err)

	result, err := queries.NewListEligibleDeliveryMenQueryHandler(suite.pg.DB).Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(idle.ID(), result[0].ID)
	suite.Equal(0, result[0].Load)
	suite.Equal(busy.ID(), result[1].ID)
	suite.Equal(2, result[1].Load)
	suite.Equal("asad@example.com", result[1].Email)
}

func (suite *QueryHandlersTestSuite) TestDeliveryManOrdersAndProfile() {
	ctx := suite.T().Context()
	dm := suite.addDeliveryMan("Bilal", "bilal@example.com", "Lahore", 0, true)

	onRoad := suite.addOrder(kernel.NewUUID(), suite.now.Add(-2*time.Hour))
	done := suite.addOrder(kernel.NewUUID(), suite.now.Add(-time.Hour))
	suite.assign(onRoad, dm)
	suite.assign(done, dm)

	dm = suite.reloadDeliveryMan(dm.ID())
	done = suite.reloadOrder(done.ID())
	suite.Require().NoError(done.Advance(order.Processing, dm.ID(), suite.now))
	suite.Require().NoError(done.Advance(order.OutForDelivery, dm.ID(), suite.now))
	earned, err := done.Deliver(dm.ID(), suite.now, decimal.RequireFromString("0.10"))
	suite.Require().NoError(err)
	suite.Require().NoError(dm.CompleteDelivery(done.ID(), earned, suite.now))
	suite.Require().NoError(suite.orders.Update(ctx, done))
	suite.Require().NoError(suite.deliveryMen.Update(ctx, dm))

	ordersHandler := queries.NewDeliveryManOrdersQueryHandler(suite.pg.DB)

	q, err := queries.NewDeliveryManOrdersQuery(dm.ID(), false)
	suite.Require().NoError(err)
	current, err := ordersHandler.Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Require().Len(current, 1)
	suite.Equal(onRoad.ID(), current[0].ID)
	suite.Require().NotNil(current[0].DeliveryManID)
	suite.Equal(dm.ID(), *current[0].DeliveryManID)

	q, err = queries.NewDeliveryManOrdersQuery(dm.ID(), true)
	suite.Require().NoError(err)
	all, err := ordersHandler.Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Len(all, 2)

	pq, err := queries.NewDeliveryManProfileQuery(dm.ID())
	suite.Require().NoError(err)
	profile, err := queries.NewDeliveryManProfileQueryHandler(suite.pg.DB).Handle(ctx, pq)
	suite.Require().NoError(err)
	suite.Equal("Bilal", profile.Name)
	suite.Equal("lahore", profile.Area)
	suite.True(profile.Earnings.Equal(decimal.RequireFromString("5.60")))
	suite.Equal([]kernel.UUID{onRoad.ID()}, profile.AssignedOrders)
	suite.Require().Len(profile.History, 1)
	suite.Equal(done.ID(), profile.History[0].OrderID)
	suite.True(profile.History[0].DeliveryDate.Equal(suite.now))
}

func (suite *QueryHandlersTestSuite) TestDeliveryManProfile_Unknown() {
	q, err := queries.NewDeliveryManProfileQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewDeliveryManProfileQueryHandler(suite.pg.DB).Handle(suite.T().Context(), q)
	suite.ErrorIs(err, deliveryman.ErrDeliveryManNotFound)
}

func (suite *QueryHandlersTestSuite) TestListCoupons_HidesDeleted() {
	ctx := suite.T().Context()
	kept := suite.addCoupon("KEEP", true)
	inactive := suite.addCoupon("PAUSED", false)
	gone := suite.addCoupon("GONE", true)
	suite.Require().NoError(suite.coupons.Delete(ctx, gone.ID()))

	handler := queries.NewListCouponsQueryHandler(suite.pg.DB)

	all, err := handler.Handle(ctx, queries.NewListCouponsQuery(false))
	suite.Require().NoError(err)
	codes := make([]string, 0, len(all))
	for _, c := range all {
		codes = append(codes, c.Code)
	}
	suite.ElementsMatch([]string{kept.Code(), inactive.Code()}, codes)

	active, err := handler.Handle(ctx, queries.NewListCouponsQuery(true))
	suite.Require().NoError(err)
	suite.Require().Len(active, 1)
	suite.Equal("KEEP", active[0].Code)
}

func (suite *QueryHandlersTestSuite) TestValidateCoupon() {
	ctx := suite.T().Context()
	suite.addCoupon("SAVE10", true)
	suite.addCoupon("PAUSED", false)
	handler := queries.NewValidateCouponQueryHandler(suite.pg.DB, func() time.Time { return suite.now })

	q, err := queries.NewValidateCouponQuery("save10", decimal.RequireFromString("80"))
	suite.Require().NoError(err)
	preview, err := handler.Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Equal("SAVE10", preview.Code)
	suite.True(preview.Discount.Equal(decimal.RequireFromString("8")))
	suite.True(preview.TotalAfter.Equal(decimal.RequireFromString("72")))

	q, err = queries.NewValidateCouponQuery("SAVE10", decimal.RequireFromString("10"))
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, q)
	suite.ErrorIs(err, coupon.ErrMinimumPurchaseNotMet)
	suite.True(errs.IsValidation(err))

	q, err = queries.NewValidateCouponQuery("PAUSED", decimal.RequireFromString("80"))
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, q)
	suite.ErrorIs(err, coupon.ErrCouponNotFound)

	q, err = queries.NewValidateCouponQuery("NOPE", decimal.RequireFromString("80"))
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, q)
	suite.ErrorIs(err, coupon.ErrCouponNotFound)
}

func (suite *QueryHandlersTestSuite) TestSellerAnalytics_AggregatesOwnLines() {
	ctx := suite.T().Context()
	seller := kernel.NewUUID()
	shirt, socks := kernel.NewUUID(), kernel.NewUUID()

	suite.addOrderWith(seller, shirt, "Shirt", 2, "30")
	suite.addOrderWith(seller, shirt, "Shirt", 1, "30")
	suite.addOrderWith(seller, socks, "Socks", 4, "5")
	suite.addOrderWith(kernel.NewUUID(), kernel.NewUUID(), "Hat", 1, "99")

	q, err := queries.NewSellerAnalyticsQuery(seller)
	suite.Require().NoError(err)
	result, err := queries.NewSellerAnalyticsQueryHandler(suite.pg.DB).Handle(ctx, q)
	suite.Require().NoError(err)

	suite.Equal(3, result.TotalOrders)
	suite.Equal(0, result.DeliveredOrders)
	suite.Equal(7, result.UnitsSold)
	suite.True(result.Revenue.Equal(decimal.RequireFromString("110")))
	suite.Require().Len(result.Products, 2)
	suite.Equal(shirt, result.Products[0].ProductID)
	suite.Equal(2, result.Products[0].Orders)
	suite.Equal(3, result.Products[0].UnitsSold)
	suite.True(result.Products[0].Revenue.Equal(decimal.RequireFromString("90")))
	suite.Equal("Socks", result.Products[1].Name)
}

func (suite *QueryHandlersTestSuite) TestSellerAnalytics_NoSales() {
	q, err := queries.NewSellerAnalyticsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := queries.NewSellerAnalyticsQueryHandler(suite.pg.DB).Handle(suite.T().Context(), q)
	suite.Require().NoError(err)
	suite.Zero(result.TotalOrders)
	suite.True(result.Revenue.IsZero())
	suite.Empty(result.Products)
}

func (suite *QueryHandlersTestSuite) listQuery(id kernel.UUID, role user.Role, filter *kernel.UUID) queries.ListOrdersQuery {
	p, err := user.NewPrincipal(id, role)
	suite.Require().NoError(err)
	q, err := queries.NewListOrdersQuery(p, filter)
	suite.Require().NoError(err)
	return q
}

func (suite *QueryHandlersTestSuite) addOrder(owner kernel.UUID, createdAt time.Time) *order.Order {
	o, err := pgtest.NewOrder(owner, "Lahore", createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(suite.T().Context(), o))
	return o
}

func (suite *QueryHandlersTestSuite) addOrderWith(seller, productID kernel.UUID, name string, qty int, price string) {
	item, err := order.NewItem(order.ItemParams{
		ProductID: productID,
		Name:      name,
		Quantity:  qty,
		Price:     decimal.RequireFromString(price),
		SellerID:  seller,
	})
	suite.Require().NoError(err)
	addr, err := order.NewShippingAddress("Ayesha Khan", "12 Mall Road", "Lahore", "54000", "PK", "+92300000000")
	suite.Require().NoError(err)
	total := item.Subtotal()

	o, err := order.NewOrder(order.NewOrderParams{
		ID:              kernel.NewUUID(),
		UserID:          kernel.NewUUID(),
		Items:           []order.Item{item},
		ShippingAddress: addr,
		PaymentMethod:   order.Card,
		Pricing: order.Pricing{
			ItemsPrice:     total,
			CouponDiscount: decimal.Zero,
			TaxPrice:       decimal.Zero,
			ShippingPrice:  decimal.Zero,
			TotalPrice:     total,
		},
		CreatedAt: suite.now,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(suite.T().Context(), o))
}

func (suite *QueryHandlersTestSuite) addDeliveryMan(name, email, area string, load int, available bool) *deliveryman.DeliveryMan {
	ctx := suite.T().Context()
	u, err := suite.pg.SeedUser(ctx, name, email, user.DeliveryMan)
	suite.Require().NoError(err)
	a, err := kernel.NewArea(area)
	suite.Require().NoError(err)
	d, err := deliveryman.NewDeliveryMan(u.ID(), u.Name(), u.Email(), a)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.deliveryMen.Add(ctx, d))

	for range load {
		suite.Require().NoError(d.TakeOrder(kernel.NewUUID(), "Lahore", deliveryman.AdminPolicy()))
	}
	d.SetAvailability(available)
	suite.Require().NoError(suite.deliveryMen.Update(ctx, d))
	return suite.reloadDeliveryMan(d.ID())
}

func (suite *QueryHandlersTestSuite) assign(o *order.Order, d *deliveryman.DeliveryMan) {
	ctx := suite.T().Context()
	o = suite.reloadOrder(o.ID())
	d = suite.reloadDeliveryMan(d.ID())
	suite.Require().NoError(d.TakeOrder(o.ID(), o.ShippingAddress().City(), deliveryman.StandardPolicy()))
	suite.Require().NoError(o.Assign(d.ID(), d.ID(), suite.now))
	suite.Require().NoError(suite.orders.Update(ctx, o))
	suite.Require().NoError(suite.deliveryMen.Update(ctx, d))
}

func (suite *QueryHandlersTestSuite) addCoupon(code string, active bool) *coupon.Coupon {
	c, err := coupon.NewCoupon(kernel.NewUUID(), coupon.Params{
		Code:            code,
		DiscountType:    coupon.Percentage,
		DiscountAmount:  decimal.NewFromInt(10),
		MinimumPurchase: decimal.NewFromInt(50),
		StartDate:       suite.now.Add(-24 * time.Hour),
		EndDate:         suite.now.Add(24 * time.Hour),
		IsActive:        active,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.coupons.Add(suite.T().Context(), c))
	return c
}

func (suite *QueryHandlersTestSuite) reloadOrder(id kernel.UUID) *order.Order {
	o, err := suite.orders.Get(suite.T().Context(), id)
	suite.Require().NoError(err)
	return o
}

func (suite *QueryHandlersTestSuite) reloadDeliveryMan(id kernel.UUID) *deliveryman.DeliveryMan {
	d, err := suite.deliveryMen.Get(suite.T().Context(), id)
	suite.Require().NoError(err)
	return d
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
