package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSellerAnalyticsQueryIsNotConstructed = errors.New(
	"SellerAnalyticsQuery must be created via NewSellerAnalyticsQuery constructor",
)

// SellerAnalyticsQuery aggregates the order lines sold by one seller.
// Lines of orders whose return was completed are excluded.
type SellerAnalyticsQuery struct {
	sellerID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewSellerAnalyticsQuery(sellerID kernel.UUID) (SellerAnalyticsQuery, error) {
	if err := sellerID.Validate(); err != nil {
		return SellerAnalyticsQuery{}, err
	}
	return SellerAnalyticsQuery{sellerID: sellerID, guard: guard.NewConstructorGuard()}, nil
}

func (q SellerAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrSellerAnalyticsQueryIsNotConstructed)
}

func (q SellerAnalyticsQuery) SellerID() kernel.UUID { return q.sellerID }

type SellerAnalytics struct {
	TotalOrders     int                    `json:"totalOrders"`
	DeliveredOrders int                    `json:"deliveredOrders"`
	UnitsSold       int                    `json:"unitsSold"`
	Revenue         decimal.Decimal        `json:"revenue"`
	Products        []ProductSalesAnalytic `json:"products"`
}

type ProductSalesAnalytic struct {
	ProductID kernel.UUID     `json:"productId"`
	Name      string          `json:"name"`
	Orders    int             `json:"orders"`
	UnitsSold int             `json:"unitsSold"`
	Revenue   decimal.Decimal `json:"revenue"`
}
