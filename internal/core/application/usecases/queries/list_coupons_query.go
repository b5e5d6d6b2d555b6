package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListCouponsQueryIsNotConstructed = errors.New(
	"ListCouponsQuery must be created via NewListCouponsQuery constructor",
)

// ListCouponsQuery lists coupons that are not deleted, newest first.
type ListCouponsQuery struct {
	activeOnly bool
	guard      guard.ConstructorGuard
}

func NewListCouponsQuery(activeOnly bool) ListCouponsQuery {
	return ListCouponsQuery{activeOnly: activeOnly, guard: guard.NewConstructorGuard()}
}

func (q ListCouponsQuery) Validate() error {
	return q.guard.Validate(ErrListCouponsQueryIsNotConstructed)
}

func (q ListCouponsQuery) ActiveOnly() bool { return q.activeOnly }

type CouponView struct {
	ID              kernel.UUID     `json:"id"`
	Code            string          `json:"code"`
	DiscountType    string          `json:"discountType"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	MinimumPurchase decimal.Decimal `json:"minimumPurchase"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	UsageLimit      *int            `json:"usageLimit"`
	UsedCount       int             `json:"usedCount"`
	IsActive        bool            `json:"isActive"`
}
