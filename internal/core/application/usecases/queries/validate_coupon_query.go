package queries

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrValidateCouponQueryIsNotConstructed = errors.New(
	"ValidateCouponQuery must be created via NewValidateCouponQuery constructor",
)

// ValidateCouponQuery previews the discount a code would give on total.
// It never redeems the coupon.
type ValidateCouponQuery struct {
	code  string
	total decimal.Decimal
	guard guard.ConstructorGuard
}

func NewValidateCouponQuery(code string, total decimal.Decimal) (ValidateCouponQuery, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return ValidateCouponQuery{}, errs.NewValueIsRequiredError("code")
	}
	if total.IsNegative() {
		return ValidateCouponQuery{}, errs.NewValueIsOutOfRangeError("total", total.String(), 0, "unbounded")
	}
	return ValidateCouponQuery{code: code, total: total, guard: guard.NewConstructorGuard()}, nil
}

func (q ValidateCouponQuery) Validate() error {
	return q.guard.Validate(ErrValidateCouponQueryIsNotConstructed)
}

func (q ValidateCouponQuery) Code() string           { return q.code }
func (q ValidateCouponQuery) Total() decimal.Decimal { return q.total }

type CouponPreview struct {
	Code           string          `json:"code"`
	DiscountType   string          `json:"discountType"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Discount       decimal.Decimal `json:"discount"`
	TotalAfter     decimal.Decimal `json:"totalAfterDiscount"`
}
