package order

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Pricing is the money breakdown computed at checkout.
//
//	TotalPrice = ItemsPrice - CouponDiscount + TaxPrice + ShippingPrice
type Pricing struct {
	ItemsPrice     decimal.Decimal
	CouponDiscount decimal.Decimal
	TaxPrice       decimal.Decimal
	ShippingPrice  decimal.Decimal
	TotalPrice     decimal.Decimal
}

func (p Pricing) Validate() error {
	var problems []error
	for name, amount := range map[string]decimal.Decimal{
		"itemsPrice":     p.ItemsPrice,
		"couponDiscount": p.CouponDiscount,
		"taxPrice":       p.TaxPrice,
		"shippingPrice":  p.ShippingPrice,
		"totalPrice":     p.TotalPrice,
	} {
		if amount.IsNegative() {
			problems = append(problems, errs.NewValueIsOutOfRangeError(name, amount.String(), 0, "unbounded"))
		}
	}
	if p.CouponDiscount.GreaterThan(p.ItemsPrice) {
		problems = append(problems, errs.NewValueIsOutOfRangeError("couponDiscount", p.CouponDiscount.String(), 0, p.ItemsPrice.String()))
	}

	want := p.ItemsPrice.Sub(p.CouponDiscount).Add(p.TaxPrice).Add(p.ShippingPrice)
	if !want.Equal(p.TotalPrice) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("totalPrice",
			fmt.Errorf("expected %s, got %s", want.StringFixed(2), p.TotalPrice.StringFixed(2))))
	}
	return errors.Join(problems...)
}
