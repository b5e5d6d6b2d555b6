package services

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PricingCalculator computes the order money breakdown:
//
//	itemsPrice = Σ price × quantity
//	discount   = coupon discount on itemsPrice
//	tax        = (itemsPrice - discount) × TaxRate
//	shipping   = 0 when itemsPrice >= FreeShippingThreshold, ShippingFee otherwise
//	total      = itemsPrice - discount + tax + shipping
//
// All amounts are rounded to cents.
type PricingCalculator struct {
	TaxRate               decimal.Decimal
	ShippingFee           decimal.Decimal
	FreeShippingThreshold decimal.Decimal
}

func NewPricingCalculator(taxRate, shippingFee, freeShippingThreshold decimal.Decimal) (PricingCalculator, error) {
	if taxRate.IsNegative() || shippingFee.IsNegative() || freeShippingThreshold.IsNegative() {
		return PricingCalculator{}, errs.NewValueIsInvalidErrorWithCause("pricing",
			errors.New("tax rate, shipping fee and free shipping threshold must not be negative"))
	}
	return PricingCalculator{
		TaxRate:               taxRate,
		ShippingFee:           shippingFee,
		FreeShippingThreshold: freeShippingThreshold,
	}, nil
}

// Calculate prices items. When c is non-nil it must be applicable to the
// items total at now, otherwise its error is returned unchanged.
func (p PricingCalculator) Calculate(items []order.Item, c *coupon.Coupon, now time.Time) (order.Pricing, error) {
	if len(items) == 0 {
		return order.Pricing{}, errs.NewValueIsRequiredError("items")
	}

	itemsPrice := decimal.Zero
	for _, item := range items {
		itemsPrice = itemsPrice.Add(item.Subtotal())
	}
	itemsPrice = itemsPrice.Round(2)

	discount := decimal.Zero
	if c != nil {
		if err := c.CheckApplicable(itemsPrice, now); err != nil {
			return order.Pricing{}, err
		}
		discount = c.Discount(itemsPrice)
	}

	tax := itemsPrice.Sub(discount).Mul(p.TaxRate).Round(2)

	shipping := p.ShippingFee.Round(2)
	if p.FreeShippingThreshold.IsPositive() && itemsPrice.GreaterThanOrEqual(p.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	return order.Pricing{
		ItemsPrice:     itemsPrice,
		CouponDiscount: discount,
		TaxPrice:       tax,
		ShippingPrice:  shipping,
		TotalPrice:     itemsPrice.Sub(discount).Add(tax).Add(shipping),
	}, nil
}
