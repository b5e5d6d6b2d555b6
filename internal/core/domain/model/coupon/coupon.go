// Package coupon models discount codes and the rules that decide whether a
// code may be applied to a candidate order total.
//
// Validation never mutates a coupon. Redemption (usedCount + 1) happens only
// in the checkout transaction, as a conditional update in the repository.
package coupon

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCouponIsNotConstructed = errors.New("Coupon must be created via NewCoupon or RestoreCoupon")

	// ErrCouponNotFound covers unknown, inactive and out-of-window codes alike.
	ErrCouponNotFound        = errs.NewObjectNotFoundError("coupon", "active code")
	ErrUsageLimitReached     = errs.NewStateConflictError("coupon", "usage limit reached")
	ErrMinimumPurchaseNotMet = errs.NewValueIsInvalidErrorWithCause("total", errors.New("minimum purchase not met"))
	ErrCouponCodeTaken       = errs.NewStateConflictError("coupon", "code already exists")
)

var hundred = decimal.NewFromInt(100)

// Coupon is a discount code with a validity window and an optional usage cap.
type Coupon struct {
	id              kernel.UUID
	code            string
	discountType    DiscountType
	discountAmount  decimal.Decimal
	minimumPurchase decimal.Decimal
	startDate       time.Time
	endDate         time.Time
	usageLimit      *int
	usedCount       int
	isActive        bool
	guard           guard.ConstructorGuard
}

// Params holds the editable attributes of a coupon.
type Params struct {
	Code            string
	DiscountType    DiscountType
	DiscountAmount  decimal.Decimal
	MinimumPurchase decimal.Decimal
	StartDate       time.Time
	EndDate         time.Time
	UsageLimit      *int
	IsActive        bool
}

// NewCoupon creates a coupon with usedCount 0.
func NewCoupon(id kernel.UUID, p Params) (*Coupon, error) {
	c := &Coupon{guard: guard.NewConstructorGuard()}

	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	c.id = id

	if err := c.apply(p); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCoupon rehydrates a persisted coupon including its usage counter.
func RestoreCoupon(id kernel.UUID, p Params, usedCount int) (*Coupon, error) {
	if usedCount < 0 {
		return nil, errs.NewValueIsOutOfRangeError("usedCount", usedCount, 0, "unbounded")
	}

	c, err := NewCoupon(id, p)
	if err != nil {
		return nil, err
	}
	c.usedCount = usedCount
	return c, nil
}

func (c *Coupon) Validate() error {
	if c == nil {
		return ErrCouponIsNotConstructed
	}
	return c.guard.Validate(ErrCouponIsNotConstructed)
}

func (c *Coupon) ID() kernel.UUID                  { return c.id }
func (c *Coupon) Code() string                     { return c.code }
func (c *Coupon) DiscountType() DiscountType       { return c.discountType }
func (c *Coupon) DiscountAmount() decimal.Decimal  { return c.discountAmount }
func (c *Coupon) MinimumPurchase() decimal.Decimal { return c.minimumPurchase }
func (c *Coupon) StartDate() time.Time             { return c.startDate }
func (c *Coupon) EndDate() time.Time               { return c.endDate }
func (c *Coupon) UsedCount() int                   { return c.usedCount }
func (c *Coupon) IsActive() bool                   { return c.isActive }

func (c *Coupon) UsageLimit() *int {
	if c.usageLimit == nil {
		return nil
	}
	limit := *c.usageLimit
	return &limit
}

// Update replaces the editable attributes. A usage limit below the number of
// redemptions already made is rejected.
func (c *Coupon) Update(p Params) error {
	if p.UsageLimit != nil && *p.UsageLimit < c.usedCount {
		return errs.NewValueIsOutOfRangeError("usageLimit", *p.UsageLimit, c.usedCount, "unbounded")
	}
	return c.apply(p)
}

// Deactivate stops the coupon from being redeemed. Idempotent.
func (c *Coupon) Deactivate() {
	c.isActive = false
}

// IsExpired reports whether the validity window has closed at now.
func (c *Coupon) IsExpired(now time.Time) bool {
	return now.After(c.endDate)
}

// CheckApplicable decides whether the coupon may discount candidateTotal at now.
func (c *Coupon) CheckApplicable(candidateTotal decimal.Decimal, now time.Time) error {
	if !c.isActive || now.Before(c.startDate) || now.After(c.endDate) {
		return fmt.Errorf("%w: %s", ErrCouponNotFound, c.code)
	}
	if c.usageLimit != nil && c.usedCount >= *c.usageLimit {
		return fmt.Errorf("%w: %s", ErrUsageLimitReached, c.code)
	}
	if candidateTotal.LessThan(c.minimumPurchase) {
		return fmt.Errorf("%w: %s requires %s", ErrMinimumPurchaseNotMet, c.code, c.minimumPurchase.StringFixed(2))
	}
	return nil
}

// Discount computes the reduction for total, rounded to cents. Fixed
// discounts never exceed the total.
func (c *Coupon) Discount(total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}

	switch c.discountType {
	case Percentage:
		return total.Mul(c.discountAmount).Div(hundred).Round(2)
	case Fixed:
		return decimal.Min(c.discountAmount, total).Round(2)
	default:
		return decimal.Zero
	}
}

// NormalizeCode is the canonical stored form of a code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (c *Coupon) apply(p Params) error {
	code := NormalizeCode(p.Code)

	var problems []error
	if code == "" {
		problems = append(problems, errs.NewValueIsRequiredError("code"))
	}
	if err := p.DiscountType.Validate(); err != nil {
		problems = append(problems, err)
	}
	if !p.DiscountAmount.IsPositive() {
		problems = append(problems, errs.NewValueIsOutOfRangeError("discountAmount", p.DiscountAmount.String(), "0 (exclusive)", "unbounded"))
	} else if p.DiscountType == Percentage && p.DiscountAmount.GreaterThan(hundred) {
		problems = append(problems, errs.NewValueIsOutOfRangeError("discountAmount", p.DiscountAmount.String(), 0, 100))
	}
	if p.MinimumPurchase.IsNegative() {
		problems = append(problems, errs.NewValueIsOutOfRangeError("minimumPurchase", p.MinimumPurchase.String(), 0, "unbounded"))
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("startDate/endDate"))
	} else if !p.StartDate.Before(p.EndDate) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("endDate", errors.New("must be after startDate")))
	}
	if p.UsageLimit != nil && *p.UsageLimit < 1 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("usageLimit", *p.UsageLimit, 1, "unbounded"))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	c.code = code
	c.discountType = p.DiscountType
	c.discountAmount = p.DiscountAmount
	c.minimumPurchase = p.MinimumPurchase
	c.startDate = p.StartDate.UTC()
	c.endDate = p.EndDate.UTC()
	c.isActive = p.IsActive
	c.usageLimit = nil
	if p.UsageLimit != nil {
		limit := *p.UsageLimit
		c.usageLimit = &limit
	}
	return nil
}
