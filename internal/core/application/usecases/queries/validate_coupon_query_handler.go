package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ValidateCouponQueryHandler applies the same rules as checkout to a stored
// coupon: window, activity, usage limit and minimum purchase.
type ValidateCouponQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewValidateCouponQueryHandler(db *gorm.DB, now func() time.Time) ValidateCouponQueryHandler {
	if now == nil {
		now = time.Now
	}
	return ValidateCouponQueryHandler{db: db, now: now}
}

type couponRow struct {
	ID              uuid.UUID
	Code            string
	DiscountType    string
	DiscountAmount  decimal.Decimal
	MinimumPurchase decimal.Decimal
	StartDate       time.Time
	EndDate         time.Time
	UsageLimit      *int
	UsedCount       int
	IsActive        bool
}

func (h ValidateCouponQueryHandler) Handle(ctx context.Context, query ValidateCouponQuery) (CouponPreview, error) {
	if err := query.Validate(); err != nil {
		return CouponPreview{}, err
	}

	code := coupon.NormalizeCode(query.Code())
	var row couponRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, code, discount_type, discount_amount, minimum_purchase,
			start_date, end_date, usage_limit, used_count, is_active
		FROM coupons
		WHERE code = ? AND deleted_at IS NULL`, code).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CouponPreview{}, fmt.Errorf("%w: %s", coupon.ErrCouponNotFound, code)
		}
		return CouponPreview{}, err
	}

	c, err := row.toDomain()
	if err != nil {
		return CouponPreview{}, err
	}
	if err = c.CheckApplicable(query.Total(), h.now()); err != nil {
		return CouponPreview{}, err
	}

	discount := c.Discount(query.Total())
	return CouponPreview{
		Code:           c.Code(),
		DiscountType:   c.DiscountType().String(),
		DiscountAmount: c.DiscountAmount(),
		Discount:       discount,
		TotalAfter:     query.Total().Sub(discount),
	}, nil
}

func (r couponRow) toDomain() (*coupon.Coupon, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return nil, err
	}
	discountType, err := coupon.ParseDiscountType(r.DiscountType)
	if err != nil {
		return nil, err
	}
	return coupon.RestoreCoupon(id, coupon.Params{
		Code:            r.Code,
		DiscountType:    discountType,
		DiscountAmount:  r.DiscountAmount,
		MinimumPurchase: r.MinimumPurchase,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		UsageLimit:      r.UsageLimit,
		IsActive:        r.IsActive,
	}, r.UsedCount)
}
