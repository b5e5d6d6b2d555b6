// Package couponrepo persists coupons with soft deletion. Redemption and
// expiry are single conditional statements so concurrent checkouts cannot
// push a coupon past its usage limit.
package couponrepo

import (
	"time"

	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// codeIndex is unique among coupons that are not deleted, so a deleted
// code can be issued again.
const codeIndex = "idx_coupons_code"

type CouponDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code            string          `gorm:"type:varchar(64);not null;uniqueIndex:idx_coupons_code,where:deleted_at IS NULL"`
	DiscountType    string          `gorm:"type:varchar(16);not null"`
	DiscountAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	MinimumPurchase decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	StartDate       time.Time       `gorm:"type:timestamptz;not null"`
	EndDate         time.Time       `gorm:"type:timestamptz;not null;index"`
	UsageLimit      *int
	UsedCount       int            `gorm:"not null;default:0"`
	IsActive        bool           `gorm:"not null;index"`
	CreatedAt       time.Time      `gorm:"type:timestamptz"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (CouponDTO) TableName() string {
	return "coupons"
}

func FromDomain(c *coupon.Coupon) CouponDTO {
	return CouponDTO{
		ID:              c.ID().Bytes(),
		Code:            c.Code(),
		DiscountType:    c.DiscountType().String(),
		DiscountAmount:  c.DiscountAmount(),
		MinimumPurchase: c.MinimumPurchase(),
		StartDate:       c.StartDate(),
		EndDate:         c.EndDate(),
		UsageLimit:      c.UsageLimit(),
		UsedCount:       c.UsedCount(),
		IsActive:        c.IsActive(),
	}
}

func ToDomain(dto CouponDTO) (*coupon.Coupon, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	discountType, err := coupon.ParseDiscountType(dto.DiscountType)
	if err != nil {
		return nil, err
	}

	return coupon.RestoreCoupon(id, coupon.Params{
		Code:            dto.Code,
		DiscountType:    discountType,
		DiscountAmount:  dto.DiscountAmount,
		MinimumPurchase: dto.MinimumPurchase,
		StartDate:       dto.StartDate.UTC(),
		EndDate:         dto.EndDate.UTC(),
		UsageLimit:      dto.UsageLimit,
		IsActive:        dto.IsActive,
	}, dto.UsedCount)
}
