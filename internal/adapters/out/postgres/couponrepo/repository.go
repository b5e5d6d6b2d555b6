package couponrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/adapters/out/postgres/pgerr"
	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCouponRepository implements ports.CouponRepository using GORM.
type GormCouponRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCouponRepository(db *gorm.DB, tracker aggregateTracker) *GormCouponRepository {
	return &GormCouponRepository{db: db, tracker: tracker}
}

func (r *GormCouponRepository) Add(ctx context.Context, aggregate *coupon.Coupon) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, codeIndex) {
			return fmt.Errorf("%w: %s", coupon.ErrCouponCodeTaken, aggregate.Code())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the editable attributes. used_count is owned by Redeem and
// is never overwritten here.
func (r *GormCouponRepository) Update(ctx context.Context, aggregate *coupon.Coupon) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CouponDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"code":             dto.Code,
		"discount_type":    dto.DiscountType,
		"discount_amount":  dto.DiscountAmount,
		"minimum_purchase": dto.MinimumPurchase,
		"start_date":       dto.StartDate,
		"end_date":         dto.EndDate,
		"usage_limit":      dto.UsageLimit,
		"is_active":        dto.IsActive,
	})
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error, codeIndex) {
			return fmt.Errorf("%w: %s", coupon.ErrCouponCodeTaken, aggregate.Code())
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("coupon", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCouponRepository) Get(ctx context.Context, id kernel.UUID) (*coupon.Coupon, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CouponDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("coupon", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

func (r *GormCouponRepository) GetByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	normalized := coupon.NormalizeCode(code)

	var dto CouponDTO
	if err := r.db.WithContext(ctx).Where("code = ?", normalized).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", coupon.ErrCouponNotFound, normalized)
		}
		return nil, err
	}

	return ToDomain(dto)
}

// Delete soft deletes the coupon.
func (r *GormCouponRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&CouponDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("coupon", id.String())
	}
	return nil
}

func (r *GormCouponRepository) Redeem(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Model(&CouponDTO{}).
		Where("id = ? AND is_active AND (usage_limit IS NULL OR used_count < usage_limit)", id.Bytes()).
		Update("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", coupon.ErrUsageLimitReached, id)
	}
	return nil
}

func (r *GormCouponRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&CouponDTO{}).
		Where("is_active AND end_date < ?", now).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
