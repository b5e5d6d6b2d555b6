package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListCouponsQueryHandler struct {
	db *gorm.DB
}

func NewListCouponsQueryHandler(db *gorm.DB) ListCouponsQueryHandler {
	return ListCouponsQueryHandler{db: db}
}

func (h ListCouponsQueryHandler) Handle(ctx context.Context, query ListCouponsQuery) ([]CouponView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, code, discount_type, discount_amount, minimum_purchase,
			start_date, end_date, usage_limit, used_count, is_active
		FROM coupons
		WHERE deleted_at IS NULL AND (is_active OR NOT ?)
		ORDER BY created_at DESC, code`, query.ActiveOnly()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coupons := make([]CouponView, 0)
	for rows.Next() {
		var (
			v  CouponView
			id uuid.UUID
		)
		if err = rows.Scan(&id, &v.Code, &v.DiscountType, &v.DiscountAmount, &v.MinimumPurchase,
			&v.StartDate, &v.EndDate, &v.UsageLimit, &v.UsedCount, &v.IsActive); err != nil {
			return nil, err
		}
		if v.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		v.StartDate = v.StartDate.UTC()
		v.EndDate = v.EndDate.UTC()
		coupons = append(coupons, v)
	}
	return coupons, rows.Err()
}
