package queries

import (
	"context"

	"storefront/internal/core/domain/model/deliveryman"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListEligibleDeliveryMenQueryHandler returns eligible deliverymen lightest
// load first. Role, availability and capacity are filtered in SQL; area
// matching uses kernel.Area so it agrees with assignment.
type ListEligibleDeliveryMenQueryHandler struct {
	db *gorm.DB
}

func NewListEligibleDeliveryMenQueryHandler(db *gorm.DB) ListEligibleDeliveryMenQueryHandler {
	return ListEligibleDeliveryMenQueryHandler{db: db}
}

func (h ListEligibleDeliveryMenQueryHandler) Handle(
	ctx context.Context,
	query ListEligibleDeliveryMenQuery,
) ([]EligibleDeliveryManView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT d.user_id, u.name, u.email, d.area, COUNT(o.order_id) AS load
		FROM delivery_men d
		JOIN users u ON u.id = d.user_id
		LEFT JOIN delivery_man_orders o ON o.delivery_man_id = d.user_id
		WHERE d.available AND u.role = ?
		GROUP BY d.user_id, u.name, u.email, d.area
		HAVING COUNT(o.order_id) < ?
		ORDER BY load, u.name, d.user_id`, user.DeliveryMan.String(), deliveryman.MaxAssignedOrders).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]EligibleDeliveryManView, 0)
	for rows.Next() {
		var (
			v  EligibleDeliveryManView
			id uuid.UUID
		)
		if err = rows.Scan(&id, &v.Name, &v.Email, &v.Area, &v.Load); err != nil {
			return nil, err
		}

		area, areaErr := kernel.NewArea(v.Area)
		if areaErr != nil || !area.Covers(query.Area()) {
			continue
		}
		if v.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, rows.Err()
}
