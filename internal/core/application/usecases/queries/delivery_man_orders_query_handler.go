package queries

import (
	"context"

	"gorm.io/gorm"
)

type DeliveryManOrdersQueryHandler struct {
	db *gorm.DB
}

func NewDeliveryManOrdersQueryHandler(db *gorm.DB) DeliveryManOrdersQueryHandler {
	return DeliveryManOrdersQueryHandler{db: db}
}

func (h DeliveryManOrdersQueryHandler) Handle(ctx context.Context, query DeliveryManOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.IncludeDelivered() {
		return loadOrders(ctx, h.db, "WHERE delivery_man_id = ?", query.DeliveryManID().Bytes())
	}
	return loadOrders(ctx, h.db, "WHERE delivery_man_id = ? AND delivery_status <> ?",
		query.DeliveryManID().Bytes(), deliveredStatus)
}
