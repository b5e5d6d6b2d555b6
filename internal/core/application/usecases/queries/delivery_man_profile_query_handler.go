package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/core/domain/model/deliveryman"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryManProfileQueryHandler struct {
	db *gorm.DB
}

func NewDeliveryManProfileQueryHandler(db *gorm.DB) DeliveryManProfileQueryHandler {
	return DeliveryManProfileQueryHandler{db: db}
}

func (h DeliveryManProfileQueryHandler) Handle(ctx context.Context, query DeliveryManProfileQuery) (DeliveryManProfileView, error) {
	if err := query.Validate(); err != nil {
		return DeliveryManProfileView{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.DeliveryManID()
	view := DeliveryManProfileView{ID: id}

	row := db.Raw(`
		SELECT u.name, u.email, d.area, d.available, d.earnings
		FROM delivery_men d
		JOIN users u ON u.id = d.user_id
		WHERE d.user_id = ?`, id.Bytes()).Row()
	if err := row.Scan(&view.Name, &view.Email, &view.Area, &view.Available, &view.Earnings); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DeliveryManProfileView{}, deliveryman.ErrDeliveryManNotFound
		}
		return DeliveryManProfileView{}, err
	}

	var held []uuid.UUID
	if err := db.Raw(`
		SELECT order_id FROM delivery_man_orders
		WHERE delivery_man_id = ?
		ORDER BY position`, id.Bytes()).Scan(&held).Error; err != nil {
		return DeliveryManProfileView{}, err
	}
	view.AssignedOrders = make([]kernel.UUID, 0, len(held))
	for _, raw := range held {
		orderID, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return DeliveryManProfileView{}, err
		}
		view.AssignedOrders = append(view.AssignedOrders, orderID)
	}

	rows, err := db.Raw(`
		SELECT order_id, earned_amount, delivery_date, status
		FROM delivery_records
		WHERE delivery_man_id = ?
		ORDER BY seq`, id.Bytes()).Rows()
	if err != nil {
		return DeliveryManProfileView{}, err
	}
	defer rows.Close()

	view.History = make([]DeliveryRecordView, 0)
	for rows.Next() {
		var (
			record  DeliveryRecordView
			orderID uuid.UUID
		)
		if err = rows.Scan(&orderID, &record.EarnedAmount, &record.DeliveryDate, &record.Status); err != nil {
			return DeliveryManProfileView{}, err
		}
		if record.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return DeliveryManProfileView{}, err
		}
		record.DeliveryDate = record.DeliveryDate.UTC()
		view.History = append(view.History, record)
	}
	return view, rows.Err()
}
