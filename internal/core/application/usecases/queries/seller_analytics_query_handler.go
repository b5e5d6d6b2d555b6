package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SellerAnalyticsQueryHandler struct {
	db *gorm.DB
}

func NewSellerAnalyticsQueryHandler(db *gorm.DB) SellerAnalyticsQueryHandler {
	return SellerAnalyticsQueryHandler{db: db}
}

const sellerLines = `
	FROM order_items i
	JOIN orders o ON o.id = i.order_id
	WHERE i.seller_id = ? AND o.return_status <> ?`

func (h SellerAnalyticsQueryHandler) Handle(ctx context.Context, query SellerAnalyticsQuery) (SellerAnalytics, error) {
	if err := query.Validate(); err != nil {
		return SellerAnalytics{}, err
	}

	db := h.db.WithContext(ctx)
	seller := query.SellerID().Bytes()
	returned := order.ReturnCompleted.String()

	var result SellerAnalytics
	err := db.Raw(`
		SELECT
			COUNT(DISTINCT i.order_id),
			COUNT(DISTINCT i.order_id) FILTER (WHERE o.is_delivered),
			COALESCE(SUM(i.quantity), 0),
			COALESCE(SUM(i.price * i.quantity), 0)`+sellerLines,
		seller, returned).Row().
		Scan(&result.TotalOrders, &result.DeliveredOrders, &result.UnitsSold, &result.Revenue)
	if err != nil {
		return SellerAnalytics{}, err
	}

	rows, err := db.Raw(`
		SELECT i.product_id, MIN(i.name), COUNT(DISTINCT i.order_id),
			SUM(i.quantity), SUM(i.price * i.quantity) AS revenue`+sellerLines+`
		GROUP BY i.product_id
		ORDER BY revenue DESC, i.product_id`,
		seller, returned).Rows()
	if err != nil {
		return SellerAnalytics{}, err
	}
	defer rows.Close()

	result.Products = make([]ProductSalesAnalytic, 0)
	for rows.Next() {
		var (
			p  ProductSalesAnalytic
			id uuid.UUID
		)
		if err = rows.Scan(&id, &p.Name, &p.Orders, &p.UnitsSold, &p.Revenue); err != nil {
			return SellerAnalytics{}, err
		}
		if p.ProductID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return SellerAnalytics{}, err
		}
		result.Products = append(result.Products, p)
	}
	return result, rows.Err()
}
