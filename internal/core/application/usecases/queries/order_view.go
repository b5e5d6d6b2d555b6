package queries

import (
	"storefront/internal/core/domain/model/order"
)

// NewOrderView renders an aggregate in the same shape the list queries
// return, so command responses and reads agree.
func NewOrderView(o *order.Order) OrderView {
	addr := o.ShippingAddress()
	pricing := o.Pricing()

	view := OrderView{
		ID:     o.ID(),
		UserID: o.UserID(),
		ShippingAddress: AddressView{
			FullName:   addr.FullName(),
			Address:    addr.Address(),
			City:       addr.City(),
			PostalCode: addr.PostalCode(),
			Country:    addr.Country(),
			Phone:      addr.Phone(),
		},
		PaymentMethod:    o.PaymentMethod().String(),
		ItemsPrice:       pricing.ItemsPrice,
		CouponCode:       o.CouponCode(),
		CouponDiscount:   pricing.CouponDiscount,
		TaxPrice:         pricing.TaxPrice,
		ShippingPrice:    pricing.ShippingPrice,
		TotalPrice:       pricing.TotalPrice,
		IsPaid:           o.IsPaid(),
		PaidAt:           o.PaidAt(),
		IsDelivered:      o.IsDelivered(),
		DeliveredAt:      o.DeliveredAt(),
		DeliveryStatus:   o.DeliveryStatus().String(),
		DeliveryManID:    o.DeliveryManID(),
		DeliveryEarnings: o.DeliveryEarnings(),
		ReturnStatus:     o.ReturnRequest().Status.String(),
		CreatedAt:        o.CreatedAt(),
	}

	for _, item := range o.Items() {
		view.Items = append(view.Items, OrderItemView{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
			Size:      item.Size(),
			Color:     item.Color(),
			SellerID:  item.SellerID(),
			Image:     item.Image(),
		})
	}
	return view
}
