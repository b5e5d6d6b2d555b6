package commands

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// CreateOrderResult is the persisted order and whether this call created it.
// Created is false when an earlier request with the same idempotency key
// already placed the order.
type CreateOrderResult struct {
	Order   *order.Order
	Created bool
}

// CreateOrderCommandHandler assembles and persists an order. Coupon
// redemption, stock decrements, the order insert, clearing the cart and the
// seller order lists all commit or roll back together.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	pricing    services.PricingCalculator
	notifier   ports.Notifier
	now        Clock
}

func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	pricing services.PricingCalculator,
	notifier ports.Notifier,
	now Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		notifier:   notifier,
		now:        now,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (CreateOrderResult, error) {
	if err := command.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	userID := command.Principal().UserID
	if key := command.IdempotencyKey(); key != "" {
		existing, err := h.findExisting(ctx, userID, key)
		if err != nil {
			return CreateOrderResult{}, err
		}
		if existing != nil {
			return CreateOrderResult{Order: existing}, nil
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.UserRepository().Get(ctx, userID); err != nil {
		return CreateOrderResult{}, err
	}

	items, err := h.snapshotItems(ctx, uow, command.Lines())
	if err != nil {
		return CreateOrderResult{}, err
	}

	now := h.now()

	var applied *coupon.Coupon
	if code := command.CouponCode(); code != "" {
		applied, err = uow.CouponRepository().GetByCode(ctx, code)
		if err != nil {
			return CreateOrderResult{}, couponError(err)
		}
	}

	pricing, err := h.pricing.Calculate(items, applied, now)
	if err != nil {
		return CreateOrderResult{}, couponError(err)
	}

	params := order.NewOrderParams{
		ID:              kernel.NewUUID(),
		UserID:          userID,
		Items:           items,
		ShippingAddress: command.ShippingAddress(),
		PaymentMethod:   command.PaymentMethod(),
		Pricing:         pricing,
		IdempotencyKey:  command.IdempotencyKey(),
		CreatedAt:       now,
	}
	if applied != nil {
		id := applied.ID()
		params.CouponID = &id
		params.CouponCode = applied.Code()
	}

	created, err := order.NewOrder(params)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if applied != nil {
		if err = uow.CouponRepository().Redeem(ctx, applied.ID()); err != nil {
			return CreateOrderResult{}, err
		}
	}

	for _, item := range created.Items() {
		if err = uow.ProductRepository().DecrementStock(ctx, item.ProductID(), item.Quantity()); err != nil {
			return CreateOrderResult{}, fmt.Errorf("%w: %s", err, item.Name())
		}
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		if errors.Is(err, ports.ErrDuplicateIdempotencyKey) {
			_ = uow.Rollback(ctx)
			return h.replay(ctx, userID, command.IdempotencyKey())
		}
		return CreateOrderResult{}, err
	}

	if err = uow.CartRepository().Clear(ctx, userID); err != nil {
		return CreateOrderResult{}, err
	}

	for _, sellerID := range created.SellerIDs() {
		if err = uow.SellerOrderRepository().Append(ctx, sellerID, created.ID()); err != nil {
			return CreateOrderResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	_ = h.notifier.Notify(ctx, ports.OrderEvent{
		Type:       ports.OrderConfirmed,
		OrderID:    created.ID(),
		UserID:     userID,
		Status:     created.DeliveryStatus().String(),
		TotalPrice: created.TotalPrice(),
		OccurredAt: now,
	})

	return CreateOrderResult{Order: created, Created: true}, nil
}

func (h CreateOrderCommandHandler) snapshotItems(ctx context.Context, uow UoW, lines []CartLine) ([]order.Item, error) {
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		p, err := uow.ProductRepository().Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(order.ItemParams{
			ProductID: p.ID(),
			Name:      p.Name(),
			Quantity:  line.Quantity,
			Price:     p.Price(),
			Size:      line.Size,
			Color:     line.Color,
			SellerID:  p.SellerID(),
			Image:     p.Image(),
		})
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (h CreateOrderCommandHandler) findExisting(ctx context.Context, userID kernel.UUID, key string) (*order.Order, error) {
	existing, err := h.uowFactory.Create().OrderRepository().GetByIdempotencyKey(ctx, userID, key)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil //nolint:nilnil // no earlier order
	}
	return existing, err
}

// replay resolves a lost race on the idempotency key: the other request
// committed first, so its order is the answer.
func (h CreateOrderCommandHandler) replay(ctx context.Context, userID kernel.UUID, key string) (CreateOrderResult, error) {
	existing, err := h.findExisting(ctx, userID, key)
	if err != nil {
		return CreateOrderResult{}, err
	}
	if existing == nil {
		return CreateOrderResult{}, ports.ErrDuplicateIdempotencyKey
	}
	return CreateOrderResult{Order: existing}, nil
}

// couponError turns a failed coupon lookup or check into a validation error
// on the couponCode field. Redemption races are reported separately by
// CouponRepository.Redeem.
func couponError(err error) error {
	if errors.Is(err, coupon.ErrCouponNotFound) ||
		errors.Is(err, coupon.ErrUsageLimitReached) ||
		errors.Is(err, coupon.ErrMinimumPurchaseNotMet) {
		return errs.NewValueIsInvalidErrorWithCause("couponCode", err)
	}
	return err
}
