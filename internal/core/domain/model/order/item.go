package order

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is a purchased line, snapshotted from the product at checkout.
type Item struct {
	productID kernel.UUID
	name      string
	quantity  int
	price     decimal.Decimal
	size      string
	color     string
	sellerID  kernel.UUID
	image     string
}

type ItemParams struct {
	ProductID kernel.UUID
	Name      string
	Quantity  int
	Price     decimal.Decimal
	Size      string
	Color     string
	SellerID  kernel.UUID
	Image     string
}

func NewItem(p ItemParams) (Item, error) {
	var problems []error
	if err := p.ProductID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("productId", err))
	}
	if strings.TrimSpace(p.Name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if p.Quantity < 1 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("quantity", p.Quantity, 1, "unbounded"))
	}
	if p.Price.IsNegative() {
		problems = append(problems, errs.NewValueIsOutOfRangeError("price", p.Price.String(), 0, "unbounded"))
	}
	if err := p.SellerID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("sellerId", err))
	}
	if err := errors.Join(problems...); err != nil {
		return Item{}, err
	}

	return Item{
		productID: p.ProductID,
		name:      strings.TrimSpace(p.Name),
		quantity:  p.Quantity,
		price:     p.Price,
		size:      p.Size,
		color:     p.Color,
		sellerID:  p.SellerID,
		image:     p.Image,
	}, nil
}

func (i Item) ProductID() kernel.UUID { return i.productID }
func (i Item) Name() string           { return i.name }
func (i Item) Quantity() int          { return i.quantity }
func (i Item) Price() decimal.Decimal { return i.price }
func (i Item) Size() string           { return i.size }
func (i Item) Color() string          { return i.color }
func (i Item) SellerID() kernel.UUID  { return i.sellerID }
func (i Item) Image() string          { return i.image }

// Subtotal is price × quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}
