// Package product holds the slice of the catalog that checkout and returns
// touch: price, seller and stock. Catalog editing lives outside this service.
package product

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

	// ErrInsufficientStock is returned when a conditional stock decrement
	// matches no row.
	ErrInsufficientStock = errs.NewStateConflictError("product", "insufficient stock")
)

// Product is a purchasable item owned by a seller.
type Product struct {
	id                 kernel.UUID
	name               string
	price              decimal.Decimal
	realPrice          decimal.Decimal
	discountPercentage decimal.Decimal
	stock              int
	sellerID           kernel.UUID
	image              string
	colors             []string
	sizes              []string
	guard              guard.ConstructorGuard
}

// Params carries every product attribute for NewProduct and RestoreProduct.
type Params struct {
	ID                 kernel.UUID
	Name               string
	Price              decimal.Decimal
	RealPrice          decimal.Decimal
	DiscountPercentage decimal.Decimal
	Stock              int
	SellerID           kernel.UUID
	Image              string
	Colors             []string
	Sizes              []string
}

func NewProduct(p Params) (*Product, error) {
	prod := &Product{
		realPrice:          p.RealPrice,
		discountPercentage: p.DiscountPercentage,
		image:              p.Image,
		colors:             append([]string(nil), p.Colors...),
		sizes:              append([]string(nil), p.Sizes...),
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		prod.setID(p.ID),
		prod.setName(p.Name),
		prod.setPrice(p.Price),
		prod.setStock(p.Stock),
		prod.setSeller(p.SellerID),
	); err != nil {
		return nil, err
	}
	return prod, nil
}

func RestoreProduct(p Params) (*Product, error) {
	return NewProduct(p)
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID                     { return p.id }
func (p *Product) Name() string                        { return p.name }
func (p *Product) Price() decimal.Decimal              { return p.price }
func (p *Product) RealPrice() decimal.Decimal          { return p.realPrice }
func (p *Product) DiscountPercentage() decimal.Decimal { return p.discountPercentage }
func (p *Product) Stock() int                          { return p.stock }
func (p *Product) SellerID() kernel.UUID               { return p.sellerID }
func (p *Product) Image() string                       { return p.image }
func (p *Product) Colors() []string                    { return append([]string(nil), p.colors...) }
func (p *Product) Sizes() []string                     { return append([]string(nil), p.sizes...) }

// HasStock is an advisory read-side check; the authoritative check is the
// conditional decrement in the repository.
func (p *Product) HasStock(quantity int) bool {
	return quantity > 0 && p.stock >= quantity
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("price", price.String(), 0, "unbounded")
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeErrorWithCause("stock", stock, 0, "unbounded",
			fmt.Errorf("stock can not be negative"))
	}
	p.stock = stock
	return nil
}

func (p *Product) setSeller(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sellerId", err)
	}
	p.sellerID = id
	return nil
}
