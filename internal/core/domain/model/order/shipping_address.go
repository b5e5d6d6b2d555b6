package order

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
)

// ShippingAddress is where the order is delivered. City drives area matching.
type ShippingAddress struct {
	fullName   string
	address    string
	city       string
	postalCode string
	country    string
	phone      string
}

func NewShippingAddress(fullName, address, city, postalCode, country, phone string) (ShippingAddress, error) {
	a := ShippingAddress{
		fullName:   strings.TrimSpace(fullName),
		address:    strings.TrimSpace(address),
		city:       strings.TrimSpace(city),
		postalCode: strings.TrimSpace(postalCode),
		country:    strings.TrimSpace(country),
		phone:      strings.TrimSpace(phone),
	}

	var problems []error
	for name, value := range map[string]string{
		"shippingAddress.fullName":   a.fullName,
		"shippingAddress.address":    a.address,
		"shippingAddress.city":       a.city,
		"shippingAddress.postalCode": a.postalCode,
		"shippingAddress.country":    a.country,
		"shippingAddress.phone":      a.phone,
	} {
		if value == "" {
			problems = append(problems, errs.NewValueIsRequiredError(name))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return ShippingAddress{}, err
	}
	return a, nil
}

func (a ShippingAddress) FullName() string   { return a.fullName }
func (a ShippingAddress) Address() string    { return a.address }
func (a ShippingAddress) City() string       { return a.city }
func (a ShippingAddress) PostalCode() string { return a.postalCode }
func (a ShippingAddress) Country() string    { return a.country }
func (a ShippingAddress) Phone() string      { return a.phone }

func (a ShippingAddress) isZero() bool {
	return a.city == ""
}
