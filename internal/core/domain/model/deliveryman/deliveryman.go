package deliveryman

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MaxAssignedOrders is the number of orders a deliveryman may hold at once.
const MaxAssignedOrders = 5

var (
	ErrDeliveryManIsNotConstructed = errors.New("DeliveryMan must be created via NewDeliveryMan or RestoreDeliveryMan")

	ErrDeliveryManNotFound    = errs.NewObjectNotFoundError("deliveryman", "requested")
	ErrDeliveryManUnavailable = errs.NewStateConflictError("deliveryman", "not available for delivery")
	ErrAreaMismatch           = errs.NewStateConflictError("deliveryman", "does not serve the order area")
	ErrCapacityExceeded       = errs.NewStateConflictError("deliveryman", "maximum assigned orders reached")
	ErrOrderNotHeld           = errs.NewStateConflictError("deliveryman", "order is not assigned to this deliveryman")
	ErrRoleRevoked            = errs.NewStateConflictError("deliveryman", "account no longer holds the deliveryman role")
)

// DeliveryMan is the delivery profile aggregate. Its id is the user id.
type DeliveryMan struct {
	id             kernel.UUID
	name           string
	email          string
	role           user.Role
	area           kernel.Area
	available      bool
	assignedOrders []kernel.UUID
	earnings       decimal.Decimal
	history        []DeliveryRecord
	version        int
	guard          guard.ConstructorGuard
}

// NewDeliveryMan creates an available profile with no orders and no earnings.
func NewDeliveryMan(userID kernel.UUID, name, email string, area kernel.Area) (*DeliveryMan, error) {
	d := &DeliveryMan{
		role:      user.DeliveryMan,
		available: true,
		earnings:  decimal.Zero,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(userID),
		d.setName(name),
		d.setEmail(email),
		d.setArea(area),
	); err != nil {
		return nil, err
	}
	return d, nil
}

// RestoreParams is the persisted state of a profile.
type RestoreParams struct {
	UserID         kernel.UUID
	Name           string
	Email          string
	Role           user.Role
	Area           kernel.Area
	Available      bool
	AssignedOrders []kernel.UUID
	Earnings       decimal.Decimal
	History        []DeliveryRecord
	Version        int
}

func RestoreDeliveryMan(p RestoreParams) (*DeliveryMan, error) {
	d, err := NewDeliveryMan(p.UserID, p.Name, p.Email, p.Area)
	if err != nil {
		return nil, err
	}
	if len(p.AssignedOrders) > MaxAssignedOrders {
		return nil, errs.NewValueIsOutOfRangeError("assignedOrders", len(p.AssignedOrders), 0, MaxAssignedOrders)
	}
	if p.Earnings.IsNegative() {
		return nil, errs.NewValueIsOutOfRangeError("earnings", p.Earnings.String(), 0, "unbounded")
	}
	if err = p.Role.Validate(); err != nil {
		return nil, err
	}

	d.role = p.Role
	d.available = p.Available
	d.assignedOrders = append([]kernel.UUID(nil), p.AssignedOrders...)
	d.earnings = p.Earnings
	d.history = append([]DeliveryRecord(nil), p.History...)
	d.version = p.Version
	return d, nil
}

func (d *DeliveryMan) Validate() error {
	if d == nil {
		return ErrDeliveryManIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryManIsNotConstructed)
}

func (d *DeliveryMan) ID() kernel.UUID           { return d.id }
func (d *DeliveryMan) Name() string              { return d.name }
func (d *DeliveryMan) Email() string             { return d.email }
func (d *DeliveryMan) Role() user.Role           { return d.role }
func (d *DeliveryMan) Area() kernel.Area         { return d.area }
func (d *DeliveryMan) IsAvailable() bool         { return d.available }
func (d *DeliveryMan) Earnings() decimal.Decimal { return d.earnings }
func (d *DeliveryMan) Version() int              { return d.version }

func (d *DeliveryMan) AssignedOrders() []kernel.UUID {
	return append([]kernel.UUID(nil), d.assignedOrders...)
}

func (d *DeliveryMan) History() []DeliveryRecord {
	return append([]DeliveryRecord(nil), d.history...)
}

// Load is the number of orders currently held.
func (d *DeliveryMan) Load() int {
	return len(d.assignedOrders)
}

func (d *DeliveryMan) HasCapacity() bool {
	return len(d.assignedOrders) < MaxAssignedOrders
}

func (d *DeliveryMan) Holds(orderID kernel.UUID) bool {
	for _, id := range d.assignedOrders {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// CheckEligible returns the first rule that keeps this deliveryman from
// taking an order shipped to city under policy. The role and capacity rules
// hold under every policy.
func (d *DeliveryMan) CheckEligible(city string, policy AssignmentPolicy) error {
	if d.role != user.DeliveryMan {
		return fmt.Errorf("%w: %s is %s", ErrRoleRevoked, d.email, d.role)
	}
	if !policy.IgnoreAvailability && !d.available {
		return fmt.Errorf("%w: %s", ErrDeliveryManUnavailable, d.email)
	}
	if !policy.IgnoreArea && !d.area.Covers(city) {
		return fmt.Errorf("%w: %s serves %q, order ships to %q", ErrAreaMismatch, d.email, d.area, city)
	}
	if !d.HasCapacity() {
		return fmt.Errorf("%w: %s holds %d", ErrCapacityExceeded, d.email, len(d.assignedOrders))
	}
	return nil
}

// IsEligibleFor is the standard eligibility predicate.
func (d *DeliveryMan) IsEligibleFor(city string) bool {
	return d.CheckEligible(city, StandardPolicy()) == nil
}

// TakeOrder adds an order to the held set. Taking an order already held is
// a no-op.
func (d *DeliveryMan) TakeOrder(orderID kernel.UUID, city string, policy AssignmentPolicy) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if d.Holds(orderID) {
		return nil
	}
	if err := d.CheckEligible(city, policy); err != nil {
		return err
	}

	d.assignedOrders = append(d.assignedOrders, orderID)
	return nil
}

// ReleaseOrder drops an order from the held set.
func (d *DeliveryMan) ReleaseOrder(orderID kernel.UUID) error {
	for i, id := range d.assignedOrders {
		if id.IsEqual(orderID) {
			d.assignedOrders = append(d.assignedOrders[:i:i], d.assignedOrders[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrOrderNotHeld, orderID)
}

// CompleteDelivery releases a delivered order, credits the earnings and
// appends the delivery to the history.
func (d *DeliveryMan) CompleteDelivery(orderID kernel.UUID, earned decimal.Decimal, at time.Time) error {
	if earned.IsNegative() {
		return errs.NewValueIsOutOfRangeError("earnedAmount", earned.String(), 0, "unbounded")
	}
	if err := d.ReleaseOrder(orderID); err != nil {
		return err
	}

	d.earnings = d.earnings.Add(earned)
	d.history = append(d.history, DeliveryRecord{
		OrderID:      orderID,
		EarnedAmount: earned,
		DeliveryDate: at.UTC(),
		Status:       RecordDelivered,
	})
	return nil
}

// SetAvailability switches the deliveryman on or off for new assignments.
// Orders already held are unaffected.
func (d *DeliveryMan) SetAvailability(available bool) {
	d.available = available
}

// MoveTo changes the served area.
func (d *DeliveryMan) MoveTo(area kernel.Area) error {
	return d.setArea(area)
}

func (d *DeliveryMan) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	d.id = id
	return nil
}

func (d *DeliveryMan) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *DeliveryMan) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	d.email = email
	return nil
}

func (d *DeliveryMan) setArea(area kernel.Area) error {
	if err := area.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("area", err)
	}
	d.area = area
	return nil
}
