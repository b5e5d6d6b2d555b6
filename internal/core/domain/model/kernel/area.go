package kernel

import (
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrAreaIsNotConstructed is returned when a zero Area is used.
var ErrAreaIsNotConstructed = errs.NewValueIsRequiredError("area must be created via NewArea")

// Area is the free-text locality a deliveryman serves or an order ships to.
// It is stored normalized: trimmed and lower-cased. Areas are not geocoded;
// matching is plain case-insensitive text comparison.
type Area struct {
	name  string
	guard guard.ConstructorGuard
}

// NewArea normalizes and validates a locality string.
func NewArea(name string) (Area, error) {
	normalized := normalizeArea(name)
	if normalized == "" {
		return Area{}, errs.NewValueIsRequiredError("area")
	}
	return Area{name: normalized, guard: guard.NewConstructorGuard()}, nil
}

func (a Area) Validate() error {
	return a.guard.Validate(ErrAreaIsNotConstructed)
}

func (a Area) String() string {
	return a.name
}

// Covers reports whether this area serves the given order locality: the
// normalized locality must equal this area or be contained in it
// ("lahore" covers "Lahore", "north lahore" covers "lahore").
func (a Area) Covers(locality string) bool {
	target := normalizeArea(locality)
	if a.name == "" || target == "" {
		return false
	}
	return strings.Contains(a.name, target)
}

func (a Area) IsEqual(other Area) bool {
	return a.name == other.name
}

func normalizeArea(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
