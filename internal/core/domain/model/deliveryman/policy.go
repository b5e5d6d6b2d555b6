package deliveryman

// AssignmentPolicy relaxes the eligibility predicate.
type AssignmentPolicy struct {
	IgnoreArea         bool
	IgnoreAvailability bool
}

// StandardPolicy applies every rule. Used by automatic assignment.
func StandardPolicy() AssignmentPolicy {
	return AssignmentPolicy{}
}

// AdminPolicy lets an administrator assign outside the area and to people who
// switched themselves off.
func AdminPolicy() AssignmentPolicy {
	return AssignmentPolicy{IgnoreArea: true, IgnoreAvailability: true}
}
