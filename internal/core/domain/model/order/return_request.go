package order

import (
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ReturnStatus is the position of an order in the return sub-workflow.
type ReturnStatus string

const (
	ReturnNone      ReturnStatus = "none"
	ReturnPending   ReturnStatus = "pending"
	ReturnApproved  ReturnStatus = "approved"
	ReturnRejected  ReturnStatus = "rejected"
	ReturnCompleted ReturnStatus = "completed"
)

var returnTransitions = map[ReturnStatus][]ReturnStatus{
	ReturnNone:      {ReturnPending},
	ReturnPending:   {ReturnApproved, ReturnRejected},
	ReturnApproved:  {ReturnCompleted},
	ReturnRejected:  {},
	ReturnCompleted: {},
}

func ParseReturnStatus(s string) (ReturnStatus, error) {
	status := ReturnStatus(strings.ToLower(strings.TrimSpace(s)))
	if status == "" {
		return ReturnNone, nil
	}
	if _, ok := returnTransitions[status]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("returnStatus", fmt.Errorf("%q is not a valid return status", s))
	}
	return status, nil
}

func (s ReturnStatus) String() string {
	return string(s)
}

func (s ReturnStatus) canTransitionTo(next ReturnStatus) bool {
	for _, allowed := range returnTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ReturnRequest is the return sub-state of an order.
type ReturnRequest struct {
	Status        ReturnStatus
	RequestDate   *time.Time
	Reason        string
	ProcessedDate *time.Time
	ScheduledDate *time.Time
	ProcessedBy   *kernel.UUID
}

func noReturn() ReturnRequest {
	return ReturnRequest{Status: ReturnNone}
}
