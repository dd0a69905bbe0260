package order

import (
	"fmt"

	"veggo/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	pending → confirmed → assigned → picked_up → in_transit → delivered
//	    │         │
//	    └─────────┴──> cancelled
//
// delivered and cancelled are terminal. cancelled is reachable only from
// pending or confirmed, and only through Order.Cancel so stock restoration
// always accompanies it.
type Status string

const (
	Pending   Status = "pending"
	Confirmed Status = "confirmed"
	Assigned  Status = "assigned"
	PickedUp  Status = "picked_up"
	InTransit Status = "in_transit"
	Delivered Status = "delivered"
	Cancelled Status = "cancelled"
)

// ParseStatus validates a status string arriving from the boundary.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks the enum value, for statuses restored from persistence or
// parsed from requests.
func (s Status) Validate() error {
	switch s {
	case Pending, Confirmed, Assigned, PickedUp, InTransit, Delivered, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsCancellable reports whether the customer cancellation path is still open
// from this status; the time window is checked separately by the order.
func (s Status) IsCancellable() bool {
	return s == Pending || s == Confirmed
}

// ValidateChangeTo checks an admin/agent status transition. Any non-terminal
// status may move forward to a valid target, but never back to pending and
// never to cancelled: cancellation is the customer flow with its own
// compensation.
func (s Status) ValidateChangeTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is terminal and cannot change", s))
	}
	if next == Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("order cannot return to %s", Pending))
	}
	if next == Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is set through order cancellation, not a status update", Cancelled))
	}
	return nil
}

// ValidateAssign checks that an agent can (still) be attached to the order.
// Reassignment of an already assigned order is allowed.
func (s Status) ValidateAssign() error {
	if s != Pending && s != Confirmed && s != Assigned {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to assign an agent", s))
	}
	return nil
}
