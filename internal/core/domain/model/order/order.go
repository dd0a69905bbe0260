package order

import (
	"errors"
	"fmt"
	"time"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order bypassed its
	// constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCancelWindowElapsed is returned when a cancellation arrives after the
	// configured window.
	ErrCancelWindowElapsed = errors.New("order can no longer be cancelled, the cancellation window has elapsed")

	// ErrNotCancellable is returned when the order status rules out customer
	// cancellation.
	ErrNotCancellable = errors.New("order cannot be cancelled at this stage")
)

// Order is the aggregate root for the delivery lifecycle. It owns the
// ordered item lines (order-preserving), the pricing breakdown computed at
// creation, the status state machine, and the optional agent assignment.
//
// Monetary invariant: subtotal and delivery fee are each rounded to two
// decimals independently, and the final price is exactly their sum; the sum
// itself is never re-rounded.
type Order struct {
	id          kernel.UUID
	number      string
	userID      kernel.UUID
	items       []Item
	subtotal    float64
	deliveryFee float64
	distanceKm  float64
	finalPrice  float64
	status      Status

	deliveryAddress string
	destination     kernel.GeoPoint
	phone           string
	notes           string

	agentID *kernel.UUID

	createdAt   time.Time
	updatedAt   time.Time
	cancelledAt *time.Time
	cancelledBy string

	isConstructed bool
}

// NewOrder creates an order in pending status. Items must already carry
// their price snapshots (the stock ledger produces them); the delivery fee
// and distance come from the pricing engine. Subtotal is the raw sum of line
// totals rounded to two decimals.
func NewOrder(
	id kernel.UUID,
	number string,
	userID kernel.UUID,
	items []Item,
	deliveryAddress string,
	destination kernel.GeoPoint,
	phone string,
	notes string,
	distanceKm float64,
	deliveryFee float64,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setUserID(userID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setDestination(destination),
		o.setPhone(phone),
		o.setFee(distanceKm, deliveryFee),
	); err != nil {
		return nil, err
	}

	var sum float64
	for _, item := range o.items {
		sum += item.Total()
	}
	o.subtotal = kernel.Round2(sum)
	o.finalPrice = o.subtotal + o.deliveryFee

	return o, nil
}

// RestoreOrder rehydrates an order from persistence with its stored totals
// and status.
func RestoreOrder(
	id kernel.UUID,
	number string,
	userID kernel.UUID,
	items []Item,
	subtotal float64,
	deliveryFee float64,
	distanceKm float64,
	finalPrice float64,
	status Status,
	deliveryAddress string,
	destination kernel.GeoPoint,
	phone string,
	notes string,
	agentID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
	cancelledAt *time.Time,
	cancelledBy string,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		status:        status,
		notes:         notes,
		agentID:       agentID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		cancelledAt:   cancelledAt,
		cancelledBy:   cancelledBy,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setUserID(userID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setDestination(destination),
		o.setPhone(phone),
		o.setFee(distanceKm, deliveryFee),
	); err != nil {
		return nil, err
	}

	o.subtotal = subtotal
	o.finalPrice = finalPrice
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) Number() string               { return o.number }
func (o *Order) UserID() kernel.UUID          { return o.userID }
func (o *Order) Subtotal() float64            { return o.subtotal }
func (o *Order) DeliveryFee() float64         { return o.deliveryFee }
func (o *Order) DistanceKm() float64          { return o.distanceKm }
func (o *Order) FinalPrice() float64          { return o.finalPrice }
func (o *Order) Status() Status               { return o.status }
func (o *Order) DeliveryAddress() string      { return o.deliveryAddress }
func (o *Order) Destination() kernel.GeoPoint { return o.destination }
func (o *Order) Phone() string                { return o.phone }
func (o *Order) Notes() string                { return o.notes }
func (o *Order) Agent() *kernel.UUID          { return o.agentID }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }
func (o *Order) CancelledAt() *time.Time      { return o.cancelledAt }
func (o *Order) CancelledBy() string          { return o.cancelledBy }

// Items returns the order lines in the sequence they were placed.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// CanCancel is the derived, recomputed-on-read cancellation eligibility:
// true iff the status is still pending or confirmed and the elapsed time
// since creation is within the window. It is never stored.
func (o *Order) CanCancel(window time.Duration, now time.Time) bool {
	return o.status.IsCancellable() && now.Sub(o.createdAt) <= window
}

// Cancel moves the order to cancelled on behalf of the given actor. Only
// pending or confirmed orders may be cancelled, and only within the window
// measured from creation. Stock restoration is the caller's compensation
// step.
func (o *Order) Cancel(actor string, window time.Duration, now time.Time) error {
	if !o.status.IsCancellable() {
		return ErrNotCancellable
	}
	if now.Sub(o.createdAt) > window {
		return ErrCancelWindowElapsed
	}
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	o.status = Cancelled
	o.cancelledAt = &now
	o.cancelledBy = actor
	o.updatedAt = now
	return nil
}

// Assign attaches an approved agent to the order and moves it to assigned.
// The caller verifies the agent exists and is approved.
func (o *Order) Assign(agentID kernel.UUID, now time.Time) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	if err := o.status.ValidateAssign(); err != nil {
		return err
	}

	o.status = Assigned
	o.agentID = &agentID
	o.updatedAt = now
	return nil
}

// ChangeStatus applies an admin or agent status update. Transition legality
// is delegated to the status machine; cancellation and assignment have their
// own entry points.
func (o *Order) ChangeStatus(next Status, now time.Time) error {
	if err := o.status.ValidateChangeTo(next); err != nil {
		return err
	}

	o.status = next
	o.updatedAt = now
	return nil
}

// IsAssignedTo reports whether the given agent owns this order.
func (o *Order) IsAssignedTo(agentID kernel.UUID) bool {
	return o.agentID != nil && o.agentID.IsEqual(agentID)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.number = number
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setDestination(destination kernel.GeoPoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	o.phone = phone
	return nil
}

func (o *Order) setFee(distanceKm, deliveryFee float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%g is negative", distanceKm))
	}
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee",
			fmt.Errorf("%g is negative", deliveryFee))
	}
	o.distanceKm = kernel.Round2(distanceKm)
	o.deliveryFee = kernel.Round2(deliveryFee)
	return nil
}
