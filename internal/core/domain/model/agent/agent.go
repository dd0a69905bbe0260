// Package agent defines the delivery-agent aggregate. Agents sign up
// unapproved, are gatekept by an admin, and push their own location as a
// single scalar update while delivering.
package agent

import (
	"errors"
	"fmt"
	"time"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/pkg/errs"
)

// ErrAgentIsNotConstructed is returned when an Agent bypassed its
// constructors.
var ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")

// VehicleKind is the agent's declared delivery vehicle.
type VehicleKind string

const (
	VehicleBike VehicleKind = "bike"
	VehicleCar  VehicleKind = "car"
)

// ParseVehicleKind validates a vehicle kind arriving from the boundary.
func ParseVehicleKind(s string) (VehicleKind, error) {
	switch VehicleKind(s) {
	case VehicleBike, VehicleCar:
		return VehicleKind(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("vehicleType",
			fmt.Errorf("%q is not one of bike, car", s))
	}
}

// String implements fmt.Stringer.
func (v VehicleKind) String() string {
	return string(v)
}

// Location is an agent's last reported position with its report time.
type Location struct {
	Point      kernel.GeoPoint
	ReportedAt time.Time
}

// Agent is the delivery-agent aggregate root.
type Agent struct {
	id            kernel.UUID
	name          string
	email         string
	phone         string
	passwordHash  string
	vehicle       VehicleKind
	licenseNumber string
	approved      bool
	location      *Location
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewAgent registers a new, not-yet-approved agent.
func NewAgent(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	passwordHash string,
	vehicle VehicleKind,
	licenseNumber string,
	now time.Time,
) (*Agent, error) {
	a := &Agent{
		licenseNumber: licenseNumber,
		approved:      false,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setEmail(email),
		a.setPhone(phone),
		a.setPasswordHash(passwordHash),
		a.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAgent rehydrates an agent from persistence.
func RestoreAgent(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	passwordHash string,
	vehicle VehicleKind,
	licenseNumber string,
	approved bool,
	location *Location,
	createdAt time.Time,
	updatedAt time.Time,
) (*Agent, error) {
	a, err := NewAgent(id, name, email, phone, passwordHash, vehicle, licenseNumber, createdAt)
	if err != nil {
		return nil, err
	}
	if location != nil {
		if err = location.Point.Validate(); err != nil {
			return nil, err
		}
	}
	a.approved = approved
	a.location = location
	a.updatedAt = updatedAt
	return a, nil
}

// Validate ensures the agent was created through a constructor.
func (a *Agent) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAgentIsNotConstructed
	}
	return nil
}

func (a *Agent) ID() kernel.UUID       { return a.id }
func (a *Agent) Name() string          { return a.name }
func (a *Agent) Email() string         { return a.email }
func (a *Agent) Phone() string         { return a.phone }
func (a *Agent) PasswordHash() string  { return a.passwordHash }
func (a *Agent) Vehicle() VehicleKind  { return a.vehicle }
func (a *Agent) LicenseNumber() string { return a.licenseNumber }
func (a *Agent) IsApproved() bool      { return a.approved }
func (a *Agent) Location() *Location   { return a.location }
func (a *Agent) CreatedAt() time.Time  { return a.createdAt }
func (a *Agent) UpdatedAt() time.Time  { return a.updatedAt }

// SetApproval records the admin's approval decision.
func (a *Agent) SetApproval(approved bool, now time.Time) {
	a.approved = approved
	a.updatedAt = now
}

// ReportLocation stores the agent's polled position update.
func (a *Agent) ReportLocation(point kernel.GeoPoint, now time.Time) error {
	if err := point.Validate(); err != nil {
		return err
	}
	a.location = &Location{Point: point, ReportedAt: now}
	a.updatedAt = now
	return nil
}

func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agent) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Agent) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	a.email = email
	return nil
}

func (a *Agent) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	a.phone = phone
	return nil
}

func (a *Agent) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = hash
	return nil
}

func (a *Agent) setVehicle(vehicle VehicleKind) error {
	if _, err := ParseVehicleKind(string(vehicle)); err != nil {
		return err
	}
	a.vehicle = vehicle
	return nil
}
