package commands

import (
	"errors"

	"veggo/internal/core/domain/model/agent"
	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/pkg/errs"
	"veggo/internal/pkg/guard"
)

var ErrRegisterAgentCommandIsNotConstructed = errors.New(
	"RegisterAgentCommand must be created via NewRegisterAgentCommand constructor",
)

// RegisterAgentCommand represents a delivery agent signup. New agents start
// unapproved and cannot take orders until an admin approves them.
type RegisterAgentCommand struct { //nolint:recvcheck //using for validation
	agentID       kernel.UUID
	name          string
	email         string
	password      string
	phone         string
	vehicle       agent.VehicleKind
	licenseNumber string

	guard guard.ConstructorGuard
}

// NewRegisterAgentCommand creates a validated agent signup command.
// rawVehicle is the vehicle kind string (bike or car).
func NewRegisterAgentCommand(
	agentID kernel.UUID,
	name string,
	email string,
	password string,
	phone string,
	rawVehicle string,
	licenseNumber string,
) (RegisterAgentCommand, error) {
	cmd := RegisterAgentCommand{
		licenseNumber: licenseNumber,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setPhone(phone),
		cmd.setVehicle(rawVehicle),
	); err != nil {
		return RegisterAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAgentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAgentCommandIsNotConstructed)
}

func (c RegisterAgentCommand) AgentID() kernel.UUID       { return c.agentID }
func (c RegisterAgentCommand) Name() string               { return c.name }
func (c RegisterAgentCommand) Email() string              { return c.email }
func (c RegisterAgentCommand) Password() string           { return c.password }
func (c RegisterAgentCommand) Phone() string              { return c.phone }
func (c RegisterAgentCommand) Vehicle() agent.VehicleKind { return c.vehicle }
func (c RegisterAgentCommand) LicenseNumber() string      { return c.licenseNumber }

func (c *RegisterAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}

func (c *RegisterAgentCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterAgentCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterAgentCommand) setPassword(password string) error {
	if len(password) < 6 {
		return errs.NewValueIsInvalidErrorWithCause("password",
			errors.New("must be at least 6 characters"))
	}
	c.password = password
	return nil
}

func (c *RegisterAgentCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *RegisterAgentCommand) setVehicle(raw string) error {
	vehicle, err := agent.ParseVehicleKind(raw)
	if err != nil {
		return err
	}
	c.vehicle = vehicle
	return nil
}
