package commands

import (
	"errors"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/pkg/guard"
)

var ErrApproveAgentCommandIsNotConstructed = errors.New(
	"ApproveAgentCommand must be created via NewApproveAgentCommand constructor",
)

// ApproveAgentCommand represents an admin's approval decision on a delivery
// agent. Approval can be granted or revoked.
type ApproveAgentCommand struct { //nolint:recvcheck //using for validation
	agentID  kernel.UUID
	approved bool

	guard guard.ConstructorGuard
}

// NewApproveAgentCommand creates a validated approval command.
func NewApproveAgentCommand(agentID kernel.UUID, approved bool) (ApproveAgentCommand, error) {
	cmd := ApproveAgentCommand{
		approved: approved,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setAgentID(agentID); err != nil {
		return ApproveAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveAgentCommand) Validate() error {
	return c.guard.Validate(ErrApproveAgentCommandIsNotConstructed)
}

func (c ApproveAgentCommand) AgentID() kernel.UUID { return c.agentID }
func (c ApproveAgentCommand) Approved() bool       { return c.approved }

func (c *ApproveAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}
