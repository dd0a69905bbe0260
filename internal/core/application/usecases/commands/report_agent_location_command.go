package commands

import (
	"errors"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/pkg/guard"
)

var ErrReportAgentLocationCommandIsNotConstructed = errors.New(
	"ReportAgentLocationCommand must be created via NewReportAgentLocationCommand constructor",
)

// ReportAgentLocationCommand represents a delivery agent's position report.
type ReportAgentLocationCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	point   kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewReportAgentLocationCommand creates a validated location report.
func NewReportAgentLocationCommand(agentID kernel.UUID, point kernel.GeoPoint) (ReportAgentLocationCommand, error) {
	cmd := ReportAgentLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setPoint(point),
	); err != nil {
		return ReportAgentLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportAgentLocationCommand) Validate() error {
	return c.guard.Validate(ErrReportAgentLocationCommandIsNotConstructed)
}

func (c ReportAgentLocationCommand) AgentID() kernel.UUID   { return c.agentID }
func (c ReportAgentLocationCommand) Point() kernel.GeoPoint { return c.point }

func (c *ReportAgentLocationCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}

func (c *ReportAgentLocationCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	c.point = point
	return nil
}
