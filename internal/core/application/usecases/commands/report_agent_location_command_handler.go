package commands

import (
	"context"
	"time"
)

// ReportAgentLocationCommandHandler stores an agent's latest reported
// position, which customer order views surface for in-flight deliveries.
type ReportAgentLocationCommandHandler struct {
	uowFactory AgentUoWFactory
	now        func() time.Time
}

// NewReportAgentLocationCommandHandler creates a handler for location reports.
func NewReportAgentLocationCommandHandler(uowFactory AgentUoWFactory) ReportAgentLocationCommandHandler {
	return ReportAgentLocationCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the location report.
func (h *ReportAgentLocationCommandHandler) Handle(ctx context.Context, cmd ReportAgentLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	a, err := uow.AgentRepository().Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if err = a.ReportLocation(cmd.Point(), h.now()); err != nil {
		return err
	}

	if err = uow.AgentRepository().Update(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
