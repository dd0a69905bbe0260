package ports

import (
	"context"

	"veggo/internal/core/domain/model/agent"
	"veggo/internal/core/domain/model/order"
	"veggo/internal/core/domain/model/user"
)

// NotificationSink delivers customer and agent notifications.
//
// Every method is fire and forget: implementations log failures and never
// return them, so a broken mail relay cannot fail a business operation.
type NotificationSink interface {
	OrderConfirmed(ctx context.Context, recipient *user.User, o *order.Order)
	OrderStatusChanged(ctx context.Context, recipient *user.User, o *order.Order)
	OrderCancelled(ctx context.Context, recipient *user.User, o *order.Order)
	// OrderAssigned tells the customer which agent will deliver their order.
	OrderAssigned(ctx context.Context, recipient *user.User, o *order.Order, assignee *agent.Agent)

	// AgentDispatched tells the agent about a delivery they were just given.
	AgentDispatched(ctx context.Context, assignee *agent.Agent, o *order.Order)
	AgentApprovalDecided(ctx context.Context, recipient *agent.Agent)
	VerificationRequested(ctx context.Context, recipient *user.User, token string)
	PasswordResetRequested(ctx context.Context, recipient *user.User, token string)
}
