// Package smtpmail delivers notification emails over a plain SMTP relay.
// Every send is fire and forget: failures are logged and counted, never
// returned, so a broken relay cannot fail an order.
package smtpmail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"veggo/internal/core/domain/model/agent"
	"veggo/internal/core/domain/model/order"
	"veggo/internal/core/domain/model/user"
	"veggo/internal/pkg/metrics"
)

// Config carries the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	From     string
	Username string
	Password string

	// BaseURL is the public address of the service, used to build
	// verification and reset links.
	BaseURL string
}

// Sink implements ports.NotificationSink over net/smtp.
type Sink struct {
	cfg    Config
	logger *slog.Logger
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSink creates an email notification sink.
func NewSink(cfg Config, logger *slog.Logger) *Sink {
	return &Sink{
		cfg:    cfg,
		logger: logger,
		send:   smtp.SendMail,
	}
}

func (s *Sink) OrderConfirmed(_ context.Context, recipient *user.User, o *order.Order) {
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour order %s has been placed.\r\n\r\nSubtotal: %.2f\r\nDelivery fee: %.2f\r\nTotal: %.2f\r\n\r\nWe will keep you posted.\r\n",
		recipient.Username(), o.Number(), o.Subtotal(), o.DeliveryFee(), o.FinalPrice())
	s.deliver(recipient.Email(), "Order "+o.Number()+" confirmed", body)
}

func (s *Sink) OrderStatusChanged(_ context.Context, recipient *user.User, o *order.Order) {
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour order %s is now %s.\r\n",
		recipient.Username(), o.Number(), o.Status())
	s.deliver(recipient.Email(), "Order "+o.Number()+" update", body)
}

func (s *Sink) OrderCancelled(_ context.Context, recipient *user.User, o *order.Order) {
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour order %s has been cancelled. Any reserved stock has been released.\r\n",
		recipient.Username(), o.Number())
	s.deliver(recipient.Email(), "Order "+o.Number()+" cancelled", body)
}

func (s *Sink) OrderAssigned(_ context.Context, recipient *user.User, o *order.Order, assignee *agent.Agent) {
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour order %s has been assigned to %s, who will deliver it to you.\r\n",
		recipient.Username(), o.Number(), assignee.Name())
	s.deliver(recipient.Email(), "Order "+o.Number()+" assigned", body)
}

func (s *Sink) AgentDispatched(_ context.Context, assignee *agent.Agent, o *order.Order) {
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nOrder %s has been assigned to you.\r\n\r\nDeliver to: %s\r\nCustomer phone: %s\r\n",
		assignee.Name(), o.Number(), o.DeliveryAddress(), o.Phone())
	s.deliver(assignee.Email(), "New delivery "+o.Number(), body)
}

func (s *Sink) AgentApprovalDecided(_ context.Context, recipient *agent.Agent) {
	var body string
	var subject string
	if recipient.IsApproved() {
		subject = "Your agent account is approved"
		body = fmt.Sprintf("Hi %s,\r\n\r\nYour account has been approved. You can now sign in and accept deliveries.\r\n", recipient.Name())
	} else {
		subject = "Your agent account status"
		body = fmt.Sprintf("Hi %s,\r\n\r\nYour account is not approved at this time.\r\n", recipient.Name())
	}
	s.deliver(recipient.Email(), subject, body)
}

func (s *Sink) VerificationRequested(_ context.Context, recipient *user.User, token string) {
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nPlease verify your email address:\r\n\r\n%s/api/user/verify-email?token=%s\r\n",
		recipient.Username(), s.cfg.BaseURL, token)
	s.deliver(recipient.Email(), "Verify your email", body)
}

func (s *Sink) PasswordResetRequested(_ context.Context, recipient *user.User, token string) {
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nUse this token to reset your password: %s\r\n\r\nIt expires in one hour. If you did not request a reset, ignore this email.\r\n",
		recipient.Username(), token)
	s.deliver(recipient.Email(), "Password reset", body)
}

func (s *Sink) deliver(to, subject, body string) {
	msg := strings.Join([]string{
		"From: " + s.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	if err := s.send(addr, auth, s.cfg.From, []string{to}, []byte(msg)); err != nil {
		metrics.NotificationsFailed.Inc()
		s.logger.Error("email delivery failed", "to", to, "subject", subject, "error", err)
		return
	}

	s.logger.Info("email sent", "to", to, "subject", subject)
}
