package smtpmail

import (
	"context"
	"log/slog"
	"net/smtp"
	"testing"
	"time"

	"veggo/internal/core/domain/model/agent"
	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/order"
	"veggo/internal/core/domain/model/product"
	"veggo/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newCapturingSink(t *testing.T, sendErr error) (*Sink, *[]capturedMail) {
	t.Helper()
	var mails []capturedMail
	sink := NewSink(Config{
		Host:    "mail.example.com",
		Port:    587,
		From:    "orders@example.com",
		BaseURL: "https://veggo.example.com",
	}, slog.Default())
	sink.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		mails = append(mails, capturedMail{addr: addr, from: from, to: to, msg: string(msg)})
		return sendErr
	}
	return sink, &mails
}

func testRecipient(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(
		kernel.NewUUID(), "ravi", "ravi@example.com", "hash", "+911234567890",
		"12 Market Street", nil, "verify-token", time.Now())
	require.NoError(t, err)
	return u
}

func testMailOrder(t *testing.T) *order.Order {
	t.Helper()
	destination, err := kernel.NewGeoPoint(28.7041, 77.1025)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Tomato", 2, product.UnitKg, 40)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), "VG20260314000001", kernel.NewUUID(), []order.Item{item},
		"12 Market Street", destination, "+911234567890", "", 3.2, 82, time.Now())
	require.NoError(t, err)
	return o
}

func TestSink_OrderConfirmed_SendsToCustomer(t *testing.T) {
	sink, mails := newCapturingSink(t, nil)

	sink.OrderConfirmed(context.Background(), testRecipient(t), testMailOrder(t))

	require.Len(t, *mails, 1)
	mail := (*mails)[0]
	assert.Equal(t, "mail.example.com:587", mail.addr)
	assert.Equal(t, "orders@example.com", mail.from)
	assert.Equal(t, []string{"ravi@example.com"}, mail.to)
	assert.Contains(t, mail.msg, "Subject: Order VG20260314000001 confirmed")
	assert.Contains(t, mail.msg, "Total: 162.00")
}

func testAssignee(t *testing.T) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(
		kernel.NewUUID(), "Sunil", "sunil-agent@example.com", "+919876543210", "hash",
		agent.VehicleBike, "DL-1420110012345", time.Now())
	require.NoError(t, err)
	return a
}

func TestSink_OrderAssigned_SendsToCustomerNotAgent(t *testing.T) {
	sink, mails := newCapturingSink(t, nil)

	sink.OrderAssigned(context.Background(), testRecipient(t), testMailOrder(t), testAssignee(t))

	require.Len(t, *mails, 1)
	mail := (*mails)[0]
	assert.Equal(t, []string{"ravi@example.com"}, mail.to)
	assert.Contains(t, mail.msg, "Subject: Order VG20260314000001 assigned")
	assert.Contains(t, mail.msg, "assigned to Sunil")
}

func TestSink_AgentDispatched_SendsToAgent(t *testing.T) {
	sink, mails := newCapturingSink(t, nil)

	sink.AgentDispatched(context.Background(), testAssignee(t), testMailOrder(t))

	require.Len(t, *mails, 1)
	mail := (*mails)[0]
	assert.Equal(t, []string{"sunil-agent@example.com"}, mail.to)
	assert.Contains(t, mail.msg, "Deliver to: 12 Market Street")
}

func TestSink_VerificationRequested_LinksToken(t *testing.T) {
	sink, mails := newCapturingSink(t, nil)

	sink.VerificationRequested(context.Background(), testRecipient(t), "tok-123")

	require.Len(t, *mails, 1)
	assert.Contains(t, (*mails)[0].msg, "https://veggo.example.com/api/user/verify-email?token=tok-123")
}

func TestSink_DeliveryFailure_DoesNotPanicOrReturn(t *testing.T) {
	sink, mails := newCapturingSink(t, assert.AnError)

	sink.OrderCancelled(context.Background(), testRecipient(t), testMailOrder(t))

	require.Len(t, *mails, 1)
}
