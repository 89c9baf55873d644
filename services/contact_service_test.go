package services

import (
	"errors"
	"testing"

	"github.com/NyinakuJoshua/SweetBites/pkg/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMailer struct {
	sent []*mail.Message
	err  error
}

func (f *fakeMailer) Send(msg *mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func TestContactSendsBothEmails(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewContactService(mailer, "SweetBites <no-reply@sweetbites.shop>", "owner@sweetbites.shop", zap.NewNop())

	err := svc.Submit(&ContactIn{
		Name:    "Jordan",
		Email:   "jordan@example.com",
		Phone:   "555-0100",
		Subject: "Wedding order",
		Message: "Do you deliver on Sundays?",
	})
	require.NoError(t, err)

	require.Len(t, mailer.sent, 2)

	business := mailer.sent[0]
	assert.Equal(t, []string{"owner@sweetbites.shop"}, business.To)
	assert.Equal(t, "jordan@example.com", business.ReplyTo)
	assert.Contains(t, business.Subject, "Wedding order")
	assert.Contains(t, business.HTML, "555-0100")

	customer := mailer.sent[1]
	assert.Equal(t, []string{"jordan@example.com"}, customer.To)
	assert.Contains(t, customer.HTML, "Jordan")
}

func TestContactEscapesMarkup(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewContactService(mailer, "s", "owner@sweetbites.shop", zap.NewNop())

	err := svc.Submit(&ContactIn{
		Name:    "<script>alert(1)</script>",
		Email:   "a@example.com",
		Subject: "hi",
		Message: "hello",
	})
	require.NoError(t, err)
	assert.NotContains(t, mailer.sent[0].HTML, "<script>")
}

func TestContactMailerFailureSurfaces(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("provider down")}
	svc := NewContactService(mailer, "s", "owner@sweetbites.shop", zap.NewNop())

	err := svc.Submit(&ContactIn{
		Name: "A", Email: "a@example.com", Subject: "s", Message: "m",
	})
	assert.Error(t, err)
	assert.Empty(t, mailer.sent)
}
