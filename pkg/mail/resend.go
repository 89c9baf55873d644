package mail

import (
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Message is one outbound email.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

type ResendMailer struct {
	client *resend.Client
	logger *zap.Logger
}

func NewResendMailer(apiKey string, logger *zap.Logger) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey), logger: logger}
}

func (m *ResendMailer) Send(msg *Message) error {
	sent, err := m.client.Emails.Send(&resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		m.logger.Error("email send failed",
			zap.String("subject", msg.Subject), zap.Error(err))
		return err
	}
	m.logger.Info("email sent",
		zap.String("id", sent.Id), zap.String("subject", msg.Subject))
	return nil
}
