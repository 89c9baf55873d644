package services

import (
	"fmt"
	"html"

	"github.com/NyinakuJoshua/SweetBites/pkg/mail"
	"go.uber.org/zap"
)

// Mailer delivers one email; the Resend client implements it in pkg/mail.
type Mailer interface {
	Send(msg *mail.Message) error
}

// ContactService handles the contact form: one notification to the shop,
// one acknowledgment back to the customer.
type ContactService struct {
	Mailer        Mailer
	Sender        string
	BusinessEmail string
	Logger        *zap.Logger
}

func NewContactService(m Mailer, sender, businessEmail string, logger *zap.Logger) *ContactService {
	return &ContactService{Mailer: m, Sender: sender, BusinessEmail: businessEmail, Logger: logger}
}

type ContactIn struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (s *ContactService) Submit(in *ContactIn) error {
	if err := s.Mailer.Send(s.businessMessage(in)); err != nil {
		return err
	}
	if err := s.Mailer.Send(s.customerMessage(in)); err != nil {
		return err
	}
	s.Logger.Info("contact form delivered",
		zap.String("from", in.Email), zap.String("subject", in.Subject))
	return nil
}

func (s *ContactService) businessMessage(in *ContactIn) *mail.Message {
	phone := ""
	if in.Phone != "" {
		phone = fmt.Sprintf("<p><strong>Phone:</strong> %s</p>", html.EscapeString(in.Phone))
	}
	body := fmt.Sprintf(`
		<h2>New Contact Form Submission</h2>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		%s
		<p><strong>Subject:</strong> %s</p>
		<p style="white-space: pre-wrap;">%s</p>`,
		html.EscapeString(in.Name),
		html.EscapeString(in.Email),
		phone,
		html.EscapeString(in.Subject),
		html.EscapeString(in.Message),
	)
	return &mail.Message{
		From:    s.Sender,
		To:      []string{s.BusinessEmail},
		ReplyTo: in.Email,
		Subject: "New Contact Form: " + in.Subject,
		HTML:    body,
	}
}

func (s *ContactService) customerMessage(in *ContactIn) *mail.Message {
	body := fmt.Sprintf(`
		<h1>Thank you, %s!</h1>
		<p>We've received your message and will get back to you at
		<strong>%s</strong> within 24 hours.</p>
		<p><strong>Subject:</strong> %s</p>
		<p>SweetBites Bakery — 123 Sweet Street, Cake City</p>`,
		html.EscapeString(in.Name),
		html.EscapeString(in.Email),
		html.EscapeString(in.Subject),
	)
	return &mail.Message{
		From:    s.Sender,
		To:      []string{in.Email},
		Subject: "We received your message!",
		HTML:    body,
	}
}
