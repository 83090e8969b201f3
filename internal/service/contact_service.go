package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"injai_channel/internal/mailer"
	"injai_channel/internal/model"
)

// ContactService forwards contact form submissions by email
type ContactService interface {
	Submit(ctx context.Context, req model.ContactRequest) error
}

type contactService struct {
	mail      mailer.Sender
	recipient string
}

// NewContactService creates a new ContactService delivering to recipient
func NewContactService(mail mailer.Sender, recipient string) ContactService {
	return &contactService{mail: mail, recipient: recipient}
}

// Submit forwards the message to the site owner, then confirms receipt to the sender
func (s *contactService) Submit(ctx context.Context, req model.ContactRequest) error {
	data := mailer.ContactData{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	}
	if data.Name == "" || data.Email == "" || data.Subject == "" || strings.TrimSpace(data.Message) == "" {
		return invalid("All fields are required")
	}

	if s.recipient == "" {
		return errors.New("contact recipient is not configured")
	}

	forward, err := mailer.ContactForward(s.recipient, data)
	if err != nil {
		return err
	}
	if err := s.mail.Send(ctx, forward); err != nil {
		return fmt.Errorf("failed to forward contact form: %w", err)
	}

	reply, err := mailer.ContactAutoReply(data)
	if err != nil {
		return err
	}
	if err := s.mail.Send(ctx, reply); err != nil {
		return fmt.Errorf("failed to send contact auto-reply: %w", err)
	}
	return nil
}
