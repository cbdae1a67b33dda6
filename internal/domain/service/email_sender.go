package service

import "context"

// Email is a single outgoing message.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// EmailSender delivers transactional email.
type EmailSender interface {
	Send(ctx context.Context, email *Email) error
}
