package service

import "context"

// EmailMessage is a single outbound plain-text email.
type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

// EmailSender sends email through a provider.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}
