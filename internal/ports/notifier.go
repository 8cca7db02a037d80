package ports

import "context"

// A message submitted through the contact form.
type ContactMessage struct {
	Name        string
	Email       string
	PhoneNumber string
	Message     string
}

// Contract for delivering contact messages to the operators.
type Notifier interface {
	SendContactMessage(ctx context.Context, msg ContactMessage) error
}
