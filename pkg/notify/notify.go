// Package notify builds and sends the pipeline's outbound email: one HTML
// notification per current staff recipient, the former-staff and aggregate
// report messages with workbook attachments, and the terminal failure
// notice. Transport failures are returned as values, recorded per
// recipient, and never abort the remaining sends.
package notify

import "context"

// Message is one outbound notification.
type Message struct {
	To      []string
	Cc      []string
	Subject string
	HTML    string

	// AttachmentPath is an optional xlsx attachment.
	AttachmentPath string
}

// Sender delivers a single message: one connection opened, authenticated,
// and closed per call. Implementations return a DeliveryError on failure.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, msg Message) error

// Send implements the Sender interface.
func (f SenderFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// Failure records one recipient whose notification could not be
// delivered, for the end-of-run failure notice.
type Failure struct {
	Name  string // recipient display name, when known
	Email string
	Err   error
}
