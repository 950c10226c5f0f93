// Package sender delivers generated outreach emails over SMTP and
// records per-message delivery tracking.
package sender

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Attachment is an optional file attached to every outgoing message,
// typically the candidate's resume PDF.
type Attachment struct {
	Filename string
	Data     []byte
}

// Message is one outbound email, fully resolved.
type Message struct {
	From       string
	FromName   string
	To         string
	Subject    string
	Body       string
	Attachment *Attachment
}

// Transport delivers a single message. Implementations must be safe
// for sequential reuse across a campaign.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}

// LoadAttachment reads a file into an Attachment. Callers should treat
// a failure here as "send without attachment", not as a fatal error.
func LoadAttachment(path string) (*Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment %s: %w", path, err)
	}
	return &Attachment{
		Filename: filepath.Base(path),
		Data:     data,
	}, nil
}

// displayName derives a human-readable sender name from an email
// address, matching the "local part as name" convention.
func displayName(email string) string {
	if idx := strings.Index(email, "@"); idx > 0 {
		return email[:idx]
	}
	return email
}
