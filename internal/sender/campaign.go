package sender

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/cold-outreach/internal/types"
)

// sendPause is the fixed delay between consecutive messages, keeping
// the SMTP provider from flagging the account for burst sending.
const sendPause = 2 * time.Second

// ProgressCallback reports campaign progress after each send attempt.
type ProgressCallback func(current, total int)

// Campaign sends a batch of generated emails sequentially and records
// the outcome of every attempt. A failed send never aborts the batch.
type Campaign struct {
	transport  Transport
	from       string
	attachment *Attachment

	now   func() time.Time
	pause func(ctx context.Context, d time.Duration)
}

// NewCampaign returns a campaign sending from the given address.
// attachment may be nil to send without one.
func NewCampaign(transport Transport, from string, attachment *Attachment) *Campaign {
	return &Campaign{
		transport:  transport,
		from:       from,
		attachment: attachment,
		now:        time.Now,
		pause:      sleepContext,
	}
}

// Send delivers one message per template, in order, pausing between
// messages. Every attempt yields a tracking record: pending is never
// returned, each record ends sent or failed. Output order equals
// input order.
func (c *Campaign) Send(ctx context.Context, templates []types.EmailTemplate, onProgress ProgressCallback) []types.EmailTracking {
	tracking := make([]types.EmailTracking, 0, len(templates))

	for i, tmpl := range templates {
		if i > 0 {
			c.pause(ctx, sendPause)
		}

		record := types.EmailTracking{
			ID:            uuid.NewString(),
			Contact:       tmpl.Contact,
			EmailTemplate: tmpl,
			Status:        types.StatusPending,
		}

		err := c.transport.Send(ctx, Message{
			From:       c.from,
			FromName:   displayName(c.from),
			To:         tmpl.Contact.Email,
			Subject:    tmpl.Subject,
			Body:       tmpl.Body,
			Attachment: c.attachment,
		})
		if err != nil {
			record.Status = types.StatusFailed
			record.Error = err.Error()
		} else {
			sentAt := c.now()
			record.Status = types.StatusSent
			record.SentAt = &sentAt
		}

		tracking = append(tracking, record)
		if onProgress != nil {
			onProgress(i+1, len(templates))
		}
	}

	return tracking
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
