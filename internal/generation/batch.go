package generation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/cold-outreach/internal/ratelimit"
	"github.com/jonathan/cold-outreach/internal/types"
)

// ProgressCallback reports batch progress after each contact is
// processed. current counts completed items, so calls run 1..total.
type ProgressCallback func(current, total int)

// Batch drives per-contact email generation sequentially with
// inter-request pacing. Output order equals input order; there is no
// parallelism, which bounds provider load and keeps progress linear.
type Batch struct {
	adapter *Adapter

	// pause is replaceable in tests so pacing can be asserted
	// without real sleeps.
	pause func(ctx context.Context, d time.Duration)
}

// NewBatch returns a Batch driving the given adapter.
func NewBatch(adapter *Adapter) *Batch {
	return &Batch{
		adapter: adapter,
		pause:   sleepContext,
	}
}

// Generate produces one email template per contact, in input order.
// Each item waits the minimum request interval before the provider
// call, except the first. The adapter's internal fallbacks guarantee a
// usable subject/body pair per item, so the batch never aborts
// partway. Context cancellation stops pacing waits early; generation
// for remaining contacts then degrades via the adapter's own
// throttle/fallback policy.
func (b *Batch) Generate(ctx context.Context, contacts []types.Contact, data types.ResumeData, onProgress ProgressCallback) []types.EmailTemplate {
	results := make([]types.EmailTemplate, 0, len(contacts))

	for i, contact := range contacts {
		if i > 0 {
			b.pause(ctx, ratelimit.MinInterval)
		}

		subject, body := b.adapter.GenerateColdEmail(ctx, contact, data)
		results = append(results, types.EmailTemplate{
			ID:      uuid.NewString(),
			Subject: subject,
			Body:    body,
			Company: contact.Company,
			Contact: contact,
		})

		if onProgress != nil {
			onProgress(i+1, len(contacts))
		}
	}

	return results
}

// sleepContext waits for d or until ctx is done, whichever is first.
func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
