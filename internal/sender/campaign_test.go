package sender

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cold-outreach/internal/types"
)

// fakeTransport records sent messages and fails on scripted recipients.
type fakeTransport struct {
	sent   []Message
	failTo map[string]error
}

func (f *fakeTransport) Send(_ context.Context, msg Message) error {
	f.sent = append(f.sent, msg)
	if err, ok := f.failTo[msg.To]; ok {
		return err
	}
	return nil
}

func testTemplates() []types.EmailTemplate {
	contacts := []types.Contact{
		{SequenceNumber: 1, Name: "Alex Smith", Email: "alex@acme.com", Company: "Acme"},
		{SequenceNumber: 2, Name: "Sam Lee", Email: "sam@globex.com", Company: "Globex"},
	}
	return []types.EmailTemplate{
		{ID: "t1", Subject: "Hello Acme", Body: "Body 1", Company: "Acme", Contact: contacts[0]},
		{ID: "t2", Subject: "Hello Globex", Body: "Body 2", Company: "Globex", Contact: contacts[1]},
	}
}

func newTestCampaign(transport Transport, attachment *Attachment) (*Campaign, *[]time.Duration) {
	c := NewCampaign(transport, "jane.roe@example.com", attachment)
	c.now = func() time.Time { return time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC) }
	var pauses []time.Duration
	c.pause = func(_ context.Context, d time.Duration) { pauses = append(pauses, d) }
	return c, &pauses
}

func TestCampaignSend_AllSucceed(t *testing.T) {
	transport := &fakeTransport{}
	c, pauses := newTestCampaign(transport, nil)

	var progress [][2]int
	tracking := c.Send(context.Background(), testTemplates(), func(current, total int) {
		progress = append(progress, [2]int{current, total})
	})

	require.Len(t, tracking, 2)
	for _, record := range tracking {
		assert.Equal(t, types.StatusSent, record.Status)
		require.NotNil(t, record.SentAt)
		assert.Empty(t, record.Error)
		assert.NotEmpty(t, record.ID)
	}
	assert.NotEqual(t, tracking[0].ID, tracking[1].ID)

	// Sender identity is derived from the address.
	require.Len(t, transport.sent, 2)
	assert.Equal(t, "jane.roe@example.com", transport.sent[0].From)
	assert.Equal(t, "jane.roe", transport.sent[0].FromName)
	assert.Equal(t, "alex@acme.com", transport.sent[0].To)

	// One pause between the two messages.
	assert.Equal(t, []time.Duration{sendPause}, *pauses)
	assert.Equal(t, [][2]int{{1, 2}, {2, 2}}, progress)
}

func TestCampaignSend_FailureDoesNotAbort(t *testing.T) {
	transport := &fakeTransport{failTo: map[string]error{
		"alex@acme.com": errors.New("550 mailbox unavailable"),
	}}
	c, _ := newTestCampaign(transport, nil)

	tracking := c.Send(context.Background(), testTemplates(), nil)

	require.Len(t, tracking, 2)
	assert.Equal(t, types.StatusFailed, tracking[0].Status)
	assert.Contains(t, tracking[0].Error, "550")
	assert.Nil(t, tracking[0].SentAt)

	// The second message still went out.
	assert.Equal(t, types.StatusSent, tracking[1].Status)
	assert.Len(t, transport.sent, 2)
}

func TestCampaignSend_AttachmentOnEveryMessage(t *testing.T) {
	transport := &fakeTransport{}
	attachment := &Attachment{Filename: "resume.pdf", Data: []byte("%PDF-1.4")}
	c, _ := newTestCampaign(transport, attachment)

	c.Send(context.Background(), testTemplates(), nil)

	require.Len(t, transport.sent, 2)
	for _, msg := range transport.sent {
		require.NotNil(t, msg.Attachment)
		assert.Equal(t, "resume.pdf", msg.Attachment.Filename)
	}
}

func TestCampaignSend_Empty(t *testing.T) {
	transport := &fakeTransport{}
	c, pauses := newTestCampaign(transport, nil)

	tracking := c.Send(context.Background(), nil, nil)

	assert.Empty(t, tracking)
	assert.Empty(t, *pauses)
	assert.Empty(t, transport.sent)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "jane.roe", displayName("jane.roe@example.com"))
	assert.Equal(t, "noatsign", displayName("noatsign"))
}
