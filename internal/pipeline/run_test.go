package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cold-outreach/internal/contacts"
	"github.com/jonathan/cold-outreach/internal/llm"
	"github.com/jonathan/cold-outreach/internal/sender"
	"github.com/jonathan/cold-outreach/internal/session"
	"github.com/jonathan/cold-outreach/internal/types"
)

// scriptedClient plays back canned responses in call order.
type scriptedClient struct {
	responses []string
	errs      []error
	calls     int
}

func (c *scriptedClient) next() (string, error) {
	i := c.calls
	c.calls++
	var resp string
	var err error
	if i < len(c.responses) {
		resp = c.responses[i]
	}
	if i < len(c.errs) {
		err = c.errs[i]
	}
	return resp, err
}

func (c *scriptedClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return c.next()
}

func (c *scriptedClient) GetModel(_ llm.ModelTier) string { return "scripted" }
func (c *scriptedClient) Close() error                    { return nil }

// fakeTransport records every message instead of dialing SMTP.
type fakeTransport struct {
	sent   []sender.Message
	failTo map[string]bool
}

func (t *fakeTransport) Send(_ context.Context, msg sender.Message) error {
	if t.failTo[msg.To] {
		return fmt.Errorf("mailbox unavailable")
	}
	t.sent = append(t.sent, msg)
	return nil
}

const resumeFixture = `Jordan Lee
Email: jordan.lee@example.com
Phone: (555) 123-4567

Experience
Backend engineer building Go services on AWS.

Education
B.S. Computer Science, State University

Skills: Go, PostgreSQL, Docker
`

func writeFixtures(t *testing.T, contactRows string) (resumePath, contactsPath string) {
	t.Helper()
	dir := t.TempDir()

	resumePath = filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte(resumeFixture), 0o644))

	contactsPath = filepath.Join(dir, "contacts.csv")
	content := "Name,Email,Title,Company\n" + contactRows
	require.NoError(t, os.WriteFile(contactsPath, []byte(content), 0o644))
	return resumePath, contactsPath
}

func TestRunPipelineTemplateMode(t *testing.T) {
	resumePath, contactsPath := writeFixtures(t,
		"Alex Smith,alex@acme.com,CTO,Acme Corp\n")
	sessionPath := filepath.Join(t.TempDir(), "session.json")

	var events []ProgressEvent
	sess, err := RunPipeline(context.Background(), RunOptions{
		ResumePath:   resumePath,
		ContactsPath: contactsPath,
		SessionPath:  sessionPath,
		OnProgress:   func(e ProgressEvent) { events = append(events, e) },
	})
	require.NoError(t, err)

	resume := sess.Resume()
	require.NotNil(t, resume)
	assert.Equal(t, "Jordan Lee", resume.Name)
	assert.Equal(t, "jordan.lee@example.com", resume.Email)
	assert.Equal(t, types.MethodRegexFallback, resume.ParsingMethod)

	list := sess.Contacts()
	require.Len(t, list, 1)
	assert.Equal(t, "Alex Smith", list[0].Name)
	assert.Equal(t, 1, list[0].SequenceNumber)

	templates := sess.Templates()
	require.Len(t, templates, 1)
	assert.NotEmpty(t, templates[0].Subject)
	assert.Contains(t, templates[0].Body, "Alex Smith")

	assert.Equal(t, session.StepSend, sess.CurrentStep())
	assert.Empty(t, sess.Tracking())

	categories := make(map[string]bool)
	for _, e := range events {
		categories[e.Category] = true
	}
	assert.True(t, categories[CategoryIngestion])
	assert.True(t, categories[CategoryGeneration])
	assert.False(t, categories[CategoryDelivery])

	loaded := session.New()
	require.NoError(t, loaded.Load(sessionPath))
	assert.Equal(t, sess.Contacts(), loaded.Contacts())
	assert.Equal(t, sess.Templates(), loaded.Templates())
	assert.Equal(t, sess.CurrentStep(), loaded.CurrentStep())
	assert.Empty(t, loaded.Tracking())
}

func TestRunPipelineWithClientAndSend(t *testing.T) {
	resumePath, contactsPath := writeFixtures(t,
		"Alex Smith,alex@acme.com,CTO,Acme Corp\n")

	client := &scriptedClient{
		responses: []string{
			`{"name":"Jordan Lee","email":"jordan.lee@example.com","phone":"(555) 123-4567","experience":"Backend engineer","education":"B.S. Computer Science","skills":["Go","Docker"]}`,
			`{"subject":"Backend experience for Acme Corp","body":"Hi Alex, I build Go services."}`,
		},
	}
	transport := &fakeTransport{}

	sess, err := RunPipeline(context.Background(), RunOptions{
		ResumePath:   resumePath,
		ContactsPath: contactsPath,
		SenderEmail:  "jordan.lee@gmail.com",
		AttachResume: true,
		Send:         true,
		Client:       client,
		Transport:    transport,
	})
	require.NoError(t, err)

	resume := sess.Resume()
	require.NotNil(t, resume)
	assert.Equal(t, types.MethodAI, resume.ParsingMethod)
	assert.Equal(t, "Backend engineer", resume.Experience)

	tracking := sess.Tracking()
	require.Len(t, tracking, 1)
	assert.Equal(t, types.StatusSent, tracking[0].Status)
	require.NotNil(t, tracking[0].SentAt)

	require.Len(t, transport.sent, 1)
	msg := transport.sent[0]
	assert.Equal(t, "jordan.lee@gmail.com", msg.From)
	assert.Equal(t, "alex@acme.com", msg.To)
	assert.Equal(t, "Backend experience for Acme Corp", msg.Subject)
	require.NotNil(t, msg.Attachment)
	assert.Equal(t, "resume.txt", msg.Attachment.Filename)

	assert.Equal(t, session.StepDone, sess.CurrentStep())
}

// Resume extraction records a gate request right before generation starts;
// the runner must absorb the minimum interval so the first contact's email
// still comes from the provider instead of a template.
func TestRunPipelineFirstEmailUsesProvider(t *testing.T) {
	resumePath, contactsPath := writeFixtures(t,
		"Alex Smith,alex@acme.com,CTO,Acme Corp\n")

	client := &scriptedClient{
		responses: []string{
			`{"name":"Jordan Lee","email":"jordan.lee@example.com","phone":"","experience":"Backend engineer","education":"B.S.","skills":["Go"]}`,
			`{"subject":"Go services for Acme Corp","body":"Hi Alex, your platform team caught my eye."}`,
		},
	}

	sess, err := RunPipeline(context.Background(), RunOptions{
		ResumePath:   resumePath,
		ContactsPath: contactsPath,
		Client:       client,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, client.calls)

	templates := sess.Templates()
	require.Len(t, templates, 1)
	assert.Equal(t, "Go services for Acme Corp", templates[0].Subject)
	assert.Contains(t, templates[0].Body, "platform team")
}

func TestRunPipelineSendFailureRecorded(t *testing.T) {
	resumePath, contactsPath := writeFixtures(t,
		"Alex Smith,alex@acme.com,CTO,Acme Corp\n")

	transport := &fakeTransport{failTo: map[string]bool{"alex@acme.com": true}}
	sess, err := RunPipeline(context.Background(), RunOptions{
		ResumePath:   resumePath,
		ContactsPath: contactsPath,
		SenderEmail:  "jordan.lee@gmail.com",
		Send:         true,
		Transport:    transport,
	})
	require.NoError(t, err)

	tracking := sess.Tracking()
	require.Len(t, tracking, 1)
	assert.Equal(t, types.StatusFailed, tracking[0].Status)
	assert.Contains(t, tracking[0].Error, "mailbox unavailable")
	assert.Equal(t, session.StepDone, sess.CurrentStep())
}

func TestRunPipelineMissingResume(t *testing.T) {
	_, contactsPath := writeFixtures(t, "Alex Smith,alex@acme.com,CTO,Acme Corp\n")

	_, err := RunPipeline(context.Background(), RunOptions{
		ResumePath:   filepath.Join(t.TempDir(), "missing.pdf"),
		ContactsPath: contactsPath,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume branch failed")
}

func TestRunPipelineNoValidContacts(t *testing.T) {
	resumePath, _ := writeFixtures(t, "Alex Smith,alex@acme.com,CTO,Acme Corp\n")

	dir := t.TempDir()
	contactsPath := filepath.Join(dir, "contacts.csv")
	require.NoError(t, os.WriteFile(contactsPath, []byte("nothing useful here\n"), 0o644))

	_, err := RunPipeline(context.Background(), RunOptions{
		ResumePath:   resumePath,
		ContactsPath: contactsPath,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contacts branch failed")
	assert.ErrorIs(t, err, contacts.ErrNoContacts)
}

func TestRunPipelineMissingContactsFile(t *testing.T) {
	resumePath, _ := writeFixtures(t, "Alex Smith,alex@acme.com,CTO,Acme Corp\n")

	_, err := RunPipeline(context.Background(), RunOptions{
		ResumePath:   resumePath,
		ContactsPath: filepath.Join(t.TempDir(), "missing.csv"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read contacts file")
}
