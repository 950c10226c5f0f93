// Package pipeline orchestrates the full outreach flow: ingest resume
// and contacts, generate personalized emails, and optionally send them.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cold-outreach/internal/contacts"
	"github.com/jonathan/cold-outreach/internal/generation"
	"github.com/jonathan/cold-outreach/internal/llm"
	"github.com/jonathan/cold-outreach/internal/observability"
	"github.com/jonathan/cold-outreach/internal/pdftext"
	"github.com/jonathan/cold-outreach/internal/ratelimit"
	"github.com/jonathan/cold-outreach/internal/sender"
	"github.com/jonathan/cold-outreach/internal/session"
	"github.com/jonathan/cold-outreach/internal/types"
)

// Progress categories
const (
	CategoryIngestion  = "ingestion"
	CategoryGeneration = "generation"
	CategoryDelivery   = "delivery"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ResumePath   string
	ContactsPath string
	APIKey       string
	Model        string
	SenderEmail  string
	SMTPPassword string
	SMTPHost     string
	SMTPPort     int
	AttachResume bool
	Send         bool
	Verbose      bool
	SessionPath  string
	OnProgress   ProgressCallback

	// Client and Transport override the provider and SMTP wiring,
	// used by tests. When Client is nil and APIKey is empty the
	// pipeline runs in template mode.
	Client    llm.Client
	Transport sender.Transport
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			Content:  content,
		})
	}
}

// RunPipeline orchestrates the full outreach pipeline and returns the
// resulting session. Ingestion failures abort the run; generation and
// delivery degrade per-item instead of failing.
func RunPipeline(ctx context.Context, opts RunOptions) (*session.Session, error) {
	printer := observability.NewPrinter(os.Stdout)

	client, err := resolveClient(ctx, &opts)
	if err != nil {
		return nil, err
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}
	gate := ratelimit.New()
	adapter := generation.NewAdapter(client, gate)

	// =====================================================================
	// PARALLEL EXECUTION: Resume Branch + Contacts Branch
	// =====================================================================
	fmt.Printf("Step 1/4: Ingesting resume and contacts...\n")

	var resumeData types.ResumeData
	var contactList []types.Contact

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := runResumeBranch(gCtx, &opts, adapter)
		if err != nil {
			return fmt.Errorf("resume branch failed: %w", err)
		}
		resumeData = data
		return nil
	})

	g.Go(func() error {
		list, err := runContactsBranch(&opts)
		if err != nil {
			return fmt.Errorf("contacts branch failed: %w", err)
		}
		contactList = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Verbose {
		printer.PrintResume(&resumeData)
		printer.PrintContacts(contactList)
	}
	emitProgress(&opts, "ingest", CategoryIngestion,
		fmt.Sprintf("Extracted resume for %s and %d contacts", resumeData.Name, len(contactList)), nil)

	sess := session.New()
	sess.SetResume(resumeData)
	sess.SetContacts(contactList)
	sess.AdvanceTo(session.StepGenerate)

	// Step 2: generate one email per contact, sequentially
	fmt.Printf("Step 2/4: Generating %d personalized emails...\n", len(contactList))
	if client != nil {
		// Extraction consumed the gate's minimum interval; the first
		// generation request must wait it out or it gets throttled
		// into a template email.
		sleepContext(ctx, ratelimit.MinInterval)
	}
	batch := generation.NewBatch(adapter)
	templates := batch.Generate(ctx, sess.Contacts(), resumeData, func(current, total int) {
		emitProgress(&opts, "generate", CategoryGeneration,
			fmt.Sprintf("Generated email %d/%d", current, total), nil)
	})
	sess.SetTemplates(templates)
	if opts.Verbose {
		printer.PrintTemplates(templates)
	}

	// Step 3: deliver, when requested
	if opts.Send {
		fmt.Printf("Step 3/4: Sending %d emails...\n", len(templates))
		tracking, err := runDelivery(ctx, &opts, templates)
		if err != nil {
			return nil, err
		}
		sess.SetTracking(tracking)
		sess.AdvanceTo(session.StepDone)
		if opts.Verbose {
			printer.PrintTrackingSummary(tracking)
		}
		emitProgress(&opts, "send", CategoryDelivery,
			fmt.Sprintf("Delivery finished for %d emails", len(tracking)), nil)
	} else {
		fmt.Printf("Step 3/4: Skipping delivery (send not requested)\n")
		sess.AdvanceTo(session.StepSend)
	}

	// Step 4: persist the session
	if opts.SessionPath != "" {
		fmt.Printf("Step 4/4: Saving session to %s...\n", opts.SessionPath)
		if err := sess.Save(opts.SessionPath); err != nil {
			return nil, err
		}
	} else {
		fmt.Printf("Step 4/4: Skipping session save (no session path)\n")
	}

	return sess, nil
}

// resolveClient picks the LLM client: an injected test client, a real
// Gemini client when an API key is present, or nil for template mode.
func resolveClient(ctx context.Context, opts *RunOptions) (llm.Client, error) {
	if opts.Client != nil {
		return opts.Client, nil
	}
	if opts.APIKey == "" {
		fmt.Printf("Warning: no API key configured, using heuristic extraction and template emails\n")
		return nil, nil
	}
	config := llm.DefaultConfig()
	if opts.Model != "" {
		config = config.WithModel(llm.TierAdvanced, opts.Model)
	}
	client, err := llm.NewClient(ctx, config, opts.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	return client, nil
}

// runResumeBranch reads the resume file, extracts its text, and turns
// it into a structured record via the adapter's fallback chain. Files
// without a PDF header are read as plain text.
func runResumeBranch(ctx context.Context, opts *RunOptions, adapter *generation.Adapter) (types.ResumeData, error) {
	raw, err := os.ReadFile(opts.ResumePath)
	if err != nil {
		return types.ResumeData{}, fmt.Errorf("failed to read resume file: %w", err)
	}

	text := string(raw)
	if bytes.HasPrefix(raw, []byte("%PDF")) {
		text, err = pdftext.ExtractText(raw)
		if err != nil {
			return types.ResumeData{}, fmt.Errorf("failed to extract resume text: %w", err)
		}
	}

	return adapter.ExtractResume(ctx, text), nil
}

// runContactsBranch reads the contact file and runs the parse strategy
// chain for its type.
func runContactsBranch(opts *RunOptions) ([]types.Contact, error) {
	raw, err := os.ReadFile(opts.ContactsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read contacts file: %w", err)
	}

	return contacts.Parse(raw, contacts.KindFromPath(opts.ContactsPath))
}

// runDelivery sends the generated emails and returns tracking records.
func runDelivery(ctx context.Context, opts *RunOptions, templates []types.EmailTemplate) ([]types.EmailTracking, error) {
	transport := opts.Transport
	if transport == nil {
		smtp, err := sender.NewSMTPTransport(sender.SMTPConfig{
			Host:     opts.SMTPHost,
			Port:     opts.SMTPPort,
			Username: opts.SenderEmail,
			Password: opts.SMTPPassword,
		})
		if err != nil {
			return nil, err
		}
		if err := smtp.Verify(ctx); err != nil {
			return nil, err
		}
		transport = smtp
	}

	var attachment *sender.Attachment
	if opts.AttachResume {
		var err error
		attachment, err = sender.LoadAttachment(opts.ResumePath)
		if err != nil {
			// Continue without the attachment rather than failing the run.
			fmt.Printf("Warning: %v, sending without attachment\n", err)
		}
	}

	campaign := sender.NewCampaign(transport, opts.SenderEmail, attachment)
	tracking := campaign.Send(ctx, templates, func(current, total int) {
		emitProgress(opts, "send", CategoryDelivery,
			fmt.Sprintf("Sent email %d/%d", current, total), nil)
	})
	return tracking, nil
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
