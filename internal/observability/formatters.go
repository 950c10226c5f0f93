// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cold-outreach/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of the extracted resume.
func (p *Printer) PrintResume(data *types.ResumeData) {
	if data == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:    %s\n", data.Name))
	sb.WriteString(fmt.Sprintf("Email:   %s\n", data.Email))
	if data.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:   %s\n", data.Phone))
	}
	sb.WriteString(fmt.Sprintf("Method:  %s\n", data.ParsingMethod))
	sb.WriteString("\n")

	if data.Experience != "" {
		sb.WriteString("Experience:\n")
		sb.WriteString(fmt.Sprintf("  %s\n", data.Experience))
	}
	if data.Education != "" {
		sb.WriteString("Education:\n")
		sb.WriteString(fmt.Sprintf("  %s\n", data.Education))
	}

	if len(data.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(data.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", data.Skills[i]))
		}
		if len(data.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Skills)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintContacts outputs the parsed contact list.
func (p *Printer) PrintContacts(contacts []types.Contact) {
	if len(contacts) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total contacts: %d\n\n", len(contacts)))

	count := min(len(contacts), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := contacts[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", c.SequenceNumber, c.Name))
		sb.WriteString(fmt.Sprintf("    %s\n", c.Email))
		sb.WriteString(fmt.Sprintf("    %s @ %s", c.Title, c.Company))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(contacts) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more contacts", len(contacts)-maxItemsToShow))
	}

	p.printBox("PARSED CONTACTS", sb.String())
}

// PrintTemplates outputs a preview of the generated email templates.
func (p *Printer) PrintTemplates(templates []types.EmailTemplate) {
	if len(templates) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total emails generated: %d\n\n", len(templates)))

	count := min(len(templates), maxItemsToShow)
	for i := 0; i < count; i++ {
		t := templates[i]
		sb.WriteString(fmt.Sprintf("To: %s (%s)\n", t.Contact.Name, t.Company))
		subject := t.Subject
		if len(subject) > 44 {
			subject = subject[:41] + "..."
		}
		sb.WriteString(fmt.Sprintf("    Subject: %s", subject))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(templates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more emails", len(templates)-maxItemsToShow))
	}

	p.printBox("GENERATED EMAILS", sb.String())
}

// PrintTrackingSummary outputs per-message delivery outcomes and totals.
func (p *Printer) PrintTrackingSummary(tracking []types.EmailTracking) {
	if len(tracking) == 0 {
		return
	}

	var sent, failed int
	var sb strings.Builder

	for _, record := range tracking {
		marker := "✗"
		switch record.Status {
		case types.StatusSent:
			sent++
			marker = "✓"
		case types.StatusFailed:
			failed++
		}
		sb.WriteString(fmt.Sprintf("%s %s <%s>\n", marker, record.Contact.Name, record.Contact.Email))
		if record.Error != "" {
			errMsg := record.Error
			if len(errMsg) > 44 {
				errMsg = errMsg[:41] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", errMsg))
		}
	}

	sb.WriteString(fmt.Sprintf("\nSent: %d  Failed: %d  Total: %d", sent, failed, len(tracking)))

	p.printBox("DELIVERY SUMMARY", sb.String())
}
