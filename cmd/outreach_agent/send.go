package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/cold-outreach/internal/observability"
	"github.com/jonathan/cold-outreach/internal/sender"
	"github.com/jonathan/cold-outreach/internal/session"
	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send the generated emails in a session",
	Long: `Send every generated email in a session over SMTP and record per-message
tracking back into the session file. The SMTP connection is verified before
the first send; individual delivery failures are recorded without aborting
the rest of the campaign.`,
	RunE: runSendCmd,
}

var (
	sendSessionFile  string
	sendSenderEmail  string
	sendSMTPPassword string
	sendSMTPHost     string
	sendSMTPPort     int
	sendAttachFile   string
)

func init() {
	sendCmd.Flags().StringVarP(&sendSessionFile, "session", "s", "", "Path to session file with generated emails")
	sendCmd.Flags().StringVar(&sendSenderEmail, "from", "", "Sender address, also the SMTP username (defaults to SENDER_EMAIL env var)")
	sendCmd.Flags().StringVar(&sendSMTPPassword, "smtp-password", "", "SMTP app password (defaults to SMTP_PASSWORD env var)")
	sendCmd.Flags().StringVar(&sendSMTPHost, "smtp-host", "smtp.gmail.com", "SMTP host")
	sendCmd.Flags().IntVar(&sendSMTPPort, "smtp-port", 587, "SMTP submission port")
	sendCmd.Flags().StringVar(&sendAttachFile, "attach", "", "Path to a file attached to every email, typically the resume PDF")
	_ = sendCmd.MarkFlagRequired("session")

	rootCmd.AddCommand(sendCmd)
}

func runSendCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	sess := session.New()
	if err := sess.Load(sendSessionFile); err != nil {
		return err
	}
	templates := sess.Templates()
	if len(templates) == 0 {
		return fmt.Errorf("session has no generated emails; run generate first")
	}

	from := sendSenderEmail
	if from == "" {
		from = os.Getenv("SENDER_EMAIL")
	}
	password := sendSMTPPassword
	if password == "" {
		password = os.Getenv("SMTP_PASSWORD")
	}

	transport, err := sender.NewSMTPTransport(sender.SMTPConfig{
		Host:     sendSMTPHost,
		Port:     sendSMTPPort,
		Username: from,
		Password: password,
	})
	if err != nil {
		return err
	}
	if err := transport.Verify(ctx); err != nil {
		return err
	}

	var attachment *sender.Attachment
	if sendAttachFile != "" {
		attachment, err = sender.LoadAttachment(sendAttachFile)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: %v, sending without attachment\n", err)
		}
	}

	campaign := sender.NewCampaign(transport, from, attachment)
	tracking := campaign.Send(ctx, templates, func(current, total int) {
		_, _ = fmt.Fprintf(os.Stdout, "Sent email %d/%d\n", current, total)
	})

	sess.SetTracking(tracking)
	sess.AdvanceTo(session.StepDone)
	if err := sess.Save(sendSessionFile); err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintTrackingSummary(tracking)
	return nil
}
