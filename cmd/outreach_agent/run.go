package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/cold-outreach/internal/config"
	"github.com/jonathan/cold-outreach/internal/pipeline"
	"github.com/spf13/cobra"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full outreach pipeline end-to-end",
	Long: `Orchestrates the whole campaign: resume and contact ingestion in parallel,
email generation with fallbacks, optional SMTP delivery, and session save.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values; secrets fall back to environment
variables (GEMINI_API_KEY, SENDER_EMAIL, SMTP_PASSWORD).`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath   string
	runResume       string
	runContacts     string
	runSession      string
	runAPIKey       string
	runModel        string
	runSenderEmail  string
	runSMTPPassword string
	runSMTPHost     string
	runSMTPPort     int
	runAttachResume bool
	runSend         bool
	runVerbose      bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runResume, "resume", "r", "", "Path to resume PDF or text file")
	runCommand.Flags().StringVarP(&runContacts, "contacts", "c", "", "Path to contact file (csv, pdf, or html)")
	runCommand.Flags().StringVarP(&runSession, "session", "s", "", "Path to write the session file")
	runCommand.Flags().StringVar(&runModel, "model", "", "Override the generation model")
	runCommand.Flags().StringVar(&runSenderEmail, "from", "", "Sender address, also the SMTP username")
	runCommand.Flags().StringVar(&runSMTPPassword, "smtp-password", "", "SMTP app password")
	runCommand.Flags().StringVar(&runSMTPHost, "smtp-host", "", "SMTP host")
	runCommand.Flags().IntVar(&runSMTPPort, "smtp-port", 0, "SMTP submission port")
	runCommand.Flags().BoolVar(&runAttachResume, "attach-resume", false, "Attach the resume file to every email")
	runCommand.Flags().BoolVar(&runSend, "send", false, "Send the generated emails (dry run without this flag)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed summaries at each step")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = runResume
	}
	if cmd.Flags().Changed("contacts") {
		cfg.Contacts = runContacts
	}
	if cmd.Flags().Changed("session") {
		cfg.Session = runSession
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = runModel
	}
	if cmd.Flags().Changed("from") {
		cfg.SenderEmail = runSenderEmail
	}
	if cmd.Flags().Changed("smtp-password") {
		cfg.SMTPPassword = runSMTPPassword
	}
	if cmd.Flags().Changed("smtp-host") {
		cfg.SMTPHost = runSMTPHost
	}
	if cmd.Flags().Changed("smtp-port") {
		cfg.SMTPPort = runSMTPPort
	}
	if cmd.Flags().Changed("attach-resume") {
		cfg.AttachResume = runAttachResume
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Secrets fall back to environment variables, then SMTP defaults
	cfg.ApplyEnv()
	cfg = cfg.MergeWithDefaults(config.Config{})

	// Step 4: Validate required fields
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Contacts == "" {
		return fmt.Errorf("--contacts is required (via flag or config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if runSend && cfg.SenderEmail == "" {
		return fmt.Errorf("--from or SENDER_EMAIL is required when sending")
	}

	opts := pipeline.RunOptions{
		ResumePath:   cfg.Resume,
		ContactsPath: cfg.Contacts,
		APIKey:       cfg.APIKey,
		Model:        cfg.Model,
		SenderEmail:  cfg.SenderEmail,
		SMTPPassword: cfg.SMTPPassword,
		SMTPHost:     cfg.SMTPHost,
		SMTPPort:     cfg.SMTPPort,
		AttachResume: cfg.AttachResume,
		Send:         runSend,
		Verbose:      cfg.Verbose,
		SessionPath:  cfg.Session,
	}

	_, err := pipeline.RunPipeline(ctx, opts)
	return err
}
