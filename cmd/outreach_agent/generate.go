package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cold-outreach/internal/generation"
	"github.com/jonathan/cold-outreach/internal/llm"
	"github.com/jonathan/cold-outreach/internal/observability"
	"github.com/jonathan/cold-outreach/internal/ratelimit"
	"github.com/jonathan/cold-outreach/internal/session"
	"github.com/jonathan/cold-outreach/internal/types"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one personalized email per contact",
	Long: `Generate a cold email for every contact in a session. The session is either
an existing session file or is assembled from the JSON outputs of parse-resume
and parse-contacts. Generation paces requests and falls back to built-in
templates when the provider is throttled or unavailable.`,
	RunE: runGenerate,
}

var (
	generateSessionFile  string
	generateResumeJSON   string
	generateContactsJSON string
	generateAPIKey       string
	generateModel        string
	generateVerbose      bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateSessionFile, "session", "s", "", "Path to session file (read if it exists, written after generation)")
	generateCmd.Flags().StringVar(&generateResumeJSON, "resume-json", "", "Path to resume JSON from parse-resume (used when the session file does not exist)")
	generateCmd.Flags().StringVar(&generateContactsJSON, "contacts-json", "", "Path to contacts JSON from parse-contacts (used when the session file does not exist)")
	generateCmd.Flags().StringVar(&generateAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "Override the generation model")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print the generated emails")
	_ = generateCmd.MarkFlagRequired("session")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	sess, err := loadOrAssembleSession()
	if err != nil {
		return err
	}

	resume := sess.Resume()
	if resume == nil {
		return fmt.Errorf("session has no resume data; run parse-resume first or use --resume-json")
	}
	list := sess.Contacts()
	if len(list) == 0 {
		return fmt.Errorf("session has no contacts; run parse-contacts first or use --contacts-json")
	}

	apiKey := generateAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var client llm.Client
	if apiKey != "" {
		config := llm.DefaultConfig()
		if generateModel != "" {
			config = config.WithModel(llm.TierAdvanced, generateModel)
		}
		client, err = llm.NewClient(ctx, config, apiKey)
		if err != nil {
			return fmt.Errorf("failed to initialize LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: no API key configured, using template emails\n")
	}

	adapter := generation.NewAdapter(client, ratelimit.New())
	batch := generation.NewBatch(adapter)
	templates := batch.Generate(ctx, list, *resume, func(current, total int) {
		_, _ = fmt.Fprintf(os.Stdout, "Generated email %d/%d\n", current, total)
	})

	sess.SetTemplates(templates)
	sess.AdvanceTo(session.StepSend)
	if err := sess.Save(generateSessionFile); err != nil {
		return err
	}

	if generateVerbose {
		observability.NewPrinter(os.Stdout).PrintTemplates(templates)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Generated %d emails\n", len(templates))
	_, _ = fmt.Fprintf(os.Stdout, "Session: %s\n", generateSessionFile)
	return nil
}

// loadOrAssembleSession reads the session file when it exists, otherwise
// builds a fresh session from the parse command outputs.
func loadOrAssembleSession() (*session.Session, error) {
	sess := session.New()

	if _, err := os.Stat(generateSessionFile); err == nil {
		if err := sess.Load(generateSessionFile); err != nil {
			return nil, err
		}
		return sess, nil
	}

	if generateResumeJSON == "" || generateContactsJSON == "" {
		return nil, fmt.Errorf("session file %s does not exist; provide --resume-json and --contacts-json to create one", generateSessionFile)
	}

	var resume types.ResumeData
	if err := readJSON(generateResumeJSON, &resume); err != nil {
		return nil, err
	}
	var list []types.Contact
	if err := readJSON(generateContactsJSON, &list); err != nil {
		return nil, err
	}

	sess.SetResume(resume)
	sess.SetContacts(list)
	sess.AdvanceTo(session.StepGenerate)
	return sess, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
