package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cold-outreach/internal/generation"
	"github.com/jonathan/cold-outreach/internal/llm"
	"github.com/jonathan/cold-outreach/internal/observability"
	"github.com/jonathan/cold-outreach/internal/pdftext"
	"github.com/jonathan/cold-outreach/internal/ratelimit"
	"github.com/spf13/cobra"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Extract structured candidate data from a resume",
	Long:  "Extract name, email, phone, experience, education, and skills from a resume PDF or text file. Uses AI extraction when an API key is available, regex heuristics otherwise; the command never fails on extraction, only on unreadable input.",
	RunE:  runParseResume,
}

var (
	resumeInputFile  string
	resumeOutputFile string
	resumeAPIKey     string
	resumeModel      string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&resumeInputFile, "in", "i", "", "Path to resume PDF or text file")
	parseResumeCmd.Flags().StringVarP(&resumeOutputFile, "out", "o", "", "Path to output JSON file (prints to stdout if omitted)")
	parseResumeCmd.Flags().StringVar(&resumeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	parseResumeCmd.Flags().StringVar(&resumeModel, "model", "", "Override the extraction model")
	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	raw, err := os.ReadFile(resumeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	text := string(raw)
	if bytes.HasPrefix(raw, []byte("%PDF")) {
		text, err = pdftext.ExtractText(raw)
		if err != nil {
			return fmt.Errorf("failed to extract resume text: %w", err)
		}
	}

	apiKey := resumeAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var client llm.Client
	if apiKey != "" {
		config := llm.DefaultConfig()
		if resumeModel != "" {
			config = config.WithModel(llm.TierAdvanced, resumeModel)
		}
		client, err = llm.NewClient(ctx, config, apiKey)
		if err != nil {
			return fmt.Errorf("failed to initialize LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: no API key configured, using heuristic extraction\n")
	}

	adapter := generation.NewAdapter(client, ratelimit.New())
	data := adapter.ExtractResume(ctx, text)

	observability.NewPrinter(os.Stdout).PrintResume(&data)

	if resumeOutputFile == "" {
		return nil
	}
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(resumeOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", resumeOutputFile)
	return nil
}
