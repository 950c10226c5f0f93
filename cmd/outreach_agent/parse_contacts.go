package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cold-outreach/internal/contacts"
	"github.com/jonathan/cold-outreach/internal/observability"
	"github.com/spf13/cobra"
)

var parseContactsCmd = &cobra.Command{
	Use:   "parse-contacts",
	Short: "Parse a contact file into structured contact JSON",
	Long:  "Parse a CSV, PDF, or HTML contact file into structured contacts. Each row needs a name, an email, and a company; invalid rows are dropped and survivors are renumbered.",
	RunE:  runParseContacts,
}

var (
	contactsInputFile  string
	contactsOutputFile string
	contactsKind       string
)

func init() {
	parseContactsCmd.Flags().StringVarP(&contactsInputFile, "in", "i", "", "Path to contact file (csv, pdf, or html)")
	parseContactsCmd.Flags().StringVarP(&contactsOutputFile, "out", "o", "", "Path to output JSON file (prints to stdout if omitted)")
	parseContactsCmd.Flags().StringVar(&contactsKind, "format", "", "Force the input format: csv, pdf, or html (default inferred from extension)")
	_ = parseContactsCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseContactsCmd)
}

func runParseContacts(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(contactsInputFile)
	if err != nil {
		return fmt.Errorf("failed to read contact file: %w", err)
	}

	kind := contacts.KindFromPath(contactsInputFile)
	if contactsKind != "" {
		kind = contacts.Kind(contactsKind)
	}

	list, err := contacts.Parse(data, kind)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintContacts(list)

	if contactsOutputFile == "" {
		return nil
	}
	jsonBytes, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(contactsOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Parsed %d contacts\n", len(list))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", contactsOutputFile)
	return nil
}
