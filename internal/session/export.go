package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cold-outreach/internal/schemas"
	"github.com/jonathan/cold-outreach/internal/types"
)

// SchemaRelPath is the session schema's location relative to the
// repository root.
var SchemaRelPath = filepath.Join("schemas", "session.schema.json")

// Export serializes the session to indented JSON and validates it
// against the session schema before returning. A validation failure
// here indicates a bug in state handling, not bad user input.
func (s *Session) Export() ([]byte, error) {
	state := s.state
	if state.Contacts == nil {
		state.Contacts = []types.Contact{}
	}
	if state.EmailTemplates == nil {
		state.EmailTemplates = []types.EmailTemplate{}
	}
	if state.EmailTracking == nil {
		state.EmailTracking = []types.EmailTracking{}
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize session: %w", err)
	}

	if err := validateAgainstSchema(data); err != nil {
		return nil, err
	}
	return data, nil
}

// Import replaces the session state with a previously exported
// document, validating it against the schema first so malformed or
// hand-edited files are rejected with field-level errors.
func (s *Session) Import(data []byte) error {
	if err := validateAgainstSchema(data); err != nil {
		return err
	}

	var state types.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to parse session file: %w", err)
	}

	types.Renumber(state.Contacts)
	s.state = state
	return nil
}

// Save writes the exported session to a file.
func (s *Session) Save(path string) error {
	data, err := s.Export()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Load reads a session file into the session.
func (s *Session) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read session file: %w", err)
	}
	return s.Import(data)
}

// validateAgainstSchema checks a session document against the JSON
// schema when the schema file can be located. Installations running
// the bare binary without the schemas directory skip validation.
func validateAgainstSchema(data []byte) error {
	schemaPath := schemas.ResolveSchemaPath(SchemaRelPath)
	if schemaPath == "" {
		return nil
	}
	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read session schema: %w", err)
	}
	return schemas.ValidateJSONString(string(schemaContent), string(data))
}
