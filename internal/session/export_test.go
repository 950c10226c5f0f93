package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cold-outreach/internal/schemas"
	"github.com/jonathan/cold-outreach/internal/types"
)

func populatedSession() *Session {
	s := New()
	s.SetResume(sampleResume())
	s.SetContacts(sampleContacts())
	s.SetTemplates(sampleTemplates())

	sentAt := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	s.SetTracking([]types.EmailTracking{
		{
			ID:            "tr1",
			Contact:       s.Contacts()[0],
			EmailTemplate: s.Templates()[0],
			Status:        types.StatusSent,
			SentAt:        &sentAt,
		},
		{
			ID:            "tr2",
			Contact:       s.Contacts()[1],
			EmailTemplate: s.Templates()[1],
			Status:        types.StatusFailed,
			Error:         "550 mailbox unavailable",
		},
	})
	s.AdvanceTo(StepDone)
	return s
}

func TestExportImport_RoundTrip(t *testing.T) {
	original := populatedSession()

	data, err := original.Export()
	require.NoError(t, err)

	restored := New()
	require.NoError(t, restored.Import(data))

	assert.Equal(t, original.State(), restored.State())
}

func TestExport_EmptySession(t *testing.T) {
	data, err := New().Export()
	require.NoError(t, err)

	// Empty collections export as arrays, not null, so the document
	// validates and round-trips.
	assert.Contains(t, string(data), `"contacts": []`)
	assert.Contains(t, string(data), `"resume": null`)
}

func TestImport_RejectsInvalidDocument(t *testing.T) {
	s := New()

	err := s.Import([]byte(`{
		"resume": null,
		"contacts": [{"sno": 0, "name": "", "email": "nope", "title": "", "company": ""}],
		"emailTemplates": [],
		"emailTracking": [],
		"currentStep": 0
	}`))
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestImport_RenumbersContacts(t *testing.T) {
	s := New()

	err := s.Import([]byte(`{
		"resume": null,
		"contacts": [
			{"sno": 9, "name": "Alex Smith", "email": "alex@acme.com", "title": "EM", "company": "Acme"},
			{"sno": 4, "name": "Sam Lee", "email": "sam@globex.com", "title": "HR", "company": "Globex"}
		],
		"emailTemplates": [],
		"emailTracking": [],
		"currentStep": 1
	}`))
	require.NoError(t, err)

	assert.Equal(t, 1, s.Contacts()[0].SequenceNumber)
	assert.Equal(t, 2, s.Contacts()[1].SequenceNumber)
	assert.Equal(t, 1, s.CurrentStep())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	original := populatedSession()
	require.NoError(t, original.Save(path))

	restored := New()
	require.NoError(t, restored.Load(path))
	assert.Equal(t, original.State(), restored.State())
}

func TestLoad_MissingFile(t *testing.T) {
	err := New().Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read session file")
}
