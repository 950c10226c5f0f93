package types

// SessionState bundles everything a session owns: the resume, the ordered
// contact list, generated templates, tracking rows, and the wizard progress
// marker. It is the unit of JSON export/import and must round-trip without
// loss through that format.
type SessionState struct {
	Resume         *ResumeData     `json:"resume"`
	Contacts       []Contact       `json:"contacts"`
	EmailTemplates []EmailTemplate `json:"emailTemplates"`
	EmailTracking  []EmailTracking `json:"emailTracking"`
	CurrentStep    int             `json:"currentStep"`
}
