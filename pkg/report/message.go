package report

import "fmt"

// Severity levels for validation findings.
type Severity string

const (
	Fatal   Severity = "FATAL"
	Error   Severity = "ERROR"
	Warning Severity = "WARNING"
)

// Message is a single validation finding, attributed to the METS document
// it was found in and the item the document belongs to.
type Message struct {
	Severity Severity `json:"severity"`
	Path     string   `json:"path"`
	ItemID   string   `json:"item_id"`
	Message  string   `json:"message"`
}

func (m Message) String() string {
	return fmt.Sprintf("%s(%s): %s [%s]", m.Severity, m.ItemID, m.Message, m.Path)
}

// Report collects all findings from a validation run. It is an append-only
// sink; the engine writes findings and never reads them back.
type Report struct {
	Messages []Message `json:"messages"`
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add appends a finding to the report.
func (r *Report) Add(sev Severity, path, itemID, msg string) {
	r.Messages = append(r.Messages, Message{
		Severity: sev,
		Path:     path,
		ItemID:   itemID,
		Message:  msg,
	})
}

// Error records an error finding against (path, itemID).
func (r *Report) Error(path, itemID, msg string) {
	r.Add(Error, path, itemID, msg)
}

// Warn records a warning finding against (path, itemID).
func (r *Report) Warn(path, itemID, msg string) {
	r.Add(Warning, path, itemID, msg)
}

// FatalCount returns the number of FATAL findings.
func (r *Report) FatalCount() int {
	n := 0
	for _, m := range r.Messages {
		if m.Severity == Fatal {
			n++
		}
	}
	return n
}

// ErrorCount returns the number of ERROR findings.
func (r *Report) ErrorCount() int {
	n := 0
	for _, m := range r.Messages {
		if m.Severity == Error {
			n++
		}
	}
	return n
}

// WarningCount returns the number of WARNING findings.
func (r *Report) WarningCount() int {
	n := 0
	for _, m := range r.Messages {
		if m.Severity == Warning {
			n++
		}
	}
	return n
}

// IsValid returns true if there are no FATAL or ERROR findings.
func (r *Report) IsValid() bool {
	return r.FatalCount() == 0 && r.ErrorCount() == 0
}
