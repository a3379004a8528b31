package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestCounts(t *testing.T) {
	r := NewReport()
	r.Error("a/a.mets.xml", "a", "first problem")
	r.Error("a/a.mets.xml", "a", "second problem")
	r.Warn("b/b.mets.xml", "b", "advisory")

	if r.ErrorCount() != 2 || r.WarningCount() != 1 || r.FatalCount() != 0 {
		t.Errorf("counts = %d/%d/%d, want 2/1/0",
			r.ErrorCount(), r.WarningCount(), r.FatalCount())
	}
	if r.IsValid() {
		t.Error("report with errors should not be valid")
	}
}

func TestMessageString(t *testing.T) {
	m := Message{Severity: Error, Path: "86215-1/86215-1.mets.xml", ItemID: "86215-1", Message: "mets xml is not valid"}
	s := m.String()
	for _, want := range []string{"ERROR", "86215-1", "mets xml is not valid", "86215-1/86215-1.mets.xml"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestWriteJSONEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	if err := NewReport().WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if !out.Valid {
		t.Error("empty report should be valid")
	}
	// messages must serialize as an empty array, not null
	if !strings.Contains(buf.String(), `"messages": []`) {
		t.Errorf("expected empty messages array, got: %s", buf.String())
	}
}
