package validate

import (
	"testing"

	"metsverify/pkg/report"
)

// checkDates needs no parsed document, only the reporting state.
func newDateValidator() *metsValidator {
	return &metsValidator{
		report:   report.NewReport(),
		itemID:   "1234-5",
		metsPath: "1234-5.mets.xml",
	}
}

func TestCheckDatesEqual(t *testing.T) {
	v := newDateValidator()
	v.checkDates("January 1, 2020", "2020-01-01")
	if v.report.ErrorCount() != 0 {
		t.Errorf("unexpected errors: %v", v.report.Messages)
	}
}

func TestCheckDatesMismatch(t *testing.T) {
	v := newDateValidator()
	v.checkDates("January 1, 2020", "2020-01-02")
	assertOneError(t, v.report, "January 1, 2020 date in metadata export does not equal 2020-01-02 date in mets")
}

// TestCheckDatesUndated pins a known quirk: the Undated/undated special
// case falls through to the parse comparison, and stays quiet only because
// two unparsable strings compare as matching.
func TestCheckDatesUndated(t *testing.T) {
	v := newDateValidator()
	v.checkDates("Undated", "undated")
	if v.report.ErrorCount() != 0 {
		t.Errorf("unexpected errors: %v", v.report.Messages)
	}
}

func TestCheckDatesBothUnparsable(t *testing.T) {
	v := newDateValidator()
	v.checkDates("no date recorded", "unknown")
	if v.report.ErrorCount() != 0 {
		t.Errorf("unexpected errors: %v", v.report.Messages)
	}
}

func TestCheckDatesOneUnparsable(t *testing.T) {
	v := newDateValidator()
	v.checkDates("no date recorded", "2020-01-01")
	if v.report.ErrorCount() != 1 {
		t.Errorf("got %d errors, want 1", v.report.ErrorCount())
	}
}

// A stray trailing character on the export date is tolerated by the
// strip-one-character retry.
func TestCheckDatesTrailingArtifact(t *testing.T) {
	v := newDateValidator()
	v.checkDates("March 12, 1955x", "1955-03-12")
	if v.report.ErrorCount() != 0 {
		t.Errorf("unexpected errors: %v", v.report.Messages)
	}
}

func TestTrimLastRune(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"a", ""},
		{"1955…", "1955"},
	}
	for _, tt := range tests {
		if got := trimLastRune(tt.in); got != tt.want {
			t.Errorf("trimLastRune(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
