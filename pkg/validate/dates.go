package validate

import (
	"time"

	"github.com/araddon/dateparse"

	"metsverify/pkg/textnorm"
)

// parseDate parses a loosely-formatted date string. ok is false when the
// string does not look like a date at all.
func parseDate(s string) (time.Time, bool) {
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// datesMatch compares two date strings after lenient parsing. Two strings
// that both fail to parse count as matching.
func datesMatch(a, b string) bool {
	at, aok := parseDate(a)
	bt, bok := parseDate(b)
	if aok != bok {
		return false
	}
	if !aok {
		return true
	}
	return at.Equal(bt)
}

// trimLastRune drops the final character of s. Real metadata exports were
// observed with a stray trailing encoding artifact on dates; the retry with
// the last character stripped tolerates it.
func trimLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}

// checkDates reconciles a date from the metadata export with a date from the
// METS document.
func (v *metsValidator) checkDates(metadataDate, metsDate string) {
	metadataDate = textnorm.Normalize(metadataDate)
	if metadataDate == "Undated" && metsDate == "undated" {
		// Known quirk: this case deliberately falls through to the parse
		// comparison below. It stays harmless because neither string
		// parses and two unparsable dates compare as matching.
	}
	if !datesMatch(metadataDate, metsDate) && !datesMatch(trimLastRune(metadataDate), metsDate) {
		v.report.Error(v.metsPath, v.itemID,
			metadataDate+" date in metadata export does not equal "+metsDate+" date in mets")
	}
}
