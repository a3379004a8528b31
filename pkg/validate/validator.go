// Package validate walks every item in a project and checks its METS
// document against the fixed institutional profile for digitized audio.
package validate

import (
	"path/filepath"

	"metsverify/pkg/mets"
	"metsverify/pkg/project"
	"metsverify/pkg/report"
)

// metsValidator holds the state for one item while its document is being
// checked. The report is shared across items; everything else is reset per
// item.
type metsValidator struct {
	project *project.Project
	report  *report.Report

	itemID       string
	itemFiles    map[string][]string
	itemMetadata *project.ItemMetadata
	metsPath     string
	doc          *mets.Document
}

// Validate runs METS validation over every item in the project and returns
// the accumulated findings. Items without an XML file are skipped entirely;
// their absence is caught by structure validation upstream.
func Validate(p *project.Project) *report.Report {
	r := report.NewReport()
	v := &metsValidator{project: p, report: r}

	for _, item := range p.Items {
		if len(item.Files["xml"]) == 0 {
			continue
		}
		if v.parseItemMets(item) {
			v.validateRootElement()
			v.validateHeader()
			v.validateDescriptiveMetadata()
			v.validateAdministrativeMetadata()
			v.validateFileSection()
			v.validateStructuralMap()
		}
	}
	return r
}

// parseItemMets loads the item's METS document and primes the per-item
// state. A parse failure is recorded as one error and skips the item.
func (v *metsValidator) parseItemMets(item *project.Item) bool {
	v.itemID = item.ID
	v.itemFiles = item.Files
	v.itemMetadata = v.project.Metadata.ItemMetadata[item.ID]
	v.metsPath = filepath.Join(item.Path, item.Files["xml"][0])
	v.doc = nil

	doc, err := mets.Parse(v.metsPath)
	if err != nil {
		v.report.Error(v.metsPath, v.itemID, "mets xml is not valid")
		return false
	}
	v.doc = doc
	return true
}
