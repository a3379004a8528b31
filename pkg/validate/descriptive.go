package validate

import "metsverify/pkg/mets"

// validateDescriptiveMetadata checks the dmdSec section against the item's
// row in the metadata export. Without a row there is nothing to compare, so
// the section gets a single warning. Title, relation and date checks are
// each skipped with a warning when the export lacks the field; the
// dc:identifier check always runs since it compares against the item id, not
// the export.
func (v *metsValidator) validateDescriptiveMetadata() {
	dmdSec, exists := v.checkElement("/mets:mets/mets:dmdSec")
	if !exists {
		return
	}

	if v.itemMetadata == nil {
		v.report.Warn(v.metsPath, v.itemID,
			"item has no associated metadata in the metadata export spreadsheet to validate against mets xml")
		return
	}

	mdWrap, exists := v.checkSubelement(dmdSec, "mets:mdWrap")
	if !exists {
		return
	}
	v.checkAttrib(mdWrap, "MDTYPE", CondIs, "DC")
	v.checkAttrib(mdWrap, "LABEL", CondIs, "Dublin Core Metadata")

	xmlData, exists := v.checkSubelement(mdWrap, "mets:xmlData")
	if !exists {
		return
	}

	if v.itemMetadata.ItemTitle != "" {
		if title, exists := v.checkSubelement(xmlData, "dc:title"); exists {
			v.checkText(title, CondIs, v.itemMetadata.ItemTitle)
		}
	} else {
		v.report.Warn(v.metsPath, v.itemID,
			"item title not found in metadata export spreadsheet to validate against mets xml")
	}

	if v.itemMetadata.CollectionTitle != "" {
		if relation, exists := v.checkSubelement(xmlData, "dc:relation"); exists {
			v.checkText(relation, CondIs, v.itemMetadata.CollectionTitle)
		}
	} else {
		v.report.Warn(v.metsPath, v.itemID,
			"collection title not found in metadata export spreadsheet to validate against mets xml")
	}

	if identifier, exists := v.checkSubelement(xmlData, "dc:identifier"); exists {
		v.checkText(identifier, CondIs, v.itemID)
	}

	if v.itemMetadata.ItemDate != "" {
		if date, exists := v.checkSubelement(xmlData, "dc:date"); exists {
			v.checkDates(v.itemMetadata.ItemDate, mets.Text(date))
		}
	} else {
		v.report.Warn(v.metsPath, v.itemID,
			"item date not found in metadata export spreadsheet to validate against mets xml")
	}

	// located for their existence reporting only; values are not profiled
	v.checkSubelement(xmlData, "dc:format")
	v.checkSubelements(xmlData, "dc:format.extent", 0)
}
