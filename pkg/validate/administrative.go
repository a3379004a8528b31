package validate

import (
	"metsverify/pkg/mets"
)

// validateAdministrativeMetadata checks the amdSec section. One techMD is
// expected per wav, mp3 and txt file. techMDs described by reference
// (mets:mdRef) are skipped; the rest must carry an aes:primaryIdentifier,
// and those identifiers must reconcile with the audio files on disk.
func (v *metsValidator) validateAdministrativeMetadata() {
	amdSec, exists := v.checkElement("/mets:mets/mets:amdSec")
	if !exists {
		return
	}

	audioFiles := append(append([]string{}, v.itemFiles["wav"]...), v.itemFiles["mp3"]...)
	expectedCount := len(audioFiles) + len(v.itemFiles["txt"])

	techMDs, exist := v.checkSubelements(amdSec, "mets:techMD", expectedCount)
	if exist {
		var foundFiles []string
		for _, techMD := range techMDs {
			if mets.QueryOne(techMD, "mets:mdRef") != nil {
				continue
			}
			identifier, exists := v.checkSubelement(techMD,
				"mets:mdWrap/mets:xmlData/aes:audioObject/aes:primaryIdentifier")
			if exists {
				foundFiles = append(foundFiles, mets.Text(identifier))
			}
		}
		if !sortedEqual(foundFiles, audioFiles) {
			v.report.Error(v.metsPath, v.itemID,
				"audio filenames found in amdSec/techMDs do not match files found in directory")
		}
	}

	v.checkSubelement(amdSec, "mets:sourceMD")
	v.checkSubelement(amdSec, "mets:digiprovMD")
}
