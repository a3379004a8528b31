package validate

import (
	"fmt"

	"metsverify/pkg/mets"
)

// validateFileSection checks the fileSec section: two file groups with the
// fixed IDs, where the audio-files group splits into exactly three nested
// groups (preservation, production and access renditions).
func (v *metsValidator) validateFileSection() {
	fileSec, exists := v.checkElement("/mets:mets/mets:fileSec")
	if !exists {
		return
	}

	fileGroups, exist := v.checkSubelements(fileSec, "mets:fileGrp", 2)
	if !exist {
		return
	}

	expectedIDs := []string{"audio-files", "media_images"}
	var foundIDs []string
	for _, fileGroup := range fileGroups {
		id, _ := mets.Attr(fileGroup, "ID")
		foundIDs = append(foundIDs, id)
		if id == "audio-files" {
			v.checkSubelements(fileGroup, "mets:fileGrp", 3)
		}
	}
	if !sortedEqual(foundIDs, expectedIDs) {
		v.report.Error(v.metsPath, v.itemID,
			fmt.Sprintf("mets xml fileGrp IDs %v do not match expected %v", foundIDs, expectedIDs))
	}
}
