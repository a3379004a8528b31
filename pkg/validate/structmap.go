package validate

import (
	"fmt"
	"strings"

	"metsverify/pkg/mets"
)

// validateStructuralMap checks the structMap section: a single top-level
// div holding one div per physical side, whose fptr FILEIDs must reconcile
// with the audio files on disk once the repository "mdp." marker is
// stripped.
func (v *metsValidator) validateStructuralMap() {
	structMap, exists := v.checkElement("/mets:mets/mets:structMap")
	if !exists {
		return
	}

	topDiv, exists := v.checkSubelement(structMap, "mets:div")
	if !exists {
		return
	}
	subDivs, exist := v.checkSubelements(topDiv, "mets:div", 0)
	if !exist {
		return
	}

	expectedFiles := append(append([]string{}, v.itemFiles["wav"]...), v.itemFiles["mp3"]...)
	var filePointers []string
	for _, subDiv := range subDivs {
		for _, fptr := range mets.Query(subDiv, "mets:fptr") {
			fileID, _ := mets.Attr(fptr, "FILEID")
			fileID = strings.TrimSpace(strings.ReplaceAll(fileID, "mdp.", ""))
			filePointers = append(filePointers, fileID)
		}
	}
	if !sortedEqual(filePointers, expectedFiles) {
		v.report.Error(v.metsPath, v.itemID,
			fmt.Sprintf("mets structMap fileptr IDs %v do not match expected %v", filePointers, expectedFiles))
	}
}
