package validate

import (
	"fmt"
	"maps"
	"slices"

	"metsverify/pkg/mets"
)

// validateRootElement checks the mets root: every profile namespace must be
// declared with its exact URI, OBJID must carry the item id, and TYPE must
// mark the object as an audio recording.
func (v *metsValidator) validateRootElement() {
	root, exists := v.checkElement("/mets:mets")
	if !exists {
		return
	}

	nsmap := mets.NamespaceMap(root)
	for _, prefix := range slices.Sorted(maps.Keys(mets.Namespaces)) {
		uri := mets.Namespaces[prefix]
		if nsmap[prefix] != uri {
			v.report.Error(v.metsPath, v.itemID,
				fmt.Sprintf("mets xml is missing the following namespace: %s:%s", prefix, uri))
		}
	}

	v.checkAttrib(root, "OBJID", CondIs, v.itemID)
	v.checkAttrib(root, "TYPE", CondIs, "AUDIO RECORDING")
}
