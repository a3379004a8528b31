package validate

// validateHeader checks the metsHdr section: a CREATEDATE attribute and
// exactly three agents in fixed document order.
//
//	<mets:metsHdr CREATEDATE="2019-08-05T11:47:37.538-04:00">
//	    <mets:agent ROLE="OTHER">
//	        <mets:name>The MediaPreserve</mets:name>
//	    </mets:agent>
//	    <mets:agent ROLE="PRESERVATION" TYPE="ORGANIZATION">
//	        <mets:name>University of Michigan, Bentley Historical Library</mets:name>
//	    </mets:agent>
//	    <mets:agent ROLE="DISSEMINATOR" TYPE="ORGANIZATION">
//	        <mets:name>University of Michigan, Bentley Historical Library</mets:name>
//	    </mets:agent>
//	</mets:metsHdr>
//
// The agents are matched by position, not by role: a document with the right
// agents in the wrong order fails.
func (v *metsValidator) validateHeader() {
	header, exists := v.checkElement("/mets:mets/mets:metsHdr")
	if !exists {
		return
	}

	v.checkAttrib(header, "CREATEDATE", CondExists, "")

	agents, exist := v.checkSubelements(header, "mets:agent", 3)
	if !exist {
		return
	}

	// agent 0: the digitization vendor
	vendor := agents[0]
	v.checkAttrib(vendor, "ROLE", CondIs, "OTHER")
	if name, exists := v.checkSubelement(vendor, "mets:name"); exists {
		v.checkText(name, CondIs, "The MediaPreserve")
	}

	// agent 1: the preserving institution
	preservation := agents[1]
	v.checkAttrib(preservation, "ROLE", CondIs, "PRESERVATION")
	v.checkAttrib(preservation, "TYPE", CondIs, "ORGANIZATION")
	if name, exists := v.checkSubelement(preservation, "mets:name"); exists {
		v.checkText(name, CondIs, "University of Michigan, Bentley Historical Library")
	}

	// agent 2: the disseminating institution
	disseminator := agents[2]
	v.checkAttrib(disseminator, "ROLE", CondIs, "DISSEMINATOR")
	v.checkAttrib(disseminator, "TYPE", CondIs, "ORGANIZATION")
	if name, exists := v.checkSubelement(disseminator, "mets:name"); exists {
		v.checkText(name, CondIs, "University of Michigan, Bentley Historical Library")
	}
}
