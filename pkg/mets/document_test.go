package mets

import (
	"os"
	"path/filepath"
	"testing"
)

const testDoc = `<?xml version="1.0" encoding="UTF-8"?>
<mets:mets xmlns:mets="http://www.loc.gov/METS/"
           xmlns:dc="http://purl.org/dc/elements/1.1"
           xmlns:aes="http://www.aes.org/audioObject"
           xmlns:ph="http://www.aes.org/processhistory"
           xmlns:mods="http://www.loc.gov/mods/v3"
           xmlns:xlink="http://www.w3.org/1999/xlink"
           OBJID="1234-5" TYPE="AUDIO RECORDING">
  <mets:metsHdr CREATEDATE="2019-08-05T11:47:37.538-04:00">
    <mets:agent ROLE="OTHER">
      <mets:name>The MediaPreserve</mets:name>
    </mets:agent>
  </mets:metsHdr>
  <mets:dmdSec>
    <mets:mdWrap MDTYPE="DC">
      <mets:xmlData>
        <dc:identifier>1234-5</dc:identifier>
      </mets:xmlData>
    </mets:mdWrap>
  </mets:dmdSec>
</mets:mets>
`

func parseTestDoc(t *testing.T, content string) *Document {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.mets.xml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func TestParseMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.mets.xml")
	if err := os.WriteFile(path, []byte("<mets:mets><unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(path); err == nil {
		t.Error("expected parse error for malformed document")
	}
}

func TestQueryAbsolute(t *testing.T) {
	doc := parseTestDoc(t, testDoc)

	if got := doc.Query("/mets:mets"); len(got) != 1 {
		t.Errorf("Query /mets:mets: got %d elements, want 1", len(got))
	}
	if got := doc.Query("/mets:mets/mets:metsHdr"); len(got) != 1 {
		t.Errorf("Query metsHdr: got %d elements, want 1", len(got))
	}
	if got := doc.Query("/mets:mets/mets:fileSec"); len(got) != 0 {
		t.Errorf("Query fileSec: got %d elements, want 0", len(got))
	}
}

func TestQueryRelative(t *testing.T) {
	doc := parseTestDoc(t, testDoc)

	header := doc.Query("/mets:mets/mets:metsHdr")[0]
	agents := Query(header, "mets:agent")
	if len(agents) != 1 {
		t.Fatalf("got %d agents, want 1", len(agents))
	}
	name := QueryOne(agents[0], "mets:name")
	if name == nil {
		t.Fatal("mets:name not found under agent")
	}
	if Text(name) != "The MediaPreserve" {
		t.Errorf("Text = %q, want %q", Text(name), "The MediaPreserve")
	}
	if TagName(name) != "mets:name" {
		t.Errorf("TagName = %q, want %q", TagName(name), "mets:name")
	}

	// nested relative path, crossing namespaces
	dmdSec := doc.Query("/mets:mets/mets:dmdSec")[0]
	identifier := QueryOne(dmdSec, "mets:mdWrap/mets:xmlData/dc:identifier")
	if identifier == nil {
		t.Fatal("dc:identifier not found via nested path")
	}
	if Text(identifier) != "1234-5" {
		t.Errorf("identifier text = %q, want %q", Text(identifier), "1234-5")
	}
}

func TestAttr(t *testing.T) {
	doc := parseTestDoc(t, testDoc)
	root := doc.Query("/mets:mets")[0]

	if v, ok := Attr(root, "OBJID"); !ok || v != "1234-5" {
		t.Errorf("Attr OBJID = %q, %v; want %q, true", v, ok, "1234-5")
	}
	if _, ok := Attr(root, "LABEL"); ok {
		t.Error("Attr LABEL should be absent")
	}
}

func TestNamespaceMap(t *testing.T) {
	doc := parseTestDoc(t, testDoc)
	root := doc.Query("/mets:mets")[0]

	nsmap := NamespaceMap(root)
	for prefix, uri := range Namespaces {
		if nsmap[prefix] != uri {
			t.Errorf("nsmap[%q] = %q, want %q", prefix, nsmap[prefix], uri)
		}
	}
}
