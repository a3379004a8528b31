package validate

import (
	"fmt"
	"slices"

	"github.com/antchfx/xmlquery"

	"metsverify/pkg/mets"
	"metsverify/pkg/textnorm"
)

// Condition selects how a value check compares.
type Condition string

const (
	CondExists Condition = "Exists"
	CondIs     Condition = "Is"
)

// ConfigError indicates a rule definition passed an unsupported condition to
// a check. It is a programming error in the rules, not a data problem with
// the document under validation, and it aborts the run: the engine panics
// with a *ConfigError and never recovers it.
type ConfigError struct {
	Check     string
	Condition Condition
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("unsupported condition %q for %s", e.Condition, e.Check)
}

// checkElement queries the document for an absolute path expected to match
// exactly one element. Zero or multiple matches record an error and return
// no element.
func (v *metsValidator) checkElement(path string) (*xmlquery.Node, bool) {
	elements := v.doc.Query(path)
	switch {
	case len(elements) == 0:
		v.report.Error(v.metsPath, v.itemID,
			fmt.Sprintf("mets xml has no element %s", path))
		return nil, false
	case len(elements) > 1:
		v.report.Error(v.metsPath, v.itemID,
			fmt.Sprintf("mets xml has multiple %s elements", path))
		return nil, false
	}
	return elements[0], true
}

// checkSubelement requires a single subelement at path below element.
func (v *metsValidator) checkSubelement(element *xmlquery.Node, path string) (*xmlquery.Node, bool) {
	subelement := mets.QueryOne(element, path)
	if subelement == nil {
		v.report.Error(v.metsPath, v.itemID,
			fmt.Sprintf("subelement %s not found in %s", path, mets.TagName(element)))
		return nil, false
	}
	return subelement, true
}

// checkSubelements requires one or more subelements at path below element.
// A nonzero expected count requires exactly that many.
func (v *metsValidator) checkSubelements(element *xmlquery.Node, path string, expected int) ([]*xmlquery.Node, bool) {
	subelements := mets.Query(element, path)
	if expected != 0 && len(subelements) != expected {
		v.report.Error(v.metsPath, v.itemID,
			fmt.Sprintf("%d %s subelements found in %s, expected %d",
				len(subelements), path, mets.TagName(element), expected))
		return nil, false
	}
	if len(subelements) == 0 {
		v.report.Error(v.metsPath, v.itemID,
			fmt.Sprintf("No %s subelements found in %s", path, mets.TagName(element)))
		return nil, false
	}
	return subelements, true
}

// checkAttrib dispatches an attribute check. CondExists only requires
// presence; CondIs requires presence and then equality. Anything else is a
// configuration fault.
func (v *metsValidator) checkAttrib(element *xmlquery.Node, attribute string, cond Condition, value string) {
	switch cond {
	case CondExists:
		v.attribExists(element, attribute)
	case CondIs:
		// equality requires first confirming the attribute is there
		if v.attribExists(element, attribute) {
			v.attribEquals(element, attribute, value)
		}
	default:
		panic(&ConfigError{Check: "checkAttrib", Condition: cond})
	}
}

func (v *metsValidator) attribExists(element *xmlquery.Node, attribute string) bool {
	if _, ok := mets.Attr(element, attribute); !ok {
		v.report.Error(v.metsPath, v.itemID,
			fmt.Sprintf("%s attribute does not exists in %s", attribute, mets.TagName(element)))
		return false
	}
	return true
}

func (v *metsValidator) attribEquals(element *xmlquery.Node, attribute, value string) {
	actual, _ := mets.Attr(element, attribute)
	if actual != value {
		v.report.Error(v.metsPath, v.itemID,
			fmt.Sprintf("%s in %s attribute does not equal %s value in %s",
				actual, attribute, value, mets.TagName(element)))
	}
}

// checkText compares an element's normalized text against a normalized
// expected value. Only CondIs compares; other conditions are ignored.
func (v *metsValidator) checkText(element *xmlquery.Node, cond Condition, value string) {
	text := textnorm.Normalize(mets.Text(element))
	value = textnorm.Normalize(value)
	if cond == CondIs && text != value {
		v.report.Error(v.metsPath, v.itemID,
			fmt.Sprintf("%s text does not equal %s value in %s",
				text, value, mets.TagName(element)))
	}
}

// sortedEqual reports whether a and b hold the same elements, duplicates
// included, ignoring order.
func sortedEqual(a, b []string) bool {
	return slices.Equal(slices.Sorted(slices.Values(a)), slices.Sorted(slices.Values(b)))
}
