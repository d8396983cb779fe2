// Package document is the in-memory form of the declarative model document
// described in spec.md §6: a root `model` element containing `reaction`,
// `parameter`, and `species` children, each reaction nesting exactly one
// `propensity`, one `delay`, and zero or more `rule` siblings at the model
// level.
package document

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Document is the logical schema of a native model file, independent of
// byte-exact XML formatting.
type Document struct {
	Reactions  []Reaction  `xml:"reaction"`
	Rules      []Rule      `xml:"rule"`
	Parameters []Parameter `xml:"parameter"`
	Species    []Species   `xml:"species"`
}

// Reaction is one `reaction` element: a stoichiometry-defining `text`
// field, an optional delayed-stoichiometry `after` field, and exactly one
// nested propensity and delay.
type Reaction struct {
	Text       string     `xml:"text,attr"`
	After      string     `xml:"after,attr"`
	Propensity Propensity `xml:"propensity"`
	Delay      Delay      `xml:"delay"`
}

// Propensity is a `propensity` element: a `type` attribute plus an
// arbitrary attribute bag consumed by propensity.New's catalog lookup.
type Propensity struct {
	Type   string
	Fields map[string]string
}

func (p *Propensity) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return unmarshalTypedAttrs(d, start, &p.Type, &p.Fields)
}

// Delay is a `delay` element, shaped like Propensity.
type Delay struct {
	Type   string
	Fields map[string]string
}

func (dl *Delay) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return unmarshalTypedAttrs(d, start, &dl.Type, &dl.Fields)
}

// Rule is a top-level `rule` element, shaped like Propensity.
type Rule struct {
	Type   string
	Fields map[string]string
}

func (r *Rule) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return unmarshalTypedAttrs(d, start, &r.Type, &r.Fields)
}

// Parameter is a `parameter name="..." value="..."` element.
type Parameter struct {
	Name  string  `xml:"name,attr"`
	Value float64 `xml:"value,attr"`
}

// Species is a `species name="..." value="..."` element.
type Species struct {
	Name  string  `xml:"name,attr"`
	Value float64 `xml:"value,attr"`
}

// unmarshalTypedAttrs captures every attribute of start into fields,
// pulling "type" out separately, then consumes the element body (these
// elements carry no children in the native format).
func unmarshalTypedAttrs(d *xml.Decoder, start xml.StartElement, typ *string, fields *map[string]string) error {
	m := make(map[string]string, len(start.Attr))
	for _, attr := range start.Attr {
		if attr.Name.Local == "type" {
			*typ = attr.Value
			continue
		}
		m[attr.Name.Local] = attr.Value
	}
	*fields = m
	return d.Skip()
}

// Load parses a native declarative model document from r.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding model document: %w", err)
	}
	return &doc, nil
}

// Validate runs the structural sanity pass described in SPEC_FULL.md §4:
// duplicate species/parameter names and empty reaction text, surfaced as
// warnings rather than failures. During assembly an empty reaction text
// fails with InvalidStoichiometry, while a duplicate declaration does not
// fail: the last declared value is used.
func (doc *Document) Validate() []string {
	var warnings []string

	seenSpecies := map[string]bool{}
	for _, s := range doc.Species {
		if seenSpecies[s.Name] {
			warnings = append(warnings, fmt.Sprintf("duplicate <species> declaration for %q", s.Name))
		}
		seenSpecies[s.Name] = true
	}

	seenParams := map[string]bool{}
	for _, p := range doc.Parameters {
		if seenParams[p.Name] {
			warnings = append(warnings, fmt.Sprintf("duplicate <parameter> declaration for %q", p.Name))
		}
		seenParams[p.Name] = true
	}

	for i, r := range doc.Reactions {
		if r.Text == "" {
			warnings = append(warnings, fmt.Sprintf("reaction[%d] has an empty text field", i))
		}
	}

	return warnings
}
