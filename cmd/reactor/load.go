package main

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/biomodel/reactor/internal/document"
	"github.com/biomodel/reactor/internal/sbml"
)

// loadDocument reads the model document at path, auto-detecting SBML by
// its root element name and otherwise parsing the native declarative
// schema. It returns any importer warnings alongside the document.
func loadDocument(path string) (*document.Document, []string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	isSBML, err := peekIsSBML(content)
	if err != nil {
		return nil, nil, fmt.Errorf("inspecting %s: %w", path, err)
	}

	if isSBML {
		result, err := sbml.Import(bytes.NewReader(content))
		if err != nil {
			return nil, nil, fmt.Errorf("importing SBML from %s: %w", path, err)
		}
		return result.Document, result.Warnings, nil
	}

	doc, err := document.Load(bytes.NewReader(content))
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return doc, doc.Validate(), nil
}

func peekIsSBML(content []byte) (bool, error) {
	dec := xml.NewDecoder(bytes.NewReader(content))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start.Name.Local == "sbml", nil
		}
	}
}
