package adapter

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// ErrNoRootElement is returned when a document parses but contains no element.
var ErrNoRootElement = errors.New("document has no root element")

// ErrJunkOutsideRoot is returned when elements or text follow or precede the
// root element.
var ErrJunkOutsideRoot = errors.New("junk outside document element")

// XMLFileAdapter encapsulates XML parsing and serialization so the domain
// layer can focus on the structural query and the attribute mutation.
type XMLFileAdapter interface {
	// Parse builds an element tree from raw document bytes. The input must be
	// well-formed and contain a root element.
	Parse(ctx context.Context, src []byte) (*etree.Document, error)

	// Serialize writes the full tree back to bytes, keeping comments,
	// processing instructions and whitespace text that were parsed.
	Serialize(ctx context.Context, doc *etree.Document) ([]byte, error)
}

// LocalXMLFileAdapter provides a concrete XMLFileAdapter backed by etree.
type LocalXMLFileAdapter struct{}

// NewLocalXMLFileAdapter constructs a LocalXMLFileAdapter.
func NewLocalXMLFileAdapter() *LocalXMLFileAdapter {
	return &LocalXMLFileAdapter{}
}

// Parse builds a document for the provided source bytes.
func (a *LocalXMLFileAdapter) Parse(ctx context.Context, src []byte) (*etree.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := checkWellFormed(src); err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true

	if err := doc.ReadFromBytes(src); err != nil {
		return nil, err
	}

	if doc.Root() == nil {
		return nil, ErrNoRootElement
	}

	return doc, nil
}

// Serialize renders the document tree.
func (a *LocalXMLFileAdapter) Serialize(ctx context.Context, doc *etree.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return doc.WriteToBytes()
}

// checkWellFormed runs a strict token pass over src. etree reads raw tokens
// and does not match end tags against start tags on its own. The decoder in
// turn allows several top-level elements and text around them, so the
// document structure is checked here.
func checkWellFormed(src []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(src))

	depth := 0
	roots := 0

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
				if roots > 1 {
					line, _ := dec.InputPos()
					return fmt.Errorf("%w: second root <%s> on line %d", ErrJunkOutsideRoot, t.Name.Local, line)
				}
			}

			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				line, _ := dec.InputPos()
				return fmt.Errorf("%w: text on line %d", ErrJunkOutsideRoot, line)
			}
		}
	}
}
