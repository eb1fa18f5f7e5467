package protocol

import (
	"bytes"
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// Limits constrains decode memory use.
type Limits struct {
	MaxStanzaBytes int64
}

func DefaultLimits() Limits {
	return Limits{MaxStanzaBytes: 1024 * 1024}
}

// Decode reads a single stanza document from r and returns its root element.
func Decode(r io.Reader, limits Limits) (*etree.Element, error) {
	if limits.MaxStanzaBytes > 0 {
		r = io.LimitReader(r, limits.MaxStanzaBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if limits.MaxStanzaBytes > 0 && int64(len(data)) > limits.MaxStanzaBytes {
		return nil, ErrStanzaTooLarge
	}
	return DecodeBytes(data)
}

// DecodeBytes parses one stanza document held in memory.
func DecodeBytes(data []byte) (*etree.Element, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyStanza
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedXML, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrEmptyStanza
	}
	return root, nil
}
