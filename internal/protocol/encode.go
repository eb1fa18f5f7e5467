package protocol

import (
	"bytes"
	"io"

	"github.com/beevik/etree"
)

// Encode writes el to w as a standalone document. el itself is not modified.
func Encode(w io.Writer, el *etree.Element) error {
	if el == nil {
		return ErrEmptyStanza
	}
	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())
	_, err := doc.WriteTo(w)
	return err
}

// EncodeString is Encode into a string.
func EncodeString(el *etree.Element) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, el); err != nil {
		return "", err
	}
	return buf.String(), nil
}
