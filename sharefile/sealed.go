package sharefile

import (
	"fmt"
	"os"

	"github.com/izouxv/goShamir/keystore"
)

// Content names of sealed payloads.
const (
	ContentJSON   = "shares/json"
	ContentBinary = "shares/binary"
)

// Seal encrypts the document in binary form with a password-derived key.
func Seal(d *Document, password string) ([]byte, error) {
	payload, err := d.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return keystore.Seal(payload, ContentBinary, password)
}

// Decode parses a JSON document, or opens a sealed one with password.
func Decode(data []byte, password string) (*Document, error) {
	if !keystore.IsSealed(data) {
		return Parse(data)
	}
	payload, content, err := keystore.Open(data, password)
	if err != nil {
		return nil, err
	}
	switch content {
	case ContentBinary:
		d := &Document{}
		if err := d.UnmarshalBinary(payload); err != nil {
			return nil, err
		}
		return d, nil
	case ContentJSON:
		return Parse(payload)
	}
	return nil, fmt.Errorf("%w: unknown sealed content %q", ErrMalformedDocument, content)
}

// Load reads a share document from path and also returns the raw file
// content. Sealed documents need password.
func Load(path, password string) (*Document, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	d, err := Decode(data, password)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, data, nil
}
