// Package sharefile reads and writes share documents:
//
//	{
//	  "keys": {"n": 4, "k": 3},
//	  "1": {"base": "10", "value": "4"},
//	  "2": {"base": "2", "value": "111"}
//	}
//
// Documents may also be stored in a compact binary form, optionally sealed
// with a password (see Seal and Load).
package sharefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strconv"

	"github.com/izouxv/goShamir/secret"
	"github.com/izouxv/goShamir/shamir"
)

const keysField = "keys"

// ErrMalformedDocument is returned when a share document cannot be parsed.
var ErrMalformedDocument = errors.New("malformed share document")

// Document is a parsed share document: the share set and its k-of-n parameters.
type Document struct {
	N      int
	K      int
	Shares []shamir.Share
}

type keysJSON struct {
	N int `json:"n"`
	K int `json:"k"`
}

type shareJSON struct {
	Base  flexString `json:"base"`
	Value flexString `json:"value"`
}

// flexString accepts a JSON string or a bare JSON number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = flexString(n.String())
	return nil
}

// Parse decodes a JSON share document. Keys other than "keys" that are not
// integers are ignored.
func Parse(data []byte) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	keysRaw, ok := raw[keysField]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q object", ErrMalformedDocument, keysField)
	}
	var keys keysJSON
	if err := json.Unmarshal(keysRaw, &keys); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDocument, keysField, err)
	}

	doc := &Document{N: keys.N, K: keys.K}
	for key, msg := range raw {
		if key == keysField {
			continue
		}
		index, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		var sj shareJSON
		if err := json.Unmarshal(msg, &sj); err != nil {
			return nil, fmt.Errorf("%w: share %q: %v", ErrMalformedDocument, key, err)
		}
		base, err := strconv.Atoi(string(sj.Base))
		if err != nil {
			return nil, fmt.Errorf("%w: share %q: invalid base %q", ErrMalformedDocument, key, sj.Base)
		}
		doc.Shares = append(doc.Shares, shamir.Share{Index: index, Base: base, Value: string(sj.Value)})
	}
	sort.SliceStable(doc.Shares, func(i, j int) bool {
		return doc.Shares[i].Index < doc.Shares[j].Index
	})
	return doc, nil
}

// MarshalJSON encodes the document in the same shape Parse reads. Bases are
// written as strings.
func (d *Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Shares)+1)
	out[keysField] = keysJSON{N: d.N, K: d.K}
	for _, s := range d.Shares {
		key := strconv.Itoa(s.Index)
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("%w: index %d", shamir.ErrDuplicateXCoordinate, s.Index)
		}
		out[key] = struct {
			Base  string `json:"base"`
			Value string `json:"value"`
		}{strconv.Itoa(s.Base), s.Value}
	}
	return json.Marshal(out)
}

// Recover runs the recovery pipeline over the document.
func (d *Document) Recover(opts ...secret.Option) (*big.Int, error) {
	return secret.Recover(d.Shares, d.N, d.K, opts...)
}
