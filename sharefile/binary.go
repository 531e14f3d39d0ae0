package sharefile

import (
	"bytes"
	"fmt"

	"github.com/izouxv/goShamir/shamir"
	"github.com/izouxv/goShamir/utils"
)

const binaryVersion = 1

// MarshalBinary encodes the document as varint fields followed by
// length-prefixed share values.
func (d *Document) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	for _, v := range []int{binaryVersion, d.N, d.K, len(d.Shares)} {
		if err := utils.WriteVarInt(buf, int64(v)); err != nil {
			return nil, err
		}
	}
	for _, s := range d.Shares {
		if err := utils.WriteVarInt(buf, int64(s.Index)); err != nil {
			return nil, err
		}
		if err := utils.WriteVarInt(buf, int64(s.Base)); err != nil {
			return nil, err
		}
		if err := utils.WriteVarString(buf, s.Value); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes data produced by MarshalBinary.
func (d *Document) UnmarshalBinary(data []byte) error {
	buf := bytes.NewBuffer(data)

	readInt := func(name string) (int, error) {
		v, _, err := utils.ReadVarInt(buf)
		if err != nil {
			return 0, fmt.Errorf("%w: read %s: %v", ErrMalformedDocument, name, err)
		}
		return int(v), nil
	}

	ver, err := readInt("version")
	if err != nil {
		return err
	}
	if ver != binaryVersion {
		return fmt.Errorf("%w: unsupported binary version %d", ErrMalformedDocument, ver)
	}
	if d.N, err = readInt("n"); err != nil {
		return err
	}
	if d.K, err = readInt("k"); err != nil {
		return err
	}
	count, err := readInt("share count")
	if err != nil {
		return err
	}
	if count < 0 || count > buf.Len() {
		return fmt.Errorf("%w: share count %d", ErrMalformedDocument, count)
	}

	d.Shares = make([]shamir.Share, 0, count)
	for i := 0; i < count; i++ {
		var s shamir.Share
		if s.Index, err = readInt("index"); err != nil {
			return err
		}
		if s.Base, err = readInt("base"); err != nil {
			return err
		}
		if s.Value, err = utils.ReadVarString(buf); err != nil {
			return fmt.Errorf("%w: read value of share %d: %v", ErrMalformedDocument, s.Index, err)
		}
		d.Shares = append(d.Shares, s)
	}
	if buf.Len() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrMalformedDocument, buf.Len())
	}
	return nil
}
