package utils

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MaxVarBytesLen bounds length prefixes read by ReadVarBytes.
const MaxVarBytesLen = 1 << 24

var ErrVarBytesTooLong = errors.New("length prefix exceeds limit")

type readByte struct {
	in   io.Reader
	read int
}

func (s *readByte) ReadByte() (byte, error) {
	var data [1]byte
	n, err := s.in.Read(data[:])
	s.read += n
	if n == 1 {
		return data[0], nil
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return 0, err
}

func ReadVarInt(sr io.Reader) (num int64, n int64, err error) {
	rb := &readByte{in: sr}
	num, err = binary.ReadVarint(rb)
	return num, int64(rb.read), err
}

func ReadVarBytes(r io.Reader) (data []byte, varIntLen int, err error) {
	num, n, err := ReadVarInt(r)
	if err != nil {
		return nil, 0, err
	}
	varIntLen = int(n)
	if num < 0 || num > MaxVarBytesLen {
		return nil, varIntLen, fmt.Errorf("%w: %d", ErrVarBytesTooLong, num)
	}
	data = make([]byte, num)
	_, err = io.ReadFull(r, data)
	return data, varIntLen, err
}

func ReadVarString(r io.Reader) (string, error) {
	data, _, err := ReadVarBytes(r)
	return string(data), err
}

func WriteVarInt(w io.Writer, num int64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutVarint(buf[:], num)
	_, err := w.Write(buf[:n])
	return err
}

func WriteVarBytes(w io.Writer, data []byte) error {
	if err := WriteVarInt(w, int64(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

func WriteVarString(w io.Writer, s string) error {
	return WriteVarBytes(w, []byte(s))
}
