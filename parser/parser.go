// seehuhn.de/go/fonttable - read and write binary tables in sfnt fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package parser implements sequential readers for the binary data of
// sfnt tables.
package parser

import (
	"errors"
	"fmt"

	"seehuhn.de/go/fonttable/fonterror"
	"seehuhn.de/go/fonttable/table"
)

// Parser reads big-endian values from a byte buffer.
// The parser keeps a cursor which is advanced by every read.
type Parser struct {
	tableName string
	data      []byte

	pos      int
	lastRead int
}

// New allocates a new Parser which starts reading data at position start.
// The table name is only used in error messages.
func New(tableName string, data []byte, start int) *Parser {
	return &Parser{
		tableName: tableName,
		data:      data,
		pos:       start,
		lastRead:  start,
	}
}

// Len returns the total size of the underlying buffer.
func (p *Parser) Len() int {
	return len(p.data)
}

// Pos returns the current reading position.
func (p *Parser) Pos() int {
	return p.pos
}

// SeekPos changes the reading position.
// Positions beyond the end of the buffer are allowed, the next read will
// then fail.
func (p *Parser) SeekPos(pos int) error {
	if pos < 0 {
		return errNegativeSeek
	}
	p.pos = pos
	return nil
}

// Discard skips the next n bytes of input.
func (p *Parser) Discard(n int) error {
	if n < 0 {
		return errNegativeSeek
	}
	return p.SeekPos(p.pos + n)
}

// ReadBytes reads n bytes, starting at the current position.
// The returned slice points into the underlying buffer and must not be
// modified by the caller.
func (p *Parser) ReadBytes(n int) ([]byte, error) {
	p.lastRead = p.pos
	if n < 0 {
		n = 0
	}
	if p.pos > len(p.data) || n > len(p.data)-p.pos {
		return nil, &fonterror.TruncatedError{
			Table: p.tableName,
			Pos:   p.pos,
			Need:  n,
			Have:  len(p.data),
		}
	}
	res := p.data[p.pos : p.pos+n]
	p.pos += n
	return res, nil
}

// Read reads a single value of the given fixed-width type.
func (p *Parser) Read(t table.Type) (int64, error) {
	if !t.IsInteger() {
		return 0, p.Error("cannot read %s field", t)
	}
	buf, err := p.ReadBytes(t.Size())
	if err != nil {
		return 0, err
	}
	return t.Decode(buf), nil
}

// ReadUint8 reads a single uint8 value from the current position.
func (p *Parser) ReadUint8() (uint8, error) {
	buf, err := p.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadInt8 reads a single int8 value from the current position.
func (p *Parser) ReadInt8() (int8, error) {
	val, err := p.ReadUint8()
	return int8(val), err
}

// ReadUint16 reads a single uint16 value from the current position.
func (p *Parser) ReadUint16() (uint16, error) {
	buf, err := p.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(buf[0])<<8 | uint16(buf[1]), nil
}

// ReadInt16 reads a single int16 value from the current position.
func (p *Parser) ReadInt16() (int16, error) {
	val, err := p.ReadUint16()
	return int16(val), err
}

// ReadUint32 reads a single uint32 value from the current position.
func (p *Parser) ReadUint32() (uint32, error) {
	buf, err := p.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]), nil
}

// ReadInt32 reads a single int32 value from the current position.
func (p *Parser) ReadInt32() (int32, error) {
	val, err := p.ReadUint32()
	return int32(val), err
}

// ReadUint16Slice reads a length followed by a sequence of uint16 values.
func (p *Parser) ReadUint16Slice() ([]uint16, error) {
	n, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	buf, err := p.ReadBytes(2 * int(n))
	if err != nil {
		return nil, err
	}
	res := make([]uint16, n)
	for i := range res {
		res[i] = uint16(buf[2*i])<<8 | uint16(buf[2*i+1])
	}
	return res, nil
}

// Error returns an error which is prefixed with the table name and the
// position of the most recent read.
func (p *Parser) Error(format string, a ...interface{}) error {
	tableName := p.tableName
	if tableName == "" {
		tableName = "header"
	}
	a = append([]interface{}{tableName, p.lastRead}, a...)
	return fmt.Errorf("%s%+d: "+format, a...)
}

var errNegativeSeek = errors.New("parser: negative position")
