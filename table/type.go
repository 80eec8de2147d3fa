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

package table

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"

	"seehuhn.de/go/fonttable/fonterror"
)

// Type describes the binary encoding of a field.
// All integer types are stored in big-endian byte order.
type Type uint8

// These are the field types used in sfnt tables.
const (
	Uint8 Type = iota + 1
	Int8
	Uint16
	Int16
	Uint32
	Int32
	Literal // raw bytes, copied verbatim
)

func (t Type) String() string {
	switch t {
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	case Uint16:
		return "uint16"
	case Int16:
		return "int16"
	case Uint32:
		return "uint32"
	case Int32:
		return "int32"
	case Literal:
		return "literal"
	default:
		return "invalid"
	}
}

// Size returns the number of bytes used to store a value of type t.
// Literal fields have no fixed size and Size returns 0 for them.
func (t Type) Size() int {
	switch t {
	case Uint8, Int8:
		return 1
	case Uint16, Int16:
		return 2
	case Uint32, Int32:
		return 4
	default:
		return 0
	}
}

// IsInteger reports whether t is one of the fixed-width integer types.
func (t Type) IsInteger() bool {
	return t >= Uint8 && t <= Int32
}

func (t Type) limits() (lo, hi int64) {
	switch t {
	case Uint8:
		return 0, math.MaxUint8
	case Int8:
		return math.MinInt8, math.MaxInt8
	case Uint16:
		return 0, math.MaxUint16
	case Int16:
		return math.MinInt16, math.MaxInt16
	case Uint32:
		return 0, math.MaxUint32
	case Int32:
		return math.MinInt32, math.MaxInt32
	default:
		return 0, -1
	}
}

// Fits reports whether v can be stored in a field of type t.
func (t Type) Fits(v int64) bool {
	lo, hi := t.limits()
	return v >= lo && v <= hi
}

// Append appends the encoding of v to buf.
// If v is outside the range of t, an *fonterror.OverflowError is returned
// and buf is returned unchanged.
func (t Type) Append(buf []byte, v int64) ([]byte, error) {
	if !t.IsInteger() {
		return buf, errNotInteger
	}
	if !t.Fits(v) {
		return buf, &fonterror.OverflowError{Type: t.String(), Value: v}
	}
	switch t.Size() {
	case 1:
		buf = append(buf, byte(v))
	case 2:
		buf = append(buf, byte(v>>8), byte(v))
	case 4:
		buf = append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
	return buf, nil
}

// Decode reads a value of type t from the start of buf.
// The buffer must contain at least t.Size() bytes.  Signed types are
// sign-extended.
func (t Type) Decode(buf []byte) int64 {
	switch t {
	case Uint8:
		return int64(buf[0])
	case Int8:
		return int64(int8(buf[0]))
	case Uint16:
		return int64(uint16(buf[0])<<8 | uint16(buf[1]))
	case Int16:
		return int64(int16(uint16(buf[0])<<8 | uint16(buf[1])))
	case Uint32:
		return int64(uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]))
	case Int32:
		return int64(int32(uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])))
	default:
		return 0
	}
}

// Value converts an integer of any Go type into a field value.
// Unsigned values which do not fit into an int64 saturate, so that
// encoding them reports an overflow instead of wrapping around.
func Value[T constraints.Integer](x T) int64 {
	v := int64(x)
	if x > 0 && v < 0 {
		return math.MaxInt64
	}
	return v
}

var errNotInteger = errors.New("table: not an integer type")
