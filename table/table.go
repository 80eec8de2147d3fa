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

// Package table describes binary sfnt tables as ordered lists of typed
// fields, and converts them to their binary form.
//
// A Table does not know anything about the structure it represents.
// Counts, lengths and offsets must be computed by the caller before the
// corresponding fields are added, and Encode simply concatenates the
// encoded fields in order.
package table

import (
	"errors"
	"fmt"

	"seehuhn.de/go/fonttable/fonterror"
)

// Field is a single named value inside a Table.
type Field struct {
	Name  string
	Type  Type
	Value int64  // used for the integer types
	Data  []byte // used for Literal fields
}

// Size returns the number of bytes the field occupies in the encoded table.
func (f *Field) Size() int {
	if f.Type == Literal {
		return len(f.Data)
	}
	return f.Type.Size()
}

// Table is an ordered sequence of fields.
type Table struct {
	Name   string
	Fields []Field
}

// New allocates a new table with the given initial fields.
func New(name string, fields ...Field) *Table {
	return &Table{
		Name:   name,
		Fields: fields,
	}
}

// Add appends an integer field to the table.
// The value is only range checked when the table is encoded.
func (t *Table) Add(name string, typ Type, value int64) {
	t.Fields = append(t.Fields, Field{Name: name, Type: typ, Value: value})
}

// AddBytes appends a Literal field to the table.
func (t *Table) AddBytes(name string, data []byte) {
	t.Fields = append(t.Fields, Field{Name: name, Type: Literal, Data: data})
}

// Len returns the number of fields in the table.
func (t *Table) Len() int {
	return len(t.Fields)
}

// Size returns the length of the encoded table in bytes.
func (t *Table) Size() int {
	total := 0
	for i := range t.Fields {
		total += t.Fields[i].Size()
	}
	return total
}

// Encode converts the table into its binary form.
//
// The result is the concatenation of the encoded fields, without any
// padding.  If a field value does not fit its type, an
// *fonterror.OverflowError naming the table and field is returned.
func (t *Table) Encode() ([]byte, error) {
	return t.AppendTo(make([]byte, 0, t.Size()))
}

// AppendTo appends the binary form of the table to buf.
func (t *Table) AppendTo(buf []byte) ([]byte, error) {
	for i := range t.Fields {
		f := &t.Fields[i]
		if f.Type == Literal {
			buf = append(buf, f.Data...)
			continue
		}

		var err error
		buf, err = f.Type.Append(buf, f.Value)
		if err != nil {
			var overflow *fonterror.OverflowError
			if errors.As(err, &overflow) {
				overflow.Table = t.Name
				overflow.Field = f.Name
				return nil, overflow
			}
			return nil, fmt.Errorf("%s.%s: %w", t.Name, f.Name, err)
		}
	}
	return buf, nil
}
