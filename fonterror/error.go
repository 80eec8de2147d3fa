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

// Package fonterror defines the errors reported when reading and writing
// sfnt tables.
package fonterror

import (
	"errors"
	"fmt"
)

// InvalidFontError indicates a problem with font data.
type InvalidFontError struct {
	SubSystem string
	Reason    string
}

func (err *InvalidFontError) Error() string {
	return err.SubSystem + ": " + err.Reason
}

// NotSupportedError indicates that a font file seems valid but uses a
// feature which is not supported by this library.
//
// Inside the "name" table this is used for records with a platform,
// encoding or language identifier we cannot interpret.  Such records are
// skipped, the error is only passed to diagnostic callbacks.
type NotSupportedError struct {
	SubSystem string
	Feature   string
}

func (err *NotSupportedError) Error() string {
	return err.SubSystem + ": " + err.Feature + " not supported"
}

// OverflowError indicates that a value does not fit into the binary
// field it is written to.
type OverflowError struct {
	Table string
	Field string
	Type  string
	Value int64
}

func (err *OverflowError) Error() string {
	loc := err.Table
	if err.Field != "" {
		loc += "." + err.Field
	}
	if loc == "" {
		loc = "table"
	}
	return fmt.Sprintf("%s: value %d overflows %s", loc, err.Value, err.Type)
}

// TruncatedError indicates that a read went past the end of the
// available table data.
type TruncatedError struct {
	Table string
	Pos   int // position where the read started
	Need  int // number of bytes requested
	Have  int // total size of the data
}

func (err *TruncatedError) Error() string {
	table := err.Table
	if table == "" {
		table = "header"
	}
	return fmt.Sprintf("%s%+d: unexpected end of data (need %d bytes, have %d)",
		table, err.Pos, err.Need, max(0, err.Have-err.Pos))
}

// IsUnsupported returns true if the error is a NotSupportedError.
func IsUnsupported(err error) bool {
	var e *NotSupportedError
	return errors.As(err, &e)
}

// IsTruncated returns true if the error is a TruncatedError.
func IsTruncated(err error) bool {
	var e *TruncatedError
	return errors.As(err, &e)
}

// IsOverflow returns true if the error is an OverflowError.
func IsOverflow(err error) bool {
	var e *OverflowError
	return errors.As(err, &e)
}
