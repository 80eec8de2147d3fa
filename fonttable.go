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


// Package fonttable gives access to the "name" table of sfnt font files.
//
// The actual work is done in the subpackages: [header] locates the tables
// inside a font file, [name] and [ltag] decode and encode the tables.
// This package combines them.
package fonttable

import (
	"io"

	"seehuhn.de/go/fonttable/header"
	"seehuhn.de/go/fonttable/ltag"
	"seehuhn.de/go/fonttable/name"
)

// ReadNames reads the "name" table of an sfnt font file.
// If the font contains an 'ltag' table, it is used to resolve the
// languages of platform 0 records.
func ReadNames(r io.ReaderAt) (name.Names, error) {
	info, err := header.Read(r)
	if err != nil {
		return nil, err
	}

	var tags []string
	if info.Has("ltag") {
		data, err := info.ReadTableBytes(r, "ltag")
		if err != nil {
			return nil, err
		}
		tags, err = ltag.Decode(data)
		if err != nil {
			return nil, err
		}
	}

	data, err := info.ReadTableBytes(r, "name")
	if err != nil {
		return nil, err
	}
	return name.Decode(data, tags)
}

// WriteNames encodes the names and stores the resulting "name" table in
// tables.  The map can then be written using [header.Write].
//
// If tables already contains an 'ltag' table and opt.LangTags is nil, the
// existing language tags are kept and new tags are appended.
func WriteNames(tables map[string][]byte, names name.Names, opt *name.EncodeOptions) error {
	var o name.EncodeOptions
	if opt != nil {
		o = *opt
	}
	if o.LangTags == nil && tables["ltag"] != nil {
		tags, err := ltag.Decode(tables["ltag"])
		if err != nil {
			return err
		}
		o.LangTags = tags
	}

	data, tags, err := names.Encode(&o)
	if err != nil {
		return err
	}
	if tags != nil {
		ltagData, err := ltag.Encode(tags)
		if err != nil {
			return err
		}
		tables["ltag"] = ltagData
	}
	tables["name"] = data
	return nil
}
