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


// Package ltag reads and writes the 'ltag' table.
//
// The table lists BCP 47 language tags.  Records in the "name" table for
// the Unicode platform refer to these tags by index.
// https://developer.apple.com/fonts/TrueType-Reference-Manual/RM06/Chap6ltag.html
package ltag

import (
	"fmt"

	"seehuhn.de/go/fonttable/fonterror"
	"seehuhn.de/go/fonttable/parser"
	"seehuhn.de/go/fonttable/table"
)

// Decode reads the language tags from an 'ltag' table.
func Decode(data []byte) ([]string, error) {
	p := parser.New("ltag", data, 0)

	version, err := p.ReadUint32()
	if err != nil {
		return nil, err
	}
	if version != 1 {
		return nil, &fonterror.NotSupportedError{
			SubSystem: "sfnt/ltag",
			Feature:   fmt.Sprintf("table version %d", version),
		}
	}
	err = p.Discard(4) // flags
	if err != nil {
		return nil, err
	}
	numTags, err := p.ReadUint32()
	if err != nil {
		return nil, err
	}
	if numTags > 0xFFFF {
		return nil, &fonterror.InvalidFontError{
			SubSystem: "sfnt/ltag",
			Reason:    fmt.Sprintf("too many tags (%d)", numTags),
		}
	}

	ranges := make([]uint16, 2*numTags)
	for i := range ranges {
		ranges[i], err = p.ReadUint16()
		if err != nil {
			return nil, err
		}
	}

	tags := make([]string, numTags)
	for i := range tags {
		err = p.SeekPos(int(ranges[2*i]))
		if err != nil {
			return nil, err
		}
		buf, err := p.ReadBytes(int(ranges[2*i+1]))
		if err != nil {
			return nil, err
		}
		tags[i] = string(buf)
	}
	return tags, nil
}

// Encode converts a list of language tags into an 'ltag' table.
// Tags must consist of ASCII characters.
func Encode(tags []string) ([]byte, error) {
	start := 12 + 4*len(tags)

	t := table.New("ltag")
	t.Add("version", table.Uint32, 1)
	t.Add("flags", table.Uint32, 0)
	t.Add("numTags", table.Uint32, table.Value(len(tags)))

	var data []byte
	idx := make(map[string]int)
	for i, tag := range tags {
		for _, c := range []byte(tag) {
			if c >= 0x80 {
				return nil, fmt.Errorf("ltag: invalid tag %q", tag)
			}
		}
		offset, seen := idx[tag]
		if !seen {
			offset = start + len(data)
			idx[tag] = offset
			data = append(data, tag...)
		}
		t.Add(fmt.Sprintf("offset_%d", i), table.Uint16, table.Value(offset))
		t.Add(fmt.Sprintf("length_%d", i), table.Uint16, table.Value(len(tag)))
	}
	t.AddBytes("stringData", data)

	return t.Encode()
}
