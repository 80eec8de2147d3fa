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


// Package name reads and writes OpenType "name" tables.
//
// The records of a "name" table are identified by a platform ID, an
// encoding ID, a language ID and a name ID.  This package resolves these
// identifiers into a map from name keys to translations, where each
// translation is keyed by a BCP 47 language tag.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/name
package name

import (
	"fmt"

	"seehuhn.de/go/fonttable/fonterror"
	"seehuhn.de/go/fonttable/parser"
)

// Names contains the information from a "name" table.
type Names map[Key]Translations

// Translations maps BCP 47 language tags to text.
type Translations map[string]string

// Record is one entry of the record array of a "name" table.
type Record struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	Length     uint16
	Offset     uint16
}

// A Decoder converts binary "name" tables into Names.
type Decoder struct {
	// LangTags is the content of the 'ltag' table, if present.
	// It is used to resolve the language IDs of platform 0 records.
	LangTags []string

	// If Report is non-nil, it is called for every record which is
	// skipped because its platform, encoding or language is not
	// supported.  This does not change the result of Decode.
	Report func(rec *Record, err error)
}

// Decode extracts the information from a "name" table.
// The ltag argument gives the content of the 'ltag' table and can be nil.
func Decode(data []byte, ltag []string) (Names, error) {
	d := &Decoder{LangTags: ltag}
	return d.Decode(data, 0)
}

// Decode extracts the information from a "name" table which starts at
// position start in data.
//
// Records with unsupported identifiers are skipped.  If the table is
// truncated, an error is returned and no names are reported.
func (d *Decoder) Decode(data []byte, start int) (Names, error) {
	if start < 0 || start > len(data) {
		return nil, &fonterror.TruncatedError{Table: "name", Pos: start, Have: len(data)}
	}
	p := parser.New("name", data[start:], 0)

	format, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	count, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	stringOffset, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}

	records := make([]Record, count)
	for i := range records {
		err = readRecord(p, &records[i])
		if err != nil {
			return nil, err
		}
	}

	var langTags []string
	if format == 1 {
		langTags, err = readLangTags(p, int(stringOffset))
		if err != nil {
			return nil, err
		}
	}

	res := make(Names)
	for i := range records {
		rec := &records[i]

		tab := languages(rec.PlatformID, d.LangTags, langTags, format == 1)
		if tab == nil {
			d.drop(rec, "platform %d", rec.PlatformID)
			continue
		}

		err = p.SeekPos(int(stringOffset) + int(rec.Offset))
		if err != nil {
			return nil, err
		}
		buf, err := p.ReadBytes(int(rec.Length))
		if err != nil {
			return nil, err
		}

		text, ok := decodeText(rec, buf)
		if !ok {
			d.drop(rec, "encoding %d for platform %d", rec.EncodingID, rec.PlatformID)
			continue
		}
		tag, ok := tab.Tag(rec.LanguageID)
		if !ok {
			d.drop(rec, "language %d for platform %d", rec.LanguageID, rec.PlatformID)
			continue
		}
		if text == "" {
			continue
		}

		key := KeyFor(rec.NameID)
		tt := res[key]
		if tt == nil {
			tt = make(Translations)
			res[key] = tt
		}
		tt[tag] = text
	}
	return res, nil
}

func (d *Decoder) drop(rec *Record, format string, a ...interface{}) {
	err := &fonterror.NotSupportedError{
		SubSystem: "sfnt/name",
		Feature:   fmt.Sprintf(format, a...),
	}
	tracer().Debugf("skipping name record %d/%d/%d/%d: %v",
		rec.PlatformID, rec.EncodingID, rec.LanguageID, rec.NameID, err)
	if d.Report != nil {
		d.Report(rec, err)
	}
}

func readRecord(p *parser.Parser, rec *Record) error {
	buf, err := p.ReadBytes(12)
	if err != nil {
		return err
	}
	rec.PlatformID = uint16(buf[0])<<8 | uint16(buf[1])
	rec.EncodingID = uint16(buf[2])<<8 | uint16(buf[3])
	rec.LanguageID = uint16(buf[4])<<8 | uint16(buf[5])
	rec.NameID = uint16(buf[6])<<8 | uint16(buf[7])
	rec.Length = uint16(buf[8])<<8 | uint16(buf[9])
	rec.Offset = uint16(buf[10])<<8 | uint16(buf[11])
	return nil
}

// readLangTags reads the lang-tag records of a format 1 "name" table.
// The parser must be positioned at the langTagCount field.
func readLangTags(p *parser.Parser, stringOffset int) ([]string, error) {
	n, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	ranges := make([]uint16, 2*int(n))
	for i := range ranges {
		ranges[i], err = p.ReadUint16()
		if err != nil {
			return nil, err
		}
	}

	res := make([]string, n)
	for i := range res {
		length := int(ranges[2*i])
		offset := int(ranges[2*i+1])
		err = p.SeekPos(stringOffset + offset)
		if err != nil {
			return nil, err
		}
		buf, err := p.ReadBytes(length)
		if err != nil {
			return nil, err
		}
		res[i] = utf16Decode(buf)
	}
	return res, nil
}
