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


package name

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/text/language"

	"seehuhn.de/go/fonttable/table"
)

// EncodeOptions controls which records are written by Names.Encode.
type EncodeOptions struct {
	// Mac enables additional Macintosh records, for all languages which
	// have a Macintosh language code and where the text can be represented
	// in the corresponding legacy encoding.
	Mac bool

	// WindowsOnly restricts the output to languages which have a Windows
	// language ID.  Translations for other languages are omitted.
	WindowsOnly bool

	// LangTags lists the entries of an existing 'ltag' table.  Tags which
	// are needed for platform 0 records but are missing from this list
	// are appended.
	LangTags []string

	// If LangTagRecords is set, languages without a Windows language ID are
	// stored as Windows records which refer to lang-tag records in a
	// format 1 table, instead of using platform 0 and the 'ltag' table.
	LangTagRecords bool
}

type record struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	offset     int
	length     int
}

// Encode converts the names into the binary form of a "name" table.
//
// The second return value is the content of the 'ltag' table needed to
// interpret the platform 0 records, or nil if no such records are present.
// If the string storage exceeds 64 KiB, an *fonterror.OverflowError is
// returned.
func (names Names) Encode(opt *EncodeOptions) ([]byte, []string, error) {
	if opt == nil {
		opt = &EncodeOptions{}
	}

	ltag := slices.Clone(opt.LangTags)
	var langTags []string
	var records []*record
	b := newNameBuilder()

	add := func(platformID, encodingID, languageID, nameID uint16, data []byte) {
		offset, length := b.Add(data)
		records = append(records, &record{
			PlatformID: platformID,
			EncodingID: encodingID,
			LanguageID: languageID,
			NameID:     nameID,
			offset:     offset,
			length:     length,
		})
	}

	for _, key := range slices.Sorted(maps.Keys(names)) {
		nameID, ok := key.NameID()
		if !ok || KeyFor(nameID) != key {
			return nil, nil, fmt.Errorf("name: invalid key %q", key)
		}

		tt := names[key]
		for _, tag := range slices.Sorted(maps.Keys(tt)) {
			text := tt[tag]
			if text == "" {
				continue
			}
			if _, err := language.Parse(tag); err != nil {
				return nil, nil, fmt.Errorf("name: invalid language tag %q: %w", tag, err)
			}

			switch languageID, ok := WindowsLanguages.ID(tag); {
			case ok:
				add(3, 1, languageID, nameID, utf16Encode(text))
			case opt.WindowsOnly:
				// omitted
			case tag == "und":
				add(0, 4, 0xFFFF, nameID, utf16Encode(text))
			case opt.LangTagRecords:
				idx, ok := tagList(langTags).ID(tag)
				if !ok {
					if len(langTags) >= 0x7FFF {
						return nil, nil, errTooManyTags
					}
					idx = uint16(len(langTags))
					langTags = append(langTags, tag)
				}
				add(3, 1, 0x8000+idx, nameID, utf16Encode(text))
			default:
				idx, ok := tagList(ltag).ID(tag)
				if !ok {
					if len(ltag) >= 0xFFFF {
						return nil, nil, errTooManyTags
					}
					idx = uint16(len(ltag))
					ltag = append(ltag, tag)
				}
				add(0, 4, idx, nameID, utf16Encode(text))
			}

			if !opt.Mac {
				continue
			}
			if languageID, ok := MacLanguages.ID(tag); ok {
				encodingID, buf, ok := macEncode(languageID, text)
				if ok {
					add(1, encodingID, languageID, nameID, buf)
				}
			}
		}
	}

	slices.SortFunc(records, func(r1, r2 *record) int {
		if c := cmp.Compare(r1.PlatformID, r2.PlatformID); c != 0 {
			return c
		}
		if c := cmp.Compare(r1.EncodingID, r2.EncodingID); c != 0 {
			return c
		}
		if c := cmp.Compare(r1.LanguageID, r2.LanguageID); c != 0 {
			return c
		}
		return cmp.Compare(r1.NameID, r2.NameID)
	})

	type tagRange struct {
		offset, length int
	}
	tagRanges := make([]tagRange, len(langTags))
	for i, tag := range langTags {
		tagRanges[i].offset, tagRanges[i].length = b.Add(utf16Encode(tag))
	}

	format := 0
	stringOffset := 6 + 12*len(records)
	if len(langTags) > 0 {
		format = 1
		stringOffset += 2 + 4*len(langTags)
	}

	t := table.New("name")
	t.Add("format", table.Uint16, int64(format))
	t.Add("count", table.Uint16, table.Value(len(records)))
	t.Add("stringOffset", table.Uint16, table.Value(stringOffset))
	for i, rec := range records {
		t.Add(fmt.Sprintf("platformID_%d", i), table.Uint16, int64(rec.PlatformID))
		t.Add(fmt.Sprintf("encodingID_%d", i), table.Uint16, int64(rec.EncodingID))
		t.Add(fmt.Sprintf("languageID_%d", i), table.Uint16, int64(rec.LanguageID))
		t.Add(fmt.Sprintf("nameID_%d", i), table.Uint16, int64(rec.NameID))
		t.Add(fmt.Sprintf("length_%d", i), table.Uint16, table.Value(rec.length))
		t.Add(fmt.Sprintf("offset_%d", i), table.Uint16, table.Value(rec.offset))
	}
	if format == 1 {
		t.Add("langTagCount", table.Uint16, table.Value(len(langTags)))
		for i, r := range tagRanges {
			t.Add(fmt.Sprintf("langTagLength_%d", i), table.Uint16, table.Value(r.length))
			t.Add(fmt.Sprintf("langTagOffset_%d", i), table.Uint16, table.Value(r.offset))
		}
	}
	t.AddBytes("strings", b.data)

	data, err := t.Encode()
	if err != nil {
		return nil, nil, err
	}

	if len(ltag) == 0 {
		ltag = nil
	}
	return data, ltag, nil
}

// nameBuilder collects the string storage of a "name" table.
// Identical strings are stored only once.
type nameBuilder struct {
	data []byte
	idx  map[string]int
}

func newNameBuilder() *nameBuilder {
	return &nameBuilder{
		idx: make(map[string]int),
	}
}

func (nb *nameBuilder) Add(b []byte) (offs, length int) {
	key := string(b)
	if idx, ok := nb.idx[key]; ok {
		return idx, len(b)
	}
	idx := len(nb.data)
	nb.idx[key] = idx
	nb.data = append(nb.data, b...)
	return idx, len(b)
}

var errTooManyTags = errors.New("name: too many language tags")
