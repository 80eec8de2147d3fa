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

// Package mac implements the single-byte Macintosh text encodings used in
// legacy "name" table records.
//
// The byte tables follow the mapping files published by Apple:
// https://unicode.org/Public/MAPPINGS/VENDORS/APPLE/ReadMe.txt
package mac

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Charset is a single-byte character encoding.
// The charmaps from golang.org/x/text/encoding/charmap implement this
// interface.
type Charset interface {
	DecodeByte(b byte) rune
	EncodeRune(r rune) (b byte, ok bool)
}

// The supported Macintosh encodings.
var (
	Roman    Charset = charmap.Macintosh
	Cyrillic Charset = charmap.MacintoshCyrillic

	Icelandic Charset = variant(map[byte]rune{
		0xA0: 'Ý', 0xDC: 'Ð', 0xDD: 'ð', 0xDE: 'Þ', 0xDF: 'þ', 0xE0: 'ý',
	})
	Turkish Charset = variant(map[byte]rune{
		0xDA: 'Ğ', 0xDB: 'ğ', 0xDC: 'İ', 0xDD: 'ı', 0xDE: 'Ş', 0xDF: 'ş',
		0xF5: '\uF8A0', // undefined
	})
	Romanian Charset = variant(map[byte]rune{
		0xAE: 'Ă', 0xAF: 'Ș', 0xBE: 'ă', 0xBF: 'ș', 0xDE: 'Ț', 0xDF: 'ț',
	})
	Croatian Charset = variant(map[byte]rune{
		0xA9: 'Š', 0xAE: 'Ž', 0xB4: '∆', 0xB9: 'š', 0xBE: 'ž', 0xC6: 'Ć', 0xC8: 'Č',
		0xD0: 'Đ', 0xD8: '\uF8FF', 0xD9: '©', 0xDE: 'Æ', 0xDF: '»', 0xE0: '–',
		0xE6: 'ć', 0xE8: 'č', 0xF0: 'đ', 0xF9: 'π', 0xFA: 'Ë', 0xFD: 'Ê', 0xFE: 'æ',
	})
	Gaelic Charset = variant(map[byte]rune{
		0xB0: 'Ḃ', 0xB4: 'ḃ', 0xB5: 'Ċ', 0xB6: 'ċ', 0xB7: 'Ḋ', 0xB8: 'ḋ', 0xB9: 'Ḟ',
		0xBA: 'ḟ', 0xBB: 'Ġ', 0xBC: 'ġ', 0xBD: 'Ṁ', 0xC0: 'ṁ', 0xC1: 'Ṗ', 0xC2: 'ṗ',
		0xC3: 'ɼ', 0xC5: 'ſ', 0xC6: 'Ṡ', 0xD6: 'ṡ', 0xD7: 'ẛ', 0xDA: 'Ṫ', 0xDE: 'Ŷ',
		0xDF: 'ŷ', 0xE0: 'ṫ', 0xE2: 'Ỳ', 0xE3: 'ỳ', 0xE4: '⁊', 0xF0: '♣', 0xF6: 'Ý',
		0xF7: 'ý', 0xF8: 'Ŵ', 0xF9: 'ŵ', 0xFA: 'Ẅ', 0xFB: 'ẅ', 0xFC: 'Ẁ', 0xFD: 'ẁ',
		0xFE: 'Ẃ', 0xFF: 'ẃ',
	})

	CentralEuropean Charset = newTable([128]rune{
		'Ä', 'Ā', 'ā', 'É', 'Ą', 'Ö', 'Ü', 'á', 'ą', 'Č', 'ä', 'č', 'Ć', 'ć', 'é', 'Ź', // 0x80
		'ź', 'Ď', 'í', 'ď', 'Ē', 'ē', 'Ė', 'ó', 'ė', 'ô', 'ö', 'õ', 'ú', 'Ě', 'ě', 'ü', // 0x90
		'†', '°', 'Ę', '£', '§', '•', '¶', 'ß', '®', '©', '™', 'ę', '¨', '≠', 'ģ', 'Į', // 0xA0
		'į', 'Ī', '≤', '≥', 'ī', 'Ķ', '∂', '∑', 'ł', 'Ļ', 'ļ', 'Ľ', 'ľ', 'Ĺ', 'ĺ', 'Ņ', // 0xB0
		'ņ', 'Ń', '¬', '√', 'ń', 'Ň', '∆', '«', '»', '…', '\u00A0', 'ň', 'Ő', 'Õ', 'ő', 'Ō', // 0xC0
		'–', '—', '“', '”', '‘', '’', '÷', '◊', 'ō', 'Ŕ', 'ŕ', 'Ř', '‹', '›', 'ř', 'Ŗ', // 0xD0
		'ŗ', 'Š', '‚', '„', 'š', 'Ś', 'ś', 'Á', 'Ť', 'ť', 'Í', 'Ž', 'ž', 'Ū', 'Ó', 'Ô', // 0xE0
		'ū', 'Ů', 'Ú', 'ů', 'Ű', 'ű', 'Ų', 'ų', 'Ý', 'ý', 'ķ', 'Ż', 'Ł', 'ż', 'Ģ', 'ˇ', // 0xF0
	})

	Greek Charset = newTable([128]rune{
		'Ä', '¹', '²', 'É', '³', 'Ö', 'Ü', '\u0385', 'à', 'â', 'ä', '\u0384', '¨', 'ç', 'é', 'è', // 0x80
		'ê', 'ë', '£', '™', 'î', 'ï', '•', '½', '‰', 'ô', 'ö', '¦', '€', 'ù', 'û', 'ü', // 0x90
		'†', 'Γ', 'Δ', 'Θ', 'Λ', 'Ξ', 'Π', 'ß', '®', '©', 'Σ', 'Ϊ', '§', '≠', '°', '·', // 0xA0
		'Α', '±', '≤', '≥', '¥', 'Β', 'Ε', 'Ζ', 'Η', 'Ι', 'Κ', 'Μ', 'Φ', 'Ϋ', 'Ψ', 'Ω', // 0xB0
		'ά', 'Ν', '¬', 'Ο', 'Ρ', '≈', 'Τ', '«', '»', '…', '\u00A0', 'Υ', 'Χ', 'Ά', 'Έ', 'œ', // 0xC0
		'–', '―', '“', '”', '‘', '’', '÷', 'Ή', 'Ί', 'Ό', 'Ύ', 'έ', 'ή', 'ί', 'ό', 'Ώ', // 0xD0
		'ύ', 'α', 'β', 'ψ', 'δ', 'ε', 'φ', 'γ', 'η', 'ι', 'ξ', 'κ', 'λ', 'μ', 'ν', 'ο', // 0xE0
		'π', 'ώ', 'ρ', 'σ', 'τ', 'θ', 'ω', 'ς', 'χ', 'υ', 'ζ', 'ϊ', 'ϋ', 'ΐ', 'ΰ', '\u00AD', // 0xF0
	})

	// Inuit is used for Inuktitut syllabics, in place of the Ethiopic script.
	Inuit Charset = newTable([128]rune{
		'ᐃ', 'ᐄ', 'ᐅ', 'ᐆ', 'ᐊ', 'ᐋ', 'ᐱ', 'ᐲ', 'ᐳ', 'ᐴ', 'ᐸ', 'ᐹ', 'ᑉ', 'ᑎ', 'ᑏ', 'ᑐ', // 0x80
		'ᑑ', 'ᑕ', 'ᑖ', 'ᑦ', 'ᑭ', 'ᑮ', 'ᑯ', 'ᑰ', 'ᑲ', 'ᑳ', 'ᒃ', 'ᒋ', 'ᒌ', 'ᒍ', 'ᒎ', 'ᒐ', // 0x90
		'ᒑ', '°', 'ᒡ', 'ᒥ', 'ᒦ', '•', '¶', 'ᒧ', '®', '©', '™', 'ᒨ', 'ᒪ', 'ᒫ', 'ᒻ', 'ᓂ', // 0xA0
		'ᓃ', 'ᓄ', 'ᓅ', 'ᓇ', 'ᓈ', 'ᓐ', 'ᓯ', 'ᓰ', 'ᓱ', 'ᓲ', 'ᓴ', 'ᓵ', 'ᔅ', 'ᓕ', 'ᓖ', 'ᓗ', // 0xB0
		'ᓘ', 'ᓚ', 'ᓛ', 'ᓪ', 'ᔨ', 'ᔩ', 'ᔪ', 'ᔫ', 'ᔭ', '…', '\u00A0', 'ᔮ', 'ᔾ', 'ᕕ', 'ᕖ', 'ᕗ', // 0xC0
		'–', '—', '“', '”', '‘', '’', 'ᕘ', 'ᕙ', 'ᕚ', 'ᕝ', 'ᕆ', 'ᕇ', 'ᕈ', 'ᕉ', 'ᕋ', 'ᕌ', // 0xD0
		'ᕐ', 'ᕿ', 'ᖀ', 'ᖁ', 'ᖂ', 'ᖃ', 'ᖄ', 'ᖅ', 'ᖏ', 'ᖐ', 'ᖑ', 'ᖒ', 'ᖓ', 'ᖔ', 'ᖕ', 'ᙱ', // 0xE0
		'ᙲ', 'ᙳ', 'ᙴ', 'ᙵ', 'ᙶ', 'ᖖ', 'ᖠ', 'ᖡ', 'ᖢ', 'ᖣ', 'ᖤ', 'ᖥ', 'ᖦ', 'ᕼ', 'Ł', 'ł', // 0xF0
	})
)

// Decode converts a string in the given encoding to UTF-8.
func Decode(cs Charset, b []byte) string {
	var res strings.Builder
	res.Grow(len(b))
	for _, c := range b {
		res.WriteRune(cs.DecodeByte(c))
	}
	return res.String()
}

// Encode converts a UTF-8 string to the given encoding.
// If s contains characters which cannot be represented, the second
// return value is false.
func Encode(cs Charset, s string) ([]byte, bool) {
	res := make([]byte, 0, len(s))
	for _, r := range s {
		c, ok := cs.EncodeRune(r)
		if !ok {
			return nil, false
		}
		res = append(res, c)
	}
	return res, true
}

// table is a Macintosh encoding which agrees with ASCII on the lower half.
type table struct {
	high [128]rune
	rev  map[rune]byte
}

func newTable(high [128]rune) *table {
	t := &table{
		high: high,
		rev:  make(map[rune]byte, 128),
	}
	for i, r := range high {
		t.rev[r] = byte(i + 0x80)
	}
	return t
}

// variant returns the Roman encoding with some code points replaced.
func variant(replace map[byte]rune) *table {
	var high [128]rune
	for i := range high {
		c := byte(i + 0x80)
		if r, ok := replace[c]; ok {
			high[i] = r
		} else {
			high[i] = Roman.DecodeByte(c)
		}
	}
	return newTable(high)
}

func (t *table) DecodeByte(b byte) rune {
	if b < 0x80 {
		return rune(b)
	}
	return t.high[b-0x80]
}

func (t *table) EncodeRune(r rune) (byte, bool) {
	if r < 0x80 {
		return byte(r), true
	}
	b, ok := t.rev[r]
	return b, ok
}
