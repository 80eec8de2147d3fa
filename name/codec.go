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
	"golang.org/x/text/encoding/unicode"

	"seehuhn.de/go/fonttable/mac"
)

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// utf16Decode converts big-endian UTF-16 text to UTF-8.
// A trailing odd byte is ignored and unpaired surrogates are replaced by
// U+FFFD.
func utf16Decode(buf []byte) string {
	if len(buf)%2 != 0 {
		buf = buf[:len(buf)-1]
	}
	res, err := utf16BE.NewDecoder().Bytes(buf)
	if err != nil {
		return ""
	}
	return string(res)
}

func utf16Encode(s string) []byte {
	res, err := utf16BE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// The encoder replaces invalid UTF-8 and does not fail.
		panic(err)
	}
	return res
}

// decodeText converts the bytes of a record to UTF-8.
// The second return value is false if the encoding is not supported.
func decodeText(rec *Record, buf []byte) (string, bool) {
	switch rec.PlatformID {
	case 0, 3: // Unicode and Windows
		return utf16Decode(buf), true
	case 1: // Macintosh
		cs, ok := mac.Select(rec.EncodingID, rec.LanguageID)
		if !ok {
			return "", false
		}
		return mac.Decode(cs, buf), true
	default:
		return "", false
	}
}

// macEncode tries to represent s in the legacy encoding for a Macintosh
// language code.
func macEncode(languageID uint16, s string) (encodingID uint16, buf []byte, ok bool) {
	encodingID, ok = mac.Script(languageID)
	if !ok {
		return 0, nil, false
	}
	cs, ok := mac.Select(encodingID, languageID)
	if !ok {
		return 0, nil, false
	}
	buf, ok = mac.Encode(cs, s)
	return encodingID, buf, ok
}
