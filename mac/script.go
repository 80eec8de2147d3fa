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

package mac

// Macintosh script codes, used as encoding IDs for platform 1.
const (
	ScriptRoman           = 0
	ScriptJapanese        = 1
	ScriptGreek           = 6
	ScriptCyrillic        = 7
	ScriptEthiopic        = 28
	ScriptCentralEuropean = 29
)

// Select returns the encoding for a Macintosh "name" record.
//
// Some languages use a variant of the script's standard encoding, in which
// case the language code takes precedence over the script code.  The
// second return value is false if the required encoding is not supported.
func Select(scriptID, languageID uint16) (Charset, bool) {
	if cs, isSpecial := languageCharsets[languageID]; isSpecial {
		return cs, true
	}
	cs, ok := scriptCharsets[scriptID]
	return cs, ok
}

// Script returns the script code which is normally used for text in the
// given Macintosh language.
func Script(languageID uint16) (uint16, bool) {
	script, ok := languageScripts[languageID]
	return script, ok
}

var scriptCharsets = map[uint16]Charset{
	ScriptRoman:           Roman,
	ScriptGreek:           Greek,
	ScriptCyrillic:        Cyrillic,
	ScriptEthiopic:        Inuit,
	ScriptCentralEuropean: CentralEuropean,
}

// languageCharsets lists the languages which use a variant encoding.
var languageCharsets = map[uint16]Charset{
	15:  Icelandic,       // Icelandic
	17:  Turkish,         // Turkish
	18:  Croatian,        // Croatian
	24:  CentralEuropean, // Lithuanian
	25:  CentralEuropean, // Polish
	26:  CentralEuropean, // Hungarian
	27:  CentralEuropean, // Estonian
	28:  CentralEuropean, // Latvian
	30:  Icelandic,       // Faroese
	37:  Romanian,        // Romanian
	38:  CentralEuropean, // Czech
	39:  CentralEuropean, // Slovak
	40:  Croatian,        // Slovenian
	143: Inuit,           // Inuktitut
	146: Gaelic,          // Irish Gaelic (with dot above)
}

// languageScripts gives the script code for each Macintosh language.
var languageScripts = map[uint16]uint16{
	0: 0, 1: 0, 2: 0, 3: 0, 4: 0, 5: 0, 6: 0, 7: 0, 8: 0, 9: 0,
	10: 5, 11: 1, 12: 4, 13: 0, 14: 6, 15: 0, 16: 0, 17: 0, 18: 0, 19: 2,
	20: 4, 21: 9, 22: 21, 23: 3, 24: 29, 25: 29, 26: 29, 27: 29, 28: 29, 29: 0,
	30: 0, 31: 4, 32: 7, 33: 25, 34: 0, 35: 0, 36: 0, 37: 0, 38: 29, 39: 29,
	40: 0, 41: 5, 42: 7, 43: 7, 44: 7, 45: 7, 46: 7, 47: 7, 48: 7, 49: 7,
	50: 4, 51: 24, 52: 23, 53: 7, 54: 7, 55: 7, 56: 7, 57: 27, 58: 7, 59: 4,
	60: 4, 61: 4, 62: 4, 63: 26, 64: 9, 65: 9, 66: 9, 67: 13, 68: 13, 69: 11,
	70: 10, 71: 12, 72: 17, 73: 16, 74: 14, 75: 15, 76: 18, 77: 19, 78: 20, 79: 22,
	80: 30, 81: 0, 82: 0, 83: 0, 84: 4, 85: 28, 86: 28, 87: 28, 88: 0, 89: 0,
	90: 0, 91: 0, 92: 0, 93: 0, 94: 0,
	128: 0, 129: 0, 130: 0, 131: 0, 132: 0, 133: 0, 134: 0, 135: 7, 136: 4, 137: 26,
	138: 0, 139: 0, 140: 0, 141: 0, 142: 0, 143: 28, 144: 0, 145: 0, 146: 0, 147: 0,
	148: 6, 149: 0, 150: 0, 151: 0,
}
