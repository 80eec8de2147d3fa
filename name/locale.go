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

// LanguageTable maps the numeric language IDs of one platform to BCP 47
// language tags.
type LanguageTable interface {
	// Tag returns the language tag for a language ID.
	Tag(languageID uint16) (string, bool)

	// ID returns the language ID used for a language tag.
	ID(tag string) (uint16, bool)
}

// The built-in language tables.
var (
	MacLanguages     LanguageTable = newCodeTable(appleBCP)
	WindowsLanguages LanguageTable = newCodeTable(msBCP)
)

// codeTable is a fixed LanguageTable.  If more than one language ID maps to
// the same tag, ID returns the smallest one.
type codeTable struct {
	tags map[uint16]string
	ids  map[string]uint16
}

func newCodeTable(tags map[uint16]string) *codeTable {
	ids := make(map[string]uint16, len(tags))
	for id, tag := range tags {
		if old, seen := ids[tag]; seen && old < id {
			continue
		}
		ids[tag] = id
	}
	return &codeTable{tags: tags, ids: ids}
}

func (ct *codeTable) Tag(languageID uint16) (string, bool) {
	tag, ok := ct.tags[languageID]
	return tag, ok
}

func (ct *codeTable) ID(tag string) (uint16, bool) {
	id, ok := ct.ids[tag]
	return id, ok
}

// tagList is the language table given by an 'ltag' table, or by the
// lang-tag records of a format 1 "name" table.
type tagList []string

func (tl tagList) Tag(languageID uint16) (string, bool) {
	if int(languageID) >= len(tl) {
		return "", false
	}
	return tl[languageID], true
}

func (tl tagList) ID(tag string) (uint16, bool) {
	for i, t := range tl {
		if t == tag && i < 0xFFFF {
			return uint16(i), true
		}
	}
	return 0, false
}

// languages returns the language table used for records of the given
// platform, or nil if the platform is not supported.
// The ltag argument gives the content of the 'ltag' table.  If langTagRecords
// is set, language IDs from 0x8000 upwards on platforms 0 and 3 refer to
// the lang-tag records langTags of a format 1 table.
func languages(platformID uint16, ltag, langTags []string, langTagRecords bool) LanguageTable {
	var tab LanguageTable
	switch platformID {
	case 0: // Unicode
		tab = unicodeTable(ltag)
	case 1: // Macintosh
		return MacLanguages
	case 3: // Windows
		tab = WindowsLanguages
	default:
		return nil
	}
	if langTagRecords {
		tab = &langTagTable{base: tab, tags: langTags}
	}
	return tab
}

// unicodeTable resolves the language IDs of platform 0 records through the
// 'ltag' table.  IDs which are not covered by the table, including 0xFFFF,
// map to the tag "und".
type unicodeTable []string

func (ut unicodeTable) Tag(languageID uint16) (string, bool) {
	if languageID != 0xFFFF {
		if tag, ok := tagList(ut).Tag(languageID); ok {
			return tag, true
		}
	}
	return "und", true
}

func (ut unicodeTable) ID(tag string) (uint16, bool) {
	if id, ok := tagList(ut).ID(tag); ok {
		return id, true
	}
	if tag == "und" {
		return 0xFFFF, true
	}
	return 0, false
}

// langTagTable adds the lang-tag records of a format 1 table to another
// language table.
type langTagTable struct {
	base LanguageTable
	tags tagList
}

func (lt *langTagTable) Tag(languageID uint16) (string, bool) {
	if languageID < 0x8000 || languageID == 0xFFFF {
		return lt.base.Tag(languageID)
	}
	return lt.tags.Tag(languageID - 0x8000)
}

func (lt *langTagTable) ID(tag string) (uint16, bool) {
	if id, ok := lt.base.ID(tag); ok {
		return id, true
	}
	id, ok := lt.tags.ID(tag)
	if !ok || id >= 0x7FFF {
		return 0, false
	}
	return 0x8000 + id, true
}

// Macintosh language codes
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#macintosh-language-ids
var appleBCP = map[uint16]string{
	0:   "en",         // English
	1:   "fr",         // French
	2:   "de",         // German
	3:   "it",         // Italian
	4:   "nl",         // Dutch
	5:   "sv",         // Swedish
	6:   "es",         // Spanish
	7:   "da",         // Danish
	8:   "pt",         // Portuguese
	9:   "no",         // Norwegian
	10:  "he",         // Hebrew
	11:  "ja",         // Japanese
	12:  "ar",         // Arabic
	13:  "fi",         // Finnish
	14:  "el",         // Greek
	15:  "is",         // Icelandic
	16:  "mt",         // Maltese
	17:  "tr",         // Turkish
	18:  "hr",         // Croatian
	19:  "zh-Hant",    // Chinese (traditional)
	20:  "ur",         // Urdu
	21:  "hi",         // Hindi
	22:  "th",         // Thai
	23:  "ko",         // Korean
	24:  "lt",         // Lithuanian
	25:  "pl",         // Polish
	26:  "hu",         // Hungarian
	27:  "et",         // Estonian
	28:  "lv",         // Latvian
	29:  "se",         // Sami
	30:  "fo",         // Faroese
	31:  "fa",         // Farsi/Persian
	32:  "ru",         // Russian
	33:  "zh",         // Chinese (simplified)
	34:  "nl-BE",      // Flemish
	35:  "ga",         // Irish Gaelic
	36:  "sq",         // Albanian
	37:  "ro",         // Romanian
	38:  "cs",         // Czech
	39:  "sk",         // Slovak
	40:  "sl",         // Slovenian
	41:  "yi",         // Yiddish
	42:  "sr",         // Serbian
	43:  "mk",         // Macedonian
	44:  "bg",         // Bulgarian
	45:  "uk",         // Ukrainian
	46:  "be",         // Byelorussian
	47:  "uz",         // Uzbek
	48:  "kk",         // Kazakh
	49:  "az-Cyrl",    // Azerbaijani (Cyrillic script)
	50:  "az-Arab",    // Azerbaijani (Arabic script)
	51:  "hy",         // Armenian
	52:  "ka",         // Georgian
	53:  "mo",         // Moldavian
	54:  "ky",         // Kirghiz
	55:  "tg",         // Tajiki
	56:  "tk",         // Turkmen
	57:  "mn-CN",      // Mongolian (Mongolian script)
	58:  "mn",         // Mongolian (Cyrillic script)
	59:  "ps",         // Pashto
	60:  "ks",         // Kurdish
	61:  "ku",         // Kashmiri
	62:  "sd",         // Sindhi
	63:  "bo",         // Tibetan
	64:  "ne",         // Nepali
	65:  "sa",         // Sanskrit
	66:  "mr",         // Marathi
	67:  "bn",         // Bengali
	68:  "as",         // Assamese
	69:  "gu",         // Gujarati
	70:  "pa",         // Punjabi
	71:  "or",         // Oriya
	72:  "ml",         // Malayalam
	73:  "kn",         // Kannada
	74:  "ta",         // Tamil
	75:  "te",         // Telugu
	76:  "si",         // Sinhalese
	77:  "my",         // Burmese
	78:  "km",         // Khmer
	79:  "lo",         // Lao
	80:  "vi",         // Vietnamese
	81:  "id",         // Indonesian
	82:  "tl",         // Tagalog
	83:  "ms",         // Malay (Roman script)
	84:  "ms-Arab",    // Malay (Arabic script)
	85:  "am",         // Amharic
	86:  "ti",         // Tigrinya
	87:  "om",         // Galla
	88:  "so",         // Somali
	89:  "sw",         // Swahili
	90:  "rw",         // Kinyarwanda/Ruanda
	91:  "rn",         // Rundi
	92:  "ny",         // Nyanja/Chewa
	93:  "mg",         // Malagasy
	94:  "eo",         // Esperanto
	128: "cy",         // Welsh
	129: "eu",         // Basque
	130: "ca",         // Catalan
	131: "la",         // Latin
	132: "qu",         // Quechua
	133: "gn",         // Guarani
	134: "ay",         // Aymara
	135: "tt",         // Tatar
	136: "ug",         // Uighur
	137: "dz",         // Dzongkha
	138: "jv",         // Javanese (Roman script)
	139: "su",         // Sundanese (Roman script)
	140: "gl",         // Galician
	141: "af",         // Afrikaans
	142: "br",         // Breton
	143: "iu",         // Inuktitut
	144: "gd",         // Scottish Gaelic
	145: "gv",         // Manx Gaelic
	146: "ga",         // Irish Gaelic (with dot above)
	147: "to",         // Tongan
	148: "el-polyton", // Greek (polytonic)
	149: "kl",         // Greenlandic
	150: "az",         // Azerbaijani (Roman script)
	151: "nn",         // Norwegian Nynorsk
}

// Windows language IDs (LCIDs).  The primary locale of a language uses the
// bare language tag, other locales include the region.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#windows-language-ids
var msBCP = map[uint16]string{
	0x0436: "af",         // Afrikaans, South Africa
	0x041C: "sq",         // Albanian, Albania
	0x0484: "gsw",        // Alsatian, France
	0x045E: "am",         // Amharic, Ethiopia
	0x1401: "ar-DZ",      // Arabic, Algeria
	0x3C01: "ar-BH",      // Arabic, Bahrain
	0x0C01: "ar",         // Arabic, Egypt
	0x0801: "ar-IQ",      // Arabic, Iraq
	0x2C01: "ar-JO",      // Arabic, Jordan
	0x3401: "ar-KW",      // Arabic, Kuwait
	0x3001: "ar-LB",      // Arabic, Lebanon
	0x1001: "ar-LY",      // Arabic, Libya
	0x1801: "ary",        // Arabic, Morocco
	0x2001: "ar-OM",      // Arabic, Oman
	0x4001: "ar-QA",      // Arabic, Qatar
	0x0401: "ar-SA",      // Arabic, Saudi Arabia
	0x2801: "ar-SY",      // Arabic, Syria
	0x1C01: "aeb",        // Arabic, Tunisia
	0x3801: "ar-AE",      // Arabic, U.A.E.
	0x2401: "ar-YE",      // Arabic, Yemen
	0x042B: "hy",         // Armenian, Armenia
	0x044D: "as",         // Assamese, India
	0x082C: "az-Cyrl",    // Azeri (Cyrillic), Azerbaijan
	0x042C: "az",         // Azeri (Latin), Azerbaijan
	0x046D: "ba",         // Bashkir, Russia
	0x042D: "eu",         // Basque, Basque
	0x0423: "be",         // Belarusian, Belarus
	0x0845: "bn",         // Bengali, Bangladesh
	0x0445: "bn-IN",      // Bengali, India
	0x201A: "bs-Cyrl",    // Bosnian (Cyrillic), Bosnia and Herzegovina
	0x141A: "bs",         // Bosnian (Latin), Bosnia and Herzegovina
	0x047E: "br",         // Breton, France
	0x0402: "bg",         // Bulgarian, Bulgaria
	0x0403: "ca",         // Catalan, Catalan
	0x0C04: "zh-HK",      // Chinese, Hong Kong S.A.R.
	0x1404: "zh-MO",      // Chinese, Macao S.A.R.
	0x0804: "zh",         // Chinese, People's Republic of China
	0x1004: "zh-SG",      // Chinese, Singapore
	0x0404: "zh-TW",      // Chinese, Taiwan
	0x0483: "co",         // Corsican, France
	0x041A: "hr",         // Croatian, Croatia
	0x101A: "hr-BA",      // Croatian (Latin), Bosnia and Herzegovina
	0x0405: "cs",         // Czech, Czech Republic
	0x0406: "da",         // Danish, Denmark
	0x048C: "prs",        // Dari, Afghanistan
	0x0465: "dv",         // Divehi, Maldives
	0x0813: "nl-BE",      // Dutch, Belgium
	0x0413: "nl",         // Dutch, Netherlands
	0x0C09: "en-AU",      // English, Australia
	0x2809: "en-BZ",      // English, Belize
	0x1009: "en-CA",      // English, Canada
	0x2409: "en-029",     // English, Caribbean
	0x4009: "en-IN",      // English, India
	0x1809: "en-IE",      // English, Ireland
	0x2009: "en-JM",      // English, Jamaica
	0x4409: "en-MY",      // English, Malaysia
	0x1409: "en-NZ",      // English, New Zealand
	0x3409: "en-PH",      // English, Republic of the Philippines
	0x4809: "en-SG",      // English, Singapore
	0x1C09: "en-ZA",      // English, South Africa
	0x2C09: "en-TT",      // English, Trinidad and Tobago
	0x0809: "en-GB",      // English, United Kingdom
	0x0409: "en",         // English, United States
	0x3009: "en-ZW",      // English, Zimbabwe
	0x0425: "et",         // Estonian, Estonia
	0x0438: "fo",         // Faroese, Faroe Islands
	0x0464: "fil",        // Filipino, Philippines
	0x040B: "fi",         // Finnish, Finland
	0x080C: "fr-BE",      // French, Belgium
	0x0C0C: "fr-CA",      // French, Canada
	0x040C: "fr",         // French, France
	0x140C: "fr-LU",      // French, Luxembourg
	0x180C: "fr-MC",      // French, Principality of Monaco
	0x100C: "fr-CH",      // French, Switzerland
	0x0462: "fy",         // Frisian, Netherlands
	0x0456: "gl",         // Galician, Galician
	0x0437: "ka",         // Georgian, Georgia
	0x0C07: "de-AT",      // German, Austria
	0x0407: "de",         // German, Germany
	0x1407: "de-LI",      // German, Liechtenstein
	0x1007: "de-LU",      // German, Luxembourg
	0x0807: "de-CH",      // German, Switzerland
	0x0408: "el",         // Greek, Greece
	0x046F: "kl",         // Greenlandic, Greenland
	0x0447: "gu",         // Gujarati, India
	0x0468: "ha",         // Hausa (Latin), Nigeria
	0x040D: "he",         // Hebrew, Israel
	0x0439: "hi",         // Hindi, India
	0x040E: "hu",         // Hungarian, Hungary
	0x040F: "is",         // Icelandic, Iceland
	0x0470: "ig",         // Igbo, Nigeria
	0x0421: "id",         // Indonesian, Indonesia
	0x045D: "iu",         // Inuktitut, Canada
	0x085D: "iu-Latn",    // Inuktitut (Latin), Canada
	0x083C: "ga",         // Irish, Ireland
	0x0434: "xh",         // isiXhosa, South Africa
	0x0435: "zu",         // isiZulu, South Africa
	0x0410: "it",         // Italian, Italy
	0x0810: "it-CH",      // Italian, Switzerland
	0x0411: "ja",         // Japanese, Japan
	0x044B: "kn",         // Kannada, India
	0x043F: "kk",         // Kazakh, Kazakhstan
	0x0453: "km",         // Khmer, Cambodia
	0x0486: "quc",        // K'iche, Guatemala
	0x0487: "rw",         // Kinyarwanda, Rwanda
	0x0441: "sw",         // Kiswahili, Kenya
	0x0457: "kok",        // Konkani, India
	0x0412: "ko",         // Korean, Korea
	0x0440: "ky",         // Kyrgyz, Kyrgyzstan
	0x0454: "lo",         // Lao, Lao P.D.R.
	0x0426: "lv",         // Latvian, Latvia
	0x0427: "lt",         // Lithuanian, Lithuania
	0x082E: "dsb",        // Lower Sorbian, Germany
	0x046E: "lb",         // Luxembourgish, Luxembourg
	0x042F: "mk",         // Macedonian, North Macedonia
	0x083E: "ms-BN",      // Malay, Brunei Darussalam
	0x043E: "ms",         // Malay, Malaysia
	0x044C: "ml",         // Malayalam, India
	0x043A: "mt",         // Maltese, Malta
	0x0481: "mi",         // Maori, New Zealand
	0x047A: "arn",        // Mapudungun, Chile
	0x044E: "mr",         // Marathi, India
	0x047C: "moh",        // Mohawk, Mohawk
	0x0450: "mn",         // Mongolian (Cyrillic), Mongolia
	0x0850: "mn-CN",      // Mongolian (Traditional), People's Republic of China
	0x0461: "ne",         // Nepali, Nepal
	0x0414: "nb",         // Norwegian (Bokmal), Norway
	0x0814: "nn",         // Norwegian (Nynorsk), Norway
	0x0482: "oc",         // Occitan, France
	0x0448: "or",         // Odia (formerly Oriya), India
	0x0463: "ps",         // Pashto, Afghanistan
	0x0415: "pl",         // Polish, Poland
	0x0416: "pt",         // Portuguese, Brazil
	0x0816: "pt-PT",      // Portuguese, Portugal
	0x0446: "pa",         // Punjabi, India
	0x046B: "qu-BO",      // Quechua, Bolivia
	0x086B: "qu-EC",      // Quechua, Ecuador
	0x0C6B: "qu",         // Quechua, Peru
	0x0418: "ro",         // Romanian, Romania
	0x0417: "rm",         // Romansh, Switzerland
	0x0419: "ru",         // Russian, Russia
	0x243B: "smn",        // Sami (Inari), Finland
	0x103B: "smj-NO",     // Sami (Lule), Norway
	0x143B: "smj",        // Sami (Lule), Sweden
	0x0C3B: "se-FI",      // Sami (Northern), Finland
	0x043B: "se",         // Sami (Northern), Norway
	0x083B: "se-SE",      // Sami (Northern), Sweden
	0x203B: "sms",        // Sami (Skolt), Finland
	0x183B: "sma-NO",     // Sami (Southern), Norway
	0x1C3B: "sma",        // Sami (Southern), Sweden
	0x044F: "sa",         // Sanskrit, India
	0x1C1A: "sr-Cyrl-BA", // Serbian (Cyrillic), Bosnia and Herzegovina
	0x0C1A: "sr",         // Serbian (Cyrillic), Serbia
	0x181A: "sr-Latn-BA", // Serbian (Latin), Bosnia and Herzegovina
	0x081A: "sr-Latn",    // Serbian (Latin), Serbia
	0x046C: "nso",        // Sesotho sa Leboa, South Africa
	0x0432: "tn",         // Setswana, South Africa
	0x045B: "si",         // Sinhala, Sri Lanka
	0x041B: "sk",         // Slovak, Slovakia
	0x0424: "sl",         // Slovenian, Slovenia
	0x2C0A: "es-AR",      // Spanish, Argentina
	0x400A: "es-BO",      // Spanish, Bolivia
	0x340A: "es-CL",      // Spanish, Chile
	0x240A: "es-CO",      // Spanish, Colombia
	0x140A: "es-CR",      // Spanish, Costa Rica
	0x1C0A: "es-DO",      // Spanish, Dominican Republic
	0x300A: "es-EC",      // Spanish, Ecuador
	0x440A: "es-SV",      // Spanish, El Salvador
	0x100A: "es-GT",      // Spanish, Guatemala
	0x480A: "es-HN",      // Spanish, Honduras
	0x080A: "es-MX",      // Spanish, Mexico
	0x4C0A: "es-NI",      // Spanish, Nicaragua
	0x180A: "es-PA",      // Spanish, Panama
	0x3C0A: "es-PY",      // Spanish, Paraguay
	0x280A: "es-PE",      // Spanish, Peru
	0x500A: "es-PR",      // Spanish, Puerto Rico
	0x0C0A: "es",         // Spanish (Modern Sort), Spain
	0x040A: "es",         // Spanish (Traditional Sort), Spain
	0x540A: "es-US",      // Spanish, United States
	0x380A: "es-UY",      // Spanish, Uruguay
	0x200A: "es-VE",      // Spanish, Venezuela
	0x081D: "sv-FI",      // Swedish, Finland
	0x041D: "sv",         // Swedish, Sweden
	0x045A: "syr",        // Syriac, Syria
	0x0428: "tg",         // Tajik (Cyrillic), Tajikistan
	0x085F: "tzm",        // Tamazight (Latin), Algeria
	0x0449: "ta",         // Tamil, India
	0x0444: "tt",         // Tatar, Russia
	0x044A: "te",         // Telugu, India
	0x041E: "th",         // Thai, Thailand
	0x0451: "bo",         // Tibetan, PRC
	0x041F: "tr",         // Turkish, Turkey
	0x0442: "tk",         // Turkmen, Turkmenistan
	0x0480: "ug",         // Uighur, PRC
	0x0422: "uk",         // Ukrainian, Ukraine
	0x042E: "hsb",        // Upper Sorbian, Germany
	0x0420: "ur",         // Urdu, Islamic Republic of Pakistan
	0x0843: "uz-Cyrl",    // Uzbek (Cyrillic), Uzbekistan
	0x0443: "uz",         // Uzbek (Latin), Uzbekistan
	0x042A: "vi",         // Vietnamese, Vietnam
	0x0452: "cy",         // Welsh, United Kingdom
	0x0488: "wo",         // Wolof, Senegal
	0x0485: "sah",        // Yakut, Russia
	0x0478: "ii",         // Yi, PRC
	0x046A: "yo",         // Yoruba, Nigeria
}
