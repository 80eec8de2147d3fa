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
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/language"

	"seehuhn.de/go/fonttable/fonterror"
	"seehuhn.de/go/fonttable/parser"
	"seehuhn.de/go/fonttable/table"
)

type testRecord struct {
	platformID uint16
	encodingID uint16
	languageID uint16
	nameID     uint16
	text       []byte
}

// makeNameTable assembles a format 0 "name" table.  The strings are stored
// in record order, without sharing.
func makeNameTable(t *testing.T, recs []testRecord) []byte {
	t.Helper()

	tab := table.New("name")
	tab.Add("format", table.Uint16, 0)
	tab.Add("count", table.Uint16, int64(len(recs)))
	tab.Add("stringOffset", table.Uint16, int64(6+12*len(recs)))
	var pool []byte
	for i, rec := range recs {
		tab.Add(fmt.Sprintf("platformID_%d", i), table.Uint16, int64(rec.platformID))
		tab.Add(fmt.Sprintf("encodingID_%d", i), table.Uint16, int64(rec.encodingID))
		tab.Add(fmt.Sprintf("languageID_%d", i), table.Uint16, int64(rec.languageID))
		tab.Add(fmt.Sprintf("nameID_%d", i), table.Uint16, int64(rec.nameID))
		tab.Add(fmt.Sprintf("length_%d", i), table.Uint16, int64(len(rec.text)))
		tab.Add(fmt.Sprintf("offset_%d", i), table.Uint16, int64(len(pool)))
		pool = append(pool, rec.text...)
	}
	tab.AddBytes("strings", pool)

	data, err := tab.Encode()
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestUnknownPlatform(t *testing.T) {
	data := makeNameTable(t, []testRecord{
		{666, 1, 1, 1, []byte{0x01, 0x02}},
	})
	names, err := Decode(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Names{}, names); d != "" {
		t.Error(d)
	}
}

func TestWindowsLanguages(t *testing.T) {
	data := makeNameTable(t, []testRecord{
		{3, 1, 0x0409, 1, utf16Encode("Walrus")},
		{3, 1, 0x0407, 1, utf16Encode("Walross")},
		{3, 1, 0x0411, 1, utf16Encode("海馬")},
		{3, 1, 0x085D, 1, utf16Encode("Aiviq")},
		{3, 1, 0x045D, 1, utf16Encode("ᐊᐃᕕᖅ")},
	})
	names, err := Decode(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	expected := Names{
		FontFamily: {
			"en":      "Walrus",
			"de":      "Walross",
			"ja":      "海馬",
			"iu-Latn": "Aiviq",
			"iu":      "ᐊᐃᕕᖅ",
		},
	}
	if d := cmp.Diff(expected, names); d != "" {
		t.Error(d)
	}
}

func TestLangTagIndirection(t *testing.T) {
	data := makeNameTable(t, []testRecord{
		{0, 4, 0, 1, utf16Encode("Walrus")},
		{0, 4, 1, 1, utf16Encode("Walross")},
		{0, 4, 2, 1, utf16Encode("Walroß")},
		{0, 4, 0xFFFF, 2, utf16Encode("Regular")},
	})
	names, err := Decode(data, []string{"en", "de", "de-1901"})
	if err != nil {
		t.Fatal(err)
	}
	expected := Names{
		FontFamily: {
			"en":      "Walrus",
			"de":      "Walross",
			"de-1901": "Walroß",
		},
		FontSubfamily: {
			"und": "Regular",
		},
	}
	if d := cmp.Diff(expected, names); d != "" {
		t.Error(d)
	}

	// without an 'ltag' table, all platform 0 records are undetermined
	names, err = Decode(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	expected = Names{
		FontFamily:    {"und": "Walroß"},
		FontSubfamily: {"und": "Regular"},
	}
	if d := cmp.Diff(expected, names); d != "" {
		t.Error(d)
	}
}

func TestNumericKeys(t *testing.T) {
	data := makeNameTable(t, []testRecord{
		{3, 1, 0x0409, 999, utf16Encode("Fish")},
		{3, 1, 0x0409, 300, utf16Encode("Italic")},
		{3, 1, 0x0409, 44444, utf16Encode("Hello")},
		{3, 1, 0x0409, 15, utf16Encode("reserved")},
		{3, 1, 0x0409, 25, utf16Encode("Prefix")},
	})
	names, err := Decode(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	expected := Names{
		"999":            {"en": "Fish"},
		"300":            {"en": "Italic"},
		"44444":          {"en": "Hello"},
		"15":             {"en": "reserved"},
		VariationsPrefix: {"en": "Prefix"},
	}
	if d := cmp.Diff(expected, names); d != "" {
		t.Error(d)
	}
}

func TestMacEncodings(t *testing.T) {
	data := makeNameTable(t, []testRecord{
		{1, 0, 0, 2, []byte("Black Condensed")},
		{1, 0, 17, 2, []byte{0x4B, 0x6F, 0x79, 0x75, 0x20, 0x53, 0xDD, 0x6B, 0xDD, 0xDF, 0xDD, 0x6B}},
		{1, 7, 44, 2, []byte{0x8F, 0xEE, 0xEB, 0xF3, 0xF7, 0xE5, 0xF0, 0x20, 0xF2, 0xE5, 0xF1, 0xE5, 0xED}},
		{1, 0, 15, 2, []byte{0xDE, 0x97, 0x72}},
		{1, 29, 38, 2, []byte{0x50, 0xDE, 0x92, 0x6C, 0x69, 0xE4}},
		{1, 28, 143, 2, []byte{0x84, 0x80, 0xCD, 0xE7}},
		{1, 6, 14, 2, []byte{0xD8, 0xF0, 0xF0, 0xEF, 0xF7}},
		{1, 0, 18, 2, []byte{0x4D, 0x6F, 0x72, 0xBE}},
		{1, 0, 146, 2, []byte("Gaeilge")},
	})
	names, err := Decode(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	expected := Names{
		FontSubfamily: {
			"en": "Black Condensed",
			"tr": "Koyu Sıkışık",
			"bg": "Получер тесен",
			"is": "Þór",
			"cs": "Příliš",
			"iu": "ᐊᐃᕕᖅ",
			"el": "Ίππος",
			"hr": "Morž",
			"ga": "Gaeilge",
		},
	}
	if d := cmp.Diff(expected, names); d != "" {
		t.Error(d)
	}
}

func TestSurrogatePairs(t *testing.T) {
	data := makeNameTable(t, []testRecord{
		{3, 1, 0x0409, 1, []byte{0xD8, 0x35, 0xDD, 0x82, 0x00, 0x41}},
		// unpaired surrogate
		{3, 1, 0x0409, 2, []byte{0xD8, 0x35, 0x00, 0x41}},
		// odd length
		{3, 1, 0x0409, 3, []byte{0x00, 0x41, 0x00, 0x42, 0x00}},
	})
	names, err := Decode(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	expected := Names{
		FontFamily:    {"en": "\U0001D582A"},
		FontSubfamily: {"en": "\uFFFDA"},
		UniqueID:      {"en": "AB"},
	}
	if d := cmp.Diff(expected, names); d != "" {
		t.Error(d)
	}
}

func TestLastRecordWins(t *testing.T) {
	data := makeNameTable(t, []testRecord{
		{3, 1, 0x0409, 1, utf16Encode("First")},
		{3, 1, 0x0409, 1, utf16Encode("Second")},
		{3, 1, 0x0C0A, 1, utf16Encode("Primero")},
		{3, 1, 0x040A, 1, utf16Encode("Segundo")},
	})
	names, err := Decode(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	expected := Names{
		FontFamily: {"en": "Second", "es": "Segundo"},
	}
	if d := cmp.Diff(expected, names); d != "" {
		t.Error(d)
	}
}

func TestEmptyText(t *testing.T) {
	data := makeNameTable(t, []testRecord{
		{3, 1, 0x0409, 1, nil},
		{3, 1, 0x0409, 2, utf16Encode("Bold")},
	})
	names, err := Decode(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	expected := Names{
		FontSubfamily: {"en": "Bold"},
	}
	if d := cmp.Diff(expected, names); d != "" {
		t.Error(d)
	}
}

func TestReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fonttable.name")
	defer teardown()

	// Only the last record can be decoded.  The others use an unsupported
	// platform, an unknown Windows language, Mac Arabic, Mac Japanese and
	// an unknown Mac language.
	data := makeNameTable(t, []testRecord{
		{2, 0, 0, 1, []byte("ISO")},
		{3, 1, 0x0001, 1, utf16Encode("unknown")},
		{1, 4, 12, 1, []byte{0xC7, 0xE4}},
		{1, 1, 11, 1, []byte{0x8A, 0x43}},
		{1, 0, 200, 1, []byte("x")},
		{3, 1, 0x0409, 1, utf16Encode("Supported")},
	})

	var dropped []Record
	d := &Decoder{
		Report: func(rec *Record, err error) {
			if !fonterror.IsUnsupported(err) {
				t.Errorf("unexpected error type %T", err)
			}
			dropped = append(dropped, *rec)
		},
	}
	names, err := d.Decode(data, 0)
	if err != nil {
		t.Fatal(err)
	}

	plain, err := Decode(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(plain, names); d != "" {
		t.Error(d)
	}
	expected := Names{FontFamily: {"en": "Supported"}}
	if d := cmp.Diff(expected, names); d != "" {
		t.Error(d)
	}

	if len(dropped) != 5 {
		t.Fatalf("%d records reported, expected 5", len(dropped))
	}
	for i, rec := range dropped {
		if rec.PlatformID == 3 && rec.LanguageID == 0x0409 {
			t.Errorf("record %d reported by mistake", i)
		}
	}
}

func TestDecodeOffset(t *testing.T) {
	data := makeNameTable(t, []testRecord{
		{3, 1, 0x0409, 1, utf16Encode("Walrus")},
	})
	padded := append([]byte{0xFF, 0xFF, 0xFF}, data...)

	d := &Decoder{}
	names, err := d.Decode(padded, 3)
	if err != nil {
		t.Fatal(err)
	}
	expected := Names{FontFamily: {"en": "Walrus"}}
	if d := cmp.Diff(expected, names); d != "" {
		t.Error(d)
	}

	_, err = d.Decode(padded, len(padded)+1)
	if !fonterror.IsTruncated(err) {
		t.Errorf("expected truncation error, got %v", err)
	}
}

func TestTruncated(t *testing.T) {
	data := makeNameTable(t, []testRecord{
		{3, 1, 0x0409, 1, utf16Encode("Walrus")},
		{3, 1, 0x0407, 1, utf16Encode("Walross")},
	})
	for _, n := range []int{0, 3, 6, 17, 29, len(data) - 1} {
		names, err := Decode(data[:n], nil)
		if !fonterror.IsTruncated(err) {
			t.Errorf("%d bytes: expected truncation error, got %v", n, err)
		}
		if names != nil {
			t.Errorf("%d bytes: partial result %v", n, names)
		}
	}

	// A string outside the table fails even for an unsupported language.
	data = makeNameTable(t, []testRecord{
		{3, 1, 0x0001, 1, utf16Encode("unknown")},
	})
	_, err := Decode(data[:len(data)-2], nil)
	if !fonterror.IsTruncated(err) {
		t.Errorf("expected truncation error, got %v", err)
	}

	// a start position past the end of the data
	_, err = (&Decoder{}).Decode(data, len(data)+4)
	if !fonterror.IsTruncated(err) {
		t.Fatalf("expected truncation error, got %v", err)
	}
	if msg := err.Error(); strings.Contains(msg, "have -") {
		t.Errorf("negative byte count in %q", msg)
	}
}

func TestRoundTrip(t *testing.T) {
	names := Names{
		Copyright: {
			"en": "Copyright (c) 2026 Jochen Voss <voss@seehuhn.de>",
		},
		FontFamily: {
			"en":         "Walrus",
			"de":         "Walross",
			"de-1901":    "Walroß",
			"ja":         "海馬",
			"iu-Latn":    "Aiviq",
			"tr":         "Mors",
			"ru":         "Морж",
			"el-polyton": "Θαλάσσιος ἵππος",
			"und":        "Walrus",
		},
		FontSubfamily: {
			"en": "Regular",
			"cs": "Obyčejné",
			"es": "Normal",
		},
		SampleText: {
			"en": "\U0001D582",
		},
		"300": {
			"en": "Italic",
		},
	}

	cases := []*EncodeOptions{
		nil,
		{Mac: true},
		{LangTagRecords: true},
		{Mac: true, LangTagRecords: true},
		{LangTags: []string{"fr", "de-1901"}},
	}
	for i, opt := range cases {
		data, ltag, err := names.Encode(opt)
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		decoded, err := Decode(data, ltag)
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		if d := cmp.Diff(names, decoded); d != "" {
			t.Errorf("%d: %s", i, d)
		}
	}
}

func TestWindowsOnly(t *testing.T) {
	names := Names{
		FontFamily: {
			"en":      "Walrus",
			"de-1901": "Walroß",
			"und":     "Walrus",
		},
	}
	data, ltag, err := names.Encode(&EncodeOptions{WindowsOnly: true})
	if err != nil {
		t.Fatal(err)
	}
	if ltag != nil {
		t.Errorf("unexpected ltag %q", ltag)
	}
	decoded, err := Decode(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	expected := Names{FontFamily: {"en": "Walrus"}}
	if d := cmp.Diff(expected, decoded); d != "" {
		t.Error(d)
	}
}

func TestLangTagAllocation(t *testing.T) {
	names := Names{
		FontFamily: {
			"de-1901":    "Walroß",
			"el-polyton": "Θαλάσσιος ἵππος",
		},
	}
	_, ltag, err := names.Encode(&EncodeOptions{LangTags: []string{"x-foo", "el-polyton"}})
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"x-foo", "el-polyton", "de-1901"}
	if d := cmp.Diff(expected, ltag); d != "" {
		t.Error(d)
	}

	data, ltag, err := names.Encode(&EncodeOptions{LangTagRecords: true})
	if err != nil {
		t.Fatal(err)
	}
	if ltag != nil {
		t.Errorf("unexpected ltag %q", ltag)
	}
	if data[0] != 0 || data[1] != 1 {
		t.Errorf("wrong table format %d", int(data[0])<<8|int(data[1]))
	}
}

// readRecords returns the record array of an encoded "name" table.
func readRecords(t *testing.T, data []byte) []Record {
	t.Helper()
	p := parser.New("name", data, 2)
	count, err := p.ReadUint16()
	if err != nil {
		t.Fatal(err)
	}
	err = p.Discard(2)
	if err != nil {
		t.Fatal(err)
	}
	res := make([]Record, count)
	for i := range res {
		err = readRecord(p, &res[i])
		if err != nil {
			t.Fatal(err)
		}
	}
	return res
}

func TestMacRecords(t *testing.T) {
	// Japanese cannot be represented in Mac Roman.
	names := Names{
		FontFamily: {
			"en": "Walrus",
			"tr": "Koyu Sıkışık",
			"ru": "Морж",
			"ja": "海馬",
			"hr": "Morž",
		},
	}
	data, _, err := names.Encode(&EncodeOptions{Mac: true})
	if err != nil {
		t.Fatal(err)
	}

	var got [][3]uint16
	for _, rec := range readRecords(t, data) {
		got = append(got, [3]uint16{rec.PlatformID, rec.EncodingID, rec.LanguageID})
	}
	expected := [][3]uint16{
		{1, 0, 0},
		{1, 0, 17},
		{1, 0, 18},
		{1, 7, 32},
		{3, 1, 0x0409},
		{3, 1, 0x0411},
		{3, 1, 0x0419},
		{3, 1, 0x041A},
		{3, 1, 0x041F},
	}
	if d := cmp.Diff(expected, got); d != "" {
		t.Error(d)
	}
}

func TestStringSharing(t *testing.T) {
	names := Names{
		FontFamily:    {"en": "Same", "de": "Same"},
		FullName:      {"en": "Same"},
		FontSubfamily: {"en": "Other"},
	}
	data, _, err := names.Encode(nil)
	if err != nil {
		t.Fatal(err)
	}
	stringOffset := int(data[4])<<8 | int(data[5])
	pool := data[stringOffset:]
	if len(pool) != 2*len("Same")+2*len("Other") {
		t.Errorf("string storage has %d bytes", len(pool))
	}
}

func TestEncodeErrors(t *testing.T) {
	cases := []Names{
		{"family": {"en": "Walrus"}},
		{"1": {"en": "Walrus"}},
		{"-1": {"en": "Walrus"}},
		{"65536": {"en": "Walrus"}},
		{FontFamily: {"not a tag": "Walrus"}},
	}
	for i, names := range cases {
		_, _, err := names.Encode(nil)
		if err == nil {
			t.Errorf("%d: missing error", i)
		}
	}
}

func TestOverflow(t *testing.T) {
	// 66000 bytes as UTF-16
	long := strings.Repeat("x", 33000)
	names := Names{FontFamily: {"en": long}}
	_, _, err := names.Encode(nil)
	if !fonterror.IsOverflow(err) {
		t.Errorf("expected overflow, got %v", err)
	}

	// each string fits, but the storage is too large
	names = Names{
		FontFamily:    {"en": strings.Repeat("a", 20000)},
		FontSubfamily: {"en": strings.Repeat("b", 20000)},
		FullName:      {"en": strings.Repeat("c", 20000)},
	}
	_, _, err = names.Encode(nil)
	if !fonterror.IsOverflow(err) {
		t.Errorf("expected overflow, got %v", err)
	}
}

func TestChoose(t *testing.T) {
	tt := Translations{
		"de":    "Walross",
		"en-GB": "Walrus (GB)",
		"en-US": "Walrus",
		"fr":    "Morse",
		"???":   "invalid",
	}
	cases := []struct {
		prefs []language.Tag
		want  string
	}{
		{nil, "Walrus"},
		{[]language.Tag{language.German}, "Walross"},
		{[]language.Tag{language.MustParse("de-AT")}, "Walross"},
		{[]language.Tag{language.BritishEnglish}, "Walrus (GB)"},
		{[]language.Tag{language.Japanese}, "Walrus"},
		{[]language.Tag{language.French, language.German}, "Morse"},
	}
	for _, test := range cases {
		got, _ := tt.Choose(test.prefs...)
		if got != test.want {
			t.Errorf("%v: got %q, want %q", test.prefs, got, test.want)
		}
	}

	var empty Translations
	got, conf := empty.Choose(language.English)
	if got != "" || conf != language.No {
		t.Errorf("got %q %v", got, conf)
	}

	names := Names{FontFamily: tt}
	if got := names.Get(FontFamily, language.French); got != "Morse" {
		t.Errorf("got %q", got)
	}
	if got := names.Get(Designer); got != "" {
		t.Errorf("got %q", got)
	}
}

func FuzzNames(f *testing.F) {
	names := Names{
		Copyright: {
			"en": "Copyright (c) 2026 Jochen Voss <voss@seehuhn.de>",
		},
		Description: {
			"en":      "This is a test.",
			"de":      "Dies ist ein Test.",
			"de-1901": "Dies ist ein Test.",
			"tr":      "Bu bir sınavdır.",
		},
	}
	for _, opt := range []*EncodeOptions{nil, {Mac: true}, {LangTagRecords: true}} {
		data, _, err := names.Encode(opt)
		if err != nil {
			f.Fatal(err)
		}
		f.Add(data)
	}

	f.Fuzz(func(t *testing.T, in []byte) {
		n1, err := Decode(in, nil)
		if err != nil {
			return
		}
		for _, tt := range n1 {
			for tag := range tt {
				if _, err := language.Parse(tag); err != nil {
					return
				}
			}
		}

		data, ltag, err := n1.Encode(nil)
		if fonterror.IsOverflow(err) {
			return
		} else if err != nil {
			t.Fatal(err)
		}

		n2, err := Decode(data, ltag)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(n1, n2); d != "" {
			t.Error(d)
		}
	})
}
