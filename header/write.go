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


package header

import (
	"encoding/binary"
	"io"
	"math/bits"
	"sort"
	"strings"

	"seehuhn.de/go/fonttable/table"
)

// Write writes an sfnt file containing the given tables.
// Tables where the data is nil are not written, use a zero-length slice
// to write a table with no data.
// This changes the checksum in the "head" table in place.
func Write(w io.Writer, scalerType uint32, tables map[string][]byte) (int64, error) {
	tableNames := make([]string, 0, len(tables))
	for name, data := range tables {
		if data != nil && len(name) == 4 && isASCII(name) {
			tableNames = append(tableNames, name)
		}
	}
	numTables := len(tableNames)

	// sort the table names in the recommended order
	sort.Slice(tableNames, func(i, j int) bool {
		iPrio := ttTableOrder[tableNames[i]]
		jPrio := ttTableOrder[tableNames[j]]
		if iPrio != jPrio {
			return iPrio > jPrio
		}
		return tableNames[i] < tableNames[j]
	})

	// temporarily clear the checksum in the "head" table
	headData, hasHead := tables["head"]
	hasHead = hasHead && len(headData) >= 12
	if hasHead {
		clearChecksum(headData)
	}

	var totalSum uint32
	offset := 12 + 16*numTables
	records := make([]rawRecord, numTables)
	for i, name := range tableNames {
		body := tables[name]
		sum := checksum(body)

		records[i] = rawRecord{
			Tag:      name,
			CheckSum: sum,
			Offset:   offset,
			Length:   len(body),
		}

		totalSum += sum
		offset += 4 * ((len(body) + 3) / 4)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Tag < records[j].Tag
	})

	// prepare the header
	var searchRange, entrySelector, rangeShift int
	if numTables > 0 {
		entrySelector = bits.Len(uint(numTables)) - 1
		searchRange = 16 << entrySelector
		rangeShift = 16*numTables - searchRange
	}
	dir := table.New("header")
	dir.Add("scalerType", table.Uint32, int64(scalerType))
	dir.Add("numTables", table.Uint16, table.Value(numTables))
	dir.Add("searchRange", table.Uint16, table.Value(searchRange))
	dir.Add("entrySelector", table.Uint16, table.Value(entrySelector))
	dir.Add("rangeShift", table.Uint16, table.Value(rangeShift))
	for _, rec := range records {
		dir.AddBytes("tag_"+rec.Tag, []byte(rec.Tag))
		dir.Add("checkSum_"+rec.Tag, table.Uint32, int64(rec.CheckSum))
		dir.Add("offset_"+rec.Tag, table.Uint32, table.Value(rec.Offset))
		dir.Add("length_"+rec.Tag, table.Uint32, table.Value(rec.Length))
	}
	headerBytes, err := dir.Encode()
	if err != nil {
		return 0, err
	}
	totalSum += checksum(headerBytes)

	// set the final checksum in the "head" table
	if hasHead {
		patchChecksum(headData, totalSum)
	}

	// write the tables
	var totalSize int64
	n, err := w.Write(headerBytes)
	totalSize += int64(n)
	if err != nil {
		return totalSize, err
	}
	var pad [3]byte
	for _, name := range tableNames {
		body := tables[name]
		n, err := w.Write(body)
		totalSize += int64(n)
		if err != nil {
			return totalSize, err
		}
		if k := n % 4; k != 0 {
			l, err := w.Write(pad[:4-k])
			totalSize += int64(l)
			if err != nil {
				return totalSize, err
			}
		}
	}
	return totalSize, nil
}

// checksum computes the sfnt checksum of a table.
// The data is padded with zeros to a multiple of four bytes.
func checksum(data []byte) uint32 {
	var sum uint32
	for len(data) >= 4 {
		sum += binary.BigEndian.Uint32(data)
		data = data[4:]
	}
	if len(data) > 0 {
		var last [4]byte
		copy(last[:], data)
		sum += binary.BigEndian.Uint32(last[:])
	}
	return sum
}

// clearChecksum zeros the checksum field of the head table.
func clearChecksum(head []byte) {
	binary.BigEndian.PutUint32(head[8:12], 0)
}

// patchChecksum updates the checksum of the head table.
// The argument is the checksum of the entire font before patching.
func patchChecksum(head []byte, checksum uint32) {
	binary.BigEndian.PutUint32(head[8:12], 0xB1B0AFBA-checksum)
}

func isASCII(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r < 0x20 || r > 0x7E }) < 0
}

// A rawRecord is one entry of the table directory.
type rawRecord struct {
	Tag      string
	CheckSum uint32
	Offset   int
	Length   int
}

// https://docs.microsoft.com/en-us/typography/opentype/spec/recom#optimized-table-ordering
var ttTableOrder = map[string]int{
	"head": 95,
	"hhea": 90,
	"maxp": 85,
	"OS/2": 80,
	"hmtx": 75,
	"LTSH": 70,
	"VDMX": 65,
	"hdmx": 60,
	"cmap": 55,
	"fpgm": 50,
	"prep": 45,
	"cvt ": 40,
	"loca": 35,
	"glyf": 30,
	"kern": 25,
	"name": 20,
	"post": 15,
	"gasp": 10,
	"DSIG": 5,
}
