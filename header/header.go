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


// Package header reads and writes the table directory of sfnt font files.
package header

import (
	"fmt"
	"io"
	"sort"

	"seehuhn.de/go/fonttable/fonterror"
	"seehuhn.de/go/fonttable/parser"
)

// Scaler types for sfnt files.
const (
	ScalerTypeTrueType = 0x00010000
	ScalerTypeCFF      = 0x4F54544F
	ScalerTypeApple    = 0x74727565
)

// Info describes the table directory of an sfnt file.
type Info struct {
	ScalerType uint32
	Toc        map[string]Record
}

// Record gives the location of a table inside the file.
type Record struct {
	CheckSum uint32
	Offset   uint32
	Length   uint32
}

// Read reads the table directory of an sfnt font file.
// Tables with unknown names are ignored.
func Read(r io.ReaderAt) (*Info, error) {
	buf := make([]byte, 12)
	_, err := r.ReadAt(buf, 0)
	if err == io.EOF {
		return nil, errInvalid("file too short")
	} else if err != nil {
		return nil, err
	}
	p := parser.New("header", buf, 0)
	scalerType, err := p.ReadUint32()
	if err != nil {
		return nil, err
	}
	numTables, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}

	if scalerType != ScalerTypeTrueType &&
		scalerType != ScalerTypeCFF &&
		scalerType != ScalerTypeApple {
		return nil, &fonterror.NotSupportedError{
			SubSystem: "sfnt/header",
			Feature:   fmt.Sprintf("scaler type 0x%x", scalerType),
		}
	}
	if numTables > 280 {
		// the largest value observed on my laptop is 28
		return nil, errInvalid("too many tables")
	}

	buf = make([]byte, 16*int(numTables))
	_, err = r.ReadAt(buf, 12)
	if err == io.EOF {
		return nil, errInvalid("truncated table directory")
	} else if err != nil {
		return nil, err
	}
	p = parser.New("header", buf, 0)

	info := &Info{
		ScalerType: scalerType,
		Toc:        make(map[string]Record),
	}
	type alloc struct {
		Start int64
		End   int64
	}
	var coverage []alloc
	for i := 0; i < int(numTables); i++ {
		tag, err := p.ReadBytes(4)
		if err != nil {
			return nil, err
		}
		var rec [3]uint32
		for j := range rec {
			rec[j], err = p.ReadUint32()
			if err != nil {
				return nil, err
			}
		}
		sum, offset, length := rec[0], rec[1], rec[2]

		name := string(tag)
		if !isKnownTable[name] {
			continue
		}
		info.Toc[name] = Record{
			CheckSum: sum,
			Offset:   offset,
			Length:   length,
		}
		coverage = append(coverage, alloc{
			Start: int64(offset),
			End:   int64(offset) + int64(length),
		})
	}
	if len(info.Toc) == 0 {
		return nil, errInvalid("no tables found")
	}

	// perform some sanity checks
	sort.Slice(coverage, func(i, j int) bool {
		if coverage[i].Start != coverage[j].Start {
			return coverage[i].Start < coverage[j].Start
		}
		return coverage[i].End < coverage[j].End
	})
	if coverage[0].Start < 12+16*int64(numTables) {
		return nil, errInvalid("invalid table offset")
	}
	for i := 1; i < len(coverage); i++ {
		if coverage[i-1].End > coverage[i].Start {
			return nil, errInvalid("overlapping tables")
		}
	}
	end := coverage[len(coverage)-1].End
	if end > coverage[len(coverage)-1].Start {
		_, err = r.ReadAt(buf[:1], end-1)
		if err == io.EOF {
			return nil, errInvalid("table extends beyond EOF")
		} else if err != nil {
			return nil, err
		}
	}

	return info, nil
}

// Has returns true if all of the given tables are present.
func (info *Info) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := info.Toc[name]; !ok {
			return false
		}
	}
	return true
}

// Find returns the directory entry for a table.
// If the table is not present, an *ErrNoTable is returned.
func (info *Info) Find(tableName string) (Record, error) {
	rec, ok := info.Toc[tableName]
	if !ok {
		return rec, &ErrNoTable{Name: tableName}
	}
	return rec, nil
}

// ReadTableBytes returns the body of a table.
func (info *Info) ReadTableBytes(r io.ReaderAt, tableName string) ([]byte, error) {
	rec, err := info.Find(tableName)
	if err != nil {
		return nil, err
	}
	res := make([]byte, rec.Length)
	n, err := r.ReadAt(res, int64(rec.Offset))
	if n < len(res) && err != nil {
		return nil, err
	}
	return res[:n], nil
}

// ErrNoTable indicates that a required table is missing from a font file.
type ErrNoTable struct {
	Name string
}

func (err *ErrNoTable) Error() string {
	return "missing " + err.Name + " table in font"
}

func errInvalid(reason string) error {
	return &fonterror.InvalidFontError{
		SubSystem: "sfnt/header",
		Reason:    reason,
	}
}

var isKnownTable = map[string]bool{
	"BASE": true,
	"CBDT": true,
	"CBLC": true,
	"CFF ": true,
	"cmap": true,
	"cvt ": true,
	"DSIG": true,
	"feat": true,
	"FFTM": true,
	"fpgm": true,
	"fvar": true,
	"gasp": true,
	"GDEF": true,
	"glyf": true,
	"GPOS": true,
	"GSUB": true,
	"gvar": true,
	"hdmx": true,
	"head": true,
	"hhea": true,
	"hmtx": true,
	"HVAR": true,
	"kern": true,
	"loca": true,
	"ltag": true,
	"LTSH": true,
	"maxp": true,
	"meta": true,
	"morx": true,
	"name": true,
	"OS/2": true,
	"post": true,
	"prep": true,
	"STAT": true,
	"VDMX": true,
	"vhea": true,
	"vmtx": true,
	"VORG": true,
}
