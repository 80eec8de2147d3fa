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

import "strconv"

// Key identifies a string in the "name" table.
//
// Registered name IDs use the symbolic keys defined below.  All other
// name IDs are represented by their decimal value, for example "256".
type Key string

// Symbolic keys for the registered name IDs.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#name-ids
const (
	Copyright              Key = "copyright"
	FontFamily             Key = "fontFamily"
	FontSubfamily          Key = "fontSubfamily"
	UniqueID               Key = "uniqueID"
	FullName               Key = "fullName"
	Version                Key = "version"
	PostScriptName         Key = "postScriptName"
	Trademark              Key = "trademark"
	Manufacturer           Key = "manufacturer"
	Designer               Key = "designer"
	Description            Key = "description"
	ManufacturerURL        Key = "manufacturerURL"
	DesignerURL            Key = "designerURL"
	License                Key = "license"
	LicenseURL             Key = "licenseURL"
	PreferredFamily        Key = "preferredFamily"
	PreferredSubfamily     Key = "preferredSubfamily"
	CompatibleFullName     Key = "compatibleFullName"
	SampleText             Key = "sampleText"
	PostScriptFindFontName Key = "postScriptFindFontName"
	WWSFamily              Key = "wwsFamily"
	WWSSubfamily           Key = "wwsSubfamily"
	LightPalette           Key = "lightPalette"
	DarkPalette            Key = "darkPalette"
	VariationsPrefix       Key = "variationsPostScriptNamePrefix"
)

var keyByID = map[uint16]Key{
	0:  Copyright,
	1:  FontFamily,
	2:  FontSubfamily,
	3:  UniqueID,
	4:  FullName,
	5:  Version,
	6:  PostScriptName,
	7:  Trademark,
	8:  Manufacturer,
	9:  Designer,
	10: Description,
	11: ManufacturerURL,
	12: DesignerURL,
	13: License,
	14: LicenseURL,
	// 15 is reserved
	16: PreferredFamily,
	17: PreferredSubfamily,
	18: CompatibleFullName,
	19: SampleText,
	20: PostScriptFindFontName,
	21: WWSFamily,
	22: WWSSubfamily,
	23: LightPalette,
	24: DarkPalette,
	25: VariationsPrefix,
}

var idByKey = func() map[Key]uint16 {
	res := make(map[Key]uint16, len(keyByID))
	for id, key := range keyByID {
		res[key] = id
	}
	return res
}()

// KeyFor returns the key used for the given name ID.
func KeyFor(nameID uint16) Key {
	if key, ok := keyByID[nameID]; ok {
		return key
	}
	return Key(strconv.FormatUint(uint64(nameID), 10))
}

// NameID returns the name ID represented by the key.
// The second return value is false if k is neither a symbolic key nor a
// decimal number in the range 0, ..., 65535.
func (k Key) NameID() (uint16, bool) {
	if id, ok := idByKey[k]; ok {
		return id, true
	}
	id, err := strconv.ParseUint(string(k), 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(id), true
}
