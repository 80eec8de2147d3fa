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
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Choose selects the translation which best matches the given language
// preferences.  English is used if none of the preferences can be
// matched.
func (tt Translations) Choose(prefs ...language.Tag) (string, language.Confidence) {
	var keys []string
	for key := range tt {
		if _, err := language.Parse(key); err == nil {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return "", language.No
	}

	pref := make(map[string]int)
	for _, key := range keys {
		switch {
		case key == "en-US":
			pref[key] = 2
		case key == "en" || strings.HasPrefix(key, "en-"):
			pref[key] = 1
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		keyI := keys[i]
		prefI := pref[keyI]
		keyJ := keys[j]
		prefJ := pref[keyJ]
		if prefI != prefJ {
			return prefI > prefJ
		}
		return keyI < keyJ
	})

	tags := make([]language.Tag, len(keys))
	for i, key := range keys {
		tags[i] = language.MustParse(key)
	}
	matcher := language.NewMatcher(tags)

	_, index, confidence := matcher.Match(prefs...)
	return tt[keys[index]], confidence
}

// Get returns the best translation of the given key.
// If the key is not present, the empty string is returned.
func (names Names) Get(key Key, prefs ...language.Tag) string {
	val, _ := names[key].Choose(prefs...)
	return val
}
