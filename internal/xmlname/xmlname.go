// Package xmlname recognises the Name production of XML 1.0 (Fourth Edition).
//
// Element tags and attribute keys in Unity markup must both be XML Names. The
// recogniser works on Unicode code points; ASCII is answered from lookup tables
// and everything else from range tables searched by [unicode.Is].
package xmlname

import (
	"unicode"
	"unicode/utf8"
)

var nameStartASCII = [utf8.RuneSelf]bool{
	':': true,
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
	'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
	'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
	'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
	'_': true,
	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true,
	'h': true, 'i': true, 'j': true, 'k': true, 'l': true, 'm': true, 'n': true,
	'o': true, 'p': true, 'q': true, 'r': true, 's': true, 't': true, 'u': true,
	'v': true, 'w': true, 'x': true, 'y': true, 'z': true,
}

var nameASCII = [utf8.RuneSelf]bool{
	'-': true, '.': true,
	'0': true, '1': true, '2': true, '3': true, '4': true,
	'5': true, '6': true, '7': true, '8': true, '9': true,
	':': true,
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
	'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
	'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
	'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
	'_': true,
	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true,
	'h': true, 'i': true, 'j': true, 'k': true, 'l': true, 'm': true, 'n': true,
	'o': true, 'p': true, 'q': true, 'r': true, 's': true, 't': true, 'u': true,
	'v': true, 'w': true, 'x': true, 'y': true, 'z': true,
}

// nameStartTable holds the non-ASCII NameStartChar ranges.
var nameStartTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00C0, Hi: 0x00D6, Stride: 1},
		{Lo: 0x00D8, Hi: 0x00F6, Stride: 1},
		{Lo: 0x00F8, Hi: 0x02FF, Stride: 1},
		{Lo: 0x0370, Hi: 0x037D, Stride: 1},
		{Lo: 0x037F, Hi: 0x1FFF, Stride: 1},
		{Lo: 0x200C, Hi: 0x200D, Stride: 1},
		{Lo: 0x2070, Hi: 0x218F, Stride: 1},
		{Lo: 0x2C00, Hi: 0x2FEF, Stride: 1},
		{Lo: 0x3001, Hi: 0xD7FF, Stride: 1},
		{Lo: 0xF900, Hi: 0xFDCF, Stride: 1},
		{Lo: 0xFDF0, Hi: 0xFFFD, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10000, Hi: 0xEFFFF, Stride: 1},
	},
	LatinOffset: 2,
}

// nameCharTable holds the non-ASCII code points that are NameChar but not NameStartChar.
var nameCharTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00B7, Hi: 0x00B7, Stride: 1},
		{Lo: 0x0300, Hi: 0x036F, Stride: 1},
		{Lo: 0x203F, Hi: 0x2040, Stride: 1},
	},
	LatinOffset: 1,
}

// IsNameStartChar reports whether r may begin an XML Name.
func IsNameStartChar(r rune) bool {
	if r >= 0 && r < utf8.RuneSelf {
		return nameStartASCII[r]
	}
	return unicode.Is(nameStartTable, r)
}

// IsNameChar reports whether r may appear after the first code point of an XML Name.
func IsNameChar(r rune) bool {
	if r >= 0 && r < utf8.RuneSelf {
		return nameASCII[r]
	}
	return unicode.Is(nameStartTable, r) || unicode.Is(nameCharTable, r)
}

// IsValidName reports whether s is a well-formed XML Name: a NameStartChar
// followed by zero or more NameChar. The empty string is not a Name.
//
// s must be valid UTF-8. Ill-formed sequences would otherwise decode to
// U+FFFD, which the grammar accepts, so they are rejected up front.
func IsValidName(s string) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !IsNameStartChar(r) {
				return false
			}
			continue
		}
		if !IsNameChar(r) {
			return false
		}
	}
	return true
}
