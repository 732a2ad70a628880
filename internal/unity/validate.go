// Package unity validates Unity markup: XML-Infoset-like trees encoded in JSON,
// where every element is an array of the form [name, {attributes}?, content...].
//
// Validation never stops at the first problem. Every nonconformance in the
// document is collected into a Result, in depth-first, left-to-right order.
package unity

import (
	"errors"
	"strconv"

	"github.com/andyballingall/unity-markup/internal/xmlname"
)

const (
	msgEmptyInput         = "Input is null or empty"
	msgInvalidJSON        = "Invalid JSON: "
	msgTopLevel           = "Top level must be a JSON Array, got "
	msgEmptyProduction    = "Unity production must have at least one element (the element name)"
	msgNameNotString      = "Element name must be a string, got "
	msgInvalidElementName = "Invalid XML element name: "
	msgInvalidAttrName    = "Invalid XML attribute name: "
	msgAttrNotPrimitive   = "Attribute value must be a primitive (String, Number, Boolean, or Null), got "
	msgObjectAsContent    = "JSON Object not allowed as content (only allowed at index 1 as attributes)"
	msgInvalidContent     = "Invalid content type: "
)

// IsValidXMLName reports whether s is a well-formed XML 1.0 Name.
func IsValidXMLName(s string) bool {
	return xmlname.IsValidName(s)
}

// Validate checks that text is a Unity document. It always returns a Result.
func Validate(text string) *Result {
	res := NewResult()

	root, err := Parse(text)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyInput):
			res.Add(KindInput, "", msgEmptyInput)
		case errors.Is(err, ErrUnexpectedStart):
			res.Add(KindInput, "", msgInvalidJSON+err.Error())
		default:
			res.Add(KindParse, "", msgInvalidJSON+err.Error())
		}
		return res
	}

	ValidateValue(root, res)
	return res
}

// ValidateBytes is Validate for a byte slice. A nil slice is treated as empty input.
func ValidateBytes(b []byte) *Result {
	return Validate(string(b))
}

// ValidateValue checks an already parsed document, adding errors to res.
func ValidateValue(root Value, res *Result) {
	if root.Kind() != Array {
		res.Add(KindShape, "", msgTopLevel+root.Kind().String())
		return
	}
	w := walker{res: res}
	w.production(root, "")
}

type walker struct {
	res *Result
}

// production checks one element array. A bad name does not stop the attribute
// and content checks that follow it.
func (w *walker) production(v Value, path string) {
	if v.Len() == 0 {
		w.res.Add(KindShape, path, msgEmptyProduction)
		return
	}

	name := v.Index(0)
	switch {
	case name.Kind() != String:
		w.res.Add(KindShape, path+"[0]", msgNameNotString+name.Kind().String())
	case !xmlname.IsValidName(name.Text()):
		w.res.Add(KindName, path+"[0]", msgInvalidElementName+`"`+name.Text()+`"`)
	}

	if v.Len() == 1 {
		return
	}

	start := 1
	if attrs := v.Index(1); attrs.Kind() == Object {
		w.attributes(attrs, path+"[1]")
		start = 2
	}

	for i := start; i < v.Len(); i++ {
		w.content(v.Index(i), path+"["+strconv.Itoa(i)+"]")
	}
}

func (w *walker) attributes(v Value, path string) {
	for _, m := range v.Members() {
		at := path + "." + m.Key
		if !xmlname.IsValidName(m.Key) {
			w.res.Add(KindName, at, msgInvalidAttrName+`"`+m.Key+`"`)
		}
		if !m.Value.Kind().IsPrimitive() {
			w.res.Add(KindShape, at, msgAttrNotPrimitive+m.Value.Kind().String())
		}
	}
}

func (w *walker) content(v Value, path string) {
	switch k := v.Kind(); {
	case k == Array:
		w.production(v, path)
	case k == Object:
		w.res.Add(KindShape, path, msgObjectAsContent)
	case !k.IsPrimitive():
		w.res.Add(KindUnexpected, path, msgInvalidContent+k.String())
	}
}
