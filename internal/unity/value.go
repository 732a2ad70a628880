package unity

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

var kindNames = [...]string{
	Null:   "null",
	Bool:   "Boolean",
	Number: "Number",
	String: "String",
	Array:  "Array",
	Object: "Object",
}

// String returns the type name used in validation messages.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsPrimitive reports whether k is null, a boolean, a number or a string.
func (k Kind) IsPrimitive() bool {
	return k <= String
}

// Member is a single key/value pair of an Object, in document order.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable node of a parsed JSON document.
// The zero Value is JSON null.
type Value struct {
	kind    Kind
	boolean bool
	text    string // string contents, or the raw literal of a number
	items   []Value
	members []Member
}

func NullValue() Value { return Value{kind: Null} }

func BoolValue(b bool) Value { return Value{kind: Bool, boolean: b} }

// NumberValue wraps the literal text of a JSON number. The literal is not checked.
func NumberValue(literal string) Value { return Value{kind: Number, text: literal} }

func StringValue(s string) Value { return Value{kind: String, text: s} }

func ArrayValue(items ...Value) Value { return Value{kind: Array, items: items} }

// ObjectValue builds an Object from members in order. When a key repeats, the
// entry keeps the position of its first occurrence and the value of its last.
func ObjectValue(members ...Member) Value {
	out := make([]Member, 0, len(members))
	seen := make(map[string]int, len(members))
	for _, m := range members {
		if i, ok := seen[m.Key]; ok {
			out[i].Value = m.Value
			continue
		}
		seen[m.Key] = len(out)
		out = append(out, m)
	}
	return Value{kind: Object, members: out}
}

func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean held by a Bool value, false otherwise.
func (v Value) Bool() bool { return v.boolean }

// Text returns the contents of a String or the literal of a Number.
func (v Value) Text() string { return v.text }

// Len returns the number of items of an Array or members of an Object.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.items)
	case Object:
		return len(v.members)
	default:
		return 0
	}
}

// Index returns the i'th item of an Array. It panics if i is out of range.
func (v Value) Index(i int) Value { return v.items[i] }

// Items returns the items of an Array. The slice must not be modified.
func (v Value) Items() []Value { return v.items }

// Members returns the members of an Object in document order. The slice must not be modified.
func (v Value) Members() []Member { return v.members }

// Get returns the value stored under key in an Object.
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// fromGJSON converts a parsed gjson result into a Value, keeping document order.
func fromGJSON(r gjson.Result) Value {
	switch r.Type {
	case gjson.Null:
		return NullValue()
	case gjson.False:
		return BoolValue(false)
	case gjson.True:
		return BoolValue(true)
	case gjson.Number:
		return NumberValue(r.Raw)
	case gjson.String:
		return StringValue(stringOf(r))
	}

	if r.IsArray() {
		var items []Value
		r.ForEach(func(_, item gjson.Result) bool {
			items = append(items, fromGJSON(item))
			return true
		})
		return ArrayValue(items...)
	}

	var members []Member
	r.ForEach(func(key, item gjson.Result) bool {
		members = append(members, Member{Key: stringOf(key), Value: fromGJSON(item)})
		return true
	})
	return ObjectValue(members...)
}

// stringOf returns the decoded text of a gjson string. gjson replaces an
// unpaired surrogate escape with U+FFFD, which is a valid name character, so
// such strings are decoded again keeping the surrogate as its three-byte
// (invalid UTF-8) encoding.
func stringOf(r gjson.Result) string {
	if !strings.Contains(r.Raw, `\u`) {
		return r.Str
	}
	if s, lone := decodeString(r.Raw); lone {
		return s
	}
	return r.Str
}

// decodeString unquotes a syntactically valid JSON string literal and reports
// whether it contained an unpaired surrogate escape.
func decodeString(raw string) (string, bool) {
	raw = strings.TrimPrefix(strings.TrimSuffix(raw, `"`), `"`)
	b := make([]byte, 0, len(raw))
	lone := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			b = append(b, c)
			continue
		}
		i++
		switch raw[i] {
		case 'b':
			b = append(b, '\b')
		case 'f':
			b = append(b, '\f')
		case 'n':
			b = append(b, '\n')
		case 'r':
			b = append(b, '\r')
		case 't':
			b = append(b, '\t')
		case 'u':
			r1, ok := hex4(raw, i+1)
			if !ok {
				b = append(b, '\\', 'u')
				continue
			}
			i += 4
			if !utf16.IsSurrogate(r1) {
				b = utf8.AppendRune(b, r1)
				continue
			}
			if r1 < 0xDC00 && i+6 < len(raw) && raw[i+1] == '\\' && raw[i+2] == 'u' {
				if r2, ok := hex4(raw, i+3); ok {
					if dec := utf16.DecodeRune(r1, r2); dec != utf8.RuneError {
						b = utf8.AppendRune(b, dec)
						i += 6
						continue
					}
				}
			}
			lone = true
			b = append(b, 0xE0|byte(r1>>12), 0x80|byte(r1>>6)&0x3F, 0x80|byte(r1)&0x3F)
		default:
			b = append(b, raw[i])
		}
	}
	return string(b), lone
}

func hex4(s string, at int) (rune, bool) {
	if at+4 > len(s) {
		return 0, false
	}
	n, err := strconv.ParseUint(s[at:at+4], 16, 16)
	if err != nil {
		return 0, false
	}
	return rune(n), true
}
