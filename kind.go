// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstart

// Kind is the type of a top-level JSON value.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // not the start of a JSON value
	Object              // object "{ ... }"
	Array               // array "[ ... ]"
	String              // quoted string
	Number              // number
	Boolean             // constant: true or false
	Null                // constant: null
)

var kindStr = [...]string{
	Invalid: "invalid",
	Object:  "object",
	Array:   "array",
	String:  "string",
	Number:  "number",
	Boolean: "boolean",
	Null:    "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// ParseKind returns the Kind whose name is s, or Invalid and false if s does
// not name a kind.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindStr[Object:] {
		if name == s {
			return Object + Kind(i), true
		}
	}
	return Invalid, false
}
