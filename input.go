// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstart

import (
	"bytes"

	"go4.org/mem"
)

// Input is the set of types accepted by Check. Text strings are used as their
// UTF-8 encoding.
type Input interface {
	[]byte | string
}

// viewOf returns a read-only view of the bytes of input. It does not copy.
func viewOf[T Input](input T) mem.RO {
	switch v := any(input).(type) {
	case []byte:
		return mem.B(v)
	case string:
		return mem.S(v)
	}
	panic("unreachable")
}

// bufferView returns a read-only view of the unread contents of buf. A nil
// buffer is treated as empty.
func bufferView(buf *bytes.Buffer) mem.RO {
	if buf == nil {
		return mem.RO{}
	}
	return mem.B(buf.Bytes())
}
