// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jstart reports the kind of JSON value at the start of an input,
// tolerating input that has been cut short.
//
// # Checking
//
// Check examines a byte slice or string and reports which kind of JSON value
// it begins with, and whether the input is consistent with the JSON grammar
// as far as that first value extends:
//
//	kind, ok := jstart.Check(data)
//	if !ok {
//	   log.Print("Input is not JSON")
//	} else {
//	   log.Printf("Input is a JSON %v", kind)
//	}
//
// The input may be a prefix of a longer stream. If the input ends in the
// middle of a value, the value is reported as valid so long as the bytes seen
// are consistent with the grammar. Thus `{"a": tr` is reported as an Object,
// but `{"a": 3,}` is not valid. Bytes following the first value are not
// examined, so Check is not a validator for complete documents.
//
// Use CheckBuffer to examine the contents of a *bytes.Buffer without
// consuming them.
//
// # Streams
//
// The Sniffer type classifies a stream as data arrive. Write data to the
// Sniffer, and call its Kind method to report the classification so far:
//
//	var s jstart.Sniffer
//	for chunk := range chunks {
//	   s.Write(chunk)
//	   if kind, ok := s.Kind(); ok {
//	      log.Printf("Stream begins with %v", kind)
//	      break
//	   }
//	}
//
// Each call to Kind examines the buffered data from the beginning, but only
// if the buffer has grown since the previous call. Once the data are found to
// be malformed, the Sniffer does not scan again.
//
// # Nesting
//
// Objects and arrays nested more than MaxDepth levels deep are reported as
// invalid.
package jstart
