// Package value implements the host-neutral dynamic value model produced by the YAML bridge.
//
// A Value is one of Null, Bool, Int, Float, String, *Array or *Table. Absence is the Go nil
// interface. Null is represented by the Nil singleton so that callers can tell an explicit
// YAML null apart from a missing key with a plain identity comparison:
//
//	if v == value.Nil {
//	    // the document said null
//	}
//
// Tables keep insertion order and accept only hashable keys (Bool, Int, Float that is not NaN,
// and String).
package value
