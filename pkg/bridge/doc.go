// Package bridge converts parsed YAML documents into the dynamic value model of package value.
//
// A Bridge is configured once and is safe for concurrent use. Conversion is a pure function
// of the input tree: it performs no I/O, keeps no state between calls and either returns a
// complete value tree or an error, never a partial result.
//
//	b, err := bridge.New(bridge.WithNullPolicy(bridge.NullAbsent))
//	if err != nil {
//	    return err
//	}
//	v, err := b.Convert(node)
//
// The walk uses an explicit work stack, so the depth limit holds regardless of the
// goroutine stack size.
package bridge
