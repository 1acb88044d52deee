// Package document is the boundary to the YAML grammar parser.
//
// It turns UTF-8 text into yaml.v3 document nodes and classifies nodes into the source
// variants the bridge understands. Grammar and encoding failures are reported here, wrapped
// with errors.ErrGrammar, and never reach the bridge.
package document
