// Package constraints provides generic type constraints.
package constraints

// Byteseq is satisfied by string and byte slice types, so parse and escape
// helpers accept both without conversions at call sites.
type Byteseq interface {
	~string | ~[]byte
}
