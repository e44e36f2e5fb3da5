// Package structs implements helpers to generalize vectors of values and structs.
package structs

// CopyNewer is implemented by types that can produce a deep copy of themselves.
type CopyNewer[V any] interface {
	CopyNew() *V
}

// Equatable is implemented by types that can be compared structurally.
type Equatable[V any] interface {
	Equal(*V) bool
}
