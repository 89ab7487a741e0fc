// SPDX-License-Identifier: MIT
// Package: mesh/pack
//
// errors.go — sentinel errors and the record-level load error.
//
// Error policy:
//   • Every load failure is a *RecordError naming the record kind, its
//     position and the offending field; it unwraps to one of the sentinels
//     below (and to the codec or core error that caused it, if any).
//   • Writers return the underlying io error wrapped with context.

package pack

import (
	"errors"
	"fmt"
)

var (
	// ErrMeshNil indicates a nil *core.Mesh argument.
	ErrMeshNil = errors.New("pack: mesh is nil")

	// ErrMissingField indicates a record ended before one of its fields.
	ErrMissingField = errors.New("pack: missing field")

	// ErrUnmappedEndpoint indicates an edge endpoint that names no node of
	// the same pack.
	ErrUnmappedEndpoint = errors.New("pack: endpoint maps to no node")

	// ErrMalformed indicates a field that is present but unusable: a number
	// out of range, a duplicate node id, an unterminated payload, a self loop
	// or a payload the codec rejected.
	ErrMalformed = errors.New("pack: malformed record")

	// ErrCodecIncomplete indicates a Codec with a nil decoder.
	ErrCodecIncomplete = errors.New("pack: codec is incomplete")
)

// Record kinds reported by RecordError.
const (
	KindHeader = "header"
	KindNode   = "node"
	KindEdge   = "edge"
)

// Field names reported by RecordError.
const (
	FieldNodeCount   = "node count"
	FieldEdgeCount   = "edge count"
	FieldID          = "id"
	FieldFirst       = "first endpoint"
	FieldSecond      = "second endpoint"
	FieldDescription = "description"
)

// RecordError describes the first record a loader could not accept.
type RecordError struct {
	Kind  string // KindHeader, KindNode or KindEdge
	Index int    // zero-based position among records of Kind
	Total int    // number of records of Kind announced by the header
	Field string // offending field
	Err   error  // wraps a pack sentinel
}

func (e *RecordError) Error() string {
	if e.Kind == KindHeader {
		return fmt.Sprintf("pack: header: %s: %v", e.Field, e.Err)
	}

	return fmt.Sprintf("pack: %s element %d/%d: %s: %v", e.Kind, e.Index, e.Total, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

func recordErr(kind string, index, total int, field string, err error) error {
	return &RecordError{Kind: kind, Index: index, Total: total, Field: field, Err: err}
}
