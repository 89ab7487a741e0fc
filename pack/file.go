// SPDX-License-Identifier: MIT
// Package: mesh/pack
//
// file.go — binary packs on disk.

package pack

import (
	"fmt"
	"os"

	"github.com/Karol03/mesh/core"
)

// ToFile writes m as a binary pack to path, truncating an existing file.
func ToFile[N, E core.Payload](m *core.Mesh[N, E], path string) (err error) {
	if m == nil {
		return ErrMeshNil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pack: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("pack: close %s: %w", path, cerr)
		}
	}()

	return WriteBinary(f, m)
}

// FromFile loads the binary pack at path into m. A file that cannot be
// opened is an error; m is left untouched on any failure.
func FromFile[N, E core.Payload](m *core.Mesh[N, E], path string, codec Codec[N, E]) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("pack: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadBinary(m, f, codec)
}
