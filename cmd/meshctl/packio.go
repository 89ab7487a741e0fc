package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Karol03/mesh/core"
	"github.com/Karol03/mesh/pack"
)

const (
	formatText   = "text"
	formatBinary = "binary"
	formatDOT    = "dot"
)

// inputFormat resolves an empty -from flag: ".bin" files are binary packs,
// everything else is text.
func inputFormat(path, from string) string {
	if from != "" {
		return from
	}
	if filepath.Ext(path) == ".bin" {
		return formatBinary
	}

	return formatText
}

func readPack(m *core.Mesh[desc, desc], path, format string) error {
	switch format {
	case formatBinary:
		return pack.FromFile(m, path, pack.Descriptions())
	case formatText:
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("meshctl: read %s: %w", path, err)
		}
		return pack.UnmarshalText(m, data, pack.Descriptions())
	default:
		return fmt.Errorf("%w: cannot read %q packs", ErrUsage, format)
	}
}

// writePack writes m in format to path, or to the command output when path
// is empty.
func (e *env) writePack(m *core.Mesh[desc, desc], path, format string) (err error) {
	if path != "" && format == formatBinary {
		return pack.ToFile(m, path)
	}

	var w io.Writer = e.out
	if path != "" {
		f, ferr := os.Create(path)
		if ferr != nil {
			return fmt.Errorf("meshctl: create %s: %w", path, ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = f
	}

	switch format {
	case formatText:
		return pack.WriteText(w, m)
	case formatBinary:
		return pack.WriteBinary(w, m)
	case formatDOT:
		data, err := pack.MarshalDOT(m, e.name)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("%w: cannot write %q packs", ErrUsage, format)
	}
}
