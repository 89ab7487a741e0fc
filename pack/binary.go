// SPDX-License-Identifier: MIT
// Package: mesh/pack
//
// binary.go — the binary pack.
//
// Layout (all integers uint32 little endian):
//
//	[nodes][edges]
//	nodes × [id][len][payload bytes]
//	edges × [id][first][second][len][payload bytes]
//
// Payload bytes are the String form of the payload; len counts bytes.

package pack

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/Karol03/mesh/core"
)

// maxPayload bounds a single payload read from a binary pack.
const maxPayload = 1 << 24

// WriteBinary writes m to w as a binary pack.
func WriteBinary[N, E core.Payload](w io.Writer, m *core.Mesh[N, E]) error {
	if m == nil {
		return ErrMeshNil
	}

	bw := bufio.NewWriter(w)
	fw := &frameWriter{w: bw}
	fw.u32(uint32(m.NodeCount()))
	fw.u32(uint32(m.EdgeCount()))
	m.Visit(
		func(n *core.Node[N]) {
			fw.u32(uint32(n.ID()))
			fw.str(n.Value().String())
		},
		func(e *core.Edge[E]) {
			a, b := e.Endpoints()
			fw.u32(uint32(e.ID()))
			fw.u32(uint32(a))
			fw.u32(uint32(b))
			fw.str(e.Value().String())
		},
	)
	if fw.err == nil {
		fw.err = bw.Flush()
	}
	if fw.err != nil {
		return fmt.Errorf("pack: write binary: %w", fw.err)
	}

	return nil
}

// ReadBinary loads a binary pack from r into m, with the same remapping and
// all-or-nothing rules as UnmarshalText.
func ReadBinary[N, E core.Payload](m *core.Mesh[N, E], r io.Reader, codec Codec[N, E]) error {
	if m == nil {
		return ErrMeshNil
	}
	if err := codec.validate(); err != nil {
		return err
	}

	fr := &frameReader{r: bufio.NewReader(r)}
	nodes, err := fr.u32()
	if err != nil {
		return recordErr(KindHeader, 0, 0, FieldNodeCount, err)
	}
	edges, err := fr.u32()
	if err != nil {
		return recordErr(KindHeader, 0, 0, FieldEdgeCount, err)
	}

	l := newLoader(codec, int(nodes), int(edges))
	for i := 0; i < int(nodes); i++ {
		id, err := fr.u32()
		if err != nil {
			return recordErr(KindNode, i, int(nodes), FieldID, err)
		}
		payload, err := fr.str()
		if err != nil {
			return recordErr(KindNode, i, int(nodes), FieldDescription, err)
		}
		if err := l.node(i, id, payload); err != nil {
			return err
		}
	}

	for i := 0; i < int(edges); i++ {
		var fields [3]uint32
		for f, name := range [3]string{FieldID, FieldFirst, FieldSecond} {
			if fields[f], err = fr.u32(); err != nil {
				return recordErr(KindEdge, i, int(edges), name, err)
			}
		}
		payload, err := fr.str()
		if err != nil {
			return recordErr(KindEdge, i, int(edges), FieldDescription, err)
		}
		if err := l.edge(i, fields[0], fields[1], fields[2], payload); err != nil {
			return err
		}
	}

	l.commit(m)

	return nil
}

// frameWriter keeps the first write error and ignores everything after it.
type frameWriter struct {
	w   io.Writer
	buf [4]byte
	err error
}

func (fw *frameWriter) u32(v uint32) {
	if fw.err != nil {
		return
	}
	binary.LittleEndian.PutUint32(fw.buf[:], v)
	_, fw.err = fw.w.Write(fw.buf[:])
}

func (fw *frameWriter) str(s string) {
	fw.u32(uint32(len(s)))
	if fw.err != nil {
		return
	}
	_, fw.err = io.WriteString(fw.w, s)
}

type frameReader struct {
	r   io.Reader
	buf [4]byte
}

func (fr *frameReader) u32() (uint32, error) {
	if _, err := io.ReadFull(fr.r, fr.buf[:]); err != nil {
		return 0, truncated(err)
	}

	return binary.LittleEndian.Uint32(fr.buf[:]), nil
}

func (fr *frameReader) str() (string, error) {
	n, err := fr.u32()
	if err != nil {
		return "", err
	}
	if n > maxPayload {
		return "", fmt.Errorf("%w: payload of %d bytes exceeds %d", ErrMalformed, n, maxPayload)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(fr.r, buf); err != nil {
		return "", truncated(err)
	}

	return string(buf), nil
}

// truncated maps a short read onto ErrMissingField; other read errors pass
// through unchanged.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrMissingField, err)
	}

	return err
}
